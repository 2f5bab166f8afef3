package typdoc

import (
	"strings"
	"testing"

	"github.com/typfold/typmark/model"
)

func TestSerialize_Empty(t *testing.T) {
	if got := Serialize(nil, Options{OmitHeader: true}); got != "" {
		t.Errorf("Serialize(nil) = %q, want empty", got)
	}
}

func TestSerialize_HeaderByDefault(t *testing.T) {
	p := model.NewBlock(model.TypeParagraph)
	p.Content = "x"

	withHeader := Serialize([]model.Block{p}, DefaultOptions())
	if !strings.HasPrefix(withHeader, "/*DOC:") {
		t.Errorf("output should open with the settings header, got %q", withHeader)
	}

	opts := DefaultOptions()
	opts.OmitHeader = true
	if got := Serialize([]model.Block{p}, opts); strings.Contains(got, "/*DOC") {
		t.Errorf("OmitHeader output still carries a header: %q", got)
	}
}

func TestSerialize_HeadingLevelClamped(t *testing.T) {
	opts := DefaultOptions()
	opts.OmitHeader = true

	low := model.NewBlock(model.TypeHeading)
	low.Content = "T"
	if got := Serialize([]model.Block{low}, opts); !strings.HasPrefix(got, "= T") {
		t.Errorf("level 0 output = %q, want level 1", got)
	}

	high := model.NewBlock(model.TypeHeading)
	high.Level = 9
	high.Content = "T"
	if got := Serialize([]model.Block{high}, opts); !strings.HasPrefix(got, "====== T") {
		t.Errorf("level 9 output = %q, want level 6", got)
	}
}

func TestSerialize_VSpaceByTarget(t *testing.T) {
	b := model.NewBlock(model.TypeVerticalSpace)
	b.Space = 18
	blocks := []model.Block{b}

	tests := []struct {
		name   string
		target Target
		want   string
	}{
		{"storage", TargetStorage, "#v(18pt)"},
		{"export", TargetExport, "#v(18pt)"},
		{"preview", TargetPreview, `#rect(width: 100%, height: 18pt, stroke: (dash: "dashed"))[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Settings: model.DefaultSettings(), Target: tt.target, OmitHeader: true}
			got := Serialize(blocks, opts)
			if !strings.Contains(got, tt.want) {
				t.Errorf("output = %q, want containing %q", got, tt.want)
			}
		})
	}
}

func TestSerialize_CaptionNumbering(t *testing.T) {
	mkImage := func(url, caption string) model.Block {
		b := model.NewBlock(model.TypeImage)
		b.URL = url
		b.Caption = caption
		return b
	}
	blocks := []model.Block{
		mkImage("https://example.com/a.png", "first"),
		mkImage("https://example.com/b.png", "second"),
	}

	opts := DefaultOptions()
	opts.OmitHeader = true
	got := Serialize(blocks, opts)
	if !strings.Contains(got, "Figure 1: first") || !strings.Contains(got, "Figure 2: second") {
		t.Errorf("numbered output = %q", got)
	}

	opts.Settings.ImageCaptionNumbering = false
	got = Serialize(blocks, opts)
	if strings.Contains(got, "Figure 1") {
		t.Errorf("numbering disabled but output = %q", got)
	}
	if !strings.Contains(got, "caption: [first]") {
		t.Errorf("plain caption missing from %q", got)
	}
}

func TestSerialize_TableCaptionNumbering(t *testing.T) {
	tbl := model.NewBlock(model.TypeTable)
	tbl.Table = model.NewTablePayload(1, 1)
	tbl.Table.Caption = "Results"

	opts := DefaultOptions()
	opts.OmitHeader = true
	got := Serialize([]model.Block{tbl}, opts)
	if !strings.Contains(got, "Table 1: Results") {
		t.Errorf("output = %q, want numbered caption", got)
	}
}

// Cover content is front matter: captions inside it never get numbered,
// and they do not consume numbers from the document body either.
func TestSerialize_CoverSuppressesNumbering(t *testing.T) {
	inner := model.NewBlock(model.TypeImage)
	inner.URL = "https://example.com/logo.png"
	inner.Caption = "logo"
	cover := model.NewBlock(model.TypeCover)
	cover.Children = []model.Block{inner}

	body := model.NewBlock(model.TypeImage)
	body.URL = "https://example.com/fig.png"
	body.Caption = "plot"

	opts := DefaultOptions()
	opts.OmitHeader = true
	got := Serialize([]model.Block{cover, body}, opts)
	if !strings.Contains(got, "caption: [logo]") {
		t.Errorf("cover caption should stay plain, output = %q", got)
	}
	if !strings.Contains(got, "Figure 1: plot") {
		t.Errorf("body numbering should start at 1, output = %q", got)
	}
}

// Composite-row slots are document body, so captioned media inside them
// continues the Figure sequence instead of restarting it.
func TestSerialize_CompositeRowContinuesNumbering(t *testing.T) {
	mkImage := func(url, caption string) model.Block {
		b := model.NewBlock(model.TypeImage)
		b.URL = url
		b.Caption = caption
		return b
	}
	row := model.NewBlock(model.TypeCompositeRow)
	row.Children = []model.Block{mkImage("https://example.com/b.png", "second")}

	blocks := []model.Block{
		mkImage("https://example.com/a.png", "first"),
		row,
		mkImage("https://example.com/c.png", "third"),
	}

	opts := DefaultOptions()
	opts.OmitHeader = true
	got := Serialize(blocks, opts)
	for _, want := range []string{"Figure 1: first", "Figure 2: second", "Figure 3: third"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "Figure 1:") != 1 {
		t.Errorf("numbering restarted inside the row:\n%s", got)
	}
}

func TestSerialize_ChartPlaceholder(t *testing.T) {
	b := model.NewBlock(model.TypeChart)
	b.Chart = &model.ChartPayload{ChartType: "pie"}

	opts := DefaultOptions()
	opts.OmitHeader = true
	got := Serialize([]model.Block{b}, opts)
	if !strings.Contains(got, "Chart not yet generated") {
		t.Errorf("output = %q, want the placeholder box", got)
	}
}

func TestSerialize_InvalidImageURLStaysMarkerOnly(t *testing.T) {
	b := model.NewBlock(model.TypeImage)
	b.URL = "image.png" // placeholder name, not a real asset
	b.Caption = "draft"

	opts := DefaultOptions()
	opts.OmitHeader = true
	got := Serialize([]model.Block{b}, opts)
	if strings.Contains(got, "#image(") || strings.Contains(got, "#figure(") {
		t.Errorf("placeholder URL must not render, output = %q", got)
	}
	if !strings.HasPrefix(got, "/*IMAGE:") {
		t.Errorf("marker missing from %q", got)
	}
}
