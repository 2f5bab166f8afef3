package typmark

import (
	"strings"
	"testing"

	"github.com/typfold/typmark/format"
	"github.com/typfold/typmark/model"
)

func sampleBlocks() []model.Block {
	h := model.NewBlock(model.TypeHeading)
	h.Level = 1
	h.Content = "Quiz"

	p := model.NewBlock(model.TypeParagraph)
	p.Content = "Answer all questions.\n1. show your work\n2. no calculators"

	m := model.NewBlock(model.TypeMath)
	m.MathFormat = "latex"
	m.MathLatex = `E = mc^{2}`
	m.MathTypst = "E = m c^(2)"

	tbl := model.NewBlock(model.TypeTable)
	tbl.Table = model.NewTablePayload(1, 2)
	tbl.Table.Cells[0][0].Content = "question"
	tbl.Table.Cells[0][1].Content = "points"

	return []model.Block{h, p, m, tbl}
}

func TestDocument_RoundTrip(t *testing.T) {
	want := sampleBlocks()
	markup, warnings := FromBlocks(want).Markup()
	if len(warnings) != 0 {
		t.Fatalf("serialize warnings: %v", warnings)
	}

	got, warnings := From(markup).Blocks()
	if len(warnings) != 0 {
		t.Fatalf("parse warnings: %s", FormatWarnings(warnings))
	}
	if !model.BlocksEqual(want, got) {
		t.Errorf("round trip changed blocks\n want: %+v\n got:  %+v", want, got)
	}
}

func TestFromJSON(t *testing.T) {
	doc, err := FromJSON([]byte(`[{"type":"heading","content":"T","level":1}]`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	blocks, _ := doc.Blocks()
	if len(blocks) != 1 || blocks[0].Content != "T" {
		t.Errorf("blocks = %+v", blocks)
	}

	if _, err := FromJSON([]byte(`[{"type":"marquee"}]`)); err == nil {
		t.Error("invalid block type should fail validation")
	}
	if _, err := FromJSON([]byte(`not json`)); err == nil {
		t.Error("malformed JSON should fail validation")
	}
}

func TestDocument_SettingsPrecedence(t *testing.T) {
	headerSettings := model.DefaultSettings()
	headerSettings.FontSize = 13
	markup, _ := FromBlocks(sampleBlocks()).WithSettings(headerSettings).Markup()

	doc := From(markup)
	if got := doc.Settings(); got.FontSize != 13 {
		t.Errorf("header settings lost: %+v", got)
	}

	override := model.DefaultSettings()
	override.FontSize = 9
	if got := doc.WithSettings(override).Settings(); got.FontSize != 9 {
		t.Errorf("explicit settings should win: %+v", got)
	}

	// Configuring a copy must not touch the original.
	if got := doc.Settings(); got.FontSize != 13 {
		t.Errorf("WithSettings mutated the receiver: %+v", got)
	}

	if got := From("plain text").Settings(); got != model.DefaultSettings() {
		t.Errorf("headerless source should use defaults: %+v", got)
	}
}

func TestDocument_Format(t *testing.T) {
	modern, _ := FromBlocks(sampleBlocks()).Markup()

	tests := []struct {
		name string
		doc  *Document
		want format.Format
	}{
		{"marker-bearing markup", From(modern), format.Modern},
		{"legacy markup", From("= Title\n\nBody"), format.Legacy},
		{"plain text", From("Just words."), format.Plain},
		{"html", From("<!DOCTYPE html><html><body></body></html>"), format.HTML},
		{"built from blocks", FromBlocks(sampleBlocks()), format.Modern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Format(); got != tt.want {
				t.Errorf("Format() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDocument_Text(t *testing.T) {
	img := model.NewBlock(model.TypeImage)
	img.URL = "https://example.com/a.png"
	img.Caption = "diagram"

	inner := model.NewBlock(model.TypeParagraph)
	inner.Content = "cover line"
	cover := model.NewBlock(model.TypeCover)
	cover.Children = []model.Block{inner}

	blocks := append(sampleBlocks(), img, cover)
	text, _ := FromBlocks(blocks).Text()

	for _, want := range []string{
		"Quiz",
		"Answer all questions.",
		"E = mc^{2}",
		"question\tpoints",
		"diagram",
		"cover line",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "/*") || strings.Contains(text, "#") {
		t.Errorf("Text() leaked markup:\n%s", text)
	}
}

func TestDocument_ForPreview(t *testing.T) {
	b := model.NewBlock(model.TypeVerticalSpace)
	b.Space = 30
	doc := FromBlocks([]model.Block{b})

	preview, _ := doc.ForPreview().Markup()
	if !strings.Contains(preview, "#rect(") {
		t.Errorf("preview output = %q, want dashed placeholder", preview)
	}

	storage, _ := doc.Markup()
	if !strings.Contains(storage, "#v(30pt)") {
		t.Errorf("storage output = %q, want invisible spacing", storage)
	}
}

func TestDocument_OmitHeader(t *testing.T) {
	markup, _ := FromBlocks(sampleBlocks()).OmitHeader().Markup()
	if strings.Contains(markup, "/*DOC") {
		t.Errorf("output still carries the settings header: %q", markup)
	}
}

func TestParseSerialize(t *testing.T) {
	blocks, warnings := Parse("= Title\n\nBody text")
	if len(warnings) != 0 {
		t.Fatalf("warnings: %s", FormatWarnings(warnings))
	}
	if len(blocks) != 2 {
		t.Fatalf("blocks = %+v", blocks)
	}

	out := Serialize(blocks, model.DefaultSettings())
	if !strings.Contains(out, "= Title") {
		t.Errorf("Serialize output = %q", out)
	}
}

func TestFromBytes_UTF8Passthrough(t *testing.T) {
	doc := FromBytes([]byte("= Café\n"))
	blocks, _ := doc.Blocks()
	if len(blocks) != 1 || blocks[0].Content != "Café" {
		t.Errorf("blocks = %+v", blocks)
	}
}

func TestFromHTML(t *testing.T) {
	doc, err := FromHTML(strings.NewReader("<html><body><h1>Hi</h1><p>There</p></body></html>"))
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	blocks, _ := doc.Blocks()
	if len(blocks) != 2 || blocks[0].Type != model.TypeHeading {
		t.Errorf("blocks = %+v", blocks)
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q", got)
	}
	_, warnings := Parse("#bogus(\n#bogus(")
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v", warnings)
	}
	got := FormatWarnings(warnings)
	if len(strings.Split(got, "\n")) != 2 {
		t.Errorf("FormatWarnings = %q, want one line per warning", got)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(FromJSON([]byte("bad")))
}
