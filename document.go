package typmark

import (
	"fmt"
	"strings"

	"github.com/typfold/typmark/assets"
	"github.com/typfold/typmark/format"
	"github.com/typfold/typmark/model"
	"github.com/typfold/typmark/ocr"
	"github.com/typfold/typmark/typdoc"
)

// Document is the fluent handle over one document: markup in, blocks out,
// or the other way around. Configuration methods return a copy, so a
// configured Document can be reused and shared safely.
type Document struct {
	source   string
	blocks   []model.Block
	header   *model.DocumentSettings
	warnings []Warning
	parsed   bool
	options  renderOptions
}

// clone creates a copy sharing the parsed state but with independent
// options.
func (d *Document) clone() *Document {
	out := *d
	out.options = d.options.clone()
	return &out
}

// ensureParsed parses the markup source on first use.
func (d *Document) ensureParsed() {
	if d.parsed {
		return
	}
	blocks, header, warnings := typdoc.Parse(d.source)
	d.blocks = blocks
	d.header = header
	d.warnings = warnings
	d.parsed = true
}

// WithSettings returns a copy using the given document settings for
// serialization, overriding any settings header found in the source.
func (d *Document) WithSettings(s model.DocumentSettings) *Document {
	out := d.clone()
	out.options.settings = &s
	return out
}

// ForPreview returns a copy targeting preview rendering: vertical space
// blocks render as visible dashed placeholders.
func (d *Document) ForPreview() *Document {
	out := d.clone()
	out.options.target = typdoc.TargetPreview
	return out
}

// ForExport returns a copy targeting export rendering.
func (d *Document) ForExport() *Document {
	out := d.clone()
	out.options.target = typdoc.TargetExport
	return out
}

// OmitHeader returns a copy that serializes without the document settings
// header marker.
func (d *Document) OmitHeader() *Document {
	out := d.clone()
	out.options.omitHeader = true
	return out
}

// Blocks parses the source (once) and returns the block list together
// with any warnings accumulated while parsing. Parsing never fails;
// unrecognized lines degrade to warnings.
func (d *Document) Blocks() ([]model.Block, []Warning) {
	d.ensureParsed()
	return d.blocks, d.warnings
}

// Settings returns the effective document settings: an explicit
// WithSettings value wins, then a settings header in the source, then the
// defaults.
func (d *Document) Settings() model.DocumentSettings {
	d.ensureParsed()
	if d.options.settings != nil {
		return *d.options.settings
	}
	if d.header != nil {
		return *d.header
	}
	return model.DefaultSettings()
}

// Format classifies the markup source without parsing it. Documents built
// from blocks report the modern format.
func (d *Document) Format() format.Format {
	if d.source == "" && d.parsed {
		return format.Modern
	}
	return format.DetectFromContent(d.source)
}

// Markup serializes the document back to markup text.
func (d *Document) Markup() (string, []Warning) {
	d.ensureParsed()
	out := typdoc.Serialize(d.blocks, typdoc.Options{
		Settings:   d.Settings(),
		Target:     d.options.target,
		OmitHeader: d.options.omitHeader,
	})
	return out, d.warnings
}

// Text returns a plain text rendering of the document, suitable for
// search indexing or previews. All markup and metadata is dropped.
func (d *Document) Text() (string, []Warning) {
	d.ensureParsed()
	var parts []string
	collectText(d.blocks, &parts)
	return strings.Join(parts, "\n\n"), d.warnings
}

func collectText(blocks []model.Block, parts *[]string) {
	for i := range blocks {
		b := &blocks[i]
		switch b.Type {
		case model.TypeHeading, model.TypeParagraph, model.TypeList, model.TypeCode:
			if b.Content != "" {
				*parts = append(*parts, b.Content)
			}
		case model.TypeMath:
			if expr := mathText(b); expr != "" {
				*parts = append(*parts, expr)
			}
		case model.TypeTable:
			if b.Table != nil {
				if text := b.Table.ToText(); text != "" {
					*parts = append(*parts, text)
				}
			}
		case model.TypeImage:
			if b.Caption != "" {
				*parts = append(*parts, b.Caption)
			}
		case model.TypeChart:
			if b.Chart != nil && b.Chart.Title != "" {
				*parts = append(*parts, b.Chart.Title)
			}
		case model.TypeInputField:
			if len(b.InputLines) > 0 {
				*parts = append(*parts, strings.Join(b.InputLines, "\n"))
			}
		case model.TypeCompositeRow, model.TypeCover:
			collectText(b.Children, parts)
		}
	}
}

func mathText(b *model.Block) string {
	if len(b.MathLines) > 0 {
		var lines []string
		for _, l := range b.MathLines {
			if l.Latex != "" {
				lines = append(lines, l.Latex)
			} else {
				lines = append(lines, l.Typst)
			}
		}
		return strings.Join(lines, "\n")
	}
	if b.MathLatex != "" {
		return b.MathLatex
	}
	return b.MathTypst
}

// CaptionImages fills in empty image captions by running OCR over the
// image bytes, fetched per URL by the supplied callback. Requires the ocr
// build tag; without it the call fails with ocr.ErrOCRNotEnabled.
// Individual fetch or recognition failures skip the image rather than
// aborting the pass.
func (d *Document) CaptionImages(fetch func(url string) ([]byte, error)) error {
	if fetch == nil {
		return fmt.Errorf("nil fetch callback")
	}
	d.ensureParsed()
	client, err := ocr.New()
	if err != nil {
		return err
	}
	defer client.Close()
	captionBlocks(d.blocks, client, fetch)
	return nil
}

func captionBlocks(blocks []model.Block, client *ocr.Client, fetch func(string) ([]byte, error)) {
	for i := range blocks {
		b := &blocks[i]
		if b.Type == model.TypeImage && b.Caption == "" && assets.ValidURL(b.URL) {
			data, err := fetch(b.URL)
			if err != nil {
				continue
			}
			if caption, err := client.Caption(data); err == nil {
				b.Caption = caption
			}
			continue
		}
		if b.Type.Container() {
			captionBlocks(b.Children, client, fetch)
		}
	}
}
