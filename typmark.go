// Package typmark transcodes between a typed block model and markup text.
//
// A document is edited as a sequence of typed blocks (headings, paragraphs,
// math, tables, images, charts, composite rows, cover pages, input fields,
// vertical spacing) but persisted as plain markup. Editor-only metadata
// with no visible markup representation rides along in comment marker
// tokens, so a save/reload cycle is lossless.
//
// Basic usage:
//
//	doc := typmark.From(markup)
//	blocks, warnings := doc.Blocks()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", typmark.FormatWarnings(warnings))
//	}
//
// And back:
//
//	markup, _ := typmark.FromBlocks(blocks).Markup()
//
// For advanced use cases, the lower-level typdoc, mathconv and marker
// packages are also available.
package typmark

import (
	"fmt"
	"io"
	"os"

	"github.com/typfold/typmark/format"
	"github.com/typfold/typmark/htmldoc"
	"github.com/typfold/typmark/internal/textenc"
	"github.com/typfold/typmark/model"
	"github.com/typfold/typmark/typdoc"
)

// From creates a Document from markup text. Parsing is deferred until a
// terminal operation needs the blocks.
//
// Example:
//
//	blocks, warnings := typmark.From(markup).Blocks()
func From(markup string) *Document {
	return &Document{
		source:  markup,
		options: defaultOptions(),
	}
}

// FromBytes creates a Document from raw markup bytes. Input in a legacy
// charset is decoded to UTF-8 first; input that is already UTF-8 passes
// through unchanged.
func FromBytes(data []byte) *Document {
	if name, certain := textenc.Detect(data, ""); certain && name != "utf-8" {
		if decoded, err := textenc.Decode(data, name); err == nil {
			data = decoded
		}
	}
	return From(string(data))
}

// FromFile creates a Document from a markup file on disk.
func FromFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return FromBytes(data), nil
}

// FromBlocks creates a Document directly from a block list, for callers
// that already hold the model (an editor saving its state).
func FromBlocks(blocks []model.Block) *Document {
	return &Document{
		blocks:  blocks,
		parsed:  true,
		options: defaultOptions(),
	}
}

// FromJSON creates a Document from an externally supplied JSON block
// array, validating it against the block union first. This is the entry
// point for machine-generated block lists; malformed input is the one
// condition that surfaces as a hard error.
func FromJSON(data []byte) (*Document, error) {
	blocks, err := model.ValidateBlocks(data)
	if err != nil {
		return nil, fmt.Errorf("validating blocks: %w", err)
	}
	return FromBlocks(blocks), nil
}

// FromHTML imports an HTML document as blocks. Navigation chrome is
// filtered with the htmldoc package's default filter; use htmldoc
// directly for other filter levels.
func FromHTML(r io.Reader) (*Document, error) {
	reader, err := htmldoc.OpenReader(r, htmldoc.Options{Filter: htmldoc.FilterPatterns})
	if err != nil {
		return nil, fmt.Errorf("importing HTML: %w", err)
	}
	return FromBlocks(reader.Blocks()), nil
}

// DetectFormat classifies markup content without parsing it: modern
// marker-bearing markup, legacy markup, plain text or HTML.
func DetectFormat(content string) format.Format {
	return format.DetectFromContent(content)
}

// Parse transcodes markup text into blocks with the default settings.
// It never fails; unrecognized lines are reported as warnings.
func Parse(markup string) ([]model.Block, []Warning) {
	blocks, _, warnings := typdoc.Parse(markup)
	return blocks, warnings
}

// Serialize renders blocks as markup text with the given settings,
// targeting storage. The inverse of Parse up to block IDs.
func Serialize(blocks []model.Block, settings model.DocumentSettings) string {
	return typdoc.Serialize(blocks, typdoc.Options{Settings: settings})
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := typmark.Must(typmark.FromFile("exam.typ"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
