package typdoc

import (
	"strings"

	"github.com/typfold/typmark/marker"
	"github.com/typfold/typmark/model"
)

// Target selects the rendering variant a serialization is destined for.
// Only vertical-space blocks vary by target: previews show an outlined
// placeholder where storage and export emit invisible spacing.
type Target int

// Serialization targets.
const (
	TargetStorage Target = iota
	TargetPreview
	TargetExport
)

// Options configures one serialize call.
type Options struct {
	Settings model.DocumentSettings
	Target   Target
	// OmitHeader suppresses the document settings header marker. The
	// header is emitted by default so settings survive a save/reload
	// cycle.
	OmitHeader bool
}

// DefaultOptions returns the options used when the caller supplies none.
func DefaultOptions() Options {
	return Options{Settings: model.DefaultSettings()}
}

// Serialize renders a block list as markup text. The inverse of Parse:
// editor-only metadata is carried in marker tokens alongside the visible
// markup so that Parse(Serialize(blocks)) reproduces the blocks
// field-for-field (IDs excepted).
func Serialize(blocks []model.Block, opts Options) string {
	s := &serializer{opts: opts}
	parts := s.renderBlocks(blocks)
	if !opts.OmitHeader {
		parts = append([]string{marker.MustEncode(marker.TagDoc, opts.Settings)}, parts...)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// serializer threads per-call state through the emitters: the options and
// the running caption numbering counters. Counters are locals of one call,
// never package state, so concurrent serializations cannot interfere.
type serializer struct {
	opts     Options
	tableNum int
	imageNum int
}

// renderBlocks emits one markup fragment per block.
func (s *serializer) renderBlocks(blocks []model.Block) []string {
	var parts []string
	for i := range blocks {
		if frag := s.renderBlock(&blocks[i]); frag != "" {
			parts = append(parts, frag)
		}
	}
	return parts
}

func (s *serializer) renderBlock(b *model.Block) string {
	switch b.Type {
	case model.TypeHeading:
		return s.emitHeading(b)
	case model.TypeParagraph, model.TypeList:
		return s.emitParagraph(b)
	case model.TypeCode:
		return s.emitCode(b)
	case model.TypeMath:
		return s.emitMath(b)
	case model.TypeImage:
		return s.emitImage(b)
	case model.TypeChart:
		return s.emitChart(b)
	case model.TypeTable:
		return s.emitTable(b)
	case model.TypeVerticalSpace:
		return s.emitVSpace(b)
	case model.TypeInputField:
		return s.emitInput(b)
	case model.TypeCompositeRow:
		return s.emitCompositeRow(b)
	case model.TypeCover:
		return s.emitCover(b)
	}
	return ""
}

// childMarkup serializes a container's children for embedding: no header,
// same target, shared numbering counters. Captioned media inside a
// composite row continues the document's Figure/Table sequence; covers
// pass settings with numbering disabled, so their children never touch
// the counters.
func (s *serializer) childMarkup(children []model.Block, settings model.DocumentSettings) string {
	saved := s.opts
	s.opts = Options{
		Settings:   settings,
		Target:     saved.Target,
		OmitHeader: true,
	}
	parts := s.renderBlocks(children)
	s.opts = saved
	return strings.TrimRight(strings.Join(parts, "\n\n"), "\n")
}
