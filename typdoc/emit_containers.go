package typdoc

import (
	"strings"

	"github.com/typfold/typmark/marker"
	"github.com/typfold/typmark/model"
)

func (s *serializer) emitCover(b *model.Block) string {
	// Captions inside a cover are never numbered, whatever the ambient
	// settings say; a cover is front matter, not document content.
	settings := s.opts.Settings
	settings.TableCaptionNumbering = false
	settings.ImageCaptionNumbering = false

	var out []string
	out = append(out, marker.MustEncode(marker.TagCoverBegin, model.CoverPayload{FixedOnePage: b.CoverFixedOnePage}))
	if inner := s.childMarkup(b.Children, settings); inner != "" {
		out = append(out, inner)
	}
	out = append(out, marker.Bare(marker.TagCoverEnd))
	if b.CoverFixedOnePage {
		out = append(out, "#pagebreak()")
	}
	return strings.Join(out, "\n")
}

func (s *serializer) emitCompositeRow(b *model.Block) string {
	payload := model.CompositePayload{
		Justify:       b.CompositeJustify,
		Gap:           b.CompositeGap,
		VerticalAlign: b.CompositeVerticalAlign,
	}
	tok := marker.MustEncode(marker.TagCompositeRow, payload)

	// Each child becomes one slot; the slot markup is flattened so the
	// whole row stays one logical line.
	slots := make([]string, 0, len(b.Children))
	for i := range b.Children {
		slot := s.childMarkup(b.Children[i:i+1], s.opts.Settings)
		slots = append(slots, marker.FlattenText(slot))
	}

	if spacerJustify(b.CompositeJustify) {
		var sb strings.Builder
		for i, slot := range slots {
			if i > 0 {
				sb.WriteString("#h(1fr)")
			}
			sb.WriteString("#box[" + slot + "]")
		}
		return tok + sb.String()
	}

	var args []string
	tracks := make([]string, len(slots))
	for i := range tracks {
		tracks[i] = "1fr"
	}
	args = append(args, "columns: ("+strings.Join(tracks, ", ")+")")
	if b.CompositeGap != 0 {
		args = append(args, "column-gutter: "+formatPt(b.CompositeGap))
	}
	if va := verticalAlignTrack(b.CompositeVerticalAlign); va != "" {
		args = append(args, "align: "+va)
	}
	for _, slot := range slots {
		args = append(args, "["+slot+"]")
	}
	return tok + "#grid(" + strings.Join(args, ", ") + ")"
}

// verticalAlignTrack maps the editor's vertical alignment names onto the
// markup's track alignment names.
func verticalAlignTrack(v string) string {
	switch v {
	case "flex-start":
		return "top"
	case "center":
		return "horizon"
	case "flex-end":
		return "bottom"
	}
	return ""
}
