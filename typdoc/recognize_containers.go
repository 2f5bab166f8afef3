package typdoc

import (
	"strings"

	"github.com/typfold/typmark/marker"
	"github.com/typfold/typmark/model"
)

func recognizeCover(p *parser, lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])
	if !marker.Has(s, marker.TagCoverBegin) {
		return nil, 0, false
	}
	var payload model.CoverPayload
	if !marker.Decode(s, marker.TagCoverBegin, &payload) {
		p.warnf(cur, WarningDecodeFailure, "cover marker; assuming flowing cover")
	}

	end := -1
	for i := cur + 1; i < len(lines); i++ {
		if marker.Has(strings.TrimSpace(lines[i]), marker.TagCoverEnd) {
			end = i
			break
		}
	}
	if end < 0 {
		// No end sentinel: skip the opener and let the inner content
		// parse as ordinary blocks.
		p.warnf(cur, WarningUnrecognizedLine, "cover begin without matching end")
		return nil, cur + 1, true
	}

	blk := model.NewBlock(model.TypeCover)
	blk.CoverFixedOnePage = payload.FixedOnePage
	blk.Children = p.parseLines(lines[cur+1 : end])

	// A page break directly after the cover is part of the cover: it
	// pins the cover to its own page.
	next := end + 1
	for next < len(lines) && strings.TrimSpace(lines[next]) == "" {
		next++
	}
	if next < len(lines) && strings.TrimSpace(lines[next]) == "#pagebreak()" {
		blk.CoverFixedOnePage = true
		next++
	} else {
		next = end + 1
	}
	return &blk, next, true
}

func recognizeCompositeRow(p *parser, lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])
	if !marker.Has(s, marker.TagCompositeRow) {
		return nil, 0, false
	}
	var payload model.CompositePayload
	if !marker.Decode(s, marker.TagCompositeRow, &payload) {
		p.warnf(cur, WarningDecodeFailure, "composite row marker; using default layout")
		payload = model.CompositePayload{Justify: "flex-start"}
	}
	_, _, _, layout, _ := marker.Split(s)
	layout = strings.TrimSpace(layout)

	blk := model.NewBlock(model.TypeCompositeRow)
	blk.CompositeJustify = payload.Justify
	blk.CompositeGap = payload.Gap
	blk.CompositeVerticalAlign = payload.VerticalAlign

	var slots []string
	if spacerJustify(payload.Justify) {
		slots = spacerSlots(layout)
	} else {
		slots = gridSlots(layout)
	}
	for _, slot := range slots {
		children := p.parseInner(marker.RestoreText(slot))
		blk.Children = append(blk.Children, children...)
	}
	return &blk, cur + 1, true
}

// spacerJustify reports whether the justify mode uses the flexible-spacer
// layout encoding rather than the fixed-column grid encoding.
func spacerJustify(justify string) bool {
	switch justify {
	case "space-between", "space-around", "space-evenly":
		return true
	}
	return false
}

// gridSlots extracts the bracketed child slots of a grid layout
// expression: #grid(columns: (...), ..., [slot], [slot]).
func gridSlots(layout string) []string {
	gridIdx := strings.Index(layout, "#grid(")
	if gridIdx < 0 {
		return nil
	}
	end := balancedEnd(layout, gridIdx+len("#grid"))
	if end < 0 {
		return nil
	}
	var slots []string
	for _, arg := range splitArgs(layout[gridIdx+len("#grid(") : end]) {
		if _, _, isNamed := cutArg(arg); isNamed {
			continue
		}
		if strings.HasPrefix(arg, "[") {
			if e := balancedEnd(arg, 0); e >= 0 {
				slots = append(slots, arg[1:e])
			}
		}
	}
	return slots
}

// spacerSlots extracts the child slots of a flexible-spacer layout
// expression by scanning for box-opening tokens and matching their
// brackets: #box[slot]#h(1fr)#box[slot].
func spacerSlots(layout string) []string {
	var slots []string
	i := 0
	for i < len(layout) {
		idx := strings.Index(layout[i:], "box[")
		if idx < 0 {
			break
		}
		open := i + idx + len("box")
		end := balancedEnd(layout, open)
		if end < 0 {
			break
		}
		slots = append(slots, layout[open+1:end])
		i = end + 1
	}
	return slots
}
