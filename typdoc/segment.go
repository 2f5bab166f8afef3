package typdoc

import (
	"strconv"
	"strings"

	"github.com/typfold/typmark/marker"
	"github.com/typfold/typmark/model"
)

// lineKind classifies one visible content line of a paragraph.
type lineKind int

const (
	kindPlain lineKind = iota
	kindBullet
	kindOrdered
)

// kindOf classifies a visible content line by its kind-tag prefix.
func kindOf(line string) lineKind {
	if strings.HasPrefix(line, "- ") {
		return kindBullet
	}
	if _, _, ok := splitOrderedPrefix(line); ok {
		return kindOrdered
	}
	return kindPlain
}

// splitOrderedPrefix splits "3. text" into its number and text.
func splitOrderedPrefix(line string) (num int, rest string, ok bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(line) || line[i] != '.' || line[i+1] != ' ' {
		return 0, "", false
	}
	n, err := strconv.Atoi(line[:i])
	if err != nil {
		return 0, "", false
	}
	return n, line[i+2:], true
}

// isTextualLine reports whether a raw markup line belongs to a paragraph
// run: ordinary text, a list/enum expression, or a decorated text line.
// Structural lines (headings, fences, figures, directives, marker tokens)
// end the run.
func isTextualLine(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	if isHeadingLine(s) || strings.HasPrefix(s, "```") {
		return false
	}
	if isMathLine(s) {
		return false
	}
	if _, _, _, _, ok := marker.Split(s); ok {
		return false
	}
	if strings.HasPrefix(s, "#list(") || strings.HasPrefix(s, "#enum(") ||
		strings.HasPrefix(s, "#text(") || strings.HasPrefix(s, "#align(") {
		return true
	}
	if strings.HasPrefix(s, "#") {
		return false
	}
	return true
}

// scanTextRun consumes the maximal run of textual lines starting at cur
// and folds them into one paragraph block: list expressions expand to
// kind-tagged lines (`- `, `1. `), decorators are unwrapped, and the first
// decorated line's style becomes the block style.
func scanTextRun(lines []string, cur int) (*model.Block, int) {
	blk := model.NewBlock(model.TypeParagraph)
	var content []string
	var style lineStyle

	next := cur
	for next < len(lines) && isTextualLine(lines[next]) {
		visible, st := unwrapDecorators(lines[next])
		if style.empty() && !st.empty() {
			style = st
		}
		switch {
		case strings.HasPrefix(visible, "#list("):
			items, _, ok := parseListExpr(visible, "#list(")
			if !ok {
				content = append(content, visible)
				break
			}
			for _, it := range items {
				content = append(content, "- "+it)
			}
		case strings.HasPrefix(visible, "#enum("):
			items, start, ok := parseListExpr(visible, "#enum(")
			if !ok {
				content = append(content, visible)
				break
			}
			for i, it := range items {
				content = append(content, strconv.Itoa(start+i)+". "+it)
			}
		default:
			content = append(content, visible)
		}
		next++
	}
	if len(content) == 0 {
		return nil, cur
	}

	blk.Content = strings.Join(content, "\n")
	blk.Font = style.font
	blk.FontSize = style.size
	blk.Align = style.align
	return &blk, next
}

// parseListExpr decodes a single-line list or enum expression of the form
// #list(tight: true)[Item 1][Item 2]. For enums the start argument gives
// the first number (default 1).
func parseListExpr(s, prefix string) (items []string, start int, ok bool) {
	start = 1
	argStart := len(prefix) - 1
	argEnd := balancedEnd(s, argStart)
	if argEnd < 0 {
		return nil, 0, false
	}
	named, _ := namedArgs(s[argStart+1 : argEnd])
	if v, found := named["start"]; found {
		if n, err := strconv.Atoi(v); err == nil {
			start = n
		}
	}
	groups, end := bracketGroups(s, argEnd+1)
	if len(groups) == 0 || strings.TrimSpace(s[end:]) != "" {
		return nil, 0, false
	}
	return groups, start, true
}

// segmentRun is one maximal same-kind run of paragraph content lines.
type segmentRun struct {
	kind  lineKind
	lines []string // visible text without kind-tag prefixes
	start int      // first number of an ordered run
}

// segmentContent splits stored paragraph content into maximal runs of one
// line kind. This is the serializer-side half of the paragraph/list
// segmentation; the parser-side half lives in scanTextRun.
func segmentContent(content string) []segmentRun {
	var runs []segmentRun
	for _, line := range strings.Split(content, "\n") {
		kind := kindOf(line)
		text := line
		start := 0
		switch kind {
		case kindBullet:
			text = strings.TrimPrefix(line, "- ")
		case kindOrdered:
			start, text, _ = splitOrderedPrefix(line)
		}
		if n := len(runs); n > 0 && runs[n-1].kind == kind {
			runs[n-1].lines = append(runs[n-1].lines, text)
			continue
		}
		runs = append(runs, segmentRun{kind: kind, lines: []string{text}, start: start})
	}
	return runs
}

// buildListExpr is the inverse of parseListExpr.
func buildListExpr(run segmentRun) string {
	var sb strings.Builder
	if run.kind == kindOrdered {
		sb.WriteString("#enum(tight: true")
		if run.start != 1 {
			sb.WriteString(", start: " + strconv.Itoa(run.start))
		}
		sb.WriteString(")")
	} else {
		sb.WriteString("#list(tight: true)")
	}
	for _, it := range run.lines {
		sb.WriteString("[" + it + "]")
	}
	return sb.String()
}
