package typdoc

import (
	"strings"

	"github.com/typfold/typmark/marker"
	"github.com/typfold/typmark/mathconv"
	"github.com/typfold/typmark/model"
)

// isHeadingLine reports whether s is a heading marker line (= to ======
// followed by a space and the title).
func isHeadingLine(s string) bool {
	i := 0
	for i < len(s) && s[i] == '=' {
		i++
	}
	return i >= 1 && i <= 6 && i < len(s) && s[i] == ' '
}

func recognizeHeading(_ *parser, lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])
	if !isHeadingLine(s) {
		return nil, 0, false
	}
	level := 0
	for level < len(s) && s[level] == '=' {
		level++
	}
	blk := model.NewBlock(model.TypeHeading)
	blk.Level = level
	blk.Content = strings.TrimSpace(s[level:])
	return &blk, cur + 1, true
}

func recognizeCodeFence(_ *parser, lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])
	if !strings.HasPrefix(s, "```") {
		return nil, 0, false
	}
	blk := model.NewBlock(model.TypeCode)
	blk.Language = strings.TrimSpace(strings.TrimPrefix(s, "```"))

	var body []string
	next := cur + 1
	for next < len(lines) {
		if strings.TrimSpace(lines[next]) == "```" {
			next++
			break
		}
		body = append(body, lines[next])
		next++
	}
	blk.Content = strings.Join(body, "\n")
	return &blk, next, true
}

// isMathLine reports whether s is a display math line: $ ... $ with real
// content between the delimiters.
func isMathLine(s string) bool {
	return len(s) > 2 && strings.HasPrefix(s, "$") && strings.HasSuffix(s, "$")
}

func recognizeMath(p *parser, lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])

	if marker.Has(s, marker.TagMath) {
		var payload model.MathPayload
		if !marker.Decode(s, marker.TagMath, &payload) {
			p.warnf(cur, WarningDecodeFailure, "math marker; keeping empty expression")
		}
		blk := mathBlockFromPayload(payload)
		next := cur + 1
		// The visible rendering follows on the next line; it is derived
		// from the payload and skipped.
		if next < len(lines) && isMathLine(strings.TrimSpace(lines[next])) {
			next++
		}
		return &blk, next, true
	}

	if !isMathLine(s) {
		return nil, 0, false
	}
	// Legacy bare math line without a marker: recover both dialects from
	// the visible expression.
	expr := strings.TrimSpace(strings.Trim(s, "$"))
	blk := model.NewBlock(model.TypeMath)
	blk.MathFormat = "typst"
	blk.MathTypst = expr
	blk.MathLatex = mathconv.ToLatex(expr)
	return &blk, cur + 1, true
}

func mathBlockFromPayload(payload model.MathPayload) model.Block {
	blk := model.NewBlock(model.TypeMath)
	blk.MathFormat = payload.Format
	blk.MathLatex = payload.Latex
	blk.MathTypst = payload.Typst
	blk.MathLines = payload.Lines
	blk.MathBrace = payload.Brace
	return blk
}

func recognizeVSpace(p *parser, lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])

	if marker.Has(s, marker.TagVSpace) {
		var payload model.SpacePayload
		if !marker.Decode(s, marker.TagVSpace, &payload) {
			p.warnf(cur, WarningDecodeFailure, "vertical space marker; using zero height")
		}
		blk := model.NewBlock(model.TypeVerticalSpace)
		blk.Space = payload.Space
		next := cur + 1
		if next < len(lines) && isSpacingLine(strings.TrimSpace(lines[next])) {
			next++
		}
		return &blk, next, true
	}

	// Legacy explicit spacing without a marker.
	if strings.HasPrefix(s, "#v(") && balancedEnd(s, 2) == len(s)-1 {
		blk := model.NewBlock(model.TypeVerticalSpace)
		blk.Space = parsePt(s[3 : len(s)-1])
		return &blk, cur + 1, true
	}
	return nil, 0, false
}

// isSpacingLine matches the visible rendering of a vertical_space block in
// any target variant.
func isSpacingLine(s string) bool {
	return strings.HasPrefix(s, "#v(") || strings.HasPrefix(s, "#rect(")
}

func recognizeInput(p *parser, lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])
	if !marker.Has(s, marker.TagInput) {
		return nil, 0, false
	}
	var payload model.InputPayload
	if !marker.Decode(s, marker.TagInput, &payload) {
		p.warnf(cur, WarningDecodeFailure, "input marker; using a single empty answer line")
		payload = model.InputPayload{Lines: []string{""}}
	}
	blk := model.NewBlock(model.TypeInputField)
	blk.InputLines = payload.Lines
	blk.InputSeparator = payload.Separator
	blk.AnswerHint = payload.Hint

	// Skip the visible answer lines derived from the payload.
	next := cur + 1
	limit := next + maxLookahead
	for next < len(lines) && next < limit && isInputVisualLine(lines[next]) {
		next++
	}
	return &blk, next, true
}

// isInputVisualLine matches the visible rendering of one answer line: the
// label followed by an underlined fill box.
func isInputVisualLine(line string) bool {
	return strings.Contains(line, "#box(") && strings.Contains(line, "stroke: (bottom:")
}

func recognizeAnswer(_ *parser, lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])
	if !marker.Has(s, marker.TagAnswer) {
		return nil, 0, false
	}
	next := cur + 1
	blk, after := scanTextRun(lines, next)
	if blk == nil {
		b := model.NewBlock(model.TypeParagraph)
		b.Placeholder = true
		return &b, next, true
	}
	blk.Placeholder = true
	return blk, after, true
}

func recognizeListMacro(_ *parser, lines []string, cur int) (*model.Block, int, bool) {
	visible, _ := unwrapDecorators(lines[cur])
	if !strings.HasPrefix(visible, "#list(") && !strings.HasPrefix(visible, "#enum(") {
		return nil, 0, false
	}
	blk, next := scanTextRun(lines, cur)
	if blk == nil {
		return nil, 0, false
	}
	return blk, next, true
}

func recognizeParagraph(_ *parser, lines []string, cur int) (*model.Block, int, bool) {
	if !isTextualLine(lines[cur]) {
		return nil, 0, false
	}
	blk, next := scanTextRun(lines, cur)
	if blk == nil {
		return nil, 0, false
	}
	return blk, next, true
}
