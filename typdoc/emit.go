package typdoc

import (
	"strings"

	"github.com/typfold/typmark/marker"
	"github.com/typfold/typmark/mathconv"
	"github.com/typfold/typmark/model"
)

func (s *serializer) emitHeading(b *model.Block) string {
	level := b.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("=", level) + " " + strings.TrimSpace(b.Content)
}

// emitParagraph renders paragraph and list blocks. Content is segmented
// into maximal same-kind runs; bullet and ordered runs become tight list
// expressions, plain runs become bare lines. Block-level styling wraps
// every emitted line so it can be recovered per line on parse.
func (s *serializer) emitParagraph(b *model.Block) string {
	style := lineStyle{font: b.Font, size: b.FontSize, align: b.Align}
	var out []string
	if b.Placeholder {
		out = append(out, marker.Bare(marker.TagAnswer))
	}
	if b.Content != "" {
		for _, run := range segmentContent(b.Content) {
			switch run.kind {
			case kindBullet, kindOrdered:
				out = append(out, wrapDecorators(buildListExpr(run), style))
			default:
				for _, line := range run.lines {
					out = append(out, wrapDecorators(line, style))
				}
			}
		}
	}
	return strings.Join(out, "\n")
}

func (s *serializer) emitCode(b *model.Block) string {
	var sb strings.Builder
	sb.WriteString("```")
	sb.WriteString(b.Language)
	sb.WriteString("\n")
	if b.Content != "" {
		sb.WriteString(b.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("```")
	return sb.String()
}

func (s *serializer) emitMath(b *model.Block) string {
	payload := model.MathPayload{
		Format: b.MathFormat,
		Latex:  b.MathLatex,
		Typst:  b.MathTypst,
		Lines:  b.MathLines,
		Brace:  b.MathBrace,
	}
	out := marker.MustEncode(marker.TagMath, payload)
	if expr := visibleMath(b); expr != "" {
		out += "\n$ " + expr + " $"
	}
	return out
}

// visibleMath derives the native-dialect expression rendered for a math
// block. The native text is preferred; when only the LaTeX-like source is
// present it is derived through the math converter.
func visibleMath(b *model.Block) string {
	if len(b.MathLines) > 0 {
		var exprs []string
		for _, line := range b.MathLines {
			exprs = append(exprs, nativeExpr(line.Typst, line.Latex))
		}
		if b.MathBrace {
			return "cases(" + strings.Join(exprs, ", ") + ")"
		}
		return strings.Join(exprs, ` \ `)
	}
	return nativeExpr(b.MathTypst, b.MathLatex)
}

func nativeExpr(typst, latex string) string {
	if typst != "" {
		return typst
	}
	return mathconv.ToTypst(latex)
}

func (s *serializer) emitVSpace(b *model.Block) string {
	out := marker.MustEncode(marker.TagVSpace, model.SpacePayload{Space: b.Space})
	switch s.opts.Target {
	case TargetPreview:
		out += "\n#rect(width: 100%, height: " + formatPt(b.Space) + `, stroke: (dash: "dashed"))[]`
	default:
		out += "\n#v(" + formatPt(b.Space) + ")"
	}
	return out
}

func (s *serializer) emitInput(b *model.Block) string {
	payload := model.InputPayload{
		Lines:     b.InputLines,
		Separator: b.InputSeparator,
		Hint:      b.AnswerHint,
	}
	out := []string{marker.MustEncode(marker.TagInput, payload)}
	for _, label := range b.InputLines {
		line := strings.TrimSpace(label)
		if line != "" {
			line += b.InputSeparator + " "
		}
		line += "#box(width: 1fr, stroke: (bottom: 0.5pt + black))[]"
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
