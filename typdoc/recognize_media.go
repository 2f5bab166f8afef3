package typdoc

import (
	"strings"

	"github.com/typfold/typmark/marker"
	"github.com/typfold/typmark/model"
)

// joinBalanced joins lines starting at cur into one logical expression,
// stopping once the group opened at openIdx of the first line is balanced.
// The lookahead is bounded so a truncated legacy expression cannot swallow
// the document.
func joinBalanced(lines []string, cur, openIdx int) (expr string, next int, ok bool) {
	joined := strings.TrimSpace(lines[cur])
	next = cur + 1
	for balancedEnd(joined, openIdx) < 0 {
		if next >= len(lines) || next-cur > maxLookahead {
			return "", 0, false
		}
		joined += " " + strings.TrimSpace(lines[next])
		next++
	}
	return joined, next, true
}

func recognizeMedia(p *parser, lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])

	if marker.Has(s, marker.TagImage) {
		var payload model.ImagePayload
		if !marker.Decode(s, marker.TagImage, &payload) {
			p.warnf(cur, WarningDecodeFailure, "image marker; keeping empty image block")
		}
		blk := model.NewBlock(model.TypeImage)
		blk.URL = payload.URL
		blk.Width = payload.Width
		blk.Height = payload.Height
		blk.Align = payload.Align
		blk.Caption = marker.RestoreText(payload.Caption)
		blk.Font = payload.Font
		blk.FontSize = payload.FontSize
		return &blk, skipVisibleMedia(lines, cur+1), true
	}

	if marker.Has(s, marker.TagChart) {
		var payload model.ChartPayload
		if !marker.Decode(s, marker.TagChart, &payload) {
			p.warnf(cur, WarningDecodeFailure, "chart marker; keeping empty chart block")
		}
		blk := model.NewBlock(model.TypeChart)
		blk.Chart = &payload
		return &blk, skipVisibleMedia(lines, cur+1), true
	}

	return recognizeLegacyFigure(lines, cur)
}

// skipVisibleMedia advances past the visible rendering that follows a
// media marker: a figure, a bare image, or a chart placeholder box. The
// rendering is derived from the payload and carries no information of its
// own.
func skipVisibleMedia(lines []string, cur int) int {
	if cur >= len(lines) {
		return cur
	}
	s := strings.TrimSpace(lines[cur])
	var openIdx int
	switch {
	case strings.HasPrefix(s, "#figure("):
		openIdx = len("#figure")
	case strings.HasPrefix(s, "#image("):
		openIdx = len("#image")
	case strings.HasPrefix(s, "#align("):
		openIdx = len("#align")
	default:
		return cur
	}
	if _, next, ok := joinBalanced(lines, cur, openIdx); ok {
		// An #align wrapper closes with its bracket body, not the paren.
		if strings.HasPrefix(s, "#align(") {
			return skipAlignedBody(lines, cur)
		}
		return next
	}
	return cur
}

// skipAlignedBody advances past an #align(...)[...] expression whose
// bracket body may span lines.
func skipAlignedBody(lines []string, cur int) int {
	joined := strings.TrimSpace(lines[cur])
	next := cur + 1
	for {
		argEnd := balancedEnd(joined, len("#align"))
		if argEnd >= 0 && argEnd+1 < len(joined) && joined[argEnd+1] == '[' {
			if balancedEnd(joined, argEnd+1) >= 0 {
				return next
			}
		}
		if next >= len(lines) || next-cur > maxLookahead {
			return cur + 1
		}
		joined += " " + strings.TrimSpace(lines[next])
		next++
	}
}

// recognizeLegacyFigure recovers an image block from a pre-marker
// #figure(image(...)) or bare #image(...) expression. Width and caption
// extraction here is best-effort; documents written by current emitters
// always carry an image marker instead.
func recognizeLegacyFigure(lines []string, cur int) (*model.Block, int, bool) {
	s := strings.TrimSpace(lines[cur])

	align := ""
	if strings.HasPrefix(s, "#align(") {
		argEnd := balancedEnd(s, len("#align"))
		if argEnd < 0 || argEnd+1 >= len(s) || s[argEnd+1] != '[' {
			return nil, 0, false
		}
		bodyEnd := balancedEnd(s, argEnd+1)
		if bodyEnd != len(s)-1 {
			return nil, 0, false
		}
		align = strings.TrimSpace(s[len("#align(") : argEnd])
		s = strings.TrimSpace(s[argEnd+2 : bodyEnd])
	}

	var expr string
	var next int
	switch {
	case strings.HasPrefix(s, "#figure("):
		joined, n, ok := joinBalanced(lines, cur, strings.Index(strings.TrimSpace(lines[cur]), "#figure(")+len("#figure"))
		if !ok {
			return nil, 0, false
		}
		expr, next = joined, n
	case strings.HasPrefix(s, "#image("):
		joined, n, ok := joinBalanced(lines, cur, strings.Index(strings.TrimSpace(lines[cur]), "#image(")+len("#image"))
		if !ok {
			return nil, 0, false
		}
		expr, next = joined, n
	default:
		return nil, 0, false
	}

	imgIdx := strings.Index(expr, "image(")
	if imgIdx < 0 {
		return nil, 0, false
	}
	if strings.Contains(expr[:imgIdx+len("image(")], "table(") {
		// Figure-wrapped tables belong to the table recognizer.
		return nil, 0, false
	}
	imgEnd := balancedEnd(expr, imgIdx+len("image"))
	if imgEnd < 0 {
		return nil, 0, false
	}
	named, positional := namedArgs(expr[imgIdx+len("image(") : imgEnd])

	blk := model.NewBlock(model.TypeImage)
	blk.Align = align
	if len(positional) > 0 {
		blk.URL = unquote(positional[0])
	}
	if w, ok := named["width"]; ok {
		blk.Width = parsePercent(w)
	}
	if h, ok := named["height"]; ok {
		blk.Height = parsePt(h)
	}
	if caption, ok := figureCaption(expr, imgEnd); ok {
		blk.Caption = stripCaptionNumber(caption, "Figure")
	}
	return &blk, next, true
}

// figureCaption extracts the caption body from a figure expression. The
// caption body is bracket-delimited and may itself contain nested
// bracketed decorators, so it is located with balanced scanning rather
// than a pattern.
func figureCaption(expr string, from int) (string, bool) {
	capIdx := strings.Index(expr[from:], "caption:")
	if capIdx < 0 {
		return "", false
	}
	i := from + capIdx + len("caption:")
	for i < len(expr) && expr[i] == ' ' {
		i++
	}
	if i >= len(expr) || expr[i] != '[' {
		return "", false
	}
	end := balancedEnd(expr, i)
	if end < 0 {
		return "", false
	}
	return expr[i+1 : end], true
}

// stripCaptionNumber removes a leading "Figure 3: " / "Table 12: " prefix
// added by caption numbering, recovering the author's caption text.
func stripCaptionNumber(caption, word string) string {
	if !strings.HasPrefix(caption, word+" ") {
		return caption
	}
	rest := caption[len(word)+1:]
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(rest) || rest[i] != ':' || rest[i+1] != ' ' {
		return caption
	}
	return rest[i+2:]
}
