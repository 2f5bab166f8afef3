package typdoc

import "strings"

// lineStyle is the per-line presentation recovered from (or emitted as)
// style decorator wrappers around a text line.
type lineStyle struct {
	font  string
	size  float64
	align string
}

func (st lineStyle) empty() bool {
	return st.font == "" && st.size == 0 && st.align == ""
}

// maxDecoratorDepth caps unwrapping of nested decorators. Two levels
// (#align around #text) is the deepest shape the serializer produces.
const maxDecoratorDepth = 4

// unwrapDecorators peels style decorator wrappers (#text(...)[...],
// #align(...)[...]) off a line, returning the innermost visible text and
// the accumulated style. A wrapper only counts when its bracket body spans
// the rest of the line; anything else is content, not decoration.
func unwrapDecorators(line string) (string, lineStyle) {
	var st lineStyle
	s := strings.TrimSpace(line)
	for depth := 0; depth < maxDecoratorDepth; depth++ {
		inner, ok := unwrapOne(s, &st)
		if !ok {
			break
		}
		s = strings.TrimSpace(inner)
	}
	return s, st
}

func unwrapOne(s string, st *lineStyle) (string, bool) {
	var name string
	switch {
	case strings.HasPrefix(s, "#text("):
		name = "text"
	case strings.HasPrefix(s, "#align("):
		name = "align"
	default:
		return "", false
	}
	argStart := len("#") + len(name)
	argEnd := balancedEnd(s, argStart)
	if argEnd < 0 || argEnd+1 >= len(s) || s[argEnd+1] != '[' {
		return "", false
	}
	bodyEnd := balancedEnd(s, argEnd+1)
	if bodyEnd != len(s)-1 {
		return "", false
	}
	args := s[argStart+1 : argEnd]
	body := s[argEnd+2 : bodyEnd]

	switch name {
	case "text":
		named, _ := namedArgs(args)
		if f, ok := named["font"]; ok && st.font == "" {
			st.font = unquote(f)
		}
		if sz, ok := named["size"]; ok && st.size == 0 {
			st.size = parsePt(sz)
		}
	case "align":
		if st.align == "" {
			st.align = strings.TrimSpace(args)
		}
	}
	return body, true
}

// wrapDecorators applies the inverse of unwrapDecorators: the text is
// wrapped in a #text decorator when a font or size is set, then in an
// #align decorator when an alignment is set.
func wrapDecorators(text string, st lineStyle) string {
	out := text
	if st.font != "" || st.size != 0 {
		var args []string
		if st.font != "" {
			args = append(args, `font: "`+st.font+`"`)
		}
		if st.size != 0 {
			args = append(args, "size: "+formatPt(st.size))
		}
		out = "#text(" + strings.Join(args, ", ") + ")[" + out + "]"
	}
	if st.align != "" {
		out = "#align(" + st.align + ")[" + out + "]"
	}
	return out
}
