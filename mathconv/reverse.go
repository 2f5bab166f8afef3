package mathconv

import "strings"

// ToLatex converts an expression in the native math dialect back to the
// LaTeX-like dialect. Unknown call forms and unbalanced input pass through
// unconverted; the function never fails.
func ToLatex(typst string) string {
	s := strings.TrimSpace(typst)
	if s == "" {
		return ""
	}
	s = convertTypst(s, 0)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// convertTypst is the recursive core of the reverse direction.
func convertTypst(s string, depth int) string {
	if depth > maxConvertDepth {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/4)
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case isLetter(c):
			i = convertWord(&sb, s, i, depth)
		case c == '"':
			end := strings.IndexByte(s[i+1:], '"')
			if end < 0 {
				sb.WriteString(s[i:])
				return sb.String()
			}
			sb.WriteString(`\text{` + s[i+1:i+1+end] + `}`)
			i += end + 2
		case (c == '_' || c == '^') && i+1 < len(s) && s[i+1] == '(':
			end := matchParen(s, i+1)
			if end < 0 {
				sb.WriteString(s[i:])
				return sb.String()
			}
			sb.WriteByte(c)
			sb.WriteString("{" + convertTypst(s[i+2:end], depth+1) + "}")
			i = end + 1
		case c == '\\':
			// Equation line break in the native dialect.
			sb.WriteString(`\\`)
			i++
		default:
			if lx, n := matchSymbolic(s[i:]); n > 0 {
				sb.WriteString(lx)
				if i+n < len(s) && isLetter(s[i+n]) {
					// A multi-letter command must not glue onto the
					// following identifier.
					sb.WriteByte(' ')
				}
				i += n
				break
			}
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// matchSymbolic tries the symbolic reverse tokens (longest-key-first,
// boundary-free) at the start of s. Returns the LaTeX replacement and the
// number of bytes consumed, or n = 0.
func matchSymbolic(s string) (latex string, n int) {
	for _, p := range reverseSymbolic {
		if strings.HasPrefix(s, p.typst) {
			return p.latex, len(p.typst)
		}
	}
	return "", 0
}

// convertWord handles a maximal identifier run (letters, digits and dots)
// starting at s[i]: a known call form, a reverse symbol token, or a plain
// identifier copied through.
func convertWord(sb *strings.Builder, s string, i, depth int) int {
	j := i
	for j < len(s) && (isWordByte(s[j]) || s[j] == '.') {
		j++
	}
	word := s[i:j]
	// Trailing dots are punctuation, not part of a dotted symbol name.
	trimmed := strings.TrimRight(word, ".")
	j = i + len(trimmed)
	word = trimmed

	if j < len(s) && s[j] == '(' {
		if out, next, ok := convertCall(s, word, j, depth); ok {
			sb.WriteString(out)
			return next
		}
	}

	if lx, ok := reverseWordMap[word]; ok {
		sb.WriteString(lx)
		if j < len(s) && isLetter(s[j]) {
			sb.WriteByte(' ')
		}
		return j
	}

	sb.WriteString(word)
	return j
}

// convertCall translates a recognized native call form name(args...) into
// its LaTeX equivalent. ok is false when the name is unknown or the
// argument list does not fit the form; the caller then falls back to plain
// token handling.
func convertCall(s, name string, open, depth int) (out string, next int, ok bool) {
	end := matchParen(s, open)
	if end < 0 {
		return "", 0, false
	}
	body := s[open+1 : end]
	next = end + 1

	rev := func(part string) string { return convertTypst(part, depth+1) }

	switch name {
	case "frac":
		args := splitTopTrim(body, ',')
		if len(args) != 2 {
			return "", 0, false
		}
		return `\frac{` + rev(args[0]) + `}{` + rev(args[1]) + `}`, next, true

	case "sqrt":
		args := splitTopTrim(body, ',')
		if len(args) != 1 {
			return "", 0, false
		}
		return `\sqrt{` + rev(args[0]) + `}`, next, true

	case "root":
		args := splitTopTrim(body, ',')
		if len(args) != 2 {
			return "", 0, false
		}
		return `\sqrt[` + rev(args[0]) + `]{` + rev(args[1]) + `}`, next, true

	case "binom":
		args := splitTopTrim(body, ',')
		if len(args) != 2 {
			return "", 0, false
		}
		return `\binom{` + rev(args[0]) + `}{` + rev(args[1]) + `}`, next, true

	case "abs":
		return `\left|` + rev(body) + `\right|`, next, true

	case "norm":
		return `\left\|` + rev(body) + `\right\|`, next, true

	case "cases":
		args := splitTopTrim(body, ',')
		var rows []string
		for _, a := range args {
			rows = append(rows, rev(a))
		}
		return `\begin{cases} ` + strings.Join(rows, ` \\ `) + ` \end{cases}`, next, true

	case "mat":
		return convertMat(body, depth), next, true
	}
	return "", 0, false
}

// convertMat translates mat(delim: ..., a, b; c, d) into the matching
// LaTeX matrix environment.
func convertMat(body string, depth int) string {
	env := "pmatrix"
	rest := body
	if strings.HasPrefix(strings.TrimSpace(rest), "delim:") {
		parts := splitTop(rest, ',')
		delim := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[0]), "delim:"))
		switch delim {
		case `"("`:
			env = "pmatrix"
		case `"["`:
			env = "bmatrix"
		case `"{"`:
			env = "Bmatrix"
		case `"|"`:
			env = "vmatrix"
		case `"||"`:
			env = "Vmatrix"
		case "#none", "none":
			env = "matrix"
		}
		rest = strings.Join(parts[1:], ",")
	}

	var rows []string
	for _, row := range splitTopTrim(rest, ';') {
		if row == "" {
			continue
		}
		var cells []string
		for _, cell := range splitTopTrim(row, ',') {
			cells = append(cells, convertTypst(cell, depth+1))
		}
		rows = append(rows, strings.Join(cells, " & "))
	}
	return `\begin{` + env + `} ` + strings.Join(rows, ` \\ `) + ` \end{` + env + `}`
}
