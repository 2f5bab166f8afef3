package mathconv

import "strings"

// Protection markers delimit spans that the final identifier-splitting pass
// must leave intact: already-converted tokens, call scaffolding and quoted
// text. The markers are private-use bytes that cannot occur in input; they
// are stripped before the result is returned.
const (
	protOpen  = "\x01"
	protClose = "\x02"
)

// maxConvertDepth bounds recursion through nested command arguments.
const maxConvertDepth = 64

// ToTypst converts an expression in the LaTeX-like dialect to the native
// math dialect. Malformed input (unbalanced braces, unknown commands)
// degrades by passing the offending fragment through unconverted; the
// function never fails.
func ToTypst(latex string) string {
	s := strings.TrimSpace(latex)
	if s == "" {
		return ""
	}
	s = convertLatex(s, 0)
	s = splitIdentifiers(s)
	s = strings.Join(strings.Fields(s), " ")
	// Scripts attach to the token before them; token spacing must not
	// separate them from their base.
	s = strings.ReplaceAll(s, " _", "_")
	s = strings.ReplaceAll(s, " ^", "^")
	return s
}

// prot wraps already-converted text so later passes treat it as opaque.
func prot(s string) string { return protOpen + s + protClose }

// convertLatex resolves commands, environments and grouped scripts. It is
// the recursive core of the forward direction; the result still carries
// protection markers.
func convertLatex(s string, depth int) string {
	if depth > maxConvertDepth {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/4)
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\':
			i = convertCommand(&sb, s, i, depth)
		case (c == '_' || c == '^') && i+1 < len(s) && s[i+1] == '{':
			end := matchBrace(s, i+1)
			if end < 0 {
				// Unbalanced group: pass the rest through unconverted.
				sb.WriteString(s[i:])
				return sb.String()
			}
			sb.WriteByte(c)
			sb.WriteString("(")
			sb.WriteString(convertLatex(s[i+2:end], depth+1))
			sb.WriteString(")")
			i = end + 1
		case c == '{':
			// Bare grouping braces disappear in the native dialect.
			end := matchBrace(s, i)
			if end < 0 {
				sb.WriteString(s[i:])
				return sb.String()
			}
			sb.WriteString(convertLatex(s[i+1:end], depth+1))
			i = end + 1
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// convertCommand handles one backslash command starting at s[i] and returns
// the index of the first byte after everything it consumed.
func convertCommand(sb *strings.Builder, s string, i, depth int) int {
	// Lone trailing backslash.
	if i+1 >= len(s) {
		sb.WriteByte('\\')
		return i + 1
	}
	next := s[i+1]
	if !isLetter(next) {
		switch next {
		case '\\':
			// Equation line break.
			sb.WriteString(" " + prot(`\`) + " ")
		case ',', ';', ':':
			sb.WriteString(" ")
		case '!':
			// Negative thin space: dropped.
		case '{', '}', '%', '$', '&', '#', '_':
			sb.WriteByte(next)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(next)
		}
		return i + 2
	}

	name := readCommandName(s, i)
	after := i + 1 + len(name)

	switch name {
	case "frac", "dfrac", "tfrac":
		args, end, ok := braceArgs(s, after, 2)
		if !ok {
			sb.WriteString(prot(s[i:after]) + " ")
			return after
		}
		sb.WriteString(prot("frac") + "(" + convertLatex(args[0], depth+1) + ", " + convertLatex(args[1], depth+1) + ")")
		return end

	case "sqrt":
		if after < len(s) && s[after] == '[' {
			idxEnd := matchBracket(s, after)
			if idxEnd >= 0 {
				args, end, ok := braceArgs(s, idxEnd+1, 1)
				if ok {
					sb.WriteString(prot("root") + "(" + convertLatex(s[after+1:idxEnd], depth+1) + ", " + convertLatex(args[0], depth+1) + ")")
					return end
				}
			}
			sb.WriteString(prot(s[i:after]) + " ")
			return after
		}
		args, end, ok := braceArgs(s, after, 1)
		if !ok {
			sb.WriteString(prot(s[i:after]) + " ")
			return after
		}
		sb.WriteString(prot("sqrt") + "(" + convertLatex(args[0], depth+1) + ")")
		return end

	case "binom":
		args, end, ok := braceArgs(s, after, 2)
		if !ok {
			sb.WriteString(prot(s[i:after]) + " ")
			return after
		}
		sb.WriteString(prot("binom") + "(" + convertLatex(args[0], depth+1) + ", " + convertLatex(args[1], depth+1) + ")")
		return end

	case "text", "textrm", "textit", "textbf", "mbox":
		args, end, ok := braceArgs(s, after, 1)
		if !ok {
			sb.WriteString(prot(s[i:after]) + " ")
			return after
		}
		// Text content is quoted verbatim, never converted or split.
		sb.WriteString(prot(`"` + args[0] + `"`))
		return end

	case "mathrm", "mathbf", "mathit", "boldsymbol", "operatorname":
		args, end, ok := braceArgs(s, after, 1)
		if !ok {
			sb.WriteString(prot(s[i:after]) + " ")
			return after
		}
		sb.WriteString(convertLatex(args[0], depth+1))
		return end

	case "left", "right":
		// Sizing wrapper: keep the delimiter, drop the command. A "."
		// delimiter is the invisible one and disappears entirely.
		if after >= len(s) {
			return after
		}
		d := s[after]
		if d == '.' {
			return after + 1
		}
		if d != '\\' {
			sb.WriteByte(d)
			return after + 1
		}
		// \left\{ and friends: the delimiter is itself escaped or a
		// command. Escaped punctuation keeps its character form; a
		// command delimiter resolves through the token table.
		if after+1 >= len(s) {
			return after + 1
		}
		if !isLetter(s[after+1]) {
			sb.WriteByte(s[after+1])
			return after + 2
		}
		dn := readCommandName(s, after)
		if tok, ok := forwardMap["\\"+dn]; ok {
			sb.WriteString(" " + prot(tok) + " ")
		} else {
			sb.WriteString(prot(s[after:after+1+len(dn)]) + " ")
		}
		return after + 1 + len(dn)

	case "big", "Big", "bigg", "Bigg", "bigl", "bigr", "Bigl", "Bigr",
		"displaystyle", "textstyle", "limits", "nolimits":
		return after

	case "quad", "qquad":
		sb.WriteString(" ")
		return after

	case "begin":
		return convertEnvironment(sb, s, i, after, depth)
	}

	if tok, ok := forwardMap["\\"+name]; ok {
		sb.WriteString(" " + prot(tok) + " ")
		return after
	}

	// Unknown command: pass through unchanged.
	sb.WriteString(prot(s[i:after]) + " ")
	return after
}

// readCommandName returns the letters following the backslash at s[i].
func readCommandName(s string, i int) string {
	j := i + 1
	for j < len(s) && isLetter(s[j]) {
		j++
	}
	return s[i+1 : j]
}

// braceArgs extracts n consecutive brace-delimited arguments starting at
// s[i]. Whitespace between arguments is tolerated.
func braceArgs(s string, i, n int) (args []string, end int, ok bool) {
	pos := i
	for k := 0; k < n; k++ {
		for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
			pos++
		}
		if pos >= len(s) || s[pos] != '{' {
			return nil, 0, false
		}
		closing := matchBrace(s, pos)
		if closing < 0 {
			return nil, 0, false
		}
		args = append(args, s[pos+1:closing])
		pos = closing + 1
	}
	return args, pos, true
}

// matrix environment delimiters, by environment name.
var matrixDelims = map[string]string{
	"matrix":  "#none",
	"pmatrix": `"("`,
	"bmatrix": `"["`,
	"Bmatrix": `"{"`,
	"vmatrix": `"|"`,
	"Vmatrix": `"||"`,
}

// convertEnvironment translates \begin{env}...\end{env}. Matrix variants
// become mat(...) calls, cases becomes a cases(...) call, and an unknown
// environment passes through unconverted.
func convertEnvironment(sb *strings.Builder, s string, start, after, depth int) int {
	args, bodyStart, ok := braceArgs(s, after, 1)
	if !ok {
		sb.WriteString(prot(s[start:after]) + " ")
		return after
	}
	env := args[0]
	endTok := `\end{` + env + `}`
	bodyEnd := strings.Index(s[bodyStart:], endTok)
	if bodyEnd < 0 {
		sb.WriteString(prot(s[start:bodyStart]) + " ")
		return bodyStart
	}
	body := s[bodyStart : bodyStart+bodyEnd]
	next := bodyStart + bodyEnd + len(endTok)

	rows := splitRows(body)
	switch {
	case env == "cases":
		var parts []string
		for _, row := range rows {
			parts = append(parts, strings.TrimSpace(convertLatex(row, depth+1)))
		}
		sb.WriteString(prot("cases") + "(" + strings.Join(parts, ", ") + ")")
	case matrixDelims[env] != "":
		var rowParts []string
		for _, row := range rows {
			var cells []string
			for _, cell := range strings.Split(row, "&") {
				cells = append(cells, strings.TrimSpace(convertLatex(cell, depth+1)))
			}
			rowParts = append(rowParts, strings.Join(cells, ", "))
		}
		sb.WriteString(prot("mat") + "(" + prot("delim: "+matrixDelims[env]+",") + " " + strings.Join(rowParts, "; ") + ")")
	default:
		sb.WriteString(prot(s[start:next]) + " ")
	}
	return next
}

// splitRows splits an environment body on the \\ row separator.
func splitRows(body string) []string {
	raw := strings.Split(body, `\\`)
	var rows []string
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r != "" {
			rows = append(rows, r)
		}
	}
	return rows
}

// splitIdentifiers performs the final pass of the forward direction: any
// remaining unprotected multi-letter run is split into space-separated
// single letters (the native dialect reads adjacent letters as one
// identifier, the source dialect as implicit multiplication), and a number
// immediately followed by a short letter run becomes a quoted unit. Quoted
// spans and protected spans are copied verbatim; protection markers are
// stripped here.
func splitIdentifiers(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/2)
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == protOpen[0]:
			end := strings.IndexByte(s[i:], protClose[0])
			if end < 0 {
				sb.WriteString(s[i+1:])
				return sb.String()
			}
			sb.WriteString(s[i+1 : i+end])
			i += end + 1
		case c == '"':
			end := strings.IndexByte(s[i+1:], '"')
			if end < 0 {
				sb.WriteString(s[i:])
				return sb.String()
			}
			sb.WriteString(s[i : i+end+2])
			i += end + 2
		case isDigit(c):
			j := i
			for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
				j++
			}
			num := strings.TrimRight(s[i:j], ".")
			j = i + len(num)
			sb.WriteString(num)
			i = j
			// Unit literal: 1-4 letters glued to the number.
			k := j
			for k < len(s) && isLetter(s[k]) {
				k++
			}
			if run := s[j:k]; len(run) >= 1 && len(run) <= 4 && !followedByProt(s, k) {
				if unitNames[run] {
					sb.WriteString(` "` + run + `"`)
					i = k
				} else if j < len(s) && isLetter(s[j]) {
					// Not a unit: keep the glued letters as ordinary
					// identifiers, separated from the number.
					sb.WriteByte(' ')
				}
			}
		case isLetter(c):
			j := i
			for j < len(s) && isLetter(s[j]) {
				j++
			}
			run := s[i:j]
			if len(run) == 1 || nativeNames[run] {
				sb.WriteString(run)
			} else {
				for k := 0; k < len(run); k++ {
					if k > 0 {
						sb.WriteByte(' ')
					}
					sb.WriteByte(run[k])
				}
			}
			i = j
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// followedByProt reports whether a protected span begins at s[i], meaning
// the letter run before it belongs to converted output, not to a unit.
func followedByProt(s string, i int) bool {
	return i < len(s) && s[i] == protOpen[0]
}
