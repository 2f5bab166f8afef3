package typdoc

import (
	"strconv"
	"strings"
)

// balancedEnd returns the index of the delimiter closing the one at s[i],
// respecting nesting of both bracket kinds and treating quoted strings as
// opaque. Returns -1 on unbalanced input.
func balancedEnd(s string, i int) int {
	if i < 0 || i >= len(s) {
		return -1
	}
	open := s[i]
	var close byte
	switch open {
	case '(':
		close = ')'
	case '[':
		close = ']'
	default:
		return -1
	}
	depth := 0
	inQuote := false
	for j := i; j < len(s); j++ {
		c := s[j]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// bracketGroups collects the contents of consecutive [...] groups starting
// at s[i], tolerating whitespace between groups. It stops at the first
// byte that does not open a group.
func bracketGroups(s string, i int) (groups []string, end int) {
	for i < len(s) {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) || s[i] != '[' {
			break
		}
		closing := balancedEnd(s, i)
		if closing < 0 {
			break
		}
		groups = append(groups, s[i+1:closing])
		i = closing + 1
	}
	return groups, i
}

// splitArgs splits a macro argument list on top-level commas, trimming
// each part. Nested groups and quoted strings are opaque.
func splitArgs(s string) []string {
	var parts []string
	depth := 0
	inQuote := false
	last := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(s[last:i]))
			last = i + 1
		}
	}
	if tail := strings.TrimSpace(s[last:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

// namedArgs splits a macro argument list into named key/value pairs and
// positional arguments.
func namedArgs(s string) (named map[string]string, positional []string) {
	named = make(map[string]string)
	for _, part := range splitArgs(s) {
		if k, v, ok := cutArg(part); ok {
			named[k] = v
		} else {
			positional = append(positional, part)
		}
	}
	return named, positional
}

// cutArg splits "key: value" at the first top-level colon. A colon inside
// quotes or groups does not count.
func cutArg(s string) (key, value string, ok bool) {
	depth := 0
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ':' && depth == 0:
			key = strings.TrimSpace(s[:i])
			if key == "" || strings.ContainsAny(key, " \t") {
				return "", "", false
			}
			return key, strings.TrimSpace(s[i+1:]), true
		}
	}
	return "", "", false
}

// unquote strips one layer of double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// parsePt reads a length like "12pt" or "12.5pt"; bare numbers are
// accepted too. Returns 0 when unparseable.
func parsePt(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "pt")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parsePercent reads a length like "50%". Returns 0 when unparseable.
func parsePercent(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// formatNum renders a float without a trailing ".0" so emitted markup
// stays stable across round trips.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatPt renders a point length.
func formatPt(v float64) string { return formatNum(v) + "pt" }
