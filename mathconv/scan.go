package mathconv

import "strings"

// matchDelim returns the index of the delimiter closing the one at s[i],
// respecting nesting of the same delimiter pair. Returns -1 when s[i] is
// not the opening delimiter or the input is unbalanced.
func matchDelim(s string, i int, open, close byte) int {
	if i < 0 || i >= len(s) || s[i] != open {
		return -1
	}
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// matchBrace returns the index of the '}' matching the '{' at s[i], or -1.
func matchBrace(s string, i int) int { return matchDelim(s, i, '{', '}') }

// matchParen returns the index of the ')' matching the '(' at s[i], or -1.
func matchParen(s string, i int) int { return matchDelim(s, i, '(', ')') }

// matchBracket returns the index of the ']' matching the '[' at s[i], or -1.
func matchBracket(s string, i int) int { return matchDelim(s, i, '[', ']') }

// splitTop splits s on the separator byte at nesting depth zero. Depth is
// tracked across parentheses, braces and brackets together, so a separator
// inside any kind of group is not a split point. Quoted strings are opaque.
func splitTop(s string, sep byte) []string {
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
		case c == '(' || c == '{' || c == '[':
			depth++
		case c == ')' || c == '}' || c == ']':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, s[last:i])
			last = i + 1
		}
	}
	parts = append(parts, s[last:])
	return parts
}

// splitTopTrim is splitTop with each part whitespace-trimmed.
func splitTopTrim(s string, sep byte) []string {
	parts := splitTop(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isWordByte reports whether c can appear in an identifier.
func isWordByte(c byte) bool { return isLetter(c) || isDigit(c) }
