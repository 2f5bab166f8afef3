// Package format provides input classification for the typmark library.
package format

import (
	"path/filepath"
	"strings"

	"github.com/typfold/typmark/marker"
)

// Format classifies a piece of document input before parsing.
type Format int

const (
	// Unknown indicates input that could not be classified.
	Unknown Format = iota
	// Modern indicates markup carrying metadata marker tokens. Parsing is
	// lossless for these documents.
	Modern
	// Legacy indicates markup written before marker tokens existed. The
	// parser reconstructs block metadata from the visible markup alone.
	Legacy
	// Plain indicates text with no markup constructs at all; it parses as
	// headings-free paragraph content.
	Plain
	// HTML indicates an HTML document destined for the import path rather
	// than the markup parser.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Modern:
		return "Modern"
	case Legacy:
		return "Legacy"
	case Plain:
		return "Plain"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Modern, Legacy:
		return ".typ"
	case Plain:
		return ".txt"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Detect determines input format from filename extension. Extension-based
// detection cannot distinguish modern from legacy markup; use
// DetectFromContent for that.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".typ":
		return Legacy
	case ".txt":
		return Plain
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// markupTokens are visible constructs that mark text as markup rather than
// plain prose. Marker tokens are checked separately.
var markupTokens = []string{
	"#figure(",
	"#table(",
	"#image(",
	"#grid(",
	"#list(",
	"#enum(",
	"#text(",
	"#align(",
	"#box(",
	"#box[",
	"#v(",
	"#rect(",
	"#pagebreak()",
}

// DetectFromContent classifies document content. Marker tokens identify
// modern markup; visible markup constructs without markers identify legacy
// markup; HTML is recognized by its leading tags; everything else is plain
// text. A single well-formed marker token makes a document Modern, payload
// or not: bare tokens like the answer and cover-end markers count.
func DetectFromContent(content string) Format {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return Plain
	}
	if detectHTMLContent(trimmed) {
		return HTML
	}
	legacy := false
	for _, line := range strings.Split(content, "\n") {
		if _, _, _, _, ok := marker.Split(line); ok {
			return Modern
		}
		if !legacy && isMarkupLine(strings.TrimSpace(line)) {
			legacy = true
		}
	}
	if legacy {
		return Legacy
	}
	return Plain
}

func isMarkupLine(s string) bool {
	if s == "" {
		return false
	}
	// Heading prefix: one to six '=' followed by a space.
	if s[0] == '=' {
		n := 0
		for n < len(s) && s[n] == '=' {
			n++
		}
		if n <= 6 && n < len(s) && s[n] == ' ' {
			return true
		}
	}
	if strings.HasPrefix(s, "```") {
		return true
	}
	if strings.HasPrefix(s, "$ ") && strings.HasSuffix(s, " $") {
		return true
	}
	for _, tok := range markupTokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// detectHTMLContent checks if the content looks like an HTML document.
func detectHTMLContent(s string) bool {
	upper := strings.ToUpper(s)
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
