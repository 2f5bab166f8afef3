package typdoc

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Known malformed shapes produced by early emitter versions. All patterns
// are line-anchored; every repair only removes text, which is what keeps
// the pass idempotent.
var (
	// A style decorator wrapping another decorator with an empty body.
	doubleEmptyWrapper = regexp.MustCompile(`^#(?:text|align)\([^)\[\]]*\)\[#(?:text|align)\([^)\[\]]*\)\[\s*\]\s*\]\s*$`)
	// A style decorator with nothing inside.
	emptyWrapper = regexp.MustCompile(`^#(?:text|align)\([^)\[\]]*\)\[\s*\]\s*$`)
	// A closing bracket left alone on its own line.
	danglingBracket = regexp.MustCompile(`^\s*\]+\s*$`)
)

// Cleanup repairs known malformed legacy markup before parsing begins. It
// normalizes the text to Unicode NFC, removes the damaged shapes early
// emitters are known to have produced, and collapses runs of three or more
// blank lines to a single blank line.
//
// Cleanup is idempotent: Cleanup(Cleanup(x)) == Cleanup(x).
func Cleanup(markup string) string {
	s := norm.NFC.String(markup)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if doubleEmptyWrapper.MatchString(line) ||
			emptyWrapper.MatchString(line) ||
			danglingBracket.MatchString(line) {
			continue
		}
		out = append(out, line)
	}

	return collapseBlankRuns(out)
}

// collapseBlankRuns joins lines, replacing any run of 3+ blank lines with
// exactly one blank line. Shorter runs are left alone so intentional
// double spacing survives. Whitespace-only lines count as blank and come
// back empty.
func collapseBlankRuns(lines []string) string {
	out := make([]string, 0, len(lines))
	blanks := 0
	flush := func() {
		if blanks >= 3 {
			blanks = 1
		}
		for ; blanks > 0; blanks-- {
			out = append(out, "")
		}
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()
	return strings.Join(out, "\n")
}
