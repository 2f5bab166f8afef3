package typmark

import (
	"strings"

	"github.com/typfold/typmark/typdoc"
)

// Warning is a non-fatal problem encountered while transcoding. The
// transcoder never fails on malformed input; it degrades and reports.
type Warning = typdoc.Warning

// FormatWarnings renders warnings one per line for logging.
//
// Example:
//
//	blocks, warnings := typmark.From(markup).Blocks()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + typmark.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.String()
	}
	return strings.Join(out, "\n")
}
