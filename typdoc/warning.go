package typdoc

import "fmt"

// WarningType classifies non-fatal problems found while transcoding.
type WarningType int

// Warning types.
const (
	// WarningUnrecognizedLine reports a line no recognizer matched; the
	// line was skipped and parsing continued.
	WarningUnrecognizedLine WarningType = iota
	// WarningDecodeFailure reports a marker token whose payload could not
	// be decoded; a default payload was substituted.
	WarningDecodeFailure
	// WarningRegistryStall reports a recognizer that failed to advance
	// the cursor; the parser forced progress past it.
	WarningRegistryStall
)

// String returns a short name for the warning type.
func (wt WarningType) String() string {
	switch wt {
	case WarningUnrecognizedLine:
		return "unrecognized line"
	case WarningDecodeFailure:
		return "marker decode failure"
	case WarningRegistryStall:
		return "registry stall"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal problem encountered while parsing. The
// line number is 1-based and refers to the cleaned input.
type Warning struct {
	Type    WarningType
	Line    int
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s: %s", w.Line, w.Type, w.Message)
}
