package marker

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Tag identifies the kind of payload a marker token carries.
type Tag string

// Marker tags. The string values are part of the persisted markup and must
// not change.
const (
	TagTable        Tag = "TABLE"
	TagImage        Tag = "IMAGE"
	TagChart        Tag = "CHART"
	TagMath         Tag = "MATH"
	TagCompositeRow Tag = "COMPOSITE_ROW"
	TagCoverBegin   Tag = "COVER_BEGIN"
	TagCoverEnd     Tag = "COVER_END"
	TagInput        Tag = "INPUT"
	TagVSpace       Tag = "VSPACE"
	TagAnswer       Tag = "ANSWER"
	TagDoc          Tag = "DOC"
)

const (
	openTok  = "/*"
	closeTok = "*/"

	// lineBreak is the inline stand-in for a newline inside structured
	// text (table cells, captions). Content is flattened before encoding
	// and reconstituted after decoding so the token stays single-line
	// even if a payload field were ever embedded in visible markup.
	lineBreak = "<br>"
)

// Encode serializes payload as JSON, base64-encodes it and wraps it in a
// comment-shaped token. Encoding only fails for payloads that cannot be
// JSON-serialized, which the block model never produces.
func Encode(tag Tag, payload interface{}) (string, error) {
	if payload == nil {
		return openTok + string(tag) + closeTok, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding %s marker: %w", tag, err)
	}
	b64 := base64.StdEncoding.EncodeToString(data)
	return openTok + string(tag) + ":" + b64 + closeTok, nil
}

// MustEncode is Encode for payloads known to be JSON-serializable. It
// panics only on programmer error (an unserializable payload type).
func MustEncode(tag Tag, payload interface{}) string {
	tok, err := Encode(tag, payload)
	if err != nil {
		panic(err)
	}
	return tok
}

// Bare returns the payload-free token for a tag.
func Bare(tag Tag) string {
	return openTok + string(tag) + closeTok
}

// Split extracts the first marker token from line. It returns the tag, the
// raw JSON payload (nil for bare tokens), and the text before and after
// the token. ok is false if line contains no well-formed token.
func Split(line string) (tag Tag, payload []byte, before, after string, ok bool) {
	start := strings.Index(line, openTok)
	if start < 0 {
		return "", nil, "", "", false
	}
	end := strings.Index(line[start:], closeTok)
	if end < 0 {
		return "", nil, "", "", false
	}
	end += start
	body := line[start+len(openTok) : end]
	before = line[:start]
	after = line[end+len(closeTok):]

	name, b64, hasPayload := cutColon(body)
	if !validTag(name) {
		return "", nil, "", "", false
	}
	tag = Tag(name)
	if !hasPayload {
		return tag, nil, before, after, true
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		// A recognizable tag with damaged base64: report the tag so the
		// caller can substitute a default payload.
		return tag, nil, before, after, true
	}
	return tag, data, before, after, true
}

// Decode extracts the first marker token of the wanted tag from line and
// unmarshals its payload into v. It reports false when the line holds no
// such token or the payload cannot be decoded; v is untouched in that case.
func Decode(line string, want Tag, v interface{}) bool {
	tag, payload, _, _, ok := Split(line)
	if !ok || tag != want || payload == nil {
		return false
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false
	}
	return true
}

// Has reports whether line carries a marker token of the given tag.
func Has(line string, want Tag) bool {
	tag, _, _, _, ok := Split(line)
	return ok && tag == want
}

// FlattenText replaces literal newlines in structured text with the inline
// line-break stand-in. Applied to free-text payload fields before encoding.
func FlattenText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", lineBreak)
}

// RestoreText reverses FlattenText.
func RestoreText(s string) string {
	return strings.ReplaceAll(s, lineBreak, "\n")
}

func cutColon(s string) (name, rest string, found bool) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func validTag(name string) bool {
	switch Tag(name) {
	case TagTable, TagImage, TagChart, TagMath, TagCompositeRow,
		TagCoverBegin, TagCoverEnd, TagInput, TagVSpace, TagAnswer, TagDoc:
		return true
	}
	return false
}
