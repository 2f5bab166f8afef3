// Package textenc converts text in legacy character encodings to UTF-8.
package textenc

import (
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// NewReader wraps r so reads yield UTF-8. The encoding is taken from the
// Content-Type header when present, otherwise sniffed from a prefix of the
// stream (byte order marks, meta tags, content heuristics). Input already
// in UTF-8 passes through unchanged.
func NewReader(r io.Reader, contentType string) (io.Reader, error) {
	return charset.NewReader(r, contentType)
}

// Decode converts data in the named encoding (an IANA charset label such
// as "windows-1252" or "iso-8859-1") to UTF-8.
func Decode(data []byte, name string) ([]byte, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return out, nil
}

// Detect sniffs the charset of data, optionally guided by a Content-Type
// header. It returns the canonical charset name and whether the guess is
// certain.
func Detect(data []byte, contentType string) (string, bool) {
	_, name, certain := charset.DetermineEncoding(data, contentType)
	return name, certain
}
