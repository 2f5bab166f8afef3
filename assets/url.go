package assets

import (
	"net/url"
	"strings"
)

// placeholderNames are strings a text generator is likely to emit in place
// of a real asset reference. A URL whose last path element matches one of
// these (with or without an image extension) is rejected.
var placeholderNames = map[string]bool{
	"image":       true,
	"image_url":   true,
	"image-url":   true,
	"imageurl":    true,
	"img":         true,
	"url":         true,
	"placeholder": true,
	"example":     true,
	"path":        true,
	"filename":    true,
	"file":        true,
	"your_image":  true,
	"insert_url":  true,
	"todo":        true,
	"tbd":         true,
	"xxx":         true,
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// ValidURL reports whether a media URL is plausible enough to embed in
// emitted markup. It accepts absolute http(s) URLs and rooted asset paths;
// anything empty, containing characters illegal in a path, or matching a
// known placeholder pattern is rejected. Rejection is conservative: the
// block and its metadata survive either way, only the visible media
// reference is suppressed.
func ValidURL(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" || s != raw {
		return false
	}
	if strings.ContainsAny(s, " \t\n\r\"'<>\\`{}|") {
		return false
	}

	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		u, err := url.Parse(s)
		if err != nil || u.Host == "" || !strings.Contains(u.Host, ".") {
			return false
		}
		return !placeholderPath(u.Path)
	}

	// Anything else must look like a rooted asset path.
	if !strings.HasPrefix(s, "/") {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	return !placeholderPath(s)
}

// placeholderPath reports whether the final path element is a known
// hallucinated placeholder name.
func placeholderPath(path string) bool {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	lower := strings.ToLower(base)
	if i := strings.LastIndexByte(lower, '.'); i >= 0 && imageExtensions[lower[i:]] {
		lower = lower[:i]
	}
	return placeholderNames[lower]
}
