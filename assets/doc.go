// Package assets validates media references and inspects image data.
//
// Image and chart URLs arrive from a hosting service as opaque strings and
// are treated as untrusted text: ValidURL applies heuristic checks (path
// shape, illegal characters, obvious placeholder names) before a URL is
// embedded in emitted markup. Size reads the intrinsic pixel dimensions of
// raw image bytes without decoding the full image, so callers can derive
// sensible display widths for imported media.
package assets
