// Package marker implements the comment-shaped side channel used to carry
// editor-only metadata through markup text.
//
// A marker token is a single line of the form
//
//	/*TAG:<base64>*/
//
// where the base64 text encodes a UTF-8 JSON payload. Because the base64
// alphabet contains no newline, a token always fits on one logical line and
// survives any line-oriented processing of the surrounding markup. Two tags
// (ANSWER, COVER_END) carry no payload and appear as bare /*TAG*/ tokens.
//
// Decoding is deliberately forgiving: any base64 or JSON failure reports
// ok=false and never propagates an error. Callers fall back to a default
// payload so a damaged marker degrades to an editable empty block instead
// of a parse failure.
package marker
