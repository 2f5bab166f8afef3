// Package typdoc implements the transcoder between the block model and the
// markup text a document is persisted as.
//
// Parsing runs in three stages: an idempotent [Cleanup] pass that repairs
// known malformed legacy emissions, extraction of the document settings
// header, and a line-cursor loop over an ordered registry of per-block-type
// recognizers. The first recognizer that matches at the cursor consumes one
// or more lines and yields a block; unmatched lines are reported as
// warnings and skipped, so parsing never fails.
//
// Serialization is the inverse map: one emitter per block type, sharing
// the marker codec and the math converter with the parser. Editor-only
// metadata with no visible representation (captions, alignment, chart
// data, cell spans, ...) rides in marker tokens next to the visible
// markup, so a save/reload cycle is lossless.
//
// Container blocks (cover pages, composite rows) embed child markup and
// recursively invoke the whole transcoder on the inner slice.
//
// All entry points are pure functions over their inputs; concurrent
// callers need no coordination.
package typdoc
