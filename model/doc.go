// Package model provides the intermediate representation (IR) for document
// content.
//
// This package defines the user-facing data structures that represent a
// document as a flat sequence of typed content blocks. All parsing and
// serialization operations ultimately consume and produce these types,
// making them the primary API for working with documents.
//
// # Blocks
//
// A [Block] is a tagged union discriminated by its Type field. The concrete
// kinds are:
//
//   - [TypeHeading] - headings (levels 1-6)
//   - [TypeParagraph] - text paragraphs, including inline list runs
//   - [TypeCode] - fenced code with a language tag
//   - [TypeMath] - math expressions carried in two dialects
//   - [TypeImage], [TypeChart] - media blocks with visual metadata
//   - [TypeList] - input alias for list content; [ValidateBlocks]
//     canonicalizes it to [TypeParagraph]
//   - [TypeTable] - tables with cells, row/column spans
//   - [TypeVerticalSpace] - explicit vertical spacing
//   - [TypeInputField] - fill-in answer fields
//   - [TypeCompositeRow], [TypeCover] - container blocks holding Children
//
// # Structured payloads
//
// Tables and charts keep their real data in JSON-serializable payload
// structs ([TablePayload], [ChartPayload]) rather than in Content. The
// [MathPayload] type carries the dual math representation for marker
// encoding.
//
// # Validation
//
// Block lists supplied by external producers (for example an AI output
// normalizer) are untrusted and must pass through [ValidateBlocks] before
// use. Validation failure is the only hard error in the system.
package model
