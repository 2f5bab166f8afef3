// Package mathconv translates inline math expressions between a LaTeX-like
// dialect and the native function-call dialect of the markup format.
//
// The two directions are independent, pure string transforms:
//
//	native := mathconv.ToTypst(`\frac{a}{b}`) // "frac(a, b)"
//	latex := mathconv.ToLatex("frac(1, 2)")   // "\frac{1}{2}"
//
// Both directions degrade gracefully: unbalanced braces or unknown commands
// leave the offending fragment unconverted rather than failing, and empty
// input maps to an empty string.
//
// The converters never use regular expressions for argument extraction;
// command arguments nest, so matching is done with explicit depth-aware
// scanning (see scan.go).
package mathconv
