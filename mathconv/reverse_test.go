package mathconv

import (
	"strings"
	"testing"
)

func TestToLatex(t *testing.T) {
	tests := []struct {
		name  string
		typst string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "  ", ""},
		{"fraction", "frac(1, 2)", `\frac{1}{2}`},
		{"nested fraction", "frac(frac(a, b), c)", `\frac{\frac{a}{b}}{c}`},
		{"square root", "sqrt(x)", `\sqrt{x}`},
		{"nth root", "root(3, x)", `\sqrt[3]{x}`},
		{"binomial", "binom(n, k)", `\binom{n}{k}`},
		{"angle brackets", "angle.l x angle.r", `\langle x \rangle`},
		{"absolute value", "abs(x - y)", `\left|x - y\right|`},
		{"norm", "norm(v)", `\left\|v\right\|`},
		{"greek word", "alpha + beta", `\alpha + \beta`},
		{"uppercase greek", "Delta x", `\Delta x`},
		{"relation symbol", "a <= b", `a \leq b`},
		{"not equal", "a != b", `a \neq b`},
		{"symbol glued to letter", "a<=b", `a\leq b`},
		{"quoted text", `"speed" = v`, `\text{speed} = v`},
		{"scripts regrouped", "x^(2 n)", "x^{2 n}"},
		{"subscript", "a_(i j)", "a_{i j}"},
		{"sum with limits", "sum_(i=1)^(n) i", `\sum_{i=1}^{n} i`},
		{"infinity", "oo", `\infty`},
		{"dotted symbol", "dots.h", `\ldots`},
		{"arrow", "arrow.r.double", `\Rightarrow`},
		{"function kept", "sin x", `\sin x`},
		{"equation break", `a \ b`, `a \\ b`},
		{"cases", "cases(x, 0)", `\begin{cases} x \\ 0 \end{cases}`},
		{"pmatrix", `mat(delim: "(", a, b; c, d)`,
			`\begin{pmatrix} a & b \\ c & d \end{pmatrix}`},
		{"bmatrix", `mat(delim: "[", 1, 0; 0, 1)`,
			`\begin{bmatrix} 1 & 0 \\ 0 & 1 \end{bmatrix}`},
		{"bare matrix defaults to pmatrix", "mat(a, b; c, d)",
			`\begin{pmatrix} a & b \\ c & d \end{pmatrix}`},
		{"no delim matrix", "mat(delim: #none, a; b)",
			`\begin{matrix} a \\ b \end{matrix}`},
		{"unknown call passes through", "foo(x)", "foo(x)"},
		{"plain identifier", "velocity", "velocity"},
		{"unbalanced paren degrades", "frac(a, b", "frac(a, b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLatex(tt.typst); got != tt.want {
				t.Errorf("ToLatex(%q) = %q, want %q", tt.typst, got, tt.want)
			}
		})
	}
}

// The two directions are inverses on expressions that use shared
// vocabulary, which is what keeps a stored dual representation coherent.
func TestRoundTrip(t *testing.T) {
	latexInputs := []string{
		`\frac{1}{2}`,
		`\sqrt{x} + \alpha`,
		`\sum_{i=1}^{n} i`,
		`a \leq b`,
		`\begin{pmatrix} a & b \\ c & d \end{pmatrix}`,
	}
	for _, in := range latexInputs {
		typst := ToTypst(in)
		back := ToLatex(typst)
		again := ToTypst(back)
		if typst != again {
			t.Errorf("round trip unstable for %q:\n first = %q\n again = %q", in, typst, again)
		}
		if !strings.Contains(back, `\`) {
			t.Errorf("ToLatex(%q) = %q lost all commands", typst, back)
		}
	}
}
