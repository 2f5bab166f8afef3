package mathconv

import "sort"

// tokenPair maps one LaTeX-like token to its native-dialect spelling.
type tokenPair struct {
	latex string
	typst string
}

// tokenTable is the fixed symbol mapping between the two dialects. Both
// converters consult it sorted longest-key-first so that a short token can
// never shadow a longer one (\le vs \leq, arrow.r vs arrow.r.double).
var tokenTable = []tokenPair{
	// Binary operators
	{`\times`, "times"},
	{`\div`, "div"},
	{`\cdot`, "dot.op"},
	{`\pm`, "plus.minus"},
	{`\mp`, "minus.plus"},
	{`\ast`, "ast"},
	{`\oplus`, "plus.circle"},
	{`\otimes`, "times.circle"},

	// Relations
	{`\leq`, "<="},
	{`\le`, "<="},
	{`\geq`, ">="},
	{`\ge`, ">="},
	{`\neq`, "!="},
	{`\ne`, "!="},
	{`\approx`, "approx"},
	{`\equiv`, "equiv"},
	{`\sim`, "tilde.op"},
	{`\propto`, "prop"},
	{`\in`, "in"},
	{`\notin`, "in.not"},
	{`\subset`, "subset"},
	{`\subseteq`, "subset.eq"},
	{`\supset`, "supset"},
	{`\cup`, "union"},
	{`\cap`, "sect"},
	{`\parallel`, "parallel"},
	{`\perp`, "perp"},

	// Arrows
	{`\Leftrightarrow`, "arrow.l.r.double"},
	{`\Rightarrow`, "arrow.r.double"},
	{`\Leftarrow`, "arrow.l.double"},
	{`\leftrightarrow`, "arrow.l.r"},
	{`\rightarrow`, "arrow.r"},
	{`\leftarrow`, "arrow.l"},
	{`\to`, "arrow.r"},
	{`\mapsto`, "arrow.r.bar"},
	{`\uparrow`, "arrow.t"},
	{`\downarrow`, "arrow.b"},

	// Dots and misc symbols
	{`\cdots`, "dots.h.c"},
	{`\ldots`, "dots.h"},
	{`\dots`, "dots.h"},
	{`\vdots`, "dots.v"},
	{`\ddots`, "dots.diag"},
	{`\infty`, "oo"},
	{`\partial`, "diff"},
	{`\nabla`, "nabla"},
	{`\forall`, "forall"},
	{`\exists`, "exists"},
	{`\emptyset`, "nothing"},
	{`\angle`, "angle"},
	{`\langle`, "angle.l"},
	{`\rangle`, "angle.r"},
	{`\triangle`, "triangle.t"},
	{`\degree`, "degree"},
	{`\prime`, "prime"},
	{`\circ`, "compose"},
	{`\hbar`, "planck.reduce"},
	{`\ell`, "ell"},

	// Big operators
	{`\sum`, "sum"},
	{`\prod`, "product"},
	{`\int`, "integral"},
	{`\oint`, "integral.cont"},
	{`\iint`, "integral.double"},
	{`\lim`, "lim"},
	{`\max`, "max"},
	{`\min`, "min"},
	{`\sup`, "sup"},
	{`\inf`, "inf"},

	// Functions that keep their spelling
	{`\sin`, "sin"},
	{`\cos`, "cos"},
	{`\tan`, "tan"},
	{`\cot`, "cot"},
	{`\sec`, "sec"},
	{`\csc`, "csc"},
	{`\arcsin`, "arcsin"},
	{`\arccos`, "arccos"},
	{`\arctan`, "arctan"},
	{`\sinh`, "sinh"},
	{`\cosh`, "cosh"},
	{`\tanh`, "tanh"},
	{`\log`, "log"},
	{`\ln`, "ln"},
	{`\exp`, "exp"},
	{`\det`, "det"},
	{`\gcd`, "gcd"},
	{`\mod`, "mod"},

	// Greek letters, lowercase
	{`\alpha`, "alpha"},
	{`\beta`, "beta"},
	{`\gamma`, "gamma"},
	{`\delta`, "delta"},
	{`\epsilon`, "epsilon"},
	{`\varepsilon`, "epsilon.alt"},
	{`\zeta`, "zeta"},
	{`\eta`, "eta"},
	{`\theta`, "theta"},
	{`\vartheta`, "theta.alt"},
	{`\iota`, "iota"},
	{`\kappa`, "kappa"},
	{`\lambda`, "lambda"},
	{`\mu`, "mu"},
	{`\nu`, "nu"},
	{`\xi`, "xi"},
	{`\pi`, "pi"},
	{`\rho`, "rho"},
	{`\sigma`, "sigma"},
	{`\tau`, "tau"},
	{`\upsilon`, "upsilon"},
	{`\phi`, "phi"},
	{`\varphi`, "phi.alt"},
	{`\chi`, "chi"},
	{`\psi`, "psi"},
	{`\omega`, "omega"},

	// Greek letters, uppercase
	{`\Gamma`, "Gamma"},
	{`\Delta`, "Delta"},
	{`\Theta`, "Theta"},
	{`\Lambda`, "Lambda"},
	{`\Xi`, "Xi"},
	{`\Pi`, "Pi"},
	{`\Sigma`, "Sigma"},
	{`\Upsilon`, "Upsilon"},
	{`\Phi`, "Phi"},
	{`\Psi`, "Psi"},
	{`\Omega`, "Omega"},
}

// forwardMap maps a LaTeX command (with backslash) to its native spelling.
// The forward scanner reads a maximal command name before the lookup, which
// gives longest-match semantics (\leq can never be read as \le).
var forwardMap = func() map[string]string {
	m := make(map[string]string, len(tokenTable))
	for _, p := range tokenTable {
		if _, dup := m[p.latex]; !dup {
			m[p.latex] = p.typst
		}
	}
	return m
}()

// reverseWordMap maps native spellings that begin with a letter back to
// LaTeX. Duplicate native spellings (\le and \leq both map to "<=") keep
// their first LaTeX form, so "<=" converts back to \leq. Word keys are
// matched against maximal identifier runs, which anchors them at word
// boundaries for free.
var reverseWordMap = func() map[string]string {
	m := make(map[string]string, len(tokenTable))
	for _, p := range tokenTable {
		if !isLetter(p.typst[0]) {
			continue
		}
		if _, dup := m[p.typst]; !dup {
			m[p.typst] = p.latex
		}
	}
	return m
}()

// reverseSymbolic holds native spellings that do not begin with a letter
// ("<=", ">=", "!="), ordered longest-key-first. These match boundary-free
// so a symbol can abut a following letter.
var reverseSymbolic = func() []tokenPair {
	seen := make(map[string]bool)
	var out []tokenPair
	for _, p := range tokenTable {
		if isLetter(p.typst[0]) || seen[p.typst] {
			continue
		}
		seen[p.typst] = true
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].typst) > len(out[j].typst)
	})
	return out
}()

// unitNames is the set of measurement-unit abbreviations recognized when
// glued to a numeric literal (5cm, 12kg). A glued letter run outside this
// set is treated as ordinary identifiers, not a unit.
var unitNames = func() map[string]bool {
	m := make(map[string]bool)
	for _, u := range []string{
		"mm", "cm", "dm", "km", "kg", "mg", "ml", "mL", "dl", "dL",
		"ms", "min", "mol", "Hz", "kHz", "MHz", "Pa", "kPa", "MPa",
		"kWh", "kW", "kJ", "kN", "cal", "kcal", "bar", "rad", "sr",
		"lm", "lx", "ha", "eV", "Wb", "mA", "nm",
	} {
		m[u] = true
	}
	return m
}()

// nativeNames is the set of native-dialect spellings that must never be
// re-split into single letters by the identifier-splitting pass.
var nativeNames = func() map[string]bool {
	m := make(map[string]bool, len(tokenTable)+8)
	for _, p := range tokenTable {
		m[p.typst] = true
	}
	for _, name := range []string{"frac", "sqrt", "root", "mat", "cases", "vec", "binom", "abs", "norm"} {
		m[name] = true
	}
	return m
}()
