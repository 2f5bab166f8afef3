package htmldoc

import "testing"

func contentTexts(t *testing.T, src string, filter Filter) []string {
	t.Helper()
	var texts []string
	for _, b := range parseHTML(t, src, filter).Blocks() {
		texts = append(texts, b.Content)
	}
	return texts
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestFilter_None(t *testing.T) {
	src := `<body><nav><p>menu</p></nav><p>content</p></body>`
	texts := contentTexts(t, src, FilterNone)
	if !contains(texts, "menu") || !contains(texts, "content") {
		t.Errorf("FilterNone dropped content: %v", texts)
	}
}

func TestFilter_Semantic(t *testing.T) {
	src := `<body>
		<header><p>site chrome</p></header>
		<nav><p>menu</p></nav>
		<article>
			<header><p>article header</p></header>
			<p>body text</p>
		</article>
		<div role="contentinfo"><p>legal</p></div>
	</body>`

	texts := contentTexts(t, src, FilterSemantic)
	if contains(texts, "site chrome") || contains(texts, "menu") {
		t.Errorf("top-level chrome kept: %v", texts)
	}
	if contains(texts, "legal") {
		t.Errorf("ARIA contentinfo kept: %v", texts)
	}
	if !contains(texts, "article header") {
		t.Errorf("nested header should survive: %v", texts)
	}
	if !contains(texts, "body text") {
		t.Errorf("content dropped: %v", texts)
	}
}

// Header and footer only count as chrome at the top level, including
// under the single-wrapper pattern.
func TestFilter_SingleWrapper(t *testing.T) {
	src := `<body><div id="page">
		<header><p>chrome</p></header>
		<p>content</p>
	</div></body>`

	texts := contentTexts(t, src, FilterSemantic)
	if contains(texts, "chrome") {
		t.Errorf("wrapper-level header kept: %v", texts)
	}
	if !contains(texts, "content") {
		t.Errorf("content dropped: %v", texts)
	}
}

func TestFilter_Patterns(t *testing.T) {
	src := `<body>
		<div class="sidebar"><p>widgets</p></div>
		<div id="main-footer"><p>footer links</p></div>
		<div class="content-main"><p>main</p></div>
	</body>`

	texts := contentTexts(t, src, FilterPatterns)
	if contains(texts, "widgets") || contains(texts, "footer links") {
		t.Errorf("pattern chrome kept: %v", texts)
	}
	if !contains(texts, "main") {
		t.Errorf("content dropped: %v", texts)
	}

	// The semantic level alone must not act on naming patterns.
	texts = contentTexts(t, src, FilterSemantic)
	if !contains(texts, "widgets") {
		t.Errorf("FilterSemantic should ignore class names: %v", texts)
	}
}

func TestFilter_LinkDense(t *testing.T) {
	src := `<body>
		<ul>
			<li><a href="/a">First link</a></li>
			<li><a href="/b">Second link</a></li>
			<li><a href="/c">Third link</a></li>
			<li><a href="/d">Fourth link</a></li>
		</ul>
		<p>Real paragraph text that carries the page content.</p>
	</body>`

	blocks := parseHTML(t, src, FilterLinkDense).Blocks()
	if len(blocks) != 1 || blocks[0].Content != "Real paragraph text that carries the page content." {
		t.Errorf("link-dense list kept: %+v", blocks)
	}

	// Below the aggressive level the same list imports normally.
	blocks = parseHTML(t, src, FilterPatterns).Blocks()
	if len(blocks) != 2 {
		t.Errorf("FilterPatterns should keep the list: %+v", blocks)
	}
}
