package htmldoc

import (
	"regexp"

	"golang.org/x/net/html"
)

// Filter controls how navigation and boilerplate content is excluded
// during import.
type Filter int

const (
	// FilterNone imports all body content without exclusions.
	FilterNone Filter = iota

	// FilterSemantic skips explicit semantic HTML5 chrome: nav and aside
	// everywhere, header and footer when they sit at the top level of the
	// body, and the equivalent ARIA roles.
	FilterSemantic

	// FilterPatterns (the Open default) additionally matches common
	// class/id naming patterns (navbar, menu, sidebar, footer, ...) for
	// pages that do not use semantic elements.
	FilterPatterns

	// FilterLinkDense additionally drops container elements whose text is
	// mostly link text. Catches unmarked navigation at the cost of
	// occasionally dropping link-heavy legitimate content.
	FilterLinkDense
)

// chromePattern matches class or id values that name page chrome rather
// than content.
var chromePattern = regexp.MustCompile(
	`(?i)(^|[^a-z])(nav|navbar|navigation|menu|topnav|sidenav|breadcrumbs?|` +
		`site-header|page-header|masthead|banner|` +
		`footer|site-footer|page-footer|colophon|` +
		`sidebar|widget-area|widget|aside)([^a-z]|$)`)

// filterState carries the per-document context exclusion checks need: the
// body node, an optional single wrapper element, and a cache for link
// density computations.
type filterState struct {
	mode    Filter
	body    *html.Node
	wrapper *html.Node
	density map[*html.Node]float64
}

func newFilterState(mode Filter, doc *html.Node) *filterState {
	fs := &filterState{mode: mode, density: make(map[*html.Node]float64)}
	fs.body = findElement(doc, "body")
	if fs.body == nil {
		fs.body = doc
	}
	fs.wrapper = singleWrapper(fs.body)
	return fs
}

// singleWrapper detects the common <body><div id="page">...</div></body>
// pattern so header/footer children of the wrapper count as top-level.
func singleWrapper(body *html.Node) *html.Node {
	var structural []*html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "div", "main":
			structural = append(structural, c)
		case "script", "style", "noscript", "template":
		default:
			return nil
		}
	}
	if len(structural) == 1 {
		return structural[0]
	}
	return nil
}

func (fs *filterState) exclude(n *html.Node) bool {
	if fs.mode == FilterNone || n.Type != html.ElementNode {
		return false
	}
	if fs.excludeSemantic(n) {
		return true
	}
	if fs.mode >= FilterPatterns && fs.excludeByPattern(n) {
		return true
	}
	if fs.mode >= FilterLinkDense && fs.excludeByLinkDensity(n) {
		return true
	}
	return false
}

func (fs *filterState) excludeSemantic(n *html.Node) bool {
	switch n.Data {
	case "nav", "aside":
		return true
	}
	switch getAttr(n, "role") {
	case "navigation", "complementary":
		return true
	case "banner", "contentinfo":
		return fs.topLevel(n)
	}
	switch n.Data {
	case "header", "footer":
		return fs.topLevel(n)
	}
	return false
}

// topLevel reports whether a node is a direct child of the body or of a
// single top-level wrapper.
func (fs *filterState) topLevel(n *html.Node) bool {
	p := n.Parent
	if p == nil {
		return false
	}
	return p == fs.body || (fs.wrapper != nil && p == fs.wrapper)
}

func (fs *filterState) excludeByPattern(n *html.Node) bool {
	if class := getAttr(n, "class"); class != "" && chromePattern.MatchString(class) {
		return true
	}
	if id := getAttr(n, "id"); id != "" && chromePattern.MatchString(id) {
		return true
	}
	return false
}

// excludeByLinkDensity drops block containers where more than 60% of the
// text sits inside links and at least four links are present. The minimum
// link count avoids false positives on short elements.
func (fs *filterState) excludeByLinkDensity(n *html.Node) bool {
	switch n.Data {
	case "div", "section", "ul", "ol":
	default:
		return false
	}
	return fs.linkDensity(n) > 0.6 && countLinks(n) >= 4
}

func (fs *filterState) linkDensity(n *html.Node) float64 {
	if cached, ok := fs.density[n]; ok {
		return cached
	}
	total := textLength(n)
	var d float64
	if total > 0 {
		d = float64(linkTextLength(n)) / float64(total)
	}
	fs.density[n] = d
	return d
}

func textLength(n *html.Node) int {
	if n.Type == html.TextNode {
		return len(n.Data)
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += textLength(c)
	}
	return total
}

func linkTextLength(n *html.Node) int {
	if n.Type == html.ElementNode && n.Data == "a" {
		return textLength(n)
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += linkTextLength(c)
	}
	return total
}

func countLinks(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode && n.Data == "a" {
		count = 1
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countLinks(c)
	}
	return count
}
