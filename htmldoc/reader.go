package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/typfold/typmark/assets"
	"github.com/typfold/typmark/internal/textenc"
	"github.com/typfold/typmark/model"
)

// Options configures an HTML import.
type Options struct {
	// Filter selects how aggressively navigation and boilerplate content
	// is excluded. The zero value keeps everything.
	Filter Filter
	// ContentType is the transport Content-Type header, if known. It
	// helps charset detection for non-UTF-8 input.
	ContentType string
}

// Reader holds a parsed HTML document ready for conversion to blocks.
type Reader struct {
	doc      *html.Node
	title    string
	metadata map[string]string
	opts     Options
}

// Open opens and parses an HTML file.
func Open(filename string) (*Reader, error) {
	return OpenWithOptions(filename, Options{Filter: FilterPatterns})
}

// OpenWithOptions opens and parses an HTML file with explicit options.
func OpenWithOptions(filename string, opts Options) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f, opts)
}

// OpenReader parses HTML from an io.Reader. Input in a legacy charset is
// transparently decoded to UTF-8 before parsing.
func OpenReader(r io.Reader, opts Options) (*Reader, error) {
	decoded, err := textenc.NewReader(r, opts.ContentType)
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	doc, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:      doc,
		metadata: make(map[string]string),
		opts:     opts,
	}
	reader.extractHead(doc)
	return reader, nil
}

// Title returns the document title from the head element.
func (r *Reader) Title() string {
	return r.title
}

// Metadata returns the meta tag name/content pairs from the head element.
func (r *Reader) Metadata() map[string]string {
	return r.metadata
}

// Blocks converts the document body into a block list.
func (r *Reader) Blocks() []model.Block {
	body := findElement(r.doc, "body")
	if body == nil {
		body = r.doc
	}

	b := &blockBuilder{filter: newFilterState(r.opts.Filter, r.doc)}
	b.walk(body)
	b.flushList()
	return b.blocks
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				r.title = textContent(c)
			case "meta":
				name, content := "", ""
				for _, attr := range c.Attr {
					switch attr.Key {
					case "name", "property":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if name != "" && content != "" {
					r.metadata[name] = content
				}
			}
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// blockBuilder accumulates blocks while walking the DOM. List items are
// buffered so that a run of li elements becomes one paragraph of list
// lines.
type blockBuilder struct {
	filter    *filterState
	blocks    []model.Block
	listLines []string
	listDepth int
}

func (b *blockBuilder) emit(blk model.Block) {
	b.blocks = append(b.blocks, blk)
}

func (b *blockBuilder) flushList() {
	if len(b.listLines) == 0 {
		return
	}
	// List content lives in paragraph line runs, like everywhere else in
	// the block model.
	blk := model.NewBlock(model.TypeParagraph)
	blk.Content = strings.Join(b.listLines, "\n")
	b.emit(blk)
	b.listLines = nil
}

func (b *blockBuilder) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		if skipTag(n.Data) || b.filter.exclude(n) {
			return
		}

		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.flushList()
			if text := textContent(n); text != "" {
				blk := model.NewBlock(model.TypeHeading)
				blk.Content = text
				blk.Level = int(n.Data[1] - '0')
				b.emit(blk)
			}
			return

		case "p", "blockquote":
			b.flushList()
			if text := textContent(n); text != "" {
				blk := model.NewBlock(model.TypeParagraph)
				blk.Content = text
				b.emit(blk)
			}
			return

		case "div":
			// A div with block children is a container; one with only
			// inline content is a paragraph.
			if hasBlockChildren(n) {
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					b.walk(c)
				}
				return
			}
			b.flushList()
			if text := textContent(n); text != "" {
				blk := model.NewBlock(model.TypeParagraph)
				blk.Content = text
				b.emit(blk)
			}
			return

		case "ul", "ol":
			b.walkList(n, n.Data == "ol")
			return

		case "pre":
			b.flushList()
			if code := rawText(n); code != "" {
				blk := model.NewBlock(model.TypeCode)
				blk.Content = strings.Trim(code, "\n")
				blk.Language = codeLanguage(n)
				b.emit(blk)
			}
			return

		case "table":
			b.flushList()
			if payload := parseTable(n); payload != nil && payload.Rows > 0 {
				blk := model.NewBlock(model.TypeTable)
				blk.Table = payload
				b.emit(blk)
			}
			return

		case "img":
			b.flushList()
			if blk, ok := imageBlock(n); ok {
				b.emit(blk)
			}
			return

		case "figure":
			b.flushList()
			b.walkFigure(n)
			return

		case "hr":
			b.flushList()
			blk := model.NewBlock(model.TypeVerticalSpace)
			blk.Space = 12
			b.emit(blk)
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c)
	}
}

// walkList collects the items of a ul/ol subtree into buffered list lines.
// Nested lists flatten into the parent: the block model has no list depth.
func (b *blockBuilder) walkList(n *html.Node, ordered bool) {
	b.listDepth++
	num := 1
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		if text := directText(c); text != "" {
			if ordered {
				b.listLines = append(b.listLines, strconv.Itoa(num)+". "+text)
				num++
			} else {
				b.listLines = append(b.listLines, "- "+text)
			}
		}
		for g := c.FirstChild; g != nil; g = g.NextSibling {
			if g.Type == html.ElementNode && (g.Data == "ul" || g.Data == "ol") {
				b.walkList(g, g.Data == "ol")
			}
		}
	}
	b.listDepth--
	if b.listDepth == 0 {
		b.flushList()
	}
}

// walkFigure handles figure elements wrapping an img with a figcaption.
func (b *blockBuilder) walkFigure(n *html.Node) {
	img := findElement(n, "img")
	if img == nil {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.walk(c)
		}
		return
	}
	blk, ok := imageBlock(img)
	if !ok {
		return
	}
	if figcap := findElement(n, "figcaption"); figcap != nil {
		blk.Caption = textContent(figcap)
	}
	b.emit(blk)
}

// imageBlock builds an image block from an img element. Images whose src
// fails URL validation are dropped rather than imported as broken
// references.
func imageBlock(n *html.Node) (model.Block, bool) {
	src := getAttr(n, "src")
	if !assets.ValidURL(src) {
		return model.Block{}, false
	}
	blk := model.NewBlock(model.TypeImage)
	blk.URL = src
	blk.Caption = getAttr(n, "alt")
	return blk, true
}

// codeLanguage extracts a language hint from a pre or nested code element
// carrying a language-* or lang-* class.
func codeLanguage(n *html.Node) string {
	classes := getAttr(n, "class")
	if code := findElement(n, "code"); code != nil {
		classes += " " + getAttr(code, "class")
	}
	for _, cls := range strings.Fields(classes) {
		if strings.HasPrefix(cls, "language-") {
			return cls[len("language-"):]
		}
		if strings.HasPrefix(cls, "lang-") {
			return cls[len("lang-"):]
		}
	}
	return ""
}

// skipTag reports whether an element never contributes content.
func skipTag(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "svg", "iframe", "object", "embed":
		return true
	}
	return false
}

// hasBlockChildren reports whether an element contains block-level child
// elements.
func hasBlockChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "div", "p", "ul", "ol", "table", "h1", "h2", "h3", "h4", "h5", "h6",
			"blockquote", "pre", "figure", "article", "section":
			return true
		}
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// textContent extracts the visible text of a node, collapsing runs of
// whitespace the way a browser renders them.
func textContent(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if skipTag(n.Data) {
			return
		}
		if n.Data == "br" {
			sb.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "tr":
			sb.WriteString(" ")
		}
	}
}

// rawText extracts text preserving whitespace, for code content.
func rawText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// directText extracts text of a node excluding nested block elements, for
// list items that contain sub-lists.
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			continue
		}
		if c.Type == html.ElementNode {
			switch c.Data {
			case "ul", "ol", "div", "p", "table", "blockquote":
			default:
				sb.WriteString(textContent(c))
				sb.WriteString(" ")
			}
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// getAttr returns the value of an attribute on a node, or empty string.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
