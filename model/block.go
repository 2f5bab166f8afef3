package model

// BlockType identifies the kind of a content block. The string values are
// part of the persisted JSON shape and must not change.
type BlockType string

// Block type discriminators. TypeList is an input alias: external block
// producers may emit it, but ValidateBlocks canonicalizes it to
// TypeParagraph, whose content carries list lines directly.
const (
	TypeUnknown       BlockType = ""
	TypeHeading       BlockType = "heading"
	TypeParagraph     BlockType = "paragraph"
	TypeCode          BlockType = "code"
	TypeMath          BlockType = "math"
	TypeImage         BlockType = "image"
	TypeChart         BlockType = "chart"
	TypeList          BlockType = "list"
	TypeTable         BlockType = "table"
	TypeVerticalSpace BlockType = "vertical_space"
	TypeInputField    BlockType = "input_field"
	TypeCompositeRow  BlockType = "composite_row"
	TypeCover         BlockType = "cover"
)

// String returns the persisted name of the block type.
func (bt BlockType) String() string {
	if bt == TypeUnknown {
		return "unknown"
	}
	return string(bt)
}

// Valid reports whether bt is one of the known block types.
func (bt BlockType) Valid() bool {
	switch bt {
	case TypeHeading, TypeParagraph, TypeCode, TypeMath, TypeImage,
		TypeChart, TypeList, TypeTable, TypeVerticalSpace,
		TypeInputField, TypeCompositeRow, TypeCover:
		return true
	}
	return false
}

// Container reports whether blocks of this type hold child blocks.
func (bt BlockType) Container() bool {
	return bt == TypeCompositeRow || bt == TypeCover
}

// Block is a single content block. It is a tagged union: Type selects which
// of the optional fields are meaningful. Fields that do not apply to a
// given type are left at their zero value and omitted from JSON.
//
// ID is an opaque identity used by editing UIs. It never participates in
// round-trip equality and parsers are free to mint fresh IDs.
type Block struct {
	ID      string    `json:"id,omitempty"`
	Type    BlockType `json:"type"`
	Content string    `json:"content,omitempty"`

	// Heading
	Level int `json:"level,omitempty"`

	// Code
	Language string `json:"language,omitempty"`

	// Visual blocks (image, chart, table, math, paragraph styling)
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Align    string  `json:"align,omitempty"`
	Caption  string  `json:"caption,omitempty"`
	Font     string  `json:"font,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`

	// Image
	URL string `json:"url,omitempty"`

	// Math. A block holds either a single dual-dialect expression
	// (MathLatex/MathTypst) or a group of parallel equation lines
	// (MathLines), optionally brace-grouped as a case system.
	MathFormat string     `json:"mathFormat,omitempty"`
	MathLatex  string     `json:"mathLatex,omitempty"`
	MathTypst  string     `json:"mathTypst,omitempty"`
	MathLines  []MathLine `json:"mathLines,omitempty"`
	MathBrace  bool       `json:"mathBrace,omitempty"`

	// Structured payloads
	Table *TablePayload `json:"table,omitempty"`
	Chart *ChartPayload `json:"chart,omitempty"`

	// Vertical space, in points.
	Space float64 `json:"space,omitempty"`

	// Input field
	InputLines     []string `json:"inputLines,omitempty"`
	InputSeparator string   `json:"inputSeparator,omitempty"`
	AnswerHint     string   `json:"answerHint,omitempty"`
	Placeholder    bool     `json:"placeholder,omitempty"`

	// Containers. Content is always empty for container blocks; the
	// structure lives in Children.
	Children []Block `json:"children,omitempty"`

	// Composite row layout
	CompositeJustify       string  `json:"compositeJustify,omitempty"`
	CompositeGap           float64 `json:"compositeGap,omitempty"`
	CompositeVerticalAlign string  `json:"compositeVerticalAlign,omitempty"`

	// Cover layout
	CoverFixedOnePage bool `json:"coverFixedOnePage,omitempty"`
}

// MathLine is one equation line inside a grouped math block, carried in
// both dialects so neither is lost on round trip.
type MathLine struct {
	Latex string `json:"latex,omitempty"`
	Typst string `json:"typst,omitempty"`
}

// NewBlock creates a block of the given type with a fresh ID.
func NewBlock(bt BlockType) Block {
	return Block{ID: newID(), Type: bt}
}

// Clone returns a deep copy of the block, including children and payloads.
func (b Block) Clone() Block {
	out := b
	if b.Table != nil {
		out.Table = b.Table.Clone()
	}
	if b.Chart != nil {
		c := *b.Chart
		out.Chart = &c
	}
	if b.MathLines != nil {
		out.MathLines = append([]MathLine(nil), b.MathLines...)
	}
	if b.InputLines != nil {
		out.InputLines = append([]string(nil), b.InputLines...)
	}
	if b.Children != nil {
		out.Children = make([]Block, len(b.Children))
		for i := range b.Children {
			out.Children[i] = b.Children[i].Clone()
		}
	}
	return out
}

// Equal reports whether two blocks are equal field-for-field, ignoring IDs
// at every nesting level. This is the round-trip equality used by tests.
func (b Block) Equal(other Block) bool {
	x, y := b.Clone(), other.Clone()
	x.stripIDs()
	y.stripIDs()
	return blockEqual(x, y)
}

func (b *Block) stripIDs() {
	b.ID = ""
	for i := range b.Children {
		b.Children[i].stripIDs()
	}
}

func blockEqual(a, b Block) bool {
	if a.Type != b.Type || a.Content != b.Content ||
		a.Level != b.Level || a.Language != b.Language ||
		a.Width != b.Width || a.Height != b.Height ||
		a.Align != b.Align || a.Caption != b.Caption ||
		a.Font != b.Font || a.FontSize != b.FontSize ||
		a.URL != b.URL ||
		a.MathFormat != b.MathFormat || a.MathLatex != b.MathLatex ||
		a.MathTypst != b.MathTypst || a.MathBrace != b.MathBrace ||
		a.Space != b.Space ||
		a.InputSeparator != b.InputSeparator ||
		a.AnswerHint != b.AnswerHint || a.Placeholder != b.Placeholder ||
		a.CompositeJustify != b.CompositeJustify ||
		a.CompositeGap != b.CompositeGap ||
		a.CompositeVerticalAlign != b.CompositeVerticalAlign ||
		a.CoverFixedOnePage != b.CoverFixedOnePage {
		return false
	}
	if len(a.MathLines) != len(b.MathLines) {
		return false
	}
	for i := range a.MathLines {
		if a.MathLines[i] != b.MathLines[i] {
			return false
		}
	}
	if len(a.InputLines) != len(b.InputLines) {
		return false
	}
	for i := range a.InputLines {
		if a.InputLines[i] != b.InputLines[i] {
			return false
		}
	}
	if (a.Table == nil) != (b.Table == nil) {
		return false
	}
	if a.Table != nil && !a.Table.Equal(b.Table) {
		return false
	}
	if (a.Chart == nil) != (b.Chart == nil) {
		return false
	}
	if a.Chart != nil && *a.Chart != *b.Chart {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !blockEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// BlocksEqual reports field-for-field equality of two block lists,
// ignoring IDs.
func BlocksEqual(a, b []Block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
