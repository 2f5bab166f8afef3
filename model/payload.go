package model

// ChartPayload is the structured representation of a chart block. The
// payload is the sole source of truth: the visible markup only ever shows
// the rendered image (or a placeholder when none has been generated yet).
type ChartPayload struct {
	ChartType      string `json:"chartType"`
	Title          string `json:"title,omitempty"`
	XLabel         string `json:"xLabel,omitempty"`
	YLabel         string `json:"yLabel,omitempty"`
	Legend         string `json:"legend,omitempty"`
	DataSource     string `json:"dataSource,omitempty"`
	ManualText     string `json:"manualText,omitempty"`
	TableSelection string `json:"tableSelection,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// MathPayload carries the dual math representation inside a math marker.
type MathPayload struct {
	Format string     `json:"format,omitempty"`
	Latex  string     `json:"latex,omitempty"`
	Typst  string     `json:"typst,omitempty"`
	Lines  []MathLine `json:"lines,omitempty"`
	Brace  bool       `json:"brace,omitempty"`
}

// ImagePayload carries image metadata that has no visible markup
// representation (caption styling, per-block font, original URL).
type ImagePayload struct {
	URL      string  `json:"url,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Align    string  `json:"align,omitempty"`
	Caption  string  `json:"caption,omitempty"`
	Font     string  `json:"font,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
}

// InputPayload carries answer-field metadata for input_field blocks.
type InputPayload struct {
	Lines     []string `json:"lines,omitempty"`
	Separator string   `json:"separator,omitempty"`
	Hint      string   `json:"hint,omitempty"`
}

// SpacePayload carries the explicit height of a vertical_space block.
type SpacePayload struct {
	Space float64 `json:"space"`
}

// CompositePayload carries composite-row layout parameters.
type CompositePayload struct {
	Justify       string  `json:"justify,omitempty"`
	Gap           float64 `json:"gap,omitempty"`
	VerticalAlign string  `json:"verticalAlign,omitempty"`
}

// CoverPayload carries cover-page parameters.
type CoverPayload struct {
	FixedOnePage bool `json:"fixedOnePage"`
}
