package model

// CaptionPosition controls where an image caption renders relative to the
// image.
type CaptionPosition string

// Caption positions.
const (
	CaptionBelow CaptionPosition = "below"
	CaptionAbove CaptionPosition = "above"
)

// DocumentSettings holds per-document presentation settings supplied by the
// caller to every serialize call. One default instance is used when absent.
// The settings are carried in the document header marker so they survive a
// save/reload cycle.
type DocumentSettings struct {
	TableCaptionNumbering bool            `json:"tableCaptionNumbering"`
	ImageCaptionNumbering bool            `json:"imageCaptionNumbering"`
	ImageCaptionPosition  CaptionPosition `json:"imageCaptionPosition,omitempty"`
	FontSize              float64         `json:"fontSize,omitempty"`
}

// DefaultSettings returns the settings used when the caller supplies none.
func DefaultSettings() DocumentSettings {
	return DocumentSettings{
		TableCaptionNumbering: true,
		ImageCaptionNumbering: true,
		ImageCaptionPosition:  CaptionBelow,
		FontSize:              11,
	}
}
