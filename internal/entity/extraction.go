package entity

import "strings"

// ExtractionResult is the transient value produced by any extractor tier
// (OCR/regex or a vision provider) before persistence.
type ExtractionResult struct {
	FullName         string       `json:"full_name,omitempty"`
	OpeningQuote     string       `json:"opening_quote,omitempty"`
	DeathDate        string       `json:"death_date,omitempty"`   // YYYY-MM-DD
	FuneralDate      string       `json:"funeral_date,omitempty"` // YYYY-MM-DD
	AnnouncementText string       `json:"announcement_text,omitempty"`
	HasPhoto         bool         `json:"has_photo"`
	PhotoBBox        *BoundingBox `json:"photo_bbox,omitempty"`
}

// ValidText reports whether the result is usable for text extraction.
// The only hard requirement is a name.
func (r *ExtractionResult) ValidText() bool {
	return r != nil && strings.TrimSpace(r.FullName) != ""
}

// ValidDeathDate reports whether the result is usable in death-date-only mode.
func (r *ExtractionResult) ValidDeathDate() bool {
	return r != nil && strings.TrimSpace(r.DeathDate) != ""
}
