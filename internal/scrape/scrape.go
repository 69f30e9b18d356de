package scrape

import (
	"context"

	"github.com/parte-archiv/parte-tracker/constants"
)

// Listing is one notice as advertised on a source site's overview page.
// FuneralText is the funeral date exactly as printed there; it feeds the
// identity hash and is never parsed at ingestion time.
type Listing struct {
	Source      constants.Source
	Name        string
	FuneralText string
	MediaURL    string // PDF or image the site serves for this notice
	DetailURL   string
}

// SiteAdapter knows how to read one funeral-service website.
type SiteAdapter interface {
	Source() constants.Source
	Fetch(ctx context.Context) ([]Listing, error)
}
