package scrape

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gocolly/colly"

	"github.com/parte-archiv/parte-tracker/constants"
)

// Wrzecionko reads the Polish funeral home site wrzecionko.pl. The nekrologi
// page lists one entry per notice with a downloadable PDF or image.
type Wrzecionko struct {
	BaseURL   string
	UserAgent string
	Logger    *slog.Logger
}

func NewWrzecionko(baseURL, userAgent string, logger *slog.Logger) *Wrzecionko {
	if baseURL == "" {
		baseURL = "https://www.wrzecionko.pl"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Wrzecionko{BaseURL: baseURL, UserAgent: userAgent, Logger: logger}
}

func (a *Wrzecionko) Source() constants.Source {
	return constants.SourceWrzecionko
}

func (a *Wrzecionko) Fetch(ctx context.Context) ([]Listing, error) {
	c := newCollector(a.UserAgent)

	var listings []Listing
	c.OnHTML("article.nekrolog", func(e *colly.HTMLElement) {
		name := strings.TrimSpace(e.ChildText(".nekrolog-name"))
		media := e.ChildAttr("a.nekrolog-download", "href")
		if name == "" || media == "" {
			a.Logger.Warn("scrape.wrzecionko.incomplete_entry", "url", e.Request.URL.String())
			return
		}
		// entries carry the śp. marker in the heading; the hash must not
		// depend on it
		name = strings.TrimPrefix(name, "śp.")
		listings = append(listings, Listing{
			Source:      a.Source(),
			Name:        strings.TrimSpace(name),
			FuneralText: strings.TrimSpace(e.ChildText(".nekrolog-date")),
			MediaURL:    e.Request.AbsoluteURL(media),
			DetailURL:   e.Request.URL.String(),
		})
	})

	if err := visit(ctx, c, a.BaseURL+"/nekrologi"); err != nil {
		return nil, err
	}
	a.Logger.Info("scrape.wrzecionko.ok", "listings", len(listings))
	return listings, nil
}
