package scrape

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gocolly/colly"

	"github.com/parte-archiv/parte-tracker/constants"
)

// Pshajdukova reads the Czech funeral home site pshajdukova.cz. Notices sit
// on a single overview page as cards linking to a scanned parte image.
type Pshajdukova struct {
	BaseURL   string
	UserAgent string
	Logger    *slog.Logger
}

func NewPshajdukova(baseURL, userAgent string, logger *slog.Logger) *Pshajdukova {
	if baseURL == "" {
		baseURL = "https://www.pshajdukova.cz"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pshajdukova{BaseURL: baseURL, UserAgent: userAgent, Logger: logger}
}

func (a *Pshajdukova) Source() constants.Source {
	return constants.SourcePshajdukova
}

func (a *Pshajdukova) Fetch(ctx context.Context) ([]Listing, error) {
	c := newCollector(a.UserAgent)

	var listings []Listing
	c.OnHTML("div.parte-card", func(e *colly.HTMLElement) {
		name := strings.TrimSpace(e.ChildText("h3.parte-name"))
		media := e.ChildAttr("a.parte-file", "href")
		if name == "" || media == "" {
			a.Logger.Warn("scrape.pshajdukova.incomplete_card", "url", e.Request.URL.String())
			return
		}
		listings = append(listings, Listing{
			Source:      a.Source(),
			Name:        name,
			FuneralText: strings.TrimSpace(e.ChildText("span.parte-funeral")),
			MediaURL:    e.Request.AbsoluteURL(media),
			DetailURL:   e.Request.URL.String(),
		})
	})

	if err := visit(ctx, c, a.BaseURL+"/parte"); err != nil {
		return nil, err
	}
	a.Logger.Info("scrape.pshajdukova.ok", "listings", len(listings))
	return listings, nil
}
