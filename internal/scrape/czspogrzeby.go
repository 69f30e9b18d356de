package scrape

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"github.com/parte-archiv/parte-tracker/constants"
)

// CzsPogrzeby reads czs-pogrzeby.pl. Its funeral schedule is a table, one
// row per ceremony, with the notice link in the last cell.
type CzsPogrzeby struct {
	BaseURL   string
	UserAgent string
	Logger    *slog.Logger
}

func NewCzsPogrzeby(baseURL, userAgent string, logger *slog.Logger) *CzsPogrzeby {
	if baseURL == "" {
		baseURL = "https://czs-pogrzeby.pl"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CzsPogrzeby{BaseURL: baseURL, UserAgent: userAgent, Logger: logger}
}

func (a *CzsPogrzeby) Source() constants.Source {
	return constants.SourceCzsPogrzeby
}

func (a *CzsPogrzeby) Fetch(ctx context.Context) ([]Listing, error) {
	c := newCollector(a.UserAgent)

	var listings []Listing
	c.OnHTML("table.pogrzeby tbody tr", func(e *colly.HTMLElement) {
		cells := e.DOM.Find("td")
		if cells.Length() < 3 {
			return
		}
		name := cellText(cells, 0)
		funeral := cellText(cells, 1)
		href, _ := cells.Last().Find("a").Attr("href")
		if name == "" || href == "" {
			a.Logger.Warn("scrape.czspogrzeby.incomplete_row", "url", e.Request.URL.String())
			return
		}
		listings = append(listings, Listing{
			Source:      a.Source(),
			Name:        name,
			FuneralText: funeral,
			MediaURL:    e.Request.AbsoluteURL(href),
			DetailURL:   e.Request.URL.String(),
		})
	})

	if err := visit(ctx, c, a.BaseURL+"/aktualne-pogrzeby"); err != nil {
		return nil, err
	}
	a.Logger.Info("scrape.czspogrzeby.ok", "listings", len(listings))
	return listings, nil
}

func cellText(cells *goquery.Selection, i int) string {
	return strings.TrimSpace(cells.Eq(i).Text())
}
