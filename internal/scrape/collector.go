package scrape

import (
	"context"

	"github.com/gocolly/colly"
)

const defaultUserAgent = "parte-tracker/1.0 (+https://github.com/parte-archiv/parte-tracker)"

func newCollector(userAgent string) *colly.Collector {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.MaxDepth(1),
	)
}

// visit runs a synchronous collector visit, honoring context cancellation
// between setup and the request.
func visit(ctx context.Context, c *colly.Collector, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.Visit(url)
}
