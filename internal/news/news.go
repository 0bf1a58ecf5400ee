// Package news fetches recent headlines for a ticker from Yahoo Finance's
// per-symbol RSS feed. Headline failures never block report generation; the
// caller drops the appendix and moves on.
package news

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/finlens/ratioscope/pkg/logger"
)

// DefaultFeedURL is Yahoo's per-ticker headline feed; %s is the symbol.
const DefaultFeedURL = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"

// Headline is one feed item, trimmed to what the report renders.
type Headline struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// Fetcher retrieves and parses the headline feed.
type Fetcher struct {
	parser  *gofeed.Parser
	feedURL string
	log     *logger.Logger
}

// NewFetcher creates a headline fetcher. An empty feedURL selects the Yahoo
// default.
func NewFetcher(feedURL string, log *logger.Logger) *Fetcher {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Fetcher{
		parser:  gofeed.NewParser(),
		feedURL: feedURL,
		log:     log,
	}
}

// Headlines returns up to limit headlines for the ticker, newest first.
// limit <= 0 returns everything the feed carried.
func (f *Fetcher) Headlines(ctx context.Context, ticker string, limit int) ([]Headline, error) {
	feedAddr := fmt.Sprintf(f.feedURL, url.QueryEscape(strings.ToUpper(ticker)))

	feed, err := f.parser.ParseURLWithContext(feedAddr, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse headline feed for %s: %w", ticker, err)
	}

	headlines := make([]Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		h := Headline{
			Title:  strings.TrimSpace(item.Title),
			URL:    item.Link,
			Source: strings.TrimSpace(feed.Title),
		}
		if item.PublishedParsed != nil {
			h.PublishedAt = *item.PublishedParsed
		}
		headlines = append(headlines, h)
	}

	sort.SliceStable(headlines, func(i, j int) bool {
		return headlines[i].PublishedAt.After(headlines[j].PublishedAt)
	})

	if limit > 0 && len(headlines) > limit {
		headlines = headlines[:limit]
	}

	f.log.WithField("ticker", ticker).Debugf("fetched %d headlines", len(headlines))
	return headlines, nil
}
