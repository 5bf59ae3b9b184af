package bingweb

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/rss"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const (
	PLATFORM_URL = "https://www.bing.com"

	feedTimeout = 11 * time.Second
)

// Client is the primary transport of the bounded web-search feed chain.
type Client struct {
	HTTP    *whttp.Client
	BaseURL string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL}
}

func (c *Client) Name() string { return "Bing Search" }

// Search queries the general Bing web search RSS feed. Zero items is a
// legitimate terminal value for narrow site-scoped queries, so the caller
// decides whether to fall through to a secondary transport.
func (c *Client) Search(ctx context.Context, query string) ([]radar.NewsItem, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=rss", c.BaseURL, url.QueryEscape(query))

	body, err := c.HTTP.Get(ctx, u, feedTimeout)
	if err != nil {
		return nil, err
	}

	parser := &rss.Parser{}
	feed, err := parser.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: bing search feed: %v", whttp.ErrMalformed, err)
	}

	items := make([]radar.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		link := radar.UnwrapRedirect(strings.TrimSpace(it.Link), "bing.com", "url")

		title := radar.StripTags(it.Title)
		if title == "" {
			title = "Resultado sem titulo"
		}

		source := radar.HostLabel(link)
		if source == "" {
			source = c.Name()
		}

		items = append(items, radar.NewsItem{
			Source:      source,
			Title:       title,
			URL:         link,
			Description: radar.StripTags(it.Description),
			Date:        it.PubDateParsed,
		})
	}
	return items, nil
}
