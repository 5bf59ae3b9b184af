package bingnews

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

type Client struct {
	HTTP    *whttp.Client
	BaseURL string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL}
}

func (c *Client) Name() string { return "Bing News" }

// Search queries the Bing News RSS feed for one variant. Result links are
// wrapped in a bing.com redirector; each is unwrapped one level.
func (c *Client) Search(ctx context.Context, query string) ([]radar.NewsItem, error) {
	u := fmt.Sprintf("%s/news/search?q=%s&format=rss", c.BaseURL, url.QueryEscape(query))

	body, err := c.HTTP.Get(ctx, u, feedTimeout)
	if err != nil {
		return nil, err
	}

	parser := &rss.Parser{}
	feed, err := parser.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: bing news feed: %v", whttp.ErrMalformed, err)
	}

	items := make([]radar.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		link := radar.UnwrapRedirect(strings.TrimSpace(it.Link), "bing.com", "url")

		source := radar.HostLabel(link)
		if source == "" {
			source = c.Name()
		}

		title := radar.StripTags(it.Title)
		if title == "" {
			title = "Sem titulo"
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
