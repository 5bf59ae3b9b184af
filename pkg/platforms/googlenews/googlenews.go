package googlenews

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
	PLATFORM_URL = "https://news.google.com"

	// Restricts the search feed to the last month.
	recencyOperator = " when:30d"

	feedTimeout = 11 * time.Second
)

type Client struct {
	HTTP    *whttp.Client
	BaseURL string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL}
}

func (c *Client) Name() string { return "Google News" }

// Search queries the Google News search feed for one variant. A feed that
// does not parse is an error; a feed with zero items is a valid empty result.
func (c *Client) Search(ctx context.Context, query string) ([]radar.NewsItem, error) {
	u := fmt.Sprintf("%s/rss/search?q=%s&hl=pt-BR&gl=BR&ceid=BR:pt-419",
		c.BaseURL, url.QueryEscape(query+recencyOperator))

	body, err := c.HTTP.Get(ctx, u, feedTimeout)
	if err != nil {
		return nil, err
	}

	parser := &rss.Parser{}
	feed, err := parser.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: google news feed: %v", whttp.ErrMalformed, err)
	}

	items := make([]radar.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		source := c.Name()
		if it.Source != nil && strings.TrimSpace(it.Source.Title) != "" {
			source = strings.TrimSpace(it.Source.Title)
		}

		title := radar.StripTags(it.Title)
		if title == "" {
			title = "Sem titulo"
		}

		items = append(items, radar.NewsItem{
			Source:      source,
			Title:       title,
			URL:         strings.TrimSpace(it.Link),
			Description: radar.StripTags(it.Description),
			Date:        it.PubDateParsed,
		})
	}
	return items, nil
}
