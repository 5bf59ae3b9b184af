package gdelt

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const PLATFORM_URL = "https://api.gdeltproject.org"

type Client struct {
	HTTP    *whttp.Client
	BaseURL string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL}
}

func (c *Client) Name() string { return "GDELT" }

// Search queries the GDELT DOC 2.0 article list, newest first.
func (c *Client) Search(ctx context.Context, query string) ([]radar.NewsItem, error) {
	params := url.Values{
		"query":      {query},
		"mode":       {"ArtList"},
		"sort":       {"DateDesc"},
		"maxrecords": {"12"},
		"format":     {"json"},
	}
	u := fmt.Sprintf("%s/api/v2/doc/doc?%s", c.BaseURL, params.Encode())

	data, err := c.HTTP.GetJSON(ctx, u, 0)
	if err != nil {
		return nil, err
	}

	articles := data.Get("articles").Array()
	items := make([]radar.NewsItem, 0, len(articles))
	for _, a := range articles {
		title := a.Get("title").String()
		if title == "" {
			title = "Sem titulo"
		}

		source := a.Get("domain").String()
		if source == "" {
			source = a.Get("sourcecommonname").String()
		}
		if source == "" {
			source = "Fonte nao informada"
		}

		items = append(items, radar.NewsItem{
			Title:  title,
			URL:    a.Get("url").String(),
			Source: source,
			Date:   ParseSeenDate(a.Get("seendate").String()),
		})
	}
	return items, nil
}

// ParseSeenDate reads GDELT's compact UTC timestamp ("20240131T120000Z" or
// plain "20240131120000"). Anything that does not carry fourteen digits
// normalizes to an absent date.
func ParseSeenDate(raw string) *time.Time {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 14 {
		return nil
	}

	t, err := time.ParseInLocation("20060102150405", digits[:14], time.UTC)
	if err != nil {
		return nil
	}
	return &t
}
