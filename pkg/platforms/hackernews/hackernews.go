package hackernews

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const PLATFORM_URL = "https://hn.algolia.com"

type Client struct {
	HTTP    *whttp.Client
	BaseURL string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL}
}

func (c *Client) Name() string { return "Hacker News" }

// Search queries the Algolia by-date index for recent stories.
func (c *Client) Search(ctx context.Context, query string) ([]radar.DiscussionItem, error) {
	params := url.Values{
		"query":       {query},
		"tags":        {"story"},
		"hitsPerPage": {"8"},
	}
	u := fmt.Sprintf("%s/api/v1/search_by_date?%s", c.BaseURL, params.Encode())

	data, err := c.HTTP.GetJSON(ctx, u, 0)
	if err != nil {
		return nil, err
	}

	hits := data.Get("hits").Array()
	items := make([]radar.DiscussionItem, 0, len(hits))
	for _, hit := range hits {
		title := hit.Get("title").String()
		if title == "" {
			title = hit.Get("story_title").String()
		}
		if title == "" {
			title = "Sem titulo"
		}

		link := hit.Get("url").String()
		if link == "" {
			link = hit.Get("story_url").String()
		}
		if link == "" {
			link = "https://news.ycombinator.com/item?id=" + hit.Get("objectID").String()
		}

		author := hit.Get("author").String()
		if author == "" {
			author = "autor desconhecido"
		}

		var date *time.Time
		if created := hit.Get("created_at").String(); created != "" {
			if t, err := time.Parse(time.RFC3339, created); err == nil {
				date = &t
			}
		}

		items = append(items, radar.DiscussionItem{
			Source:   c.Name(),
			Title:    title,
			URL:      link,
			Author:   author,
			Score:    int(hit.Get("points").Int()),
			Comments: int(hit.Get("num_comments").Int()),
			Date:     date,
		})
	}

	radar.SortByDateDesc(items, func(it radar.DiscussionItem) *time.Time { return it.Date })
	return items, nil
}
