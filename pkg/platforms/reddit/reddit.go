package reddit

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const (
	PLATFORM_URL = "https://www.reddit.com"

	// Reddit intermittently blocks datacenter IPs on the www host; the old
	// frontend keeps serving the same JSON. One fallback, no backoff.
	FALLBACK_URL = "https://old.reddit.com"
)

type Client struct {
	HTTP        *whttp.Client
	BaseURL     string
	FallbackURL string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL, FallbackURL: FALLBACK_URL}
}

func (c *Client) Name() string { return "Reddit" }

// Search queries the public search endpoint, newest first. When the primary
// host fails, the fallback host is tried once; if both fail the category
// reports Reddit as blocked.
func (c *Client) Search(ctx context.Context, query string) ([]radar.DiscussionItem, error) {
	params := url.Values{
		"q":        {query},
		"sort":     {"new"},
		"limit":    {"8"},
		"t":        {"all"},
		"raw_json": {"1"},
	}

	data, err := c.HTTP.GetJSON(ctx, fmt.Sprintf("%s/search.json?%s", c.BaseURL, params.Encode()), 0)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		data, err = c.HTTP.GetJSON(ctx, fmt.Sprintf("%s/search.json?%s", c.FallbackURL, params.Encode()), 0)
		if err != nil {
			return nil, fmt.Errorf("reddit indisponivel: %w", err)
		}
	}

	children := data.Get("data.children").Array()
	items := make([]radar.DiscussionItem, 0, len(children))
	for _, child := range children {
		post := child.Get("data")

		link := fmt.Sprintf("%s/search/?q=%s&sort=new", PLATFORM_URL, url.QueryEscape(query))
		if permalink := post.Get("permalink").String(); permalink != "" {
			link = PLATFORM_URL + permalink
		}

		items = append(items, radar.DiscussionItem{
			Source:    c.Name(),
			Title:     stringOr(post.Get("title"), "Sem titulo"),
			URL:       link,
			Author:    stringOr(post.Get("author"), "autor desconhecido"),
			Score:     int(post.Get("score").Int()),
			Comments:  int(post.Get("num_comments").Int()),
			Subreddit: stringOr(post.Get("subreddit_name_prefixed"), "r/unknown"),
			Date:      unixDate(post.Get("created_utc")),
		})
	}

	radar.SortByDateDesc(items, func(it radar.DiscussionItem) *time.Time { return it.Date })
	return items, nil
}

func stringOr(r gjson.Result, fallback string) string {
	if s := r.String(); s != "" {
		return s
	}
	return fallback
}

func unixDate(r gjson.Result) *time.Time {
	if !r.Exists() || r.Float() <= 0 {
		return nil
	}
	t := time.Unix(int64(r.Float()), 0).UTC()
	return &t
}
