package github

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const PLATFORM_URL = "https://api.github.com"

type Client struct {
	HTTP    *whttp.Client
	BaseURL string

	// Optional personal access token; unauthenticated search works but is
	// tightly rate limited.
	Token string
}

func New(h *whttp.Client, token string) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL, Token: token}
}

func (c *Client) Name() string { return "GitHub" }

// SearchUsers looks up accounts matching the term by login or display name,
// then enriches each hit with a concurrent detail fetch. A failed detail
// fetch degrades that profile to search-score metadata, it does not fail the
// batch.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]radar.Profile, error) {
	params := url.Values{
		"q":        {query + " in:login in:name"},
		"per_page": {"5"},
	}
	u := fmt.Sprintf("%s/search/users?%s", c.BaseURL, params.Encode())

	data, err := c.HTTP.GetJSON(ctx, u, 0, c.headers()...)
	if err != nil {
		return nil, err
	}

	users := data.Get("items").Array()
	details := make([]gjson.Result, len(users))

	var wg sync.WaitGroup
	for i, user := range users {
		detailURL := user.Get("url").String()
		if detailURL == "" {
			continue
		}
		wg.Add(1)
		go func(i int, detailURL string) {
			defer wg.Done()
			if detail, err := c.HTTP.GetJSON(ctx, detailURL, 0, c.headers()...); err == nil {
				details[i] = detail
			}
		}(i, detailURL)
	}
	wg.Wait()

	profiles := make([]radar.Profile, 0, len(users))
	for i, user := range users {
		detail := details[i]

		name := detail.Get("name").String()
		if name == "" {
			name = user.Get("login").String()
		}

		note := fmt.Sprintf("Score %.1f", user.Get("score").Float())
		var date *time.Time
		if detail.Exists() {
			note = fmt.Sprintf("%d seguidores | %d repositorios",
				detail.Get("followers").Int(), detail.Get("public_repos").Int())
			if created := detail.Get("created_at").String(); created != "" {
				if t, err := time.Parse(time.RFC3339, created); err == nil {
					date = &t
				}
			}
		}

		profiles = append(profiles, radar.Profile{
			Platform: c.Name(),
			Name:     name,
			URL:      user.Get("html_url").String(),
			Avatar:   user.Get("avatar_url").String(),
			Date:     date,
			Note:     note,
		})
	}

	radar.SortByDateDesc(profiles, func(p radar.Profile) *time.Time { return p.Date })
	return profiles, nil
}

func (c *Client) headers() []whttp.Header {
	headers := []whttp.Header{{Name: "Accept", Value: "application/vnd.github+json"}}
	if c.Token != "" {
		headers = append(headers, whttp.Header{Name: "Authorization", Value: "Bearer " + c.Token})
	}
	return headers
}
