package bluesky

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const (
	// Unauthenticated AppView endpoint.
	PLATFORM_URL = "https://public.api.bsky.app"

	PROFILE_URL = "https://bsky.app/profile/"
)

type Client struct {
	HTTP    *whttp.Client
	BaseURL string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL}
}

func (c *Client) Name() string { return "Bluesky" }

// SearchActors queries the actor search XRPC method and maps handles into
// public profile links.
func (c *Client) SearchActors(ctx context.Context, query string) ([]radar.Profile, error) {
	params := url.Values{
		"q":     {query},
		"limit": {"6"},
	}
	u := fmt.Sprintf("%s/xrpc/app.bsky.actor.searchActors?%s", c.BaseURL, params.Encode())

	data, err := c.HTTP.GetJSON(ctx, u, 0)
	if err != nil {
		return nil, err
	}

	actors := data.Get("actors").Array()
	profiles := make([]radar.Profile, 0, len(actors))
	for _, actor := range actors {
		handle := actor.Get("handle").String()
		if handle == "" {
			continue
		}

		name := actor.Get("displayName").String()
		if name == "" {
			name = handle
		}

		note := handle
		if desc := actor.Get("description").String(); desc != "" {
			note = truncate(desc, 110)
		}

		var date *time.Time
		for _, field := range []string{"createdAt", "indexedAt"} {
			if raw := actor.Get(field).String(); raw != "" {
				if t, err := time.Parse(time.RFC3339, raw); err == nil {
					date = &t
					break
				}
			}
		}

		profiles = append(profiles, radar.Profile{
			Platform: c.Name(),
			Name:     name,
			URL:      PROFILE_URL + url.PathEscape(handle),
			Avatar:   actor.Get("avatar").String(),
			Date:     date,
			Note:     note,
		})
	}

	radar.SortByDateDesc(profiles, func(p radar.Profile) *time.Time { return p.Date })
	return profiles, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
