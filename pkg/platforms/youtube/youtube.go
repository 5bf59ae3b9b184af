package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const (
	PLATFORM_URL = "https://www.youtube.com"
	DATA_API_URL = "https://www.googleapis.com"
)

var (
	reChannelID     = regexp.MustCompile(`^UC[\w-]{10,}$`)
	rePageChannelID = regexp.MustCompile(`"channelId":"(UC[\w-]+)"`)

	ErrNotYouTube  = errors.New("a URL precisa ser do YouTube")
	ErrVideoURL    = errors.New("use a URL do canal, nao de um video")
	ErrNoChannelID = errors.New("channel_id nao identificado para esta URL")
)

type Client struct {
	HTTP    *whttp.Client
	BaseURL string
	APIURL  string

	// Optional Data API key. When present, @handles and legacy usernames
	// resolve through the API instead of a page scrape.
	APIKey string
}

func New(h *whttp.Client, apiKey string) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL, APIURL: DATA_API_URL, APIKey: apiKey}
}

func (c *Client) Name() string { return "YouTube" }

// IsChannelID reports whether the input is already a raw channel id.
func IsChannelID(s string) bool { return reChannelID.MatchString(s) }

// ResolveChannel turns a channel URL, @handle path or /c/ /user/ path into a
// channel id. Bare ids pass through; video-share URLs are rejected.
func (c *Client) ResolveChannel(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if IsChannelID(input) {
		return input, nil
	}

	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("URL invalida: %q", input)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
	case "youtu.be":
		return "", ErrVideoURL
	default:
		return "", ErrNotYouTube
	}

	parts := splitPath(u.Path)
	if len(parts) == 0 {
		return "", ErrNoChannelID
	}

	if parts[0] == "channel" && len(parts) > 1 {
		if !IsChannelID(parts[1]) {
			return "", ErrNoChannelID
		}
		return parts[1], nil
	}

	if c.APIKey != "" {
		if id, err := c.resolveViaAPI(ctx, parts); err == nil && id != "" {
			return id, nil
		}
	}

	return c.resolveViaPage(ctx, parts)
}

// resolveViaAPI resolves @handles and legacy usernames with the channels
// endpoint of the Data API.
func (c *Client) resolveViaAPI(ctx context.Context, parts []string) (string, error) {
	params := url.Values{
		"part": {"id"},
		"key":  {c.APIKey},
	}
	switch {
	case strings.HasPrefix(parts[0], "@"):
		params.Set("forHandle", parts[0])
	case parts[0] == "user" && len(parts) > 1:
		params.Set("forUsername", parts[1])
	default:
		return "", ErrNoChannelID
	}

	data, err := c.HTTP.GetJSON(ctx, fmt.Sprintf("%s/youtube/v3/channels?%s", c.APIURL, params.Encode()), 0)
	if err != nil {
		return "", err
	}
	return data.Get("items.0.id").String(), nil
}

// resolveViaPage fetches the canonical channel page and scrapes the embedded
// channel id.
func (c *Client) resolveViaPage(ctx context.Context, parts []string) (string, error) {
	path := "/" + parts[0]
	if (parts[0] == "c" || parts[0] == "user") && len(parts) > 1 {
		path = "/" + parts[0] + "/" + parts[1]
	}

	html, err := c.HTTP.Get(ctx, c.BaseURL+path, 0)
	if err != nil {
		return "", err
	}

	m := rePageChannelID.FindStringSubmatch(html)
	if m == nil {
		return "", ErrNoChannelID
	}
	return m[1], nil
}

// ChannelFeed fetches and parses the channel's upload feed.
func (c *Client) ChannelFeed(ctx context.Context, channelID string) (*radar.ChannelFeed, error) {
	if !IsChannelID(channelID) {
		return nil, fmt.Errorf("channel_id invalido: %q", channelID)
	}

	body, err := c.HTTP.Get(ctx, fmt.Sprintf("%s/feeds/videos.xml?channel_id=%s", c.BaseURL, url.QueryEscape(channelID)), 0)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: channel feed: %v", whttp.ErrMalformed, err)
	}

	channelTitle := strings.TrimSpace(feed.Title)
	if channelTitle == "" {
		channelTitle = channelID
	}

	out := &radar.ChannelFeed{
		ChannelID:    channelID,
		ChannelTitle: channelTitle,
		ChannelURL:   PLATFORM_URL + "/channel/" + channelID,
	}

	for _, entry := range feed.Items {
		videoID := extensionValue(entry, "yt", "videoId")
		if videoID == "" {
			continue
		}

		title := strings.TrimSpace(entry.Title)
		if title == "" {
			title = "Video sem titulo"
		}

		link := strings.TrimSpace(entry.Link)
		if link == "" {
			link = PLATFORM_URL + "/watch?v=" + videoID
		}

		published := entry.PublishedParsed
		if published == nil {
			published = entry.UpdatedParsed
		}

		out.Videos = append(out.Videos, radar.Video{
			ID:           videoID,
			Title:        title,
			URL:          link,
			Thumbnail:    thumbnail(entry, videoID),
			ChannelID:    channelID,
			ChannelTitle: channelTitle,
			Published:    published,
		})
	}

	return out, nil
}

func extensionValue(item *gofeed.Item, namespace, name string) string {
	if exts, ok := item.Extensions[namespace]; ok {
		if vals, ok := exts[name]; ok && len(vals) > 0 {
			return strings.TrimSpace(vals[0].Value)
		}
	}
	return ""
}

func thumbnail(item *gofeed.Item, videoID string) string {
	if groups, ok := item.Extensions["media"]; ok {
		for _, group := range groups["group"] {
			for _, thumb := range group.Children["thumbnail"] {
				if u := thumb.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}
	return "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg"
}

func splitPath(p string) []string {
	var parts []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}
