package linkedin

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const PLATFORM_URL = "https://www.linkedin.com"

// Page scrapes are a latency luxury; keep the budget tight.
const scrapeTimeout = 4500 * time.Millisecond

var (
	reProfileImage = regexp.MustCompile(`(?i)https://media\.licdn\.com/[^"'\\\s>]*(?:company-logo|profile-displayphoto)[^"'\\\s>]*`)
	reAnyMedia     = regexp.MustCompile(`(?i)https://media\.licdn\.com/[^"'\\\s>]+`)
)

type Client struct {
	HTTP    *whttp.Client
	BaseURL string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL}
}

// AvatarFromPage fetches a public profile page and pulls the best image it
// can find: the og:image meta tag, a recognizable CDN photo URL, or any
// LinkedIn media URL. Every failure path yields "", never an error; a
// missing avatar is not worth a failed profile.
func (c *Client) AvatarFromPage(ctx context.Context, profileURL string) string {
	parsed := radar.ParseLinkedInURL(profileURL)
	if parsed == nil {
		return ""
	}

	body, err := c.HTTP.Get(ctx, c.BaseURL+"/"+parsed.Type+"/"+parsed.Slug, scrapeTimeout)
	if err != nil {
		return ""
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(body)); err == nil {
		if content, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok && content != "" {
			return content
		}
	}

	if m := reProfileImage.FindString(body); m != "" {
		return m
	}
	return reAnyMedia.FindString(body)
}
