package duckduckgo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const PLATFORM_URL = "https://lite.duckduckgo.com"

// Client is the secondary transport of the web-search feed chain. The Lite
// frontend serves plain HTML with redirector-wrapped anchors.
type Client struct {
	HTTP    *whttp.Client
	BaseURL string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL}
}

func (c *Client) Name() string { return "DuckDuckGo" }

func (c *Client) Search(ctx context.Context, query string) ([]radar.NewsItem, error) {
	u := fmt.Sprintf("%s/lite/?q=%s", c.BaseURL, url.QueryEscape(query))

	body, err := c.HTTP.Get(ctx, u, 0)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: duckduckgo lite page: %v", whttp.ErrMalformed, err)
	}

	base, _ := url.Parse(c.BaseURL)

	var items []radar.NewsItem
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		link := resolveRedirect(base, href)
		title := strings.Join(strings.Fields(sel.Text()), " ")
		if link == "" || title == "" {
			return
		}

		source := radar.HostLabel(link)
		if source == "" {
			source = c.Name()
		}

		items = append(items, radar.NewsItem{
			Source: source,
			Title:  title,
			URL:    link,
		})
	})

	return radar.DedupeBy(items, radar.NewsIdentity), nil
}

// resolveRedirect absolutizes an anchor href against the Lite frontend and
// unwraps the uddg redirect parameter when present. Unparseable hrefs yield
// "" so the anchor is skipped, not the whole page.
func resolveRedirect(base *url.URL, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)

	if strings.Contains(strings.ToLower(resolved.Hostname()), "duckduckgo.com") {
		if target := resolved.Query().Get("uddg"); target != "" {
			return target
		}
	}
	return resolved.String()
}
