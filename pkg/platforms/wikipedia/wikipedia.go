package wikipedia

import (
	"context"
	"fmt"
	"net/url"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

// BaseFormat is interpolated with a language code ("pt", "en").
const DEFAULT_BASE_FORMAT = "https://%s.wikipedia.org"

type Client struct {
	HTTP       *whttp.Client
	BaseFormat string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseFormat: DEFAULT_BASE_FORMAT}
}

func (c *Client) Name() string { return "Wikipedia" }

// Search runs an opensearch title lookup on one language edition and maps
// the parallel arrays of the response into related-page records.
func (c *Client) Search(ctx context.Context, query, lang string) ([]radar.WikiPage, error) {
	params := url.Values{
		"action":    {"opensearch"},
		"search":    {query},
		"limit":     {"6"},
		"namespace": {"0"},
		"format":    {"json"},
	}
	u := fmt.Sprintf(c.BaseFormat+"/w/api.php?%s", lang, params.Encode())

	data, err := c.HTTP.GetJSON(ctx, u, 0)
	if err != nil {
		return nil, err
	}

	titles := data.Get("1").Array()
	descriptions := data.Get("2").Array()
	links := data.Get("3").Array()

	pages := make([]radar.WikiPage, 0, len(titles))
	for i, title := range titles {
		page := radar.WikiPage{
			Title:       title.String(),
			Description: "Sem descricao.",
		}
		if i < len(descriptions) && descriptions[i].String() != "" {
			page.Description = descriptions[i].String()
		}
		if i < len(links) {
			page.URL = links[i].String()
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Summary fetches the lead extract for a page title from the REST API.
func (c *Client) Summary(ctx context.Context, title, lang string) (*radar.WikiSummary, error) {
	u := fmt.Sprintf(c.BaseFormat+"/api/rest_v1/page/summary/%s", lang, url.PathEscape(title))

	data, err := c.HTTP.GetJSON(ctx, u, 0)
	if err != nil {
		return nil, err
	}

	summary := &radar.WikiSummary{
		Title:   data.Get("title").String(),
		Extract: data.Get("extract").String(),
		URL:     data.Get("content_urls.desktop.page").String(),
	}
	if summary.Title == "" {
		summary.Title = title
	}
	if summary.Extract == "" {
		summary.Extract = "Sem resumo disponivel."
	}
	return summary, nil
}
