package wikidata

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const PLATFORM_URL = "https://www.wikidata.org"

// Wikidata properties mapping an entity to social accounts.
const (
	propTwitter         = "P2002"
	propInstagram       = "P2003"
	propLinkedInCompany = "P4264"
	propRedditUser      = "P4265"
	propLinkedInPerson  = "P6634"
	propImage           = "P18"
	propLogo            = "P154"
)

type Client struct {
	HTTP    *whttp.Client
	BaseURL string
}

func New(h *whttp.Client) *Client {
	return &Client{HTTP: h, BaseURL: PLATFORM_URL}
}

func (c *Client) Name() string { return "Wikidata" }

// SocialProfiles resolves the term to knowledge-base entities and expands
// their social-account claims into platform profiles.
func (c *Client) SocialProfiles(ctx context.Context, query string) ([]radar.Profile, error) {
	searchParams := url.Values{
		"action":   {"wbsearchentities"},
		"search":   {query},
		"language": {"en"},
		"limit":    {"5"},
		"format":   {"json"},
	}
	data, err := c.HTTP.GetJSON(ctx, fmt.Sprintf("%s/w/api.php?%s", c.BaseURL, searchParams.Encode()), 0)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, hit := range data.Get("search").Array() {
		if id := hit.Get("id").String(); id != "" {
			ids = append(ids, id)
		}
		if len(ids) == 5 {
			break
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	getParams := url.Values{
		"action":    {"wbgetentities"},
		"ids":       {strings.Join(ids, "|")},
		"props":     {"labels|descriptions|claims"},
		"languages": {"pt|en"},
		"format":    {"json"},
	}
	details, err := c.HTTP.GetJSON(ctx, fmt.Sprintf("%s/w/api.php?%s", c.BaseURL, getParams.Encode()), 0)
	if err != nil {
		return nil, err
	}

	var profiles []radar.Profile
	details.Get("entities").ForEach(func(_, entity gjson.Result) bool {
		profiles = append(profiles, entityProfiles(entity)...)
		return true
	})

	return radar.DedupeBy(profiles, radar.ProfileIdentity), nil
}

func entityProfiles(entity gjson.Result) []radar.Profile {
	label := pickLanguage(entity.Get("labels"), "pt", "en")
	if label == "" {
		label = "Entidade"
	}
	description := pickLanguage(entity.Get("descriptions"), "pt", "en")

	note := label + " (Wikidata)"
	if description != "" {
		note = label + " - " + description
	}

	avatar := commonsAvatar(entity)

	var profiles []radar.Profile
	add := func(platform, name, profileURL, avatarURL string) {
		profiles = append(profiles, radar.Profile{
			Platform: platform,
			Name:     name,
			URL:      profileURL,
			Avatar:   avatarURL,
			Note:     note,
		})
	}

	for _, handle := range claimValues(entity, propTwitter) {
		username := strings.TrimSpace(strings.TrimPrefix(handle, "@"))
		if username == "" {
			continue
		}
		add("X/Twitter", "@"+username, "https://x.com/"+url.PathEscape(username), avatar)
	}

	for _, value := range claimValues(entity, propRedditUser) {
		account := strings.TrimSpace(value)
		account = strings.TrimPrefix(account, "u/")
		account = strings.TrimPrefix(account, "U/")
		if account == "" {
			continue
		}
		add("Reddit", "u/"+account, "https://www.reddit.com/user/"+url.PathEscape(account), avatar)
	}

	for _, value := range claimValues(entity, propLinkedInPerson) {
		if p := radar.NormalizeLinkedInIdentity(value, "in"); p != nil {
			add("LinkedIn", label, p.URL, avatar)
		}
	}
	for _, value := range claimValues(entity, propLinkedInCompany) {
		if p := radar.NormalizeLinkedInIdentity(value, "company"); p != nil {
			add("LinkedIn", label, p.URL, avatar)
		}
	}

	for _, value := range claimValues(entity, propInstagram) {
		p := radar.NormalizeInstagramHandle(value)
		if p == nil {
			continue
		}
		add("Instagram", "@"+p.Slug, p.URL,
			"https://unavatar.io/instagram/"+url.PathEscape(p.Slug))
	}

	return profiles
}

// claimValues collects the string values of one property's claims.
func claimValues(entity gjson.Result, property string) []string {
	var values []string
	for _, claim := range entity.Get("claims." + property).Array() {
		value := claim.Get("mainsnak.datavalue.value")
		if value.Type == gjson.String && strings.TrimSpace(value.String()) != "" {
			values = append(values, strings.TrimSpace(value.String()))
		}
	}
	return values
}

func pickLanguage(section gjson.Result, langs ...string) string {
	for _, lang := range langs {
		if v := section.Get(lang + ".value").String(); v != "" {
			return v
		}
	}
	return ""
}

// commonsAvatar turns an image or logo claim into a Wikimedia Commons file
// path URL.
func commonsAvatar(entity gjson.Result) string {
	var file string
	for _, prop := range []string{propImage, propLogo} {
		if values := claimValues(entity, prop); len(values) > 0 {
			file = values[0]
			break
		}
	}

	file = strings.TrimSpace(strings.TrimPrefix(file, "File:"))
	if file == "" {
		return ""
	}
	return "https://commons.wikimedia.org/wiki/Special:FilePath/" + url.PathEscape(file)
}
