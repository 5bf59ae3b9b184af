// Package radar defines the canonical item shapes shared by every provider,
// the identity keys used for deduplication, and the ordering rules applied
// to merged category results.
package radar

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/weppos/publicsuffix-go/publicsuffix"
)

// NewsItem is the canonical shape for news-like results (open search, GDELT
// news, judicial records). Date is nil when the provider gave none or gave
// garbage; absent dates sort last.
type NewsItem struct {
	Source      string     `json:"source"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// DiscussionItem is a forum/aggregator post with popularity signals.
type DiscussionItem struct {
	Source    string     `json:"source"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Author    string     `json:"author,omitempty"`
	Score     int        `json:"score"`
	Comments  int        `json:"comments"`
	Subreddit string     `json:"subreddit,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	RankScore float64    `json:"rankScore"`
}

// Profile is a public account on some platform.
type Profile struct {
	Platform         string     `json:"platform"`
	Name             string     `json:"name"`
	URL              string     `json:"url"`
	Avatar           string     `json:"avatar,omitempty"`
	AvatarCandidates []string   `json:"avatarCandidates,omitempty"`
	Note             string     `json:"note,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
}

// WikiPage is one related encyclopedia page.
type WikiPage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// WikiSummary is the lead extract of the best-matching page.
type WikiSummary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	URL     string `json:"url"`
}

// WikiContext bundles the encyclopedia category result.
type WikiContext struct {
	Summary *WikiSummary `json:"summary,omitempty"`
	Related []WikiPage   `json:"related"`
}

// Video is one entry from a channel feed.
type Video struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	URL          string     `json:"url"`
	Thumbnail    string     `json:"thumbnail,omitempty"`
	ChannelID    string     `json:"channelId"`
	ChannelTitle string     `json:"channelTitle"`
	Published    *time.Time `json:"publishedAt,omitempty"`
}

// ChannelFeed is the resolved feed of one channel.
type ChannelFeed struct {
	ChannelID    string  `json:"channelId"`
	ChannelTitle string  `json:"channelTitle"`
	ChannelURL   string  `json:"channelUrl,omitempty"`
	Videos       []Video `json:"videos"`
}

// NewsIdentity is the dedupe key for news-like items: whitespace-collapsed
// lowercase title plus the URL with its query string stripped.
func NewsIdentity(it NewsItem) string {
	title := strings.Join(strings.Fields(strings.ToLower(it.Title)), " ")
	u := strings.ToLower(it.URL)
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i]
	}
	return title + "|" + u
}

// DiscussionIdentity is the dedupe key for discussion items.
func DiscussionIdentity(it DiscussionItem) string {
	return it.Source + "|" + it.URL
}

// ProfileIdentity is the dedupe key for profiles.
func ProfileIdentity(p Profile) string {
	return p.Platform + "|" + p.URL
}

// DedupeBy keeps the first item for each key, preserving order. Merging a
// list with itself is therefore a no-op.
func DedupeBy[T any](items []T, key func(T) string) []T {
	seen := make(map[string]bool, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	return out
}

// SortByDateDesc orders items newest first; items without a date go last.
// The sort is stable so provider order breaks ties.
func SortByDateDesc[T any](items []T, date func(T) *time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return dateUnix(date(items[i])) > dateUnix(date(items[j]))
	})
}

func dateUnix(t *time.Time) int64 {
	if t == nil {
		return -1 << 62
	}
	return t.UnixMilli()
}

// HostLabel returns the hostname of a URL without the www prefix, or ""
// when the URL does not parse.
func HostLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// RootDomain reduces a URL's host to its registered domain
// ("news.site.co.uk" -> "site.co.uk"). Falls back to the bare host when the
// public-suffix lookup fails.
func RootDomain(rawURL string) string {
	host := HostLabel(rawURL)
	if host == "" {
		return ""
	}
	domain, err := publicsuffix.Domain(host)
	if err != nil {
		return host
	}
	return domain
}
