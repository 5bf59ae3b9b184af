package scan

import "webradar/pkg/radar"

// OpenSearchResult is the open-search category payload: merged items plus the
// labels of provider calls that failed along the way.
type OpenSearchResult struct {
	Items          []radar.NewsItem `json:"items"`
	ProviderErrors []string         `json:"providerErrors,omitempty"`
}

// DiscussionsResult is the discussions category payload. RedditBlocked marks
// that every Reddit call was rejected, so the list is Hacker News only.
type DiscussionsResult struct {
	Items         []radar.DiscussionItem `json:"items"`
	RedditBlocked bool                   `json:"redditBlocked,omitempty"`
}

// Sink receives category renders and status lines during a scan. A category
// that failed entirely is rendered with a nil payload and failed=true; render
// methods return how many items were actually displayed so the scanner can
// report an aggregate total. The scanner serializes all calls for one run, so
// implementations need no locking of their own.
type Sink interface {
	RenderOpenSearch(res *OpenSearchResult, failed bool) int
	RenderNews(items []radar.NewsItem, failed bool) int
	RenderWiki(wiki *radar.WikiContext, failed bool) int
	RenderDiscussions(res *DiscussionsResult, failed bool) int
	RenderProfiles(profiles []radar.Profile, failed bool) int
	RenderJudicial(items []radar.NewsItem, failed bool) int

	Status(message string)
	JudicialStatus(message string)
}
