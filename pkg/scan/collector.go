package scan

import "webradar/pkg/radar"

// Collector is a Sink that accumulates everything a run renders. It backs
// the JSON API and the CLI output, which want the settled result of a run
// rather than incremental updates.
type Collector struct {
	OpenSearch     *OpenSearchResult
	OpenSearchFail bool
	News           []radar.NewsItem
	NewsFail       bool
	Wiki           *radar.WikiContext
	WikiFail       bool
	Discussions    *DiscussionsResult
	Profiles       []radar.Profile
	Judicial       []radar.NewsItem
	JudicialFail   bool

	StatusLines         []string
	JudicialStatusLines []string
}

func (c *Collector) RenderOpenSearch(res *OpenSearchResult, failed bool) int {
	c.OpenSearch, c.OpenSearchFail = res, failed
	if failed || res == nil {
		return 0
	}
	return len(res.Items)
}

func (c *Collector) RenderNews(items []radar.NewsItem, failed bool) int {
	c.News, c.NewsFail = items, failed
	if failed {
		return 0
	}
	return len(items)
}

func (c *Collector) RenderWiki(wiki *radar.WikiContext, failed bool) int {
	c.Wiki, c.WikiFail = wiki, failed
	if failed || wiki == nil {
		return 0
	}
	count := len(wiki.Related)
	if wiki.Summary != nil {
		count++
	}
	return count
}

func (c *Collector) RenderDiscussions(res *DiscussionsResult, failed bool) int {
	c.Discussions = res
	if failed || res == nil {
		return 0
	}
	return len(res.Items)
}

func (c *Collector) RenderProfiles(profiles []radar.Profile, failed bool) int {
	c.Profiles = profiles
	if failed {
		return 0
	}
	return len(profiles)
}

func (c *Collector) RenderJudicial(items []radar.NewsItem, failed bool) int {
	c.Judicial, c.JudicialFail = items, failed
	if failed {
		return 0
	}
	return len(items)
}

func (c *Collector) Status(message string) {
	c.StatusLines = append(c.StatusLines, message)
}

func (c *Collector) JudicialStatus(message string) {
	c.JudicialStatusLines = append(c.JudicialStatusLines, message)
}

// FinalStatus returns the last status line of the run, if any.
func (c *Collector) FinalStatus() string {
	if len(c.StatusLines) == 0 {
		return ""
	}
	return c.StatusLines[len(c.StatusLines)-1]
}

// FinalJudicialStatus returns the last judicial status line, if any.
func (c *Collector) FinalJudicialStatus() string {
	if len(c.JudicialStatusLines) == 0 {
		return ""
	}
	return c.JudicialStatusLines[len(c.JudicialStatusLines)-1]
}
