package scan

import (
	"context"
	"net/url"
	"sync"
	"time"

	"webradar/pkg/query"
	"webradar/pkg/radar"
)

const (
	profileStop        = 10
	profileCap         = 20
	webProfileCap      = 6
	maxLinkedInScrapes = 4
)

// fetchProfiles merges the identity providers (code hosting, decentralized
// social, knowledge-base claims) per variant, pulling in web-search-derived
// profiles on the first variant or while nothing has matched yet. Provider
// failures are swallowed; the category renders whatever survived.
func (s *Scanner) fetchProfiles(ctx context.Context, term string) []radar.Profile {
	var merged []radar.Profile

	for index, variant := range query.Variants(term) {
		fetchers := []func(context.Context, string) ([]radar.Profile, error){
			s.GitHub.SearchUsers,
			s.Bluesky.SearchActors,
			s.Wikidata.SocialProfiles,
		}
		if index == 0 || len(merged) == 0 {
			fetchers = append(fetchers, func(ctx context.Context, q string) ([]radar.Profile, error) {
				return s.searchEngineSocialProfiles(ctx, q), nil
			})
		}

		results := make([][]radar.Profile, len(fetchers))
		var wg sync.WaitGroup
		for i, fetch := range fetchers {
			wg.Add(1)
			go func(i int, fetch func(context.Context, string) ([]radar.Profile, error)) {
				defer wg.Done()
				profiles, err := fetch(ctx, variant)
				if err == nil {
					results[i] = profiles
				}
			}(i, fetch)
		}
		wg.Wait()

		for _, profiles := range results {
			merged = append(merged, profiles...)
		}
		merged = radar.DedupeBy(merged, radar.ProfileIdentity)

		if len(merged) >= profileStop {
			break
		}
	}

	radar.SortProfiles(merged)
	if len(merged) > profileCap {
		merged = merged[:profileCap]
	}

	return s.hydrateAvatars(ctx, merged)
}

// searchEngineSocialProfiles mines generic web search results for LinkedIn
// and Instagram profile URLs, both from the result URL itself and from URLs
// embedded in titles and descriptions.
func (s *Scanner) searchEngineSocialProfiles(ctx context.Context, term string) []radar.Profile {
	sources := []struct {
		platform string
		query    string
	}{
		{"LinkedIn", term + " site:linkedin.com/company"},
		{"LinkedIn", term + " site:linkedin.com/in"},
		{"LinkedIn", term + " LinkedIn"},
		{"Instagram", term + " site:instagram.com"},
		{"Instagram", term + " Instagram"},
	}

	results := make([][]radar.Profile, len(sources))
	var wg sync.WaitGroup
	for i, source := range sources {
		wg.Add(1)
		go func(i int, platform, q string) {
			defer wg.Done()
			items, err := webSearch(ctx, s.BingWeb, s.DuckDuckGo, q)
			if err != nil {
				return
			}
			results[i] = profilesFromSearchItems(platform, items)
		}(i, source.platform, source.query)
	}
	wg.Wait()

	var merged []radar.Profile
	for _, profiles := range results {
		merged = append(merged, profiles...)
	}

	radar.SortByDateDesc(merged, func(p radar.Profile) *time.Time { return p.Date })
	merged = radar.DedupeBy(merged, radar.ProfileIdentity)
	if len(merged) > webProfileCap {
		merged = merged[:webProfileCap]
	}
	return merged
}

func profilesFromSearchItems(platform string, items []radar.NewsItem) []radar.Profile {
	var out []radar.Profile

	for _, item := range items {
		candidates := []string{item.URL}
		candidates = append(candidates, radar.ExtractProfileURLs(item.Title)...)
		candidates = append(candidates, radar.ExtractProfileURLs(item.Description)...)

		for _, candidate := range radar.DedupeBy(candidates, func(s string) string { return s }) {
			if candidate == "" {
				continue
			}

			var social *radar.SocialProfile
			if platform == "LinkedIn" {
				social = radar.ParseLinkedInURL(candidate)
			} else {
				social = radar.ParseInstagramURL(candidate)
			}
			if social == nil {
				continue
			}

			title := item.Title
			if title == "" {
				title = "Perfil publico"
			}

			name := "@" + social.Slug
			avatar := "https://unavatar.io/instagram/" + url.QueryEscape(social.Slug)
			if platform == "LinkedIn" {
				name = radar.CleanLinkedInTitle(title, social)
				avatar = ""
			}

			source := item.Source
			if source == "" {
				source = "Bing"
			}

			out = append(out, radar.Profile{
				Platform: platform,
				Name:     name,
				URL:      social.URL,
				Avatar:   avatar,
				Date:     item.Date,
				Note:     "Encontrado na busca aberta (" + source + ")",
			})
		}
	}

	return out
}

// hydrateAvatars fills in the avatar candidate chain for every profile,
// scraping LinkedIn pages for at most maxLinkedInScrapes avatar-less entries
// to keep the expensive path bounded.
func (s *Scanner) hydrateAvatars(ctx context.Context, profiles []radar.Profile) []radar.Profile {
	scrapes := 0
	out := make([]radar.Profile, len(profiles))

	var wg sync.WaitGroup
	for i, p := range profiles {
		scrape := p.Platform == "LinkedIn" && p.Avatar == "" && scrapes < maxLinkedInScrapes
		if scrape {
			scrapes++
		}

		wg.Add(1)
		go func(i int, p radar.Profile, scrape bool) {
			defer wg.Done()
			scraped := ""
			if scrape {
				scraped = s.LinkedIn.AvatarFromPage(ctx, p.URL)
			}
			p.AvatarCandidates = radar.AvatarCandidates(p, scraped)
			p.Avatar = p.AvatarCandidates[0]
			out[i] = p
		}(i, p, scrape)
	}
	wg.Wait()

	return out
}
