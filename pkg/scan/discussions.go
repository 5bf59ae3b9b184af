package scan

import (
	"context"
	"sync"

	"webradar/pkg/query"
	"webradar/pkg/radar"
)

const (
	discussionStop = 10
	discussionCap  = 12
)

// fetchDiscussions merges Hacker News and Reddit per variant with a
// settle-all strategy: either provider may fail without aborting the other.
// A Reddit rejection flags the payload so the renderer can explain the gap.
// The category itself never fails; the worst case is an empty list.
func (s *Scanner) fetchDiscussions(ctx context.Context, term string) *DiscussionsResult {
	var (
		merged        []radar.DiscussionItem
		redditBlocked bool
	)

	for _, variant := range query.Variants(term) {
		var (
			wg          sync.WaitGroup
			hnItems     []radar.DiscussionItem
			redditItems []radar.DiscussionItem
			hnErr       error
			redditErr   error
		)

		wg.Add(2)
		go func() {
			defer wg.Done()
			hnItems, hnErr = s.HackerNews.Search(ctx, variant)
		}()
		go func() {
			defer wg.Done()
			redditItems, redditErr = s.Reddit.Search(ctx, variant)
		}()
		wg.Wait()

		if redditErr != nil {
			redditBlocked = true
		}
		if hnErr != nil {
			hnItems = nil
		}
		if redditErr != nil {
			redditItems = nil
		}

		merged = radar.DedupeBy(append(merged, append(hnItems, redditItems...)...), radar.DiscussionIdentity)
		if len(merged) >= discussionStop {
			break
		}
	}

	ranked := radar.RankDiscussions(merged, s.now())
	if len(ranked) > discussionCap {
		ranked = ranked[:discussionCap]
	}

	return &DiscussionsResult{Items: ranked, RedditBlocked: redditBlocked}
}
