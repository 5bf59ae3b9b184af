package scan

import (
	"context"

	"webradar/pkg/query"
	"webradar/pkg/radar"
)

const newsStop = 8

// fetchLatestNews pulls the GDELT article list per variant. GDELT is the
// category's only provider, so a transport failure fails the category.
func (s *Scanner) fetchLatestNews(ctx context.Context, term string) ([]radar.NewsItem, error) {
	var merged []radar.NewsItem

	for _, variant := range query.Variants(term) {
		items, err := s.GDELT.Search(ctx, variant)
		if err != nil {
			return nil, err
		}

		merged = radar.DedupeBy(append(merged, items...), radar.NewsIdentity)
		if len(merged) >= newsStop {
			break
		}
	}

	radar.SortByDateDesc(merged, newsDate)
	if len(merged) > newsStop {
		merged = merged[:newsStop]
	}
	return merged, nil
}
