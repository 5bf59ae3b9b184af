package scan

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"webradar/pkg/platforms"
	"webradar/pkg/query"
	"webradar/pkg/radar"
)

const (
	openSearchStop = 6
	openSearchCap  = 12
)

// fetchOpenSearch merges Google News and Bing News across query variants.
// Variants are tried in priority order; once the accumulator holds enough
// unique items the remaining variants are skipped. An entirely empty result
// is a category failure.
func (s *Scanner) fetchOpenSearch(ctx context.Context, term string) (*OpenSearchResult, error) {
	var (
		merged         []radar.NewsItem
		providerErrors []string
	)

	for _, variant := range query.Variants(term) {
		items, errLabels := s.openSearchVariant(ctx, variant)
		merged = radar.DedupeBy(append(merged, items...), radar.NewsIdentity)
		providerErrors = appendUnique(providerErrors, errLabels...)

		if len(merged) >= openSearchStop {
			break
		}
	}

	radar.SortByDateDesc(merged, newsDate)
	if len(merged) > openSearchCap {
		merged = merged[:openSearchCap]
	}
	if len(merged) == 0 {
		return nil, errors.New("sem noticias de provedores abertos")
	}

	return &OpenSearchResult{Items: merged, ProviderErrors: providerErrors}, nil
}

// openSearchVariant issues both news providers concurrently and settles them
// independently; a provider failure contributes zero items and an error label
// like "Google News (<variant>)".
func (s *Scanner) openSearchVariant(ctx context.Context, variant string) ([]radar.NewsItem, []string) {
	providers := []platforms.NewsSearcher{s.GoogleNews, s.BingNews}
	results := make([][]radar.NewsItem, len(providers))
	errs := make([]error, len(providers))

	var wg sync.WaitGroup
	for i, p := range providers {
		wg.Add(1)
		go func(i int, p platforms.NewsSearcher) {
			defer wg.Done()
			results[i], errs[i] = p.Search(ctx, variant)
		}(i, p)
	}
	wg.Wait()

	var items []radar.NewsItem
	var errLabels []string
	for i, p := range providers {
		if errs[i] != nil {
			errLabels = append(errLabels, fmt.Sprintf("%s (%s)", p.Name(), variant))
			continue
		}
		items = append(items, results[i]...)
	}

	radar.SortByDateDesc(items, newsDate)
	return radar.DedupeBy(items, radar.NewsIdentity), errLabels
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
