package scan

import (
	"context"
	"strings"
	"sync"

	"webradar/pkg/query"
	"webradar/pkg/radar"
)

const (
	judicialStop        = 12
	judicialCap         = 12
	judicialMaxVariants = 3
)

// The underlying search providers have no native legal-record filter, so the
// category layers a keyword gate on top of site-scoped queries. Substring
// match over the folded text, so "tj" also catches "tjsp".
var judicialKeywords = []string{
	"processo", "judicial", "tribunal", "acordao", "sentenca", "jusbrasil",
	"pje", "esaj", "trf", "trt", "tj", "stj", "stf",
}

// fetchJudicial searches court-system domains for the term. The raw term is
// tried before its variants; every query failure is swallowed, so the worst
// case is an empty list.
func (s *Scanner) fetchJudicial(ctx context.Context, term string) []radar.NewsItem {
	variants := radar.DedupeBy(append([]string{term}, query.Variants(term)...), strings.ToLower)
	if len(variants) > judicialMaxVariants {
		variants = variants[:judicialMaxVariants]
	}

	var merged []radar.NewsItem
	for _, variant := range variants {
		queries := []string{
			variant + " processo judicial",
			variant + " site:jusbrasil.com.br/processos",
			variant + " site:pje.jus.br",
			variant + " site:esaj.tjsp.jus.br",
			variant + " site:tribunal",
		}

		results := make([][]radar.NewsItem, len(queries))
		var wg sync.WaitGroup
		for i, q := range queries {
			wg.Add(1)
			go func(i int, q string) {
				defer wg.Done()
				items, err := webSearch(ctx, s.BingWeb, s.DuckDuckGo, q)
				if err != nil {
					return
				}
				results[i] = items
			}(i, q)
		}
		wg.Wait()

		for _, items := range results {
			for _, item := range items {
				if isLikelyJudicial(item) {
					merged = append(merged, item)
				}
			}
		}
		merged = radar.DedupeBy(merged, radar.NewsIdentity)

		if len(merged) >= judicialStop {
			break
		}
	}

	radar.SortByDateDesc(merged, newsDate)
	if len(merged) > judicialCap {
		merged = merged[:judicialCap]
	}
	return merged
}

// isLikelyJudicial is a boolean precision gate, not a ranking signal: the
// item must mention at least one court-system keyword somewhere in its
// title, description or URL, diacritic-insensitive.
func isLikelyJudicial(item radar.NewsItem) bool {
	text := query.Fold(item.Title + " " + item.Description + " " + item.URL)
	for _, keyword := range judicialKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
