package scan

import (
	"context"

	"webradar/pkg/query"
	"webradar/pkg/radar"
)

// fetchWikiContext tries each variant against the Portuguese encyclopedia
// first and falls back to English when nothing related came back. The first
// variant with any signal wins.
func (s *Scanner) fetchWikiContext(ctx context.Context, term string) (*radar.WikiContext, error) {
	for _, variant := range query.Variants(term) {
		wiki, err := s.wikiForLang(ctx, variant, "pt")
		if err != nil {
			return nil, err
		}

		if len(wiki.Related) == 0 {
			wiki, err = s.wikiForLang(ctx, variant, "en")
			if err != nil {
				return nil, err
			}
		}

		if len(wiki.Related) > 0 || wiki.Summary != nil {
			return wiki, nil
		}
	}

	return &radar.WikiContext{Related: []radar.WikiPage{}}, nil
}

func (s *Scanner) wikiForLang(ctx context.Context, term, lang string) (*radar.WikiContext, error) {
	pages, err := s.Wikipedia.Search(ctx, term, lang)
	if err != nil {
		return nil, err
	}

	wiki := &radar.WikiContext{Related: pages}
	if len(pages) == 0 {
		return wiki, nil
	}

	summary, err := s.Wikipedia.Summary(ctx, pages[0].Title, lang)
	if err != nil {
		// The related list is still worth rendering without a lead extract.
		summary = &radar.WikiSummary{
			Title:   pages[0].Title,
			Extract: "Resumo indisponivel no momento.",
			URL:     pages[0].URL,
		}
	}
	wiki.Summary = summary
	return wiki, nil
}
