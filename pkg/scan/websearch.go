package scan

import (
	"context"

	"webradar/pkg/radar"
	"webradar/pkg/platforms"
)

// webSearch queries the primary web transport and, only when it succeeds with
// zero results, tries the secondary one. A hard failure of the primary is a
// failure of the whole query; an empty secondary result is just an empty
// result, not an error.
func webSearch(ctx context.Context, primary, secondary platforms.NewsSearcher, query string) ([]radar.NewsItem, error) {
	items, err := primary.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 || secondary == nil {
		return items, nil
	}
	return secondary.Search(ctx, query)
}
