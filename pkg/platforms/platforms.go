// Package platforms hosts one adapter per external source. Every adapter
// takes a query variant plus the caller's context and returns canonical
// items or fails; a structurally invalid payload is a failure, an empty
// result set is not.
package platforms

import (
	"context"

	"webradar/pkg/radar"
)

// NewsSearcher is the shape shared by the web-search-via-feed providers, so
// the orchestrator can chain a secondary transport behind a primary one.
type NewsSearcher interface {
	Name() string
	Search(ctx context.Context, query string) ([]radar.NewsItem, error)
}
