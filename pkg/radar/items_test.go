package radar

import (
	"reflect"
	"testing"
	"time"
)

func TestNewsIdentityStripsQueryAndFoldsTitle(t *testing.T) {
	a := NewsItem{Title: "Acme  Corp", URL: "https://example.com/a?utm_source=x"}
	b := NewsItem{Title: "acme corp", URL: "https://example.com/a?ref=y"}

	if NewsIdentity(a) != NewsIdentity(b) {
		t.Fatalf("identities differ: %q vs %q", NewsIdentity(a), NewsIdentity(b))
	}
}

func TestNewsIdentityDistinctURLs(t *testing.T) {
	a := NewsItem{Title: "Acme", URL: "https://example.com/a"}
	b := NewsItem{Title: "Acme", URL: "https://example.com/b"}

	if NewsIdentity(a) == NewsIdentity(b) {
		t.Fatal("different urls must not share an identity")
	}
}

func TestDedupeByIsIdempotent(t *testing.T) {
	items := []NewsItem{
		{Title: "One", URL: "https://example.com/1"},
		{Title: "Two", URL: "https://example.com/2"},
		{Title: "one", URL: "https://example.com/1?x=1"},
	}

	once := DedupeBy(items, NewsIdentity)
	if len(once) != 2 {
		t.Fatalf("expected 2 unique items, got %d", len(once))
	}

	twice := DedupeBy(append(once, once...), NewsIdentity)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merging a list with itself changed it: %#v vs %#v", once, twice)
	}
}

func TestSortByDateDescMissingDatesLast(t *testing.T) {
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	items := []NewsItem{
		{Title: "undated"},
		{Title: "old", Date: &old},
		{Title: "recent", Date: &recent},
	}

	SortByDateDesc(items, func(it NewsItem) *time.Time { return it.Date })

	gotOrder := []string{items[0].Title, items[1].Title, items[2].Title}
	wantOrder := []string{"recent", "old", "undated"}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Fatalf("order = %v, want %v", gotOrder, wantOrder)
	}
}

func TestSortByDateDescStableForUndated(t *testing.T) {
	items := []NewsItem{
		{Title: "first"},
		{Title: "second"},
	}

	SortByDateDesc(items, func(it NewsItem) *time.Time { return it.Date })

	if items[0].Title != "first" || items[1].Title != "second" {
		t.Fatalf("undated items were reordered: %v", items)
	}
}

func TestHostLabel(t *testing.T) {
	if got := HostLabel("https://www.Example.com/path"); got != "example.com" {
		t.Fatalf("HostLabel = %q", got)
	}
	if got := HostLabel("::not a url"); got != "" {
		t.Fatalf("HostLabel on garbage = %q, want empty", got)
	}
}

func TestRootDomain(t *testing.T) {
	if got := RootDomain("https://news.site.co.uk/story"); got != "site.co.uk" {
		t.Fatalf("RootDomain = %q", got)
	}
}
