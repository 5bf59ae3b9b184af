package gdelt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webradar/pkg/whttp"
)

func TestParseSeenDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"20240131T120000Z", "2024-01-31 12:00:00"},
		{"20250601100000", "2025-06-01 10:00:00"},
		{"2024-01-31 12:00:00", "2024-01-31 12:00:00"},
		{"2024", ""},
		{"lixo", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := ParseSeenDate(tt.raw)
		if tt.want == "" {
			if got != nil {
				t.Errorf("ParseSeenDate(%q) = %v, want nil", tt.raw, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseSeenDate(%q) = nil", tt.raw)
			continue
		}
		if s := got.UTC().Format("2006-01-02 15:04:05"); s != tt.want {
			t.Errorf("ParseSeenDate(%q) = %s, want %s", tt.raw, s, tt.want)
		}
	}
}

func TestSearchMapsArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("mode") != "ArtList" {
			t.Errorf("mode = %q", r.URL.Query().Get("mode"))
		}
		w.Write([]byte(`{"articles":[
			{"title":"Acme no exterior","url":"https://ex.com/a","domain":"ex.com","seendate":"20240131T120000Z"},
			{"title":"","url":"https://ex.com/b","domain":"","sourcecommonname":"Exemplo"},
			{"url":"https://ex.com/c"}
		]}`))
	}))
	defer srv.Close()

	h, err := whttp.NewClient("")
	if err != nil {
		t.Fatal(err)
	}
	c := New(h)
	c.BaseURL = srv.URL

	items, err := c.Search(context.Background(), "acme")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Source != "ex.com" || items[0].Title != "Acme no exterior" {
		t.Fatalf("first item = %+v", items[0])
	}
	if items[0].Date == nil || !items[0].Date.Equal(time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("first date = %v", items[0].Date)
	}
	if items[1].Title != "Sem titulo" || items[1].Source != "Exemplo" {
		t.Fatalf("second item fallbacks = %+v", items[1])
	}
	if items[2].Source != "Fonte nao informada" || items[2].Date != nil {
		t.Fatalf("third item fallbacks = %+v", items[2])
	}
}
