package wikipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"webradar/pkg/whttp"
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	h, err := whttp.NewClient("")
	if err != nil {
		t.Fatal(err)
	}
	c := New(h)
	c.BaseFormat = srv.URL + "/%s"
	return c
}

func TestSearchMapsParallelArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/pt/") {
			t.Errorf("path = %q, want language prefix", r.URL.Path)
		}
		w.Write([]byte(`["acme",
			["Acme","Acme (desambiguacao)"],
			["Empresa ficticia",""],
			["https://pt.wikipedia.org/wiki/Acme","https://pt.wikipedia.org/wiki/Acme_(desambiguacao)"]]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	pages, err := c.Search(context.Background(), "acme", "pt")
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages", len(pages))
	}
	if pages[0].Title != "Acme" || pages[0].Description != "Empresa ficticia" {
		t.Fatalf("first page = %+v", pages[0])
	}
	if pages[0].URL != "https://pt.wikipedia.org/wiki/Acme" {
		t.Fatalf("first url = %q", pages[0].URL)
	}
	if pages[1].Description != "Sem descricao." {
		t.Fatalf("empty description fallback = %q", pages[1].Description)
	}
}

func TestSummaryFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/api/rest_v1/page/summary/") {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	s, err := c.Summary(context.Background(), "Acme", "pt")
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "Acme" {
		t.Fatalf("title fallback = %q", s.Title)
	}
	if s.Extract != "Sem resumo disponivel." {
		t.Fatalf("extract fallback = %q", s.Extract)
	}
}

func TestSummaryMapsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title":"Acme","extract":"A Acme e uma empresa.","content_urls":{"desktop":{"page":"https://pt.wikipedia.org/wiki/Acme"}}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	s, err := c.Summary(context.Background(), "Acme", "pt")
	if err != nil {
		t.Fatal(err)
	}
	if s.Extract != "A Acme e uma empresa." || s.URL != "https://pt.wikipedia.org/wiki/Acme" {
		t.Fatalf("summary = %+v", s)
	}
}
