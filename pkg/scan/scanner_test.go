package scan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

const slowMarker = "lento"

const rssNews = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>feed</title>
<item>
  <title>Resultado um</title>
  <link>https://example.com/um</link>
  <description>descricao um</description>
  <pubDate>Mon, 02 Jun 2025 10:00:00 GMT</pubDate>
  <source url="https://example.com">Fonte Exemplo</source>
</item>
</channel></rss>`

const rssJudicial = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>feed</title>
<item>
  <title>Processo judicial TJSP decide caso X</title>
  <link>https://esaj.tjsp.jus.br/processo/123</link>
  <description>Sentenca publicada pelo tribunal</description>
  <pubDate>Mon, 02 Jun 2025 10:00:00 GMT</pubDate>
</item>
<item>
  <title>Nova loja abre no centro</title>
  <link>https://example.com/loja</link>
  <description>inauguracao</description>
  <pubDate>Mon, 02 Jun 2025 11:00:00 GMT</pubDate>
</item>
</channel></rss>`

// newFakeUpstream serves minimal valid payloads for every provider endpoint
// from one server. Requests whose term carries slowMarker are held until the
// delay elapses or the caller aborts.
func newFakeUpstream(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		term := q.Get("q") + q.Get("query") + q.Get("search")
		if delay > 0 && strings.Contains(term, slowMarker) {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}

		path := r.URL.Path
		switch {
		case strings.Contains(path, "/search/users"):
			w.Write([]byte(`{"items":[{"login":"octo","html_url":"https://github.com/octo","avatar_url":"https://avatars.example/octo.png","score":12.3}]}`))
		case strings.Contains(path, "/search_by_date"):
			w.Write([]byte(`{"hits":[{"title":"HN Post","url":"https://example.com/hn","author":"dev","points":10,"num_comments":2,"created_at":"2025-06-01T10:00:00Z","objectID":"1"}]}`))
		case strings.Contains(path, "/search.json"):
			w.Write([]byte(`{"data":{"children":[{"data":{"title":"Reddit Post","permalink":"/r/test/comments/1/x/","author":"someone","score":5,"num_comments":3,"subreddit_name_prefixed":"r/test","created_utc":1748700000}}]}}`))
		case strings.Contains(path, "/xrpc/app.bsky.actor.searchActors"):
			w.Write([]byte(`{"actors":[{"handle":"octo.bsky.social","displayName":"Octo","description":"dev","indexedAt":"2025-01-01T00:00:00Z"}]}`))
		case strings.Contains(path, "/api/v2/doc/doc"):
			w.Write([]byte(`{"articles":[{"title":"Artigo GDELT","url":"https://example.com/artigo","domain":"example.com","seendate":"20250601100000"}]}`))
		case strings.Contains(path, "/w/api.php") && q.Get("action") == "opensearch":
			w.Write([]byte(`["q",["Pagina"],["Descricao da pagina"],["https://pt.wikipedia.org/wiki/Pagina"]]`))
		case strings.Contains(path, "/w/api.php") && q.Get("action") == "wbsearchentities":
			w.Write([]byte(`{"search":[]}`))
		case strings.Contains(path, "/api/rest_v1/page/summary/"):
			w.Write([]byte(`{"title":"Pagina","extract":"Resumo da pagina.","content_urls":{"desktop":{"page":"https://pt.wikipedia.org/wiki/Pagina"}}}`))
		case strings.Contains(path, "/lite/"):
			w.Write([]byte(`<html><body><a href="https://example.com/ddg">Resultado DDG</a></body></html>`))
		case strings.Contains(path, "/rss/search"), strings.Contains(path, "/news/search"):
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Write([]byte(rssNews))
		case strings.Contains(path, "/search"):
			// Generic web search; judicial-flavored queries get court items.
			w.Header().Set("Content-Type", "application/rss+xml")
			if strings.Contains(term, "processo") || strings.Contains(term, "site:") {
				w.Write([]byte(rssJudicial))
			} else {
				w.Write([]byte(rssNews))
			}
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestScanner(t *testing.T, baseURL string) *Scanner {
	t.Helper()

	client, err := whttp.NewClient("")
	if err != nil {
		t.Fatal(err)
	}

	s := NewScanner(client, "")
	s.GoogleNews.BaseURL = baseURL
	s.BingNews.BaseURL = baseURL
	s.BingWeb.BaseURL = baseURL
	s.DuckDuckGo.BaseURL = baseURL
	s.GDELT.BaseURL = baseURL
	s.Wikipedia.BaseFormat = baseURL + "/%s"
	s.HackerNews.BaseURL = baseURL
	s.Reddit.BaseURL = baseURL
	s.Reddit.FallbackURL = baseURL
	s.GitHub.BaseURL = baseURL
	s.Bluesky.BaseURL = baseURL
	s.Wikidata.BaseURL = baseURL
	s.LinkedIn.BaseURL = baseURL
	return s
}

func TestScanRendersEveryCategory(t *testing.T) {
	srv := newFakeUpstream(t, 0)
	defer srv.Close()

	s := newTestScanner(t, srv.URL)
	collector := &Collector{}
	s.Scan(context.Background(), "empresa acme", collector)

	if collector.OpenSearch == nil || len(collector.OpenSearch.Items) == 0 {
		t.Fatal("open search category empty")
	}
	if len(collector.News) == 0 {
		t.Fatal("news category empty")
	}
	if collector.Wiki == nil || collector.Wiki.Summary == nil {
		t.Fatalf("wiki context missing: %+v", collector.Wiki)
	}
	if collector.Discussions == nil || len(collector.Discussions.Items) < 2 {
		t.Fatalf("expected HN and Reddit discussions, got %+v", collector.Discussions)
	}
	if collector.Discussions.RedditBlocked {
		t.Fatal("reddit should not be flagged as blocked")
	}

	platforms := map[string]bool{}
	for _, p := range collector.Profiles {
		platforms[p.Platform] = true
		if len(p.AvatarCandidates) == 0 || p.Avatar == "" {
			t.Fatalf("profile %q missing avatar chain", p.Name)
		}
	}
	if !platforms["GitHub"] || !platforms["Bluesky"] {
		t.Fatalf("expected GitHub and Bluesky profiles, got %v", platforms)
	}

	final := collector.FinalStatus()
	if !strings.Contains(final, "Radar atualizado") {
		t.Fatalf("final status = %q", final)
	}
}

func TestScanLastSubmissionWins(t *testing.T) {
	srv := newFakeUpstream(t, 300*time.Millisecond)
	defer srv.Close()

	s := newTestScanner(t, srv.URL)
	slow := &Collector{}
	fast := &Collector{}

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		s.Scan(context.Background(), "termo lento", slow)
	}()

	time.Sleep(75 * time.Millisecond)
	s.Scan(context.Background(), "termo rapido", fast)
	<-slowDone

	// The superseded run may only have emitted its opening status line;
	// none of its category renders may have reached the sink.
	if len(slow.StatusLines) != 1 {
		t.Fatalf("stale run leaked status lines: %v", slow.StatusLines)
	}
	if slow.OpenSearch != nil || slow.News != nil || slow.Wiki != nil ||
		slow.Discussions != nil || slow.Profiles != nil || slow.Judicial != nil {
		t.Fatal("stale run leaked category renders")
	}

	if !strings.Contains(fast.FinalStatus(), `"termo rapido"`) {
		t.Fatalf("winning run final status = %q", fast.FinalStatus())
	}
}

func TestScanRejectsShortTerm(t *testing.T) {
	s := newTestScanner(t, "http://127.0.0.1:0")
	collector := &Collector{}
	s.Scan(context.Background(), " a ", collector)

	if got := collector.FinalStatus(); got != "Use pelo menos 2 caracteres." {
		t.Fatalf("status = %q", got)
	}
}

func TestScanJudicialFiltersAndReports(t *testing.T) {
	srv := newFakeUpstream(t, 0)
	defer srv.Close()

	s := newTestScanner(t, srv.URL)
	collector := &Collector{}
	s.ScanJudicial(context.Background(), "empresa acme", collector)

	if len(collector.Judicial) == 0 {
		t.Fatal("expected judicial items")
	}
	for _, item := range collector.Judicial {
		if !isLikelyJudicial(item) {
			t.Fatalf("non-judicial item leaked through the filter: %+v", item)
		}
	}
	if !strings.Contains(collector.FinalJudicialStatus(), "Busca de processos concluida") {
		t.Fatalf("judicial status = %q", collector.FinalJudicialStatus())
	}
}

func TestIsLikelyJudicial(t *testing.T) {
	pass := radar.NewsItem{Title: "Processo judicial TJSP decide caso X"}
	if !isLikelyJudicial(pass) {
		t.Fatal("court-system title must pass the keyword gate")
	}

	fail := radar.NewsItem{Title: "Nova loja abre no centro", Description: "inauguracao"}
	if isLikelyJudicial(fail) {
		t.Fatal("unrelated item must be excluded")
	}

	urlOnly := radar.NewsItem{Title: "Consulta", URL: "https://esaj.tjsp.jus.br/x"}
	if !isLikelyJudicial(urlOnly) {
		t.Fatal("keyword in the URL alone must pass the gate")
	}

	folded := radar.NewsItem{Title: "Sentença publicada"}
	if !isLikelyJudicial(folded) {
		t.Fatal("diacritics must not defeat the gate")
	}
}

func TestDiscussionsDedupeAcrossVariants(t *testing.T) {
	srv := newFakeUpstream(t, 0)
	defer srv.Close()

	s := newTestScanner(t, srv.URL)

	// Both variants return identical posts; the merged list must not repeat.
	res := s.fetchDiscussions(context.Background(), "empresa acme")
	seen := map[string]bool{}
	for _, item := range res.Items {
		key := radar.DiscussionIdentity(item)
		if seen[key] {
			t.Fatalf("duplicate discussion %q", key)
		}
		seen[key] = true
	}
}
