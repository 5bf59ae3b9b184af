package scan

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"webradar/pkg/platforms/bingnews"
	"webradar/pkg/platforms/bingweb"
	"webradar/pkg/platforms/bluesky"
	"webradar/pkg/platforms/duckduckgo"
	"webradar/pkg/platforms/gdelt"
	"webradar/pkg/platforms/github"
	"webradar/pkg/platforms/googlenews"
	"webradar/pkg/platforms/hackernews"
	"webradar/pkg/platforms/linkedin"
	"webradar/pkg/platforms/reddit"
	"webradar/pkg/platforms/wikidata"
	"webradar/pkg/platforms/wikipedia"
	"webradar/pkg/radar"
	"webradar/pkg/whttp"
)

// Scanner owns one client per platform and the run controllers for the two
// scan surfaces (the general radar and the judicial lookup). The zero value
// is not usable; build one with NewScanner.
type Scanner struct {
	GoogleNews *googlenews.Client
	BingNews   *bingnews.Client
	BingWeb    *bingweb.Client
	DuckDuckGo *duckduckgo.Client
	GDELT      *gdelt.Client
	Wikipedia  *wikipedia.Client
	HackerNews *hackernews.Client
	Reddit     *reddit.Client
	GitHub     *github.Client
	Bluesky    *bluesky.Client
	Wikidata   *wikidata.Client
	LinkedIn   *linkedin.Client

	Runs         Runner
	JudicialRuns Runner

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewScanner(h *whttp.Client, githubToken string) *Scanner {
	return &Scanner{
		GoogleNews: googlenews.New(h),
		BingNews:   bingnews.New(h),
		BingWeb:    bingweb.New(h),
		DuckDuckGo: duckduckgo.New(h),
		GDELT:      gdelt.New(h),
		Wikipedia:  wikipedia.New(h),
		HackerNews: hackernews.New(h),
		Reddit:     reddit.New(h),
		GitHub:     github.New(h, githubToken),
		Bluesky:    bluesky.New(h),
		Wikidata:   wikidata.New(h),
		LinkedIn:   linkedin.New(h),
		Now:        time.Now,
	}
}

func (s *Scanner) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Scan runs the six category tasks for term concurrently and streams renders
// and status lines into sink. Submitting a new term cancels the previous run;
// continuations of a superseded run never touch the sink ("last submission
// wins"). Scan returns after all tasks of its own run settle.
func (s *Scanner) Scan(parent context.Context, term string, sink Sink) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < 2 {
		sink.Status("Use pelo menos 2 caracteres.")
		return
	}

	ctx, token := s.Runs.Start(parent)
	started := s.now()

	sink.Status(fmt.Sprintf("Escaneando %q... 0/6 fontes", term))

	var (
		mu         sync.Mutex
		done       int
		failures   int
		totalItems int
	)

	// settle applies one finished task's render under the run gate: stale
	// tokens are discarded before anything reaches the sink.
	settle := func(failed bool, render func() int) {
		mu.Lock()
		defer mu.Unlock()
		if !s.Runs.IsCurrent(token) {
			return
		}
		if failed {
			failures++
		}
		totalItems += render()
		done++
		sink.Status(fmt.Sprintf("Escaneando %q... %d/6 fontes", term, done))
	}

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		res, err := s.fetchOpenSearch(ctx, term)
		settle(err != nil, func() int { return sink.RenderOpenSearch(res, err != nil) })
	}()
	go func() {
		defer wg.Done()
		items, err := s.fetchLatestNews(ctx, term)
		settle(err != nil, func() int { return sink.RenderNews(items, err != nil) })
	}()
	go func() {
		defer wg.Done()
		wiki, err := s.fetchWikiContext(ctx, term)
		settle(err != nil, func() int { return sink.RenderWiki(wiki, err != nil) })
	}()
	go func() {
		defer wg.Done()
		res := s.fetchDiscussions(ctx, term)
		settle(false, func() int { return sink.RenderDiscussions(res, false) })
	}()
	go func() {
		defer wg.Done()
		profiles := s.fetchProfiles(ctx, term)
		settle(false, func() int { return sink.RenderProfiles(profiles, false) })
	}()
	go func() {
		defer wg.Done()
		items := s.fetchJudicial(ctx, term)
		settle(false, func() int { return sink.RenderJudicial(items, false) })
	}()

	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if !s.Runs.IsCurrent(token) {
		return
	}

	elapsed := s.now().Sub(started).Seconds()
	if totalItems == 0 {
		sink.Status(fmt.Sprintf("Nenhum resultado para %q. Tente um termo mais especifico.", term))
		return
	}

	failText := ""
	if failures > 0 {
		failText = fmt.Sprintf(" Fontes com erro: %d.", failures)
	}
	when := s.now().Format("02/01/2006 15:04:05")
	sink.Status(fmt.Sprintf("Radar atualizado (%.1fs) para %q em %s. Itens: %d.%s",
		elapsed, term, when, totalItems, failText))
}

// ScanJudicial runs the judicial lookup on its own surface with its own run
// controller, independent of the general scan.
func (s *Scanner) ScanJudicial(parent context.Context, term string, sink Sink) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < 2 {
		sink.JudicialStatus("Use pelo menos 2 caracteres para buscar processos.")
		return
	}

	ctx, token := s.JudicialRuns.Start(parent)
	started := s.now()

	sink.JudicialStatus(fmt.Sprintf("Buscando processos para %q...", term))

	items := s.fetchJudicial(ctx, term)
	if !s.JudicialRuns.IsCurrent(token) {
		return
	}

	count := sink.RenderJudicial(items, false)
	if count == 0 {
		sink.JudicialStatus(fmt.Sprintf("Nenhum processo encontrado para %q.", term))
		return
	}
	sink.JudicialStatus(fmt.Sprintf("Busca de processos concluida em %.1fs. Itens: %d.",
		s.now().Sub(started).Seconds(), count))
}

func newsDate(it radar.NewsItem) *time.Time { return it.Date }
