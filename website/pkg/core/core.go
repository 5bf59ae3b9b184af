package core

import (
	"fmt"
	"net/http"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" // Using . import for convenience with html tags

	"webradar/internal/utils"
	"webradar/pkg/platforms/youtube"
	"webradar/pkg/scan"
	"webradar/pkg/storage"
	"webradar/pkg/whttp"
)

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	DevMode       bool
	ListenAddr    string
	Domain        string
	Proxy         string
	CacheTTL      time.Duration
	GitHubToken   string
	YouTubeAPIKey string
}

var (
	scanner      *scan.Scanner
	channels     *youtube.Client
	cache        *storage.Cache
	serverDomain string
)

// Run builds the scanner stack and serves the radar UI plus the JSON API.
func Run(cfg ServerConfig) error {
	client, err := whttp.NewClient(cfg.Proxy)
	if err != nil {
		return fmt.Errorf("failed to build http client: %w", err)
	}
	resolver, err := whttp.NewResolverClient(cfg.Proxy, 2)
	if err != nil {
		return fmt.Errorf("failed to build resolver client: %w", err)
	}

	scanner = scan.NewScanner(client, cfg.GitHubToken)
	channels = youtube.New(resolver, cfg.YouTubeAPIKey)

	cache, err = storage.Open(cfg.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to open session cache: %w", err)
	}

	serverDomain = cfg.Domain

	http.HandleFunc("/", homeHandler)
	http.HandleFunc("/scan", scanPageHandler)
	http.HandleFunc("/api/v1/scan", apiScanHandler)
	http.HandleFunc("/api/v1/judicial", apiJudicialHandler)
	http.HandleFunc("/api/v1/channel/", apiChannelVideosHandler)
	http.HandleFunc("/api/v1/resolve-channel", apiResolveChannelHandler)
	http.HandleFunc("/static/favicon.svg", faviconHandler)

	// Serve static files
	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("website/static"))))

	listenAddr := cfg.ListenAddr
	if cfg.DevMode && listenAddr == ":8080" {
		listenAddr = "localhost:7000"
	}
	utils.Log.Info("Starting server on ", listenAddr)

	return http.ListenAndServe(listenAddr, nil)
}

// Page layout component
func PageLayout(title, description string, content g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(Lang("pt-BR"),
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				Meta(Name("description"), Content(description)),
				TitleEl(g.Text(title)), // Using TitleEl to avoid conflict
				Script(Src("https://cdn.tailwindcss.com")),
				Script(g.Raw(`tailwind.config={theme:{extend:{colors:{'radar-dark':'#06201f','radar-teal':'#0b3a3a','radar-accent':'#12b5a5','radar-surface':'#0e2b2a'}}}}`)),
				Link(Rel("shortcut icon"), Href("/static/favicon.svg")),
			),
			Body(Class("bg-radar-dark text-gray-100 min-h-screen font-sans"),
				Div(Class("max-w-5xl mx-auto px-4 py-8"),
					navbar(),
					content,
					footer(),
				),
			),
		),
	})
}

func navbar() g.Node {
	return Header(Class("mb-8"),
		A(Href("/"), Class("text-2xl font-bold text-radar-accent"), g.Text("WebRadar")),
		P(Class("text-sm text-gray-400"), g.Text("Radar de sinais publicos: noticias, discussoes, perfis e processos.")),
	)
}

func footer() g.Node {
	return Footer(Class("mt-12 pt-4 border-t border-radar-teal text-xs text-gray-500"),
		g.Text("Os dados vem de fontes publicas e podem estar incompletos."),
	)
}

func searchForm(term string) g.Node {
	return Form(Action("/scan"), Method("get"), Class("flex gap-2 mb-8"),
		Input(Type("text"), Name("q"), Value(term), Placeholder("Nome, empresa ou termo..."),
			Class("flex-1 rounded bg-radar-surface border border-radar-teal px-3 py-2 text-gray-100")),
		Button(Type("submit"), Class("rounded bg-radar-accent px-4 py-2 font-semibold text-radar-dark"),
			g.Text("Escanear")),
	)
}

func homeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page := PageLayout("WebRadar", "Radar de sinais publicos da web aberta",
		Div(
			searchForm(""),
			P(Class("text-gray-400"), g.Text("Digite um termo com pelo menos 2 caracteres para iniciar o radar.")),
		),
	)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = page.Render(w)
}

// scanPageHandler runs a blocking scan and renders the settled categories
// server-side. The incremental status lines of the run collapse into the
// final one.
func scanPageHandler(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	collector := &scan.Collector{}
	scanner.Scan(r.Context(), term, collector)

	page := PageLayout("WebRadar: "+term, "Resultado do radar para "+term,
		Div(
			searchForm(term),
			P(Class("text-sm text-gray-400 mb-6"), g.Text(collector.FinalStatus())),
			resultsView(collector),
		),
	)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = page.Render(w)
}

func faviconHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	fmt.Fprint(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><circle cx="16" cy="16" r="14" fill="#0b3a3a"/><circle cx="16" cy="16" r="8" fill="none" stroke="#12b5a5" stroke-width="2"/><circle cx="16" cy="16" r="2" fill="#12b5a5"/></svg>`)
}
