package cmd

import (
	"fmt"
	"time"

	"webradar/pkg/radar"
	"webradar/pkg/scan"
)

// printerSink writes category results to stdout as they settle. Status lines
// go to stderr-style logging only in verbose runs, so piped output stays
// machine-friendly.
type printerSink struct {
	verbose bool
}

func (p *printerSink) header(title string) {
	fmt.Printf("\n== %s ==\n", title)
}

func printDate(t *time.Time) string {
	if t == nil {
		return "data desconhecida"
	}
	return t.Format("02/01/2006")
}

func (p *printerSink) printNewsItems(items []radar.NewsItem) int {
	for _, it := range items {
		fmt.Printf("- %s\n  %s (%s) %s\n", it.Title, it.Source, printDate(it.Date), it.URL)
	}
	return len(items)
}

func (p *printerSink) RenderOpenSearch(res *scan.OpenSearchResult, failed bool) int {
	p.header("Busca aberta")
	if failed || res == nil {
		fmt.Println("Provedores de busca aberta indisponiveis no momento.")
		return 0
	}
	count := p.printNewsItems(res.Items)
	if len(res.ProviderErrors) > 0 {
		fmt.Printf("Consultas com erro: %d.\n", len(res.ProviderErrors))
	}
	return count
}

func (p *printerSink) RenderNews(items []radar.NewsItem, failed bool) int {
	p.header("Noticias")
	if failed {
		fmt.Println("Noticias indisponiveis no momento.")
		return 0
	}
	if len(items) == 0 {
		fmt.Println("Nenhuma noticia recente encontrada.")
		return 0
	}
	return p.printNewsItems(items)
}

func (p *printerSink) RenderWiki(wiki *radar.WikiContext, failed bool) int {
	p.header("Contexto enciclopedico")
	if failed || wiki == nil {
		fmt.Println("Contexto enciclopedico indisponivel.")
		return 0
	}

	count := 0
	if wiki.Summary != nil {
		fmt.Printf("%s\n%s\n%s\n", wiki.Summary.Title, wiki.Summary.Extract, wiki.Summary.URL)
		count++
	}
	for _, page := range wiki.Related {
		fmt.Printf("- %s - %s\n  %s\n", page.Title, page.Description, page.URL)
		count++
	}
	if count == 0 {
		fmt.Println("Nenhuma pagina relacionada encontrada.")
	}
	return count
}

func (p *printerSink) RenderDiscussions(res *scan.DiscussionsResult, failed bool) int {
	p.header("Discussao tecnica")
	if failed || res == nil || len(res.Items) == 0 {
		fmt.Println("Nenhuma discussao recente encontrada.")
		return 0
	}
	if res.RedditBlocked {
		fmt.Println("Reddit bloqueou esta consulta nesta rede. Exibindo outras fontes disponiveis.")
	}
	for _, it := range res.Items {
		fmt.Printf("- %s\n  %s | %d pontos | %d comentarios | %s\n  %s\n",
			it.Title, it.Source, it.Score, it.Comments, printDate(it.Date), it.URL)
	}
	return len(res.Items)
}

func (p *printerSink) RenderProfiles(profiles []radar.Profile, failed bool) int {
	p.header("Perfis")
	if failed || len(profiles) == 0 {
		fmt.Println("Nenhum perfil publico encontrado.")
		return 0
	}
	for _, profile := range profiles {
		fmt.Printf("- [%s] %s\n  %s\n", profile.Platform, profile.Name, profile.URL)
		if profile.Note != "" {
			fmt.Printf("  %s\n", profile.Note)
		}
	}
	return len(profiles)
}

func (p *printerSink) RenderJudicial(items []radar.NewsItem, failed bool) int {
	p.header("Processos judiciais")
	if failed {
		fmt.Println("Falha ao buscar processos judiciais.")
		return 0
	}
	if len(items) == 0 {
		fmt.Println("Nenhum processo encontrado.")
		return 0
	}
	return p.printNewsItems(items)
}

func (p *printerSink) Status(message string) {
	if p.verbose {
		fmt.Println(message)
	}
}

func (p *printerSink) JudicialStatus(message string) {
	if p.verbose {
		fmt.Println(message)
	}
}
