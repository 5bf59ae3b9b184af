package core

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"webradar/pkg/radar"
	"webradar/pkg/scan"
)

func resultsView(c *scan.Collector) g.Node {
	return Div(Class("grid gap-8"),
		openSearchSection(c),
		newsSection(c),
		wikiSection(c),
		discussionsSection(c),
		profilesSection(c),
		judicialSection(c),
	)
}

func section(title string, body g.Node) g.Node {
	return Section(
		H2(Class("text-lg font-semibold text-radar-accent mb-3"), g.Text(title)),
		body,
	)
}

func emptyBox(message string) g.Node {
	return Div(Class("rounded border border-radar-teal bg-radar-surface px-4 py-3 text-sm text-gray-400"),
		g.Text(message))
}

func dateLabel(t *time.Time) string {
	if t == nil {
		return "data desconhecida"
	}
	return t.Format("02/01/2006")
}

func newsCard(item radar.NewsItem) g.Node {
	return Div(Class("rounded border border-radar-teal bg-radar-surface p-4"),
		A(Href(item.URL), Target("_blank"), Rel("noopener"),
			Class("font-medium text-gray-100 hover:text-radar-accent"), g.Text(item.Title)),
		g.If(item.Description != "",
			P(Class("mt-1 text-sm text-gray-400"), g.Text(item.Description))),
		P(Class("mt-2 text-xs text-gray-500"), g.Text(item.Source+" | "+dateLabel(item.Date))),
	)
}

func openSearchSection(c *scan.Collector) g.Node {
	if c.OpenSearchFail || c.OpenSearch == nil {
		return section("Busca aberta", emptyBox("Provedores de busca aberta indisponiveis no momento."))
	}

	body := Div(Class("grid gap-3"),
		g.Group(g.Map(c.OpenSearch.Items, newsCard)),
		g.If(len(c.OpenSearch.ProviderErrors) > 0,
			P(Class("text-xs text-gray-500"),
				g.Text(fmt.Sprintf("Consultas com erro: %d.", len(c.OpenSearch.ProviderErrors))))),
	)
	return section("Busca aberta", body)
}

func newsSection(c *scan.Collector) g.Node {
	if c.NewsFail {
		return section("Noticias", emptyBox("Noticias indisponiveis no momento."))
	}
	if len(c.News) == 0 {
		return section("Noticias", emptyBox("Nenhuma noticia recente encontrada."))
	}
	return section("Noticias", Div(Class("grid gap-3"), g.Group(g.Map(c.News, newsCard))))
}

func wikiSection(c *scan.Collector) g.Node {
	if c.WikiFail || c.Wiki == nil {
		return section("Contexto enciclopedico", emptyBox("Contexto enciclopedico indisponivel."))
	}
	if c.Wiki.Summary == nil && len(c.Wiki.Related) == 0 {
		return section("Contexto enciclopedico", emptyBox("Nenhuma pagina relacionada encontrada."))
	}

	var nodes []g.Node
	if c.Wiki.Summary != nil {
		nodes = append(nodes, Div(Class("rounded border border-radar-teal bg-radar-surface p-4"),
			A(Href(c.Wiki.Summary.URL), Target("_blank"), Rel("noopener"),
				Class("font-medium text-gray-100 hover:text-radar-accent"), g.Text(c.Wiki.Summary.Title)),
			P(Class("mt-1 text-sm text-gray-400"), g.Text(c.Wiki.Summary.Extract)),
		))
	}
	if len(c.Wiki.Related) > 0 {
		nodes = append(nodes, Ul(Class("list-disc pl-5 text-sm text-gray-300"),
			g.Group(g.Map(c.Wiki.Related, func(p radar.WikiPage) g.Node {
				return Li(
					A(Href(p.URL), Target("_blank"), Rel("noopener"),
						Class("hover:text-radar-accent"), g.Text(p.Title)),
					g.Text(" - "+p.Description),
				)
			}))))
	}
	return section("Contexto enciclopedico", Div(Class("grid gap-3"), g.Group(nodes)))
}

func discussionsSection(c *scan.Collector) g.Node {
	res := c.Discussions
	if res == nil || len(res.Items) == 0 {
		return section("Discussao tecnica", emptyBox("Nenhuma discussao recente encontrada."))
	}

	var nodes []g.Node
	if res.RedditBlocked {
		nodes = append(nodes, emptyBox("Reddit bloqueou esta consulta nesta rede. Exibindo outras fontes disponiveis."))
	}
	nodes = append(nodes, g.Group(g.Map(res.Items, func(item radar.DiscussionItem) g.Node {
		meta := fmt.Sprintf("%s | %d pontos | %d comentarios | %s",
			item.Source, item.Score, item.Comments, dateLabel(item.Date))
		if item.Subreddit != "" {
			meta = "r/" + item.Subreddit + " | " + meta
		}
		return Div(Class("rounded border border-radar-teal bg-radar-surface p-4"),
			A(Href(item.URL), Target("_blank"), Rel("noopener"),
				Class("font-medium text-gray-100 hover:text-radar-accent"), g.Text(item.Title)),
			P(Class("mt-2 text-xs text-gray-500"), g.Text(meta)),
		)
	})))
	return section("Discussao tecnica", Div(Class("grid gap-3"), g.Group(nodes)))
}

func profilesSection(c *scan.Collector) g.Node {
	if len(c.Profiles) == 0 {
		return section("Perfis", emptyBox("Nenhum perfil publico encontrado."))
	}

	return section("Perfis", Div(Class("grid gap-3 sm:grid-cols-2"),
		g.Group(g.Map(c.Profiles, func(p radar.Profile) g.Node {
			return Div(Class("flex items-start gap-3 rounded border border-radar-teal bg-radar-surface p-4"),
				Img(Src(p.Avatar), Alt(p.Name), Class("h-12 w-12 rounded-full object-cover bg-radar-teal")),
				Div(
					A(Href(p.URL), Target("_blank"), Rel("noopener"),
						Class("font-medium text-gray-100 hover:text-radar-accent"), g.Text(p.Name)),
					P(Class("text-xs text-radar-accent"), g.Text(p.Platform)),
					g.If(p.Note != "", P(Class("mt-1 text-xs text-gray-400"), g.Text(p.Note))),
				),
			)
		}))))
}

func judicialSection(c *scan.Collector) g.Node {
	if c.JudicialFail {
		return section("Processos judiciais", emptyBox("Falha ao buscar processos judiciais."))
	}
	if len(c.Judicial) == 0 {
		return section("Processos judiciais", emptyBox("Nenhum processo encontrado."))
	}
	return section("Processos judiciais", Div(Class("grid gap-3"), g.Group(g.Map(c.Judicial, newsCard))))
}
