// Package query turns one free-text search term into an ordered set of
// candidate query strings, from most specific to least specific.
package query

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Function words (Portuguese and English) that carry no search weight.
var stopwords = map[string]bool{
	"a": true, "as": true, "ao": true, "aos": true, "de": true, "da": true,
	"das": true, "do": true, "dos": true, "e": true, "em": true, "na": true,
	"nas": true, "no": true, "nos": true, "o": true, "os": true,
	"que": true, "quem": true, "qual": true, "quais": true, "como": true,
	"onde": true, "quando": true, "com": true, "para": true, "por": true,
	"sobre": true, "ja": true, "foi": true, "foram": true, "ser": true,
	"sao": true, "passou": true, "passaram": true, "trabalhou": true,
	"trabalhar": true,
	"the": true, "who": true, "what": true, "where": true, "when": true,
	"how": true, "and": true, "or": true, "in": true, "on": true, "at": true,
	"from": true, "of": true, "to": true,
}

// Domain-noise words that make a focus bigram too broad to be useful.
var genericTerms = map[string]bool{
	"empresa": true, "empresas": true, "companhia": true, "companhias": true,
	"historia": true, "noticia": true, "noticias": true, "latest": true,
	"news": true, "termo": true, "conceito": true,
}

// Fold lowercases a string, strips diacritics, maps everything that is not a
// letter, digit, space or hyphen to a space, and collapses whitespace.
func Fold(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from NFD, drop it
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Variants derives the ordered query set for a term: the focus bigram (or
// the closest fallback), the raw term itself, then the first meaningful
// tokens joined. The result is deduplicated case-insensitively and every
// entry is at least two characters long. An empty or whitespace-only term
// yields an empty slice.
func Variants(term string) []string {
	original := strings.TrimSpace(term)
	if original == "" {
		return nil
	}

	tokens := strings.Fields(Fold(original))
	meaningful := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) > 2 && !stopwords[tok] {
			meaningful = append(meaningful, tok)
		}
	}

	var bigrams []string
	for i := 0; i+1 < len(meaningful); i++ {
		a, b := meaningful[i], meaningful[i+1]
		if !genericTerms[a] && !genericTerms[b] {
			bigrams = append(bigrams, a+" "+b)
		}
	}

	focus := ""
	switch {
	case len(bigrams) > 0:
		focus = bigrams[0]
	default:
		var specific []string
		for _, tok := range meaningful {
			if !genericTerms[tok] {
				specific = append(specific, tok)
			}
		}
		if len(specific) > 2 {
			specific = specific[:2]
		}
		focus = strings.Join(specific, " ")
		if focus == "" {
			n := len(meaningful)
			if n > 3 {
				n = 3
			}
			focus = strings.Join(meaningful[:n], " ")
		}
	}

	variants := make([]string, 0, 3)
	if focus != "" {
		variants = append(variants, focus)
	}
	variants = append(variants, original)
	if len(meaningful) > 0 {
		n := len(meaningful)
		if n > 4 {
			n = 4
		}
		variants = append(variants, strings.Join(meaningful[:n], " "))
	}

	seen := make(map[string]bool, len(variants))
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		v = strings.TrimSpace(v)
		if len(v) < 2 {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
