package radar

import "net/url"

// PlaceholderAvatar is the last resort of every avatar candidate chain.
const PlaceholderAvatar = "/static/favicon.svg"

// FaviconAvatar builds a favicon-service URL for the profile's registered
// domain, or "" when the profile URL has no usable host.
func FaviconAvatar(profileURL string) string {
	domain := RootDomain(profileURL)
	if domain == "" {
		return ""
	}
	return "https://www.google.com/s2/favicons?domain=" + url.QueryEscape(domain) + "&sz=128"
}

// InitialsAvatar builds a generated-initials avatar for a display name.
func InitialsAvatar(name string) string {
	if name == "" {
		name = "Perfil publico"
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) +
		"&size=128&background=0B3A3A&color=F4F9F8&bold=true"
}

// AvatarCandidates assembles the fallback chain for a profile: explicit
// avatar, scraped page image, domain favicon, generated initials, static
// placeholder. Empty entries are dropped and the chain is deduplicated.
func AvatarCandidates(p Profile, scraped string) []string {
	candidates := []string{
		p.Avatar,
		scraped,
		FaviconAvatar(p.URL),
		InitialsAvatar(p.Name),
		PlaceholderAvatar,
	}

	out := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
