package radar

import (
	"net/url"
	"regexp"
	"strings"
)

// SocialProfile is a parsed LinkedIn or Instagram identity.
type SocialProfile struct {
	Type string // "in", "company" or "instagram"
	Slug string
	URL  string
}

// Instagram path segments that are site features, not usernames.
var reservedInstagramPaths = map[string]bool{
	"about": true, "accounts": true, "developer": true, "direct": true,
	"download": true, "explore": true, "legal": true, "p": true,
	"policies": true, "privacy": true, "reel": true, "reels": true,
	"stories": true, "tags": true, "tv": true,
}

var (
	reInstagramUser = regexp.MustCompile(`^[a-zA-Z0-9._]{1,30}$`)
	reLinkedInSlug  = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	reLinkedInURL   = regexp.MustCompile(`(?i)https?://(?:[a-z]{2}\.)?linkedin\.com/(?:in|company)/[a-zA-Z0-9._%-]+`)
	reInstagramURL  = regexp.MustCompile(`(?i)https?://(?:www\.)?instagram\.com/[a-zA-Z0-9._%-]+/?`)
)

// ParseLinkedInURL extracts an in/company profile from a LinkedIn URL,
// normalizing it to the canonical www form. Returns nil for anything else.
func ParseLinkedInURL(rawURL string) *SocialProfile {
	u, err := url.Parse(rawURL)
	if err != nil || !strings.Contains(strings.ToLower(u.Hostname()), "linkedin.com") {
		return nil
	}

	parts := splitPath(u.Path)
	if len(parts) < 2 {
		return nil
	}

	kind := strings.ToLower(parts[0])
	if kind != "in" && kind != "company" {
		return nil
	}

	slug, _ := url.PathUnescape(parts[1])
	slug = reLinkedInSlug.ReplaceAllString(slug, "")
	if slug == "" {
		return nil
	}

	return &SocialProfile{
		Type: kind,
		Slug: slug,
		URL:  "https://www.linkedin.com/" + kind + "/" + slug,
	}
}

// NormalizeLinkedInIdentity accepts the loose identifier forms found in
// structured-data claims: full URLs, "in/slug", "@slug" or a bare slug.
func NormalizeLinkedInIdentity(value, preferredType string) *SocialProfile {
	text := strings.TrimSpace(value)
	if text == "" {
		return nil
	}

	if strings.Contains(text, "linkedin.com") {
		return ParseLinkedInURL(text)
	}

	compact := strings.Trim(strings.TrimPrefix(text, "@"), "/")
	parts := splitPath(compact)

	if len(parts) >= 2 && (parts[0] == "in" || parts[0] == "company") {
		return ParseLinkedInURL("https://www.linkedin.com/" + parts[0] + "/" + parts[1])
	}
	if len(parts) == 0 {
		return nil
	}

	slug := reLinkedInSlug.ReplaceAllString(parts[0], "")
	if slug == "" {
		return nil
	}

	kind := "in"
	if preferredType == "company" {
		kind = "company"
	}
	return &SocialProfile{
		Type: kind,
		Slug: slug,
		URL:  "https://www.linkedin.com/" + kind + "/" + slug,
	}
}

// ParseInstagramURL extracts a username from an Instagram profile URL,
// rejecting reserved site paths.
func ParseInstagramURL(rawURL string) *SocialProfile {
	u, err := url.Parse(rawURL)
	if err != nil || !strings.Contains(strings.ToLower(u.Hostname()), "instagram.com") {
		return nil
	}

	parts := splitPath(u.Path)
	if len(parts) == 0 {
		return nil
	}
	username, _ := url.PathUnescape(parts[0])
	return instagramProfile(username)
}

// NormalizeInstagramHandle accepts "@user", "user" or a full URL.
func NormalizeInstagramHandle(value string) *SocialProfile {
	text := strings.TrimSpace(value)
	if text == "" {
		return nil
	}
	if strings.Contains(text, "instagram.com") {
		return ParseInstagramURL(text)
	}
	return instagramProfile(strings.Trim(strings.TrimPrefix(text, "@"), "/"))
}

func instagramProfile(username string) *SocialProfile {
	if !reInstagramUser.MatchString(username) {
		return nil
	}
	if reservedInstagramPaths[strings.ToLower(username)] {
		return nil
	}
	return &SocialProfile{
		Type: "instagram",
		Slug: username,
		URL:  "https://www.instagram.com/" + username + "/",
	}
}

// ExtractProfileURLs pulls LinkedIn and Instagram profile URLs out of free
// text (search-result titles and snippets).
func ExtractProfileURLs(text string) []string {
	if text == "" {
		return nil
	}
	out := reLinkedInURL.FindAllString(text, -1)
	return append(out, reInstagramURL.FindAllString(text, -1)...)
}

// CleanLinkedInTitle strips the "| LinkedIn" suffix a search result title
// carries; empty titles fall back to the profile slug.
func CleanLinkedInTitle(title string, profile *SocialProfile) string {
	cleaned := strings.TrimSpace(title)
	for _, suffix := range []string{"| linkedin", "- linkedin"} {
		low := strings.ToLower(cleaned)
		if strings.HasSuffix(low, suffix) {
			cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len(suffix)])
		}
	}
	if cleaned != "" {
		return cleaned
	}
	if profile.Type == "company" {
		return profile.Slug
	}
	return "@" + profile.Slug
}

func splitPath(p string) []string {
	var parts []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}
