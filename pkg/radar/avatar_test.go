package radar

import (
	"strings"
	"testing"
)

func TestAvatarCandidatesFullChain(t *testing.T) {
	p := Profile{
		Platform: "LinkedIn",
		Name:     "Jane Doe",
		URL:      "https://www.linkedin.com/in/jane-doe",
		Avatar:   "https://cdn.example.com/jane.png",
	}

	got := AvatarCandidates(p, "https://media.licdn.com/scraped.png")

	if got[0] != p.Avatar {
		t.Fatalf("explicit avatar must come first, got %q", got[0])
	}
	if got[1] != "https://media.licdn.com/scraped.png" {
		t.Fatalf("scraped avatar must come second, got %q", got[1])
	}
	if got[len(got)-1] != PlaceholderAvatar {
		t.Fatalf("placeholder must come last, got %q", got[len(got)-1])
	}
}

func TestAvatarCandidatesWithoutExplicit(t *testing.T) {
	p := Profile{Platform: "Reddit", Name: "u/someone", URL: "https://www.reddit.com/user/someone"}

	got := AvatarCandidates(p, "")

	if len(got) != 3 {
		t.Fatalf("expected favicon, initials and placeholder, got %v", got)
	}
	if !strings.Contains(got[0], "favicons") {
		t.Fatalf("first candidate should be the favicon service, got %q", got[0])
	}
	if !strings.Contains(got[1], "ui-avatars.com") {
		t.Fatalf("second candidate should be generated initials, got %q", got[1])
	}
}

func TestAvatarCandidatesDropsDuplicates(t *testing.T) {
	p := Profile{Name: "Jane", URL: "https://example.com/jane", Avatar: "https://a.example/x.png"}

	got := AvatarCandidates(p, "https://a.example/x.png")

	for i, a := range got {
		for j, b := range got {
			if i != j && a == b {
				t.Fatalf("duplicate candidate %q in %v", a, got)
			}
		}
	}
}

func TestInitialsAvatarDefaultName(t *testing.T) {
	got := InitialsAvatar("")
	if !strings.Contains(got, "Perfil+publico") && !strings.Contains(got, "Perfil%20publico") {
		t.Fatalf("default name missing from %q", got)
	}
}

func TestUnwrapRedirect(t *testing.T) {
	wrapped := "https://www.bing.com/news/apiclick.aspx?url=https%3A%2F%2Fexample.com%2Fstory&cc=br"
	if got := UnwrapRedirect(wrapped, "bing.com", "url"); got != "https://example.com/story" {
		t.Fatalf("UnwrapRedirect = %q", got)
	}

	direct := "https://example.com/story"
	if got := UnwrapRedirect(direct, "bing.com", "url"); got != direct {
		t.Fatalf("non-redirector url changed: %q", got)
	}

	noParam := "https://www.bing.com/news/apiclick.aspx?cc=br"
	if got := UnwrapRedirect(noParam, "bing.com", "url"); got != noParam {
		t.Fatalf("missing param should return original, got %q", got)
	}
}
