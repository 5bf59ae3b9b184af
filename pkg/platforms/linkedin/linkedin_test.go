package linkedin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"webradar/pkg/whttp"
)

func pageClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	h, err := whttp.NewClient("")
	if err != nil {
		t.Fatal(err)
	}
	c := New(h)
	c.BaseURL = srv.URL
	return c
}

func TestAvatarFromPageOGImage(t *testing.T) {
	c := pageClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/in/jane-doe" {
			t.Errorf("path = %q, want the normalized profile path", r.URL.Path)
		}
		w.Write([]byte(`<html><head>
			<meta property="og:image" content="https://media.licdn.com/dms/image/foto.jpg"/>
		</head></html>`))
	})

	got := c.AvatarFromPage(context.Background(), "https://br.linkedin.com/in/jane-doe?trk=abc")
	if got != "https://media.licdn.com/dms/image/foto.jpg" {
		t.Fatalf("avatar = %q", got)
	}
}

func TestAvatarFromPageCDNFallback(t *testing.T) {
	c := pageClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<img src="https://media.licdn.com/dms/image/v2/profile-displayphoto-shrink_200/abc.png">
		</body></html>`))
	})

	got := c.AvatarFromPage(context.Background(), "https://www.linkedin.com/in/jane-doe")
	if !strings.Contains(got, "profile-displayphoto") {
		t.Fatalf("avatar = %q, want the CDN photo URL", got)
	}
}

func TestAvatarFromPageNeverErrors(t *testing.T) {
	c := pageClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "login wall", http.StatusForbidden)
	})
	if got := c.AvatarFromPage(context.Background(), "https://www.linkedin.com/in/jane-doe"); got != "" {
		t.Fatalf("avatar = %q, want empty on HTTP failure", got)
	}

	if got := c.AvatarFromPage(context.Background(), "https://example.com/not-linkedin"); got != "" {
		t.Fatalf("avatar = %q, want empty for a non-profile URL", got)
	}
}
