package radar

import (
	"net/url"
	"strings"
)

// UnwrapRedirect decodes one level of tracking-redirector indirection: when
// rawURL's host contains hostFragment, the true destination is read from the
// given query parameter. On any decode failure the original link is returned
// unchanged rather than failing the item.
func UnwrapRedirect(rawURL, hostFragment, param string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if !strings.Contains(strings.ToLower(u.Hostname()), hostFragment) {
		return rawURL
	}
	target := u.Query().Get(param)
	if target == "" {
		return rawURL
	}
	if decoded, err := url.QueryUnescape(target); err == nil {
		return decoded
	}
	return target
}
