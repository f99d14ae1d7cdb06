package httpclient

import (
	"net/http"
)

// attachAuth injects the token's Authorization header and, when allowed, its
// session cookies. An Authorization header set by the caller is kept.
func (c *HTTPClient) attachAuth(req *http.Request, withCookies bool) {
	if auth := c.token.Authorization(); auth != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", auth)
	}
	if !withCookies {
		return
	}
	for _, ck := range c.token.Cookies {
		if ck != nil {
			req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
		}
	}
}
