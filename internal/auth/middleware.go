package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// Page prefixes that require a logged-in user.
var protectedPrefixes = []string{"/dashboard", "/admin"}

// Pages only anonymous visitors should see.
var authOnlyPaths = map[string]bool{
	"/login":    true,
	"/register": true,
}

// PageGate redirects page requests based on session cookie presence
// alone. It never decodes the cookie: handlers re-derive and validate the
// session themselves, so a forged cookie that passes here is still denied
// downstream.
func PageGate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			hasSession := hasSessionCookie(c)

			if isProtected(path) && !hasSession {
				return c.Redirect(http.StatusFound, LoginRedirect(path))
			}
			if authOnlyPaths[path] && hasSession {
				return c.Redirect(http.StatusFound, "/dashboard")
			}
			return next(c)
		}
	}
}

// LoginRedirect builds the login URL carrying the requested path as the
// return target. The path is percent-encoded so reserved characters
// survive the round trip through the query string.
func LoginRedirect(path string) string {
	return "/login?from=" + url.QueryEscape(path)
}

func isProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func hasSessionCookie(c echo.Context) bool {
	cookie, err := c.Cookie(CookieName)
	return err == nil && cookie.Value != ""
}
