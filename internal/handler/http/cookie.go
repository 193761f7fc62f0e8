package http

import "net/http"

// sessionCookieName is the cookie under which the session token travels.
const sessionCookieName = "token"

// devCookieDomain scopes cookies when running in dev mode.
const devCookieDomain = "localhost"

// sessionCookie builds the Set-Cookie value carrying the session token:
// HttpOnly, SameSite=Lax, Path=/, Max-Age equal to the token TTL, and a
// domain resolved from the dev-mode profile.
func (h *Handler) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain(),
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// clearCookie builds the Set-Cookie value that deletes the session cookie:
// empty value and Max-Age=0, same attributes otherwise so browsers match
// the original cookie.
func (h *Handler) clearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookieDomain(),
		MaxAge:   -1, // serialized as Max-Age=0
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// cookieDomain resolves the cookie scoping profile: "localhost" in dev
// mode, the configured domain (e.g. ".example.com" for cross-subdomain
// sessions) in production.
func (h *Handler) cookieDomain() string {
	if h.web.DevMode {
		return devCookieDomain
	}

	return h.web.CookieDomain
}
