package security

import (
	"net/http"
	"time"
)

type CookieManager struct {
	domain   string
	secure   bool
	sameSite http.SameSite
}

func NewCookieManager(domain string, secure bool, sameSite string) *CookieManager {
	mode := http.SameSiteLaxMode
	switch sameSite {
	case "strict":
		mode = http.SameSiteStrictMode
	case "none":
		mode = http.SameSiteNoneMode
	}
	return &CookieManager{domain: domain, secure: secure, sameSite: mode}
}

func (m *CookieManager) SetAccessToken(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		Domain:   m.domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

func (m *CookieManager) SetRefreshToken(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Domain:   m.domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

// SetCSRFToken is readable by the frontend so it can echo the value in the
// X-CSRF-Token header.
func (m *CookieManager) SetCSRFToken(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     "csrf_token",
		Value:    token,
		Path:     "/",
		Domain:   m.domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: false,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

func (m *CookieManager) Clear(w http.ResponseWriter) {
	for _, c := range []struct {
		name string
		path string
	}{
		{"access_token", "/"},
		{"refresh_token", "/api/v1/auth"},
		{"csrf_token", "/"},
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     c.name,
			Value:    "",
			Path:     c.path,
			Domain:   m.domain,
			MaxAge:   -1,
			HttpOnly: c.name != "csrf_token",
			Secure:   m.secure,
			SameSite: m.sameSite,
		})
	}
}

func GetCookie(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
