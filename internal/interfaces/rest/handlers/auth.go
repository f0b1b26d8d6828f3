package handlers

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
)

const stateCookieName = "checkout_oauth_state"

// Login begins the delegated authorization flow: a redirect to the provider
// consent page with the CSRF state pinned in a short-lived cookie. With the
// provider unconfigured it answers 501 instead of redirecting.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	redirectURL, state, err := h.authService.BeginLogin()
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.sessionCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// Callback completes the flow. Every failure path lands the user back on the
// public landing page without a session; only a verified state and a
// successful exchange produce a session cookie and the dashboard redirect.
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, stateCookieName)

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		h.logger.Warn("oauth callback state mismatch")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if r.URL.Query().Get("error") != "" {
		h.logger.Info("provider denied authorization", "error", r.URL.Query().Get("error"))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	token, err := h.authService.CompleteLogin(r.Context(), code)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionCfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.sessionCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout always redirects to the landing page, whatever happens to the
// underlying session delete.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.sessionCfg.CookieName); err == nil {
		h.authService.Logout(r.Context(), cookie.Value)
	}
	clearCookie(w, h.sessionCfg.CookieName)
	http.Redirect(w, r, "/", http.StatusFound)
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
