package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"karcherhub/state"
)

type contextKey string

const SessionIDKey contextKey = "sessionID"

const sessionMaxAge = 60 * 60 * 24 * 30

// sessionlessPrefixes are PocketBase's REST API and admin dashboard, which
// never read a visitor selection.
var sessionlessPrefixes = []string{"/api/", "/_/"}

func needsSession(path string) bool {
	for _, prefix := range sessionlessPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// GetSessionID extracts the visitor's session id from the request context.
func GetSessionID(r *http.Request) string {
	if val, ok := r.Context().Value(SessionIDKey).(string); ok {
		return val
	}
	return ""
}

// SessionMiddleware reads the session cookie, issuing a fresh id when it is
// missing or malformed, and stores the id in the request context. API and
// admin requests pass through without a cookie.
func SessionMiddleware(hub *Hub) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !needsSession(e.Request.URL.Path) {
			return e.Next()
		}

		id := ""
		cookie, err := e.Request.Cookie(hub.Cookie.Name)
		if err == nil && state.ValidID(cookie.Value) {
			id = cookie.Value
		} else {
			id = hub.Sessions.NewID()
			if err == nil {
				logger.WithField("cookie", cookie.Value).Info("middleware: discarding malformed session cookie")
			}
		}

		// Refresh on every request so active visitors keep their session.
		http.SetCookie(e.Response, &http.Cookie{
			Name:     hub.Cookie.Name,
			Value:    id,
			Path:     "/",
			MaxAge:   sessionMaxAge,
			HttpOnly: true,
			Secure:   hub.Cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := context.WithValue(e.Request.Context(), SessionIDKey, id)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// selection returns the caller's current selection.
func (h *Hub) selection(r *http.Request) state.Selection {
	sel, _ := h.Sessions.Get(GetSessionID(r))
	return sel
}

// update applies fn to the caller's selection.
func (h *Hub) update(r *http.Request, fn func(state.Selection) (state.Selection, error)) (state.Selection, error) {
	return h.Sessions.Update(GetSessionID(r), fn)
}
