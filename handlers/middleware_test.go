package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karcherhub/state"
)

func TestGetSessionID_FromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), SessionIDKey, "abc")
	req = req.WithContext(ctx)

	if got := GetSessionID(req); got != "abc" {
		t.Errorf("expected session id %q, got %q", "abc", got)
	}
}

func TestGetSessionID_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetSessionID(req); got != "" {
		t.Errorf("expected empty session id, got %q", got)
	}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("expected %s cookie to be set", name)
	return nil
}

func TestSessionMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		cookie   string
		wantSame bool
	}{
		{"no cookie", "", false},
		{"valid cookie", testSessionID, true},
		{"malformed cookie", "not-a-session", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := newTestHub(t)
			hub.Cookie.Secure = true

			req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: hub.Cookie.Name, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(req, rec)

			require.NoError(t, SessionMiddleware(hub)(e))

			id := GetSessionID(e.Request)
			assert.True(t, state.ValidID(id), "context holds a valid session id")
			if tt.wantSame {
				assert.Equal(t, tt.cookie, id)
			} else {
				assert.NotEqual(t, tt.cookie, id)
			}

			c := sessionCookie(t, rec, hub.Cookie.Name)
			assert.Equal(t, id, c.Value)
			assert.True(t, c.HttpOnly)
			assert.True(t, c.Secure)
			assert.Equal(t, "/", c.Path)
		})
	}
}

func TestSessionMiddleware_SkipsAPIAndAdmin(t *testing.T) {
	for _, path := range []string{"/api/collections/equipment/records", "/api/health", "/_/", "/_/images/logo.svg"} {
		t.Run(path, func(t *testing.T) {
			hub := newTestHub(t)

			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(req, rec)

			require.NoError(t, SessionMiddleware(hub)(e))

			assert.Empty(t, rec.Result().Cookies(), "no session cookie on %s", path)
			assert.Empty(t, GetSessionID(e.Request))
		})
	}
}

func TestNeedsSession(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/catalog", true},
		{"/configurator/quote.pdf", true},
		{"/static/app.js", true},
		{"/apis", true},
		{"/api/", false},
		{"/api/collections/spare_parts/records", false},
		{"/_/", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, needsSession(tt.path), tt.path)
	}
}
