// Package testhelpers provides utilities for testing the hub's PocketBase
// wiring and rendered pages.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"karcherhub/catalog"
	"karcherhub/collections"
	"karcherhub/state"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create the mirror
// collections. The temporary directory is cleaned up when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}
	t.Cleanup(func() { _ = app.ResetBootstrapState() })

	if err := collections.Setup(app); err != nil {
		t.Fatalf("failed to set up collections: %v", err)
	}

	return app
}

// LoadCatalog returns the embedded catalog.
func LoadCatalog(t *testing.T) *catalog.Store {
	t.Helper()

	store, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("failed to load embedded catalog: %v", err)
	}
	return store
}

// NewSessions returns an empty session store.
func NewSessions(t *testing.T) *state.Sessions {
	t.Helper()

	sessions, err := state.NewSessions(64)
	if err != nil {
		t.Fatalf("failed to create sessions: %v", err)
	}
	return sessions
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
