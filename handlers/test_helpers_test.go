package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"karcherhub/state"
	"karcherhub/testhelpers"
)

const testSessionID = "6f1d3c5e-8a4b-4f2e-9c7d-0b1a2e3f4d5c"

var testNow = time.Date(2026, 1, 28, 9, 5, 7, 0, time.UTC)

// newTestHub returns a Hub over the embedded catalog with an empty session store.
func newTestHub(t *testing.T) *Hub {
	t.Helper()
	return &Hub{
		Catalog:  testhelpers.LoadCatalog(t),
		Sessions: testhelpers.NewSessions(t),
		Cookie:   CookieSettings{Name: "hub_session"},
		Now:      func() time.Time { return testNow },
	}
}

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// newSessionRequest builds a request that already passed SessionMiddleware.
func newSessionRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(context.WithValue(req.Context(), SessionIDKey, testSessionID))
}

func htmx(req *http.Request) *http.Request {
	req.Header.Set("HX-Request", "true")
	return req
}

// seedSelection stores sel as the test session's selection.
func seedSelection(t *testing.T, h *Hub, fn func(state.Selection) (state.Selection, error)) state.Selection {
	t.Helper()
	sel, err := h.Sessions.Update(testSessionID, fn)
	if err != nil {
		t.Fatalf("seed selection: %v", err)
	}
	return sel
}

// selectEquipment seeds the test session with id selected.
func selectEquipment(t *testing.T, h *Hub, id string) state.Selection {
	t.Helper()
	eq, err := h.Catalog.EquipmentByID(id)
	if err != nil {
		t.Fatalf("equipment %s: %v", id, err)
	}
	return seedSelection(t, h, func(s state.Selection) (state.Selection, error) {
		return s.SelectEquipment(eq), nil
	})
}

func currentSelection(h *Hub) state.Selection {
	sel, _ := h.Sessions.Get(testSessionID)
	return sel
}
