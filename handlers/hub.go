// Package handlers wires the catalog, the per-visitor selections and the
// views onto PocketBase's router.
package handlers

import (
	"time"

	"karcherhub/catalog"
	"karcherhub/config"
	"karcherhub/state"
)

var logger = config.GetLogger()

// CookieSettings controls the session cookie.
type CookieSettings struct {
	Name   string
	Secure bool
}

// Hub is what every handler closes over.
type Hub struct {
	Catalog  *catalog.Store
	Sessions *state.Sessions
	Cookie   CookieSettings
	Now      func() time.Time
}

// NewHub builds a Hub from loaded settings.
func NewHub(store *catalog.Store, sessions *state.Sessions, cfg config.Config) *Hub {
	return &Hub{
		Catalog:  store,
		Sessions: sessions,
		Cookie: CookieSettings{
			Name:   cfg.SessionCookie,
			Secure: cfg.SecureCookies,
		},
		Now: time.Now,
	}
}
