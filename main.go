package main

import (
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"karcherhub/catalog"
	"karcherhub/collections"
	"karcherhub/config"
	"karcherhub/handlers"
	"karcherhub/state"
)

func main() {
	logger := config.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("config: invalid settings")
	}
	if err := config.ApplyLogLevel(cfg.LogLevel); err != nil {
		logger.WithError(err).Fatal("config: invalid log level")
	}

	store, err := loadCatalog(cfg)
	if err != nil {
		logger.WithError(err).Fatal("catalog: failed to load")
	}
	logger.WithField("version", store.Version()).WithField("equipment", len(store.Equipment())).Info("catalog: loaded")

	sessions, err := state.NewSessions(cfg.SessionCapacity)
	if err != nil {
		logger.WithError(err).Fatal("state: failed to create session store")
	}

	hub := handlers.NewHub(store, sessions, cfg)
	app := pocketbase.New()

	// Mirror the catalog into PocketBase on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := collections.Setup(app); err != nil {
			return err
		}
		if err := collections.SyncCatalog(app, store); err != nil {
			logger.WithError(err).Warn("collections: catalog mirror sync failed")
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		se.Router.BindFunc(handlers.SessionMiddleware(hub))

		// ── Tabs ─────────────────────────────────────────────────
		se.Router.GET("/{$}", handlers.HandleHome(hub))
		for _, tab := range state.Tabs {
			se.Router.GET("/"+string(tab), handlers.HandleTab(hub, tab))
		}
		se.Router.POST("/sidebar/toggle", handlers.HandleSidebarToggle(hub))

		// ── Configurator ─────────────────────────────────────────
		se.Router.POST("/configurator/equipment/{id}", handlers.HandleSelectEquipment(hub))
		se.Router.POST("/configurator/options/{pn}", handlers.HandleToggleOption(hub))
		se.Router.POST("/configurator/battery/{pn}", handlers.HandleSetBattery(hub))

		// ── Exports ──────────────────────────────────────────────
		se.Router.GET("/configurator/quote.pdf", handlers.HandleQuoteExportPDF(hub))
		se.Router.GET("/configurator/quote.xlsx", handlers.HandleQuoteExportExcel(hub))
		se.Router.GET("/spare/export.xlsx", handlers.HandleSparePartsExport(hub))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		logger.WithError(err).Fatal("app: stopped")
	}
}

func loadCatalog(cfg config.Config) (*catalog.Store, error) {
	if cfg.CatalogFile != "" {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.LoadEmbedded()
}
