package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"firequote/catalog"
	"firequote/collections"
	"firequote/config"
	"firequote/handlers"
	"firequote/quote"
	"firequote/services"
	"firequote/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	app := pocketbase.NewWithConfig(pocketbase.Config{DefaultDataDir: cfg.DataDir})
	app.RootCmd.AddCommand(newExportDraftCmd(app, cfg, logger))

	var session *quote.Session

	// Create collections, seed the catalog and start the quoting session
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		s, err := newSession(app, cfg, logger)
		if err != nil {
			return err
		}
		session = s
		registerRoutes(se, s, logger)
		return se.Next()
	})

	app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
		if session != nil {
			session.Close()
		}
		return e.Next()
	})

	if err := app.Start(); err != nil {
		logger.Fatal("app stopped", zap.Error(err))
	}
}

// newSession prepares the collections and returns a started session backed
// by the PocketBase store and catalog.
func newSession(app *pocketbase.PocketBase, cfg config.Config, logger *zap.Logger) (*quote.Session, error) {
	if err := collections.Setup(app); err != nil {
		return nil, fmt.Errorf("setup collections: %w", err)
	}
	if err := collections.Seed(app); err != nil {
		logger.Warn("seed data failed", zap.Error(err))
	}

	s := quote.NewSession(quote.Dependencies{
		Catalog:  catalog.FromRecords(app, logger.Named("catalog")),
		Store:    storage.NewRecordStore(app),
		Exporter: services.DocumentExporter{},
		Logger:   logger,
	}, cfg.Engine())
	s.Start()
	return s, nil
}

func registerRoutes(se *core.ServeEvent, s *quote.Session, logger *zap.Logger) {
	httpLogger := logger.Named("http")

	// Catalog
	se.Router.GET("/api/catalog/equipment", handlers.HandleEquipmentList(s))
	se.Router.GET("/api/catalog/categories", handlers.HandleCategoryList(s))
	se.Router.POST("/api/favorites/{equipmentId}/toggle", handlers.HandleFavoriteToggle(s, httpLogger))

	// Bundles
	se.Router.GET("/api/bundles", handlers.HandleBundleList(s))
	se.Router.GET("/api/bundles/{id}/preview", handlers.HandleBundlePreview(s))
	se.Router.POST("/api/quote/bundles/{id}", handlers.HandleApplyBundle(s, httpLogger))

	// Quote
	se.Router.GET("/api/quote", handlers.HandleQuoteState(s))
	se.Router.POST("/api/quote/items", handlers.HandleAddItem(s, httpLogger))
	se.Router.PATCH("/api/quote/items/{equipmentId}", handlers.HandleSetQuantity(s, httpLogger))
	se.Router.PUT("/api/quote/client", handlers.HandleSetClient(s, httpLogger))
	se.Router.POST("/api/quote/client/select/{clientId}", handlers.HandleSelectClient(s, httpLogger))
	se.Router.POST("/api/quote/draft/restore", handlers.HandleDraftRestore(s, httpLogger))
	se.Router.POST("/api/quote/draft/discard", handlers.HandleDraftDiscard(s, httpLogger))
	se.Router.POST("/api/quote/new", handlers.HandleNewQuote(s, httpLogger))
	se.Router.GET("/api/quote/export/{format}", handlers.HandleQuoteExport(s, httpLogger))

	// Clients
	se.Router.GET("/api/clients/suggest", handlers.HandleClientSuggest(s))
	se.Router.GET("/api/clients/recent", handlers.HandleClientRecent(s))

	se.Router.GET("/", func(e *core.RequestEvent) error {
		return e.Redirect(http.StatusFound, "/api/quote")
	})
}
