package main

import (
	"log"

	"github.com/civiclens/protest-backend-go/internal/api"
	"github.com/civiclens/protest-backend-go/internal/cache"
	"github.com/civiclens/protest-backend-go/internal/config"
	"github.com/civiclens/protest-backend-go/internal/database"
	"github.com/civiclens/protest-backend-go/internal/dataset"
	"github.com/civiclens/protest-backend-go/internal/handler"
	"github.com/civiclens/protest-backend-go/internal/jobs"
	"github.com/civiclens/protest-backend-go/internal/service"
	"github.com/civiclens/protest-backend-go/internal/spatial"
)

func main() {
	cfg := config.Load()

	// The dataset is loaded once and read-only for the process lifetime
	data, err := dataset.Load(cfg.DataPath)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}
	log.Printf("Dataset loaded: %d events, %d states", len(data.Events), len(data.States))

	var store cache.Store
	if cfg.CacheBackend == config.CacheBackendSQLite {
		db, err := database.Open(database.Config{Path: cfg.CacheDBPath})
		if err != nil {
			log.Fatal("Failed to open cache database:", err)
		}
		defer db.Close()
		store = cache.NewSQLiteStore(db)
	} else {
		store = cache.NewMemoryStore()
	}

	sweeper := jobs.StartCacheSweeper(store)
	defer sweeper.Stop()

	jitter := spatial.DefaultJitter
	jitter.MaxRadius = cfg.JitterMax

	dashboardService := service.NewDashboardService(data, store, cfg.CacheTTL, jitter)
	exportService := service.NewExportService(data, dashboardService)

	router := api.SetupRouter(
		handler.NewDashboardHandler(dashboardService),
		handler.NewExportHandler(exportService),
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
