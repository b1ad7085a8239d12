package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/jkillingsworth-em/em-inventory/config"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/importexport"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/item"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/location"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/report"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/settings"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/stock"
	"github.com/jkillingsworth-em/em-inventory/internal/modules/view"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.LoadEnv()

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	var (
		itemRepo     item.Repository
		stockRepo    stock.Repository
		locationRepo location.Repository
		settingsRepo settings.Repository
	)

	switch cfg.Storage.Backend {
	case "postgres":
		db, err := sqlx.Connect("postgres", cfg.Postgres.DSN())
		if err != nil {
			logger.Fatal("could not connect to database", zap.Error(err))
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		logger.Info("connected to postgres", zap.String("db", cfg.Postgres.DBName))

		itemRepo = item.NewPostgresRepository(db)
		stockRepo = stock.NewPostgresRepository(db)
		locationRepo = location.NewPostgresRepository(db)
		settingsRepo = settings.NewPostgresRepository(db)
	case "memory":
		itemRepo = item.NewMemoryRepository(demoItems())
		stockRepo = stock.NewMemoryRepository(demoStock())
		locationRepo = location.NewMemoryRepository(demoLocations())
		settingsRepo = settings.NewMemoryRepository(demoColors())
		logger.Info("using in-memory demo state")
	default:
		logger.Fatal("unknown storage backend", zap.String("backend", cfg.Storage.Backend))
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	itemService := item.NewService(itemRepo, stockRepo)
	item.NewHandler(itemService).RegisterRoutes(router)

	stockService := stock.NewService(stockRepo)
	stock.NewHandler(stockService).RegisterRoutes(router)

	locationService := location.NewService(locationRepo)
	location.NewHandler(locationService).RegisterRoutes(router)

	settingsService := settings.NewService(settingsRepo)
	settings.NewHandler(settingsService).RegisterRoutes(router)

	viewService := view.NewService(itemRepo, stockRepo, locationRepo, settingsRepo)
	view.NewHandler(viewService).RegisterRoutes(router)

	csvService := importexport.NewService(itemRepo, stockRepo, locationRepo, logger)
	importexport.NewHandler(csvService).RegisterRoutes(router)

	reportService := report.NewService(viewService)
	report.NewHandler(reportService).RegisterRoutes(router)

	addr := ":" + cfg.Server.Port
	logger.Info("inventory API listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if level, err := zap.ParseAtomicLevel(cfg.Level); err == nil {
		zapCfg.Level = level
	}
	zapCfg.DisableCaller = cfg.DisableCaller
	zapCfg.DisableStacktrace = cfg.DisableStacktrace
	return zapCfg.Build()
}
