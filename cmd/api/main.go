package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "toorizo_quote/internal/adapters/http_server"
	"toorizo_quote/internal/adapters/observability"
	redisad "toorizo_quote/internal/adapters/redis"
	"toorizo_quote/internal/app"
	"toorizo_quote/internal/domain"
	"toorizo_quote/internal/shared"
	mysqlrepo "toorizo_quote/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	hotels, travel := loadRates(cfg)
	log.Info().
		Int("hotel_rates", len(hotels)).
		Int("travel_rates", len(travel)).
		Msg("rate catalog loaded")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQuoteService(hotels, travel, cache, cfg.CacheTTL)

	// http
	srv := server.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// loadRates reads the catalogs from MySQL when a DSN is configured, falling
// back to the embedded defaults otherwise.
func loadRates(cfg shared.Config) ([]domain.HotelRate, []domain.TravelRate) {
	if cfg.MySQLDSN == "" {
		return shared.DefaultHotelRates(), shared.DefaultTravelRates()
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	repo := mysqlrepo.New(db)
	ctx := context.Background()
	hotels, err := repo.HotelRates(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load hotel rates failed")
	}
	travel, err := repo.TravelRates(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load travel rates failed")
	}
	return hotels, travel
}
