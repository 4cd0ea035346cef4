package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"toorizo_quote/internal/adapters/observability"
	redisad "toorizo_quote/internal/adapters/redis"
	"toorizo_quote/internal/app"
	"toorizo_quote/internal/shared"
	mysqlrepo "toorizo_quote/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required for seeding")
	}

	hotels := shared.DefaultHotelRates()
	travel := shared.DefaultTravelRates()
	log.Info().
		Int("workers", cfg.Workers).
		Int("hotel_rates", len(hotels)).
		Int("travel_rates", len(travel)).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	seed := app.NewSeedService(repo, cache)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	run := func(name string, fn func(context.Context) error) {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := fn(ctx); err != nil {
				log.Warn().Str("row", name).Err(err).Msg("seed failed")
				return
			}
			log.Debug().Str("row", name).Msg("seed ok")
		}()
	}

	for _, h := range hotels {
		h := h
		run(h.Location+"/"+string(h.Tier)+"/"+h.Hotel, func(ctx context.Context) error {
			return seed.SeedHotelRate(ctx, h)
		})
	}
	for _, t := range travel {
		t := t
		run(t.From+"-"+t.To+"/"+t.Vehicle+"/"+t.Bucket, func(ctx context.Context) error {
			return seed.SeedTravelRate(ctx, t)
		})
	}

	wg.Wait()

	if err := seed.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
	log.Info().Msg("seeding completed")
}
