// @title         Identifier Validation API
// @version       0.1.0
// @description   Email, phone and IBAN validation with risk scoring

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"idcheck/internal/platform/config"
	"idcheck/internal/platform/logger"
	phttp "idcheck/internal/platform/net/http"
	"idcheck/internal/platform/store"

	"idcheck/internal/services/api"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// open the platform store (postgres + CH adapter)
	st, err := store.Open(
		ctx,
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			CH: store.CHConfig{
				Enabled:    true,
				URL:        chCfg.MustString("DBURL"),
				ClientName: "idcheck",
				ClientTag:  "api",
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	rt := api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// warm the disposable store before serving, then keep it fresh
	if err := rt.Disposable.BootstrapIfEmpty(ctx); err != nil {
		l.Warn().Err(err).Msg("disposable bootstrap failed, serving with empty store")
	}
	go func() {
		if err := rt.Disposable.Run(ctx); err != nil && err != context.Canceled {
			l.Error().Err(err).Msg("disposable refresher stopped")
		}
	}()

	// audit writer drains its queue; Close flushes what is left on shutdown
	go func() {
		if err := rt.Audit.Run(ctx); err != nil && err != context.Canceled {
			l.Error().Err(err).Msg("audit writer stopped")
		}
	}()
	defer rt.Audit.Close()

	// idle rate limit buckets are swept in the background
	go func() {
		if err := rt.Limiter.Run(ctx); err != nil && err != context.Canceled {
			l.Error().Err(err).Msg("rate limit sweeper stopped")
		}
	}()

	// stop serving when a signal lands
	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			l.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
