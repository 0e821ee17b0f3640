// GeoGuardian HTTP API: change detection, time-lapse, region monitoring

package main

import (
	"context"

	"github.com/joho/godotenv"

	"geoguardian/internal/platform/config"
	"geoguardian/internal/platform/logger"
	phttp "geoguardian/internal/platform/net/http"
	"geoguardian/internal/platform/store"

	"geoguardian/internal/modkit/repokit"

	"geoguardian/internal/services/api"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// refuse to serve on a half-open database
	repokit.MustGuard(context.Background(), st)

	// http server (reads API_PORT)
	srv := phttp.NewServer(root)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
