// GeoGuardian sentry: scheduled region checks and alert dispatch

package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"geoguardian/internal/modkit"
	"geoguardian/internal/modkit/module"
	"geoguardian/internal/modkit/repokit"
	"geoguardian/internal/platform/config"
	"geoguardian/internal/platform/logger"
	"geoguardian/internal/platform/store"

	"geoguardian/internal/adapters/imagery/sentinel"

	alertsmod "geoguardian/internal/services/alerts/module"
	blobsmod "geoguardian/internal/services/blobs/module"
	mondom "geoguardian/internal/services/monitor/domain"
	monitormod "geoguardian/internal/services/monitor/module"
	regdom "geoguardian/internal/services/regions/domain"
	regionsmod "geoguardian/internal/services/regions/module"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(context.Background(), st)

	var (
		fMode = flag.String("mode", "worker", "sentry mode: worker | run | check")
		fFreq = flag.String("frequency", "daily", "run mode: frequency batch to execute (daily | weekly | monthly)")
		fReg  = flag.String("region", "", "check mode: region id to check immediately")
	)
	flag.Parse()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	blobs := blobsmod.New(deps)
	regions := regionsmod.New(deps)
	alerts := alertsmod.New(deps)
	imagery := sentinel.NewClient(sentinel.FromConfig(root))

	monitor := monitormod.New(deps, modkit.WithPorts(mondom.Ports{
		Regions: module.MustPortsOf[regionsmod.Ports](regions).Check,
		Blobs:   module.MustPortsOf[blobsmod.Ports](blobs).Store,
		Imagery: imagery,
		Alerts:  module.MustPortsOf[alertsmod.Ports](alerts).Dispatcher,
	}))

	module.Register(monitor.Name(), monitor.Ports())

	runner := module.MustPortsOf[monitormod.Ports](monitor).Runner

	switch *fMode {
	case "worker":
		// Run until interrupted, firing batches on the configured cron specs
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := monitor.Worker().Run(ctx); err != nil && ctx.Err() == nil {
			l.Fatal().Err(err).Msg("sentry worker failed")
		}
		l.Info().Msg("sentry worker stopped")

	case "run":
		// Execute one frequency batch now, then exit
		freq := regdom.Frequency(*fFreq)
		if !freq.Valid() {
			l.Panic().Str("frequency", *fFreq).Msg("sentry run mode: bad -frequency (expected: daily | weekly | monthly)")
		}
		if err := runner.RunBatch(context.Background(), freq); err != nil {
			l.Fatal().Err(err).Msg("sentry batch failed")
		}

	case "check":
		// Check one region immediately, then exit
		if *fReg == "" {
			l.Panic().Msg("sentry check mode: -region is required")
		}
		out, err := runner.CheckRegionNow(context.Background(), *fReg)
		if err != nil {
			l.Fatal().Err(err).Str("region_id", *fReg).Msg("sentry check failed")
		}
		ev := l.Info().Str("region_id", *fReg).Str("status", string(out.Status))
		if out.Report != nil {
			ev = ev.Float64("change_pct", out.Report.ChangePercentage).Bool("alerted", out.Alerted)
		}
		ev.Msg("sentry check complete")

	default:
		l.Panic().Str("mode", *fMode).Msg("sentry unknown -mode (expected: worker | run | check)")
	}
}
