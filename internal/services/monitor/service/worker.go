package service

import (
	"context"

	"github.com/robfig/cron/v3"

	perr "geoguardian/internal/platform/errors"
	"geoguardian/internal/platform/logger"
	regdom "geoguardian/internal/services/regions/domain"
)

// WorkerConfig holds the three cron specs, one per frequency
type WorkerConfig struct {
	DailySpec   string
	WeeklySpec  string
	MonthlySpec string
}

// Worker runs scheduled monitoring batches until its context is done
type Worker struct {
	svc *Service
	cfg WorkerConfig
	log logger.Logger
}

// NewWorker constructs a Worker with the original 09:00 wall-clock defaults
func NewWorker(svc *Service, cfg WorkerConfig) *Worker {
	if cfg.DailySpec == "" {
		cfg.DailySpec = "0 9 * * *"
	}
	if cfg.WeeklySpec == "" {
		cfg.WeeklySpec = "0 9 * * 1"
	}
	if cfg.MonthlySpec == "" {
		cfg.MonthlySpec = "0 9 1 * *"
	}
	return &Worker{svc: svc, cfg: cfg, log: *logger.Named("monitor.worker")}
}

// Run blocks until ctx is done. Each frequency fires independently so a slow
// monthly batch never delays the daily one
func (w *Worker) Run(ctx context.Context) error {
	c := cron.New()

	add := func(spec string, f regdom.Frequency) error {
		_, err := c.AddFunc(spec, func() {
			if err := w.svc.RunBatch(ctx, f); err != nil {
				w.log.Error().Err(err).Str("frequency", string(f)).Msg("scheduled batch failed")
			}
		})
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "cron spec %q for %s", spec, f)
		}
		return nil
	}

	if err := add(w.cfg.DailySpec, regdom.FrequencyDaily); err != nil {
		return err
	}
	if err := add(w.cfg.WeeklySpec, regdom.FrequencyWeekly); err != nil {
		return err
	}
	if err := add(w.cfg.MonthlySpec, regdom.FrequencyMonthly); err != nil {
		return err
	}

	c.Start()
	w.log.Info().
		Str("daily", w.cfg.DailySpec).
		Str("weekly", w.cfg.WeeklySpec).
		Str("monthly", w.cfg.MonthlySpec).
		Msg("monitoring scheduler started")

	<-ctx.Done()
	stopped := c.Stop()
	<-stopped.Done()
	return ctx.Err()
}
