// Package service implements the region monitoring cycle
package service

import (
	"context"
	"time"

	"geoguardian/internal/adapters/imagery/sentinel"
	"geoguardian/internal/core/changedetect"
	perr "geoguardian/internal/platform/errors"
	"geoguardian/internal/platform/logger"
	ptime "geoguardian/internal/platform/time"
	alertdom "geoguardian/internal/services/alerts/domain"
	blobdom "geoguardian/internal/services/blobs/domain"
	"geoguardian/internal/services/monitor/domain"
	regdom "geoguardian/internal/services/regions/domain"
)

// Config for the monitor service
type Config struct {
	// MinUsableBytes rejects payloads too small to be real imagery
	MinUsableBytes int
	CaptureWidth   int
	CaptureHeight  int
}

// Service implements domain.RunnerPort
type Service struct {
	Regions regdom.CheckPort
	Blobs   blobdom.StorePort
	Imagery sentinel.Fetcher
	Alerts  alertdom.DispatcherPort
	Cfg     Config

	log logger.Logger
	now func() time.Time
}

// New constructs a new monitor service
func New(p domain.Ports, cfg Config) *Service {
	if cfg.MinUsableBytes <= 0 {
		cfg.MinUsableBytes = 1000
	}
	if cfg.CaptureWidth <= 0 {
		cfg.CaptureWidth = 512
	}
	if cfg.CaptureHeight <= 0 {
		cfg.CaptureHeight = 512
	}
	return &Service{
		Regions: p.Regions,
		Blobs:   p.Blobs,
		Imagery: p.Imagery,
		Alerts:  p.Alerts,
		Cfg:     cfg,
		log:     *logger.Named("monitor"),
		now:     time.Now,
	}
}

// RunBatch implements domain.RunnerPort. One failing region never stops the
// rest of the batch
func (s *Service) RunBatch(ctx context.Context, f regdom.Frequency) error {
	regions, err := s.Regions.ListEnabled(ctx, f)
	if err != nil {
		return err
	}
	s.log.Info().Str("frequency", string(f)).Int("regions", len(regions)).Msg("monitoring batch started")

	for _, r := range regions {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := s.CheckRegion(ctx, r)
		if err != nil {
			s.log.Error().Err(err).Str("region_id", r.ID).Str("region", r.Name).Msg("region check failed")
			continue
		}
		s.log.Info().
			Str("region_id", r.ID).
			Str("region", r.Name).
			Str("status", string(out.Status)).
			Bool("alerted", out.Alerted).
			Msg("region check complete")
	}

	s.log.Info().Str("frequency", string(f)).Msg("monitoring batch complete")
	return nil
}

// CheckRegionNow implements domain.RunnerPort
func (s *Service) CheckRegionNow(ctx context.Context, regionID string) (domain.Outcome, error) {
	r, err := s.Regions.Get(ctx, regionID)
	if err != nil {
		return domain.Outcome{}, err
	}
	return s.CheckRegion(ctx, r)
}

// CheckRegion runs one full cycle for a region: fetch today's capture, store
// it, compare against the saved baseline, alert when warranted, and persist
// the new state under the loaded version
func (s *Service) CheckRegion(ctx context.Context, r regdom.Region) (domain.Outcome, error) {
	today := s.now().Format("2006-01-02")

	data, err := s.Imagery.Fetch(ctx, today, r.BBox, s.Cfg.CaptureWidth, s.Cfg.CaptureHeight)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNoData) {
			s.log.Info().Str("region", r.Name).Str("day", today).Msg("no capture available, skipping")
			return domain.Outcome{Status: domain.StatusSkippedNoData}, nil
		}
		return domain.Outcome{}, err
	}
	if len(data) < s.Cfg.MinUsableBytes {
		s.log.Info().Str("region", r.Name).Int("bytes", len(data)).Msg("capture too small, skipping")
		return domain.Outcome{Status: domain.StatusSkippedNoData}, nil
	}

	ref, err := s.Blobs.Put(ctx, data, "image/jpeg", blobdom.Meta{
		"type":      "monitoring",
		"region_id": r.ID,
		"date":      today,
	})
	if err != nil {
		return domain.Outcome{}, err
	}
	newID := string(ref)
	checkedAt := s.now()

	// first ever capture becomes the baseline
	if r.LastBlobID == nil {
		r.LastBlobID = &newID
		r.LastCheckedAt = ptime.Ptr(checkedAt)
		if err := s.Regions.SaveCheck(ctx, r); err != nil {
			return domain.Outcome{}, err
		}
		s.log.Info().Str("region", r.Name).Str("blob", newID).Msg("baseline set")
		return domain.Outcome{Status: domain.StatusBaselineSet}, nil
	}

	prev, err := s.Blobs.Get(ctx, blobdom.Ref(*r.LastBlobID))
	if err != nil {
		return domain.Outcome{}, err
	}

	report, err := changedetect.Compare(prev.Data, data)
	if err != nil {
		return domain.Outcome{}, err
	}

	alerted := false
	if r.AlertsOn(report.Severity) && r.AlertEmail != "" {
		err := s.Alerts.Send(ctx, r.AlertEmail, alertdom.Alert{
			ChangePercentage: report.ChangePercentage,
			ChangedPixels:    report.ChangedPixels,
			TotalPixels:      report.TotalPixels,
			Severity:         report.Severity,
			ChangeType:       report.ChangeType,
			Summary:          report.Summary,
			Location:         r.Name,
			Date:             today,
		})
		if err != nil {
			// a dead relay must not lose the check result
			s.log.Warn().Err(err).Str("region", r.Name).Msg("alert send failed")
		} else {
			alerted = true
			r.TotalAlertsSent++
		}
	}

	r.LastBlobID = &newID
	r.LastCheckedAt = ptime.Ptr(checkedAt)
	r.LastChangePct = report.ChangePercentage
	if err := s.Regions.SaveCheck(ctx, r); err != nil {
		return domain.Outcome{}, err
	}

	return domain.Outcome{Status: domain.StatusCompared, Report: &report, Alerted: alerted}, nil
}
