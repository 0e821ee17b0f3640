// Package service implements timelapse sequence generation
package service

import (
	"context"

	"github.com/google/uuid"

	"geoguardian/internal/adapters/imagery/sentinel"
	core "geoguardian/internal/core/timelapse"
	perr "geoguardian/internal/platform/errors"
	"geoguardian/internal/platform/logger"
	blobdom "geoguardian/internal/services/blobs/domain"
	"geoguardian/internal/services/timelapse/domain"
)

// Config for the timelapse service
type Config struct {
	// MaxFrames bounds one generation run; the provider quota is the real limit
	MaxFrames     int
	DefaultWidth  int
	DefaultHeight int
}

// Service implements domain.GeneratorPort
type Service struct {
	Blobs   blobdom.StorePort
	Imagery sentinel.Fetcher
	Cfg     Config

	log logger.Logger
}

// New constructs a new timelapse service
func New(p domain.Ports, cfg Config) *Service {
	if cfg.MaxFrames <= 0 {
		cfg.MaxFrames = 20
	}
	if cfg.DefaultWidth <= 0 {
		cfg.DefaultWidth = 512
	}
	if cfg.DefaultHeight <= 0 {
		cfg.DefaultHeight = 512
	}
	return &Service{
		Blobs:   p.Blobs,
		Imagery: p.Imagery,
		Cfg:     cfg,
		log:     *logger.Named("timelapse"),
	}
}

// Generate implements domain.GeneratorPort. Dates that yield no usable
// capture are skipped; the run fails only when nothing survives
func (s *Service) Generate(ctx context.Context, in domain.GenerateInput) (domain.Sequence, error) {
	if in.IntervalDays <= 0 {
		in.IntervalDays = core.DefaultIntervalDays
	}
	if in.Width <= 0 {
		in.Width = s.Cfg.DefaultWidth
	}
	if in.Height <= 0 {
		in.Height = s.Cfg.DefaultHeight
	}
	if err := in.BBox.Validate(); err != nil {
		return domain.Sequence{}, err
	}

	dates, err := core.DateRange(in.StartDate, in.EndDate, in.IntervalDays)
	if err != nil {
		return domain.Sequence{}, err
	}
	if len(dates) > s.Cfg.MaxFrames {
		return domain.Sequence{}, perr.InvalidArgf(
			"too many frames (%d), maximum %d; try increasing interval days",
			len(dates), s.Cfg.MaxFrames,
		)
	}

	seqID := uuid.NewString()
	seq := domain.Sequence{
		ID:        seqID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		BBox:      in.BBox,
	}

	for _, date := range dates {
		if err := ctx.Err(); err != nil {
			return domain.Sequence{}, err
		}

		raw, err := s.Imagery.Fetch(ctx, date, in.BBox, in.Width, in.Height)
		if err != nil {
			s.log.Warn().Err(err).Str("date", date).Msg("frame fetch failed, skipping")
			continue
		}

		frame, err := core.StampDate(raw, date, in.Width, in.Height)
		if err != nil {
			s.log.Warn().Err(err).Str("date", date).Msg("frame stamp failed, skipping")
			continue
		}

		n := len(seq.Frames)
		ref, err := s.Blobs.Put(ctx, frame, "image/jpeg", blobdom.Meta{
			"type":         "timelapse_frame",
			"sequence_id":  seqID,
			"frame_number": n,
			"date":         date,
			"start_date":   in.StartDate,
			"end_date":     in.EndDate,
			"bbox":         in.BBox,
		})
		if err != nil {
			return domain.Sequence{}, err
		}

		seq.Frames = append(seq.Frames, domain.Frame{
			Ref:         string(ref),
			FrameNumber: n,
			Date:        date,
			Size:        len(frame),
		})
		seq.Dates = append(seq.Dates, date)
	}

	if len(seq.Frames) == 0 {
		return domain.Sequence{}, perr.NoDataf("no frames could be generated, check dates and location")
	}
	seq.FrameCount = len(seq.Frames)

	s.log.Info().
		Str("sequence_id", seqID).
		Int("frames", seq.FrameCount).
		Int("requested", len(dates)).
		Msg("timelapse generated")
	return seq, nil
}

// Frames implements domain.GeneratorPort
func (s *Service) Frames(ctx context.Context, sequenceID string) (domain.Sequence, error) {
	if _, err := uuid.Parse(sequenceID); err != nil {
		return domain.Sequence{}, perr.InvalidArgf("sequence id %q is not a uuid", sequenceID)
	}

	infos, err := s.Blobs.Find(ctx, blobdom.Meta{
		"type":        "timelapse_frame",
		"sequence_id": sequenceID,
	})
	if err != nil {
		return domain.Sequence{}, err
	}
	if len(infos) == 0 {
		return domain.Sequence{}, perr.NotFoundf("timelapse %s not found", sequenceID)
	}

	seq := domain.Sequence{ID: sequenceID, FrameCount: len(infos)}
	for _, info := range infos {
		f := domain.Frame{Ref: string(info.Ref), Size: info.Size}
		if n, ok := info.Meta["frame_number"].(float64); ok {
			f.FrameNumber = int(n)
		}
		if d, ok := info.Meta["date"].(string); ok {
			f.Date = d
			seq.Dates = append(seq.Dates, d)
		}
		seq.Frames = append(seq.Frames, f)
	}
	// sequence-level metadata rides on every frame; read it off the first
	first := infos[0].Meta
	if v, ok := first["start_date"].(string); ok {
		seq.StartDate = v
	}
	if v, ok := first["end_date"].(string); ok {
		seq.EndDate = v
	}
	if arr, ok := first["bbox"].([]any); ok && len(arr) == 4 {
		for i, v := range arr {
			if f, ok := v.(float64); ok {
				seq.BBox[i] = f
			}
		}
	}
	return seq, nil
}

// Frame implements domain.GeneratorPort
func (s *Service) Frame(ctx context.Context, frameID string) (blobdom.Blob, error) {
	return s.Blobs.Get(ctx, blobdom.Ref(frameID))
}
