// Package service provides the regions service implementation
package service

import (
	"context"

	"github.com/google/uuid"

	"geoguardian/internal/modkit/repokit"
	perr "geoguardian/internal/platform/errors"
	"geoguardian/internal/services/regions/domain"
	"geoguardian/internal/services/regions/repo"
)

// Service implements domain.CrudPort and domain.CheckPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
}

// New constructs a new regions service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage]) *Service {
	return &Service{DB: db, Binder: b}
}

// Create implements domain.CrudPort
func (s *Service) Create(ctx context.Context, r domain.Region) (domain.Region, error) {
	if r.OwnerID == "" {
		return domain.Region{}, perr.Unauthorizedf("missing owner scope")
	}
	if r.Monitoring.Frequency == "" {
		r.Monitoring.Frequency = domain.FrequencyWeekly
	}
	if r.Monitoring.AlertSeverities == nil {
		r.Monitoring.AlertSeverities = []string{"high", "medium"}
	}
	if r.Location == "" {
		r.Location = "Unknown"
	}
	if err := r.Validate(); err != nil {
		return domain.Region{}, err
	}

	r.ID = uuid.NewString()
	var out domain.Region
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Insert(ctx, r)
		return err
	})
	return out, err
}

// ListByOwner implements domain.CrudPort
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]domain.Region, error) {
	if ownerID == "" {
		return nil, perr.Unauthorizedf("missing owner scope")
	}
	var out []domain.Region
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ListByOwner(ctx, ownerID)
		return err
	})
	return out, err
}

// GetOwned implements domain.CrudPort
func (s *Service) GetOwned(ctx context.Context, ownerID, id string) (domain.Region, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return domain.Region{}, err
	}
	// not found rather than forbidden so owners cannot probe other ids
	if r.OwnerID != ownerID {
		return domain.Region{}, perr.NotFoundf("region %s not found", id)
	}
	return r, nil
}

// Update implements domain.CrudPort
func (s *Service) Update(ctx context.Context, r domain.Region) (domain.Region, error) {
	if r.OwnerID == "" {
		return domain.Region{}, perr.Unauthorizedf("missing owner scope")
	}
	if _, err := uuid.Parse(r.ID); err != nil {
		return domain.Region{}, perr.InvalidArgf("region id %q is not a uuid", r.ID)
	}
	if err := r.Validate(); err != nil {
		return domain.Region{}, err
	}
	var out domain.Region
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Update(ctx, r)
		return err
	})
	return out, err
}

// Delete implements domain.CrudPort
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return perr.Unauthorizedf("missing owner scope")
	}
	if _, err := uuid.Parse(id); err != nil {
		return perr.InvalidArgf("region id %q is not a uuid", id)
	}
	return s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).Delete(ctx, ownerID, id)
	})
}

// Get implements domain.CheckPort
func (s *Service) Get(ctx context.Context, id string) (domain.Region, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Region{}, perr.InvalidArgf("region id %q is not a uuid", id)
	}
	var out domain.Region
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Get(ctx, id)
		return err
	})
	return out, err
}

// ListEnabled implements domain.CheckPort
func (s *Service) ListEnabled(ctx context.Context, f domain.Frequency) ([]domain.Region, error) {
	if !f.Valid() {
		return nil, perr.InvalidArgf("frequency %q: want daily, weekly, or monthly", f)
	}
	var out []domain.Region
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ListEnabled(ctx, f)
		return err
	})
	return out, err
}

// SaveCheck implements domain.CheckPort
func (s *Service) SaveCheck(ctx context.Context, r domain.Region) error {
	return s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).SaveCheck(ctx, r)
	})
}
