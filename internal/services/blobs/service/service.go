// Package service provides the blobs service implementation
package service

import (
	"context"

	"github.com/google/uuid"

	"geoguardian/internal/modkit/repokit"
	perr "geoguardian/internal/platform/errors"
	"geoguardian/internal/services/blobs/domain"
	"geoguardian/internal/services/blobs/repo"
)

// Service implements domain.StorePort over Postgres
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
}

// New constructs a new blobs service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage]) *Service {
	return &Service{DB: db, Binder: b}
}

// Put implements domain.StorePort
func (s *Service) Put(
	ctx context.Context,
	data []byte,
	contentType string,
	meta domain.Meta,
) (domain.Ref, error) {
	if len(data) == 0 {
		return "", perr.InvalidArgf("blob payload is empty")
	}
	if contentType == "" {
		return "", perr.InvalidArgf("blob content type is required")
	}

	ref := domain.Ref(uuid.NewString())
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).Insert(ctx, ref, data, contentType, meta)
	})
	if err != nil {
		return "", err
	}
	return ref, nil
}

// Get implements domain.StorePort
func (s *Service) Get(ctx context.Context, ref domain.Ref) (domain.Blob, error) {
	if _, err := uuid.Parse(string(ref)); err != nil {
		return domain.Blob{}, perr.InvalidArgf("blob ref %q is not a uuid", ref)
	}
	var out domain.Blob
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Get(ctx, ref)
		return err
	})
	return out, err
}

// Find implements domain.StorePort
func (s *Service) Find(ctx context.Context, meta domain.Meta) ([]domain.Info, error) {
	if len(meta) == 0 {
		return nil, perr.InvalidArgf("blob find needs at least one meta key")
	}
	var out []domain.Info
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Find(ctx, meta)
		return err
	})
	return out, err
}

// Delete implements domain.StorePort
func (s *Service) Delete(ctx context.Context, ref domain.Ref) error {
	if _, err := uuid.Parse(string(ref)); err != nil {
		return perr.InvalidArgf("blob ref %q is not a uuid", ref)
	}
	return s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).Delete(ctx, ref)
	})
}
