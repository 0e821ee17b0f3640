// Package repo provides the Postgres blob repository
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"geoguardian/internal/modkit/repokit"
	perr "geoguardian/internal/platform/errors"
	"geoguardian/internal/services/blobs/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the blobs repository
type Storage interface {
	Insert(ctx context.Context, ref domain.Ref, data []byte, contentType string, meta domain.Meta) error
	Get(ctx context.Context, ref domain.Ref) (domain.Blob, error)
	Find(ctx context.Context, meta domain.Meta) ([]domain.Info, error)
	Delete(ctx context.Context, ref domain.Ref) error
}

type pg struct{ q repokit.Queryer }

func (s *pg) Insert(
	ctx context.Context,
	ref domain.Ref,
	data []byte,
	contentType string,
	meta domain.Meta,
) error {
	const sql = `
		INSERT INTO blobs (id, content_type, data, meta)
		VALUES ($1::uuid, $2, $3, $4)
	`
	_, err := s.q.Exec(ctx, sql, string(ref), contentType, data, meta)
	return perr.FromPostgres(err, "insert blob")
}

func (s *pg) Get(ctx context.Context, ref domain.Ref) (domain.Blob, error) {
	const sql = `
		SELECT content_type, data, COALESCE(meta, '{}'::jsonb)
		FROM blobs
		WHERE id = $1::uuid
	`
	row := s.q.QueryRow(ctx, sql, string(ref))

	b := domain.Blob{Ref: ref}
	if err := row.Scan(&b.ContentType, &b.Data, &b.Meta); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Blob{}, perr.NotFoundf("blob %s not found", ref)
		}
		return domain.Blob{}, err
	}
	return b, nil
}

// Find returns blobs whose meta contains the given document, ordered by the
// frame_number meta key so timelapse sequences come back in play order
func (s *pg) Find(ctx context.Context, meta domain.Meta) ([]domain.Info, error) {
	const sql = `
		SELECT id::text, content_type, octet_length(data), COALESCE(meta, '{}'::jsonb), created_at
		FROM blobs
		WHERE meta @> $1
		ORDER BY (meta->>'frame_number')::int NULLS LAST, created_at
	`
	rows, err := s.q.Query(ctx, sql, meta)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Info
	for rows.Next() {
		var i domain.Info
		var ref string
		if err := rows.Scan(&ref, &i.ContentType, &i.Size, &i.Meta, &i.CreatedAt); err != nil {
			return nil, err
		}
		i.Ref = domain.Ref(ref)
		out = append(out, i)
	}
	return out, rows.Err()
}

func (s *pg) Delete(ctx context.Context, ref domain.Ref) error {
	const sql = `DELETE FROM blobs WHERE id = $1::uuid`
	tag, err := s.q.Exec(ctx, sql, string(ref))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("blob %s not found", ref)
	}
	return nil
}
