// Package repo provides the Postgres monitored regions repository
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"geoguardian/internal/modkit/repokit"
	perr "geoguardian/internal/platform/errors"
	pnet "geoguardian/internal/platform/net"
	str "geoguardian/internal/platform/strings"
	"geoguardian/internal/services/regions/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// OwnerStamp records the acting owner on the transaction so audit triggers
// can read it via current_setting('app.owner_id', true)
func OwnerStamp(ctx context.Context, q repokit.Queryer) error {
	owner := pnet.OwnerID(ctx)
	if owner == "" {
		return nil
	}
	_, err := q.Exec(ctx, `SELECT set_config('app.owner_id', $1, true)`, owner)
	return err
}

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the regions repository
type Storage interface {
	Insert(ctx context.Context, r domain.Region) (domain.Region, error)
	Get(ctx context.Context, id string) (domain.Region, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Region, error)
	ListEnabled(ctx context.Context, f domain.Frequency) ([]domain.Region, error)
	Update(ctx context.Context, r domain.Region) (domain.Region, error)
	Delete(ctx context.Context, ownerID, id string) error
	SaveCheck(ctx context.Context, r domain.Region) error
}

type pg struct{ q repokit.Queryer }

const regionCols = `
	id::text, owner_id, name, description, location, bbox,
	alert_email, enabled, frequency, alert_severities,
	last_checked_at, last_blob_id::text, last_change_pct, total_alerts_sent,
	version, created_at, updated_at
`

func scanRegion(row interface{ Scan(dest ...any) error }) (domain.Region, error) {
	var r domain.Region
	var bbox []float64
	if err := row.Scan(
		&r.ID, &r.OwnerID, &r.Name, &r.Description, &r.Location, &bbox,
		&r.AlertEmail, &r.Monitoring.Enabled, &r.Monitoring.Frequency, &r.Monitoring.AlertSeverities,
		&r.LastCheckedAt, &r.LastBlobID, &r.LastChangePct, &r.TotalAlertsSent,
		&r.Version, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return domain.Region{}, err
	}
	if len(bbox) == 4 {
		copy(r.BBox[:], bbox)
	}
	return r, nil
}

func (s *pg) Insert(ctx context.Context, r domain.Region) (domain.Region, error) {
	const sql = `
		INSERT INTO monitored_regions (
			id, owner_id, name, description, location, bbox,
			alert_email, enabled, frequency, alert_severities
		)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + regionCols
	row := s.q.QueryRow(ctx, sql,
		r.ID, r.OwnerID, r.Name, r.Description, r.Location, r.BBox[:],
		r.AlertEmail, r.Monitoring.Enabled, string(r.Monitoring.Frequency), r.Monitoring.AlertSeverities,
	)
	out, err := scanRegion(row)
	if err != nil {
		return domain.Region{}, perr.FromPostgresWithField(err, "insert region")
	}
	return out, nil
}

func (s *pg) Get(ctx context.Context, id string) (domain.Region, error) {
	const sql = `SELECT ` + regionCols + ` FROM monitored_regions WHERE id = $1::uuid`
	r, err := scanRegion(s.q.QueryRow(ctx, sql, id))
	if errors.Is(err, stdsql.ErrNoRows) {
		return domain.Region{}, perr.NotFoundf("region %s not found", id)
	}
	return r, err
}

func (s *pg) ListByOwner(ctx context.Context, ownerID string) ([]domain.Region, error) {
	const sql = `
		SELECT ` + regionCols + `
		FROM monitored_regions
		WHERE owner_id = $1
		ORDER BY created_at
	`
	return s.list(ctx, sql, ownerID)
}

func (s *pg) ListEnabled(ctx context.Context, f domain.Frequency) ([]domain.Region, error) {
	const sql = `
		SELECT ` + regionCols + `
		FROM monitored_regions
		WHERE enabled AND frequency = $1
		ORDER BY created_at
	`
	return s.list(ctx, sql, string(f))
}

func (s *pg) list(ctx context.Context, sql string, args ...any) ([]domain.Region, error) {
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Region
	for rows.Next() {
		r, err := scanRegion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Update rewrites the caller-editable fields and bumps version so an
// in-flight check write loses the race
func (s *pg) Update(ctx context.Context, r domain.Region) (domain.Region, error) {
	const sql = `
		UPDATE monitored_regions SET
			name = $3, description = $4, location = $5, bbox = $6,
			alert_email = $7, enabled = $8, frequency = $9, alert_severities = $10,
			version = version + 1, updated_at = now()
		WHERE id = $1::uuid AND owner_id = $2
		RETURNING ` + regionCols
	row := s.q.QueryRow(ctx, sql,
		r.ID, r.OwnerID, r.Name, r.Description, r.Location, r.BBox[:],
		r.AlertEmail, r.Monitoring.Enabled, string(r.Monitoring.Frequency), r.Monitoring.AlertSeverities,
	)
	out, err := scanRegion(row)
	if errors.Is(err, stdsql.ErrNoRows) {
		return domain.Region{}, perr.NotFoundf("region %s not found", r.ID)
	}
	return out, err
}

func (s *pg) Delete(ctx context.Context, ownerID, id string) error {
	const sql = `DELETE FROM monitored_regions WHERE id = $1::uuid AND owner_id = $2`
	tag, err := s.q.Exec(ctx, sql, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("region %s not found", id)
	}
	return nil
}

// SaveCheck persists the outcome of one check cycle guarded by the version
// the caller loaded. A stale version means someone else wrote first
func (s *pg) SaveCheck(ctx context.Context, r domain.Region) error {
	const sql = `
		UPDATE monitored_regions SET
			last_checked_at = $3, last_blob_id = $4::uuid, last_change_pct = $5,
			total_alerts_sent = $6, version = version + 1, updated_at = now()
		WHERE id = $1::uuid AND version = $2
	`
	tag, err := s.q.Exec(ctx, sql,
		r.ID, r.Version, r.LastCheckedAt, str.SQLNullPtr(r.LastBlobID), r.LastChangePct, r.TotalAlertsSent,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.Conflictf("region %s changed since it was loaded", r.ID)
	}
	return nil
}
