package domain

import "context"

// CrudPort is the owner-scoped surface the API mounts
type CrudPort interface {
	Create(ctx context.Context, r Region) (Region, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Region, error)
	GetOwned(ctx context.Context, ownerID, id string) (Region, error)
	Update(ctx context.Context, r Region) (Region, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// CheckPort is the ownership-agnostic surface the scheduler uses
type CheckPort interface {
	Get(ctx context.Context, id string) (Region, error)
	ListEnabled(ctx context.Context, f Frequency) ([]Region, error)
	SaveCheck(ctx context.Context, r Region) error
}
