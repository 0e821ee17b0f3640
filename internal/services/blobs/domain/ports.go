package domain

import "context"

// StorePort is the blob storage contract
type StorePort interface {
	Put(ctx context.Context, data []byte, contentType string, meta Meta) (Ref, error)
	Get(ctx context.Context, ref Ref) (Blob, error)
	Find(ctx context.Context, meta Meta) ([]Info, error)
	Delete(ctx context.Context, ref Ref) error
}
