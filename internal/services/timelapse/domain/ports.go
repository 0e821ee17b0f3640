package domain

import (
	"context"

	"geoguardian/internal/adapters/imagery/sentinel"
	blobdom "geoguardian/internal/services/blobs/domain"
)

// GeneratorPort builds and reads back frame sequences
type GeneratorPort interface {
	Generate(ctx context.Context, in GenerateInput) (Sequence, error)
	Frames(ctx context.Context, sequenceID string) (Sequence, error)
	Frame(ctx context.Context, frameID string) (blobdom.Blob, error)
}

// Ports are the foreign ports the timelapse module needs wired in
type Ports struct {
	Blobs   blobdom.StorePort
	Imagery sentinel.Fetcher
}
