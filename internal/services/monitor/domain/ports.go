package domain

import (
	"context"

	"geoguardian/internal/adapters/imagery/sentinel"
	alertdom "geoguardian/internal/services/alerts/domain"
	blobdom "geoguardian/internal/services/blobs/domain"
	regdom "geoguardian/internal/services/regions/domain"
)

// RunnerPort drives monitoring cycles
type RunnerPort interface {
	RunBatch(ctx context.Context, f regdom.Frequency) error
	CheckRegionNow(ctx context.Context, regionID string) (Outcome, error)
}

// Ports are the foreign ports the monitor module needs wired in
type Ports struct {
	Regions regdom.CheckPort
	Blobs   blobdom.StorePort
	Imagery sentinel.Fetcher
	Alerts  alertdom.DispatcherPort
}
