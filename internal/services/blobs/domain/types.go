// Package domain defines blob storage types shared by the services that
// persist imagery
package domain

import "time"

// Meta is the queryable jsonb document stored alongside each blob
type Meta map[string]any

// Ref identifies a stored blob
type Ref string

// Blob is a stored payload with its metadata
type Blob struct {
	Ref         Ref    `json:"ref"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
	Meta        Meta   `json:"meta"`
}

// Info describes a blob without carrying its payload
type Info struct {
	Ref         Ref       `json:"ref"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	Meta        Meta      `json:"meta"`
	CreatedAt   time.Time `json:"created_at"`
}
