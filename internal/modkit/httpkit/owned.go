package httpkit

import (
	"geoguardian/internal/platform/net/middleware"
)

// OwnerPort re-exports the middleware seam so modules avoid the platform import
type OwnerPort = middleware.OwnerPort

// HeaderOwner builds an OwnerPort that reads the owner id from a header
func HeaderOwner(header, fallback string) OwnerPort {
	return middleware.HeaderOwner(header, fallback)
}

// Owned routes group: every route registered inside fn sees the resolved owner on context
func OwnedGroup(r Router, p OwnerPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Owned(p))
		fn(gr)
	})
}
