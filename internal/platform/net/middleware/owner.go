package middleware

import (
	"net/http"

	pnet "geoguardian/internal/platform/net"
)

// OwnerPort resolves the region owner a request acts on behalf of
type OwnerPort interface {
	// Resolve returns an owner id from the request or an error
	Resolve(r *http.Request) (ownerID string, err error)
}

// headerOwner reads the owner id straight from a header, with a fallback
type headerOwner struct {
	header   string
	fallback string
}

// HeaderOwner resolves the owner from the given header, using fallback when absent.
// Identity issuance lives upstream; this only propagates the id
func HeaderOwner(header, fallback string) OwnerPort {
	if header == "" {
		header = "X-Owner-ID"
	}
	return headerOwner{header: header, fallback: fallback}
}

func (h headerOwner) Resolve(r *http.Request) (string, error) {
	if v := r.Header.Get(h.header); v != "" {
		return v, nil
	}
	return h.fallback, nil
}

// Owner annotates the request context with the resolved owner id.
// A nil port passes requests through untouched
func Owner(p OwnerPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			oid, err := p.Resolve(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithRequest(r.Context(), pnet.RequestID(r.Context()), oid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
