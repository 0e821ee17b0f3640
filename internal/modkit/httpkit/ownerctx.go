package httpkit

import (
	"net/http"

	perrs "geoguardian/internal/platform/errors"
	pnet "geoguardian/internal/platform/net"
)

// Owner returns the resolved owner id from the request context
func Owner(r *http.Request) (string, error) {
	oid := pnet.OwnerID(r.Context())
	if oid == "" {
		return "", perrs.Unauthorizedf("missing owner scope")
	}
	return oid, nil
}

// MustOwner returns the resolved owner id or panics
// only use on routes behind the owner middleware
func MustOwner(r *http.Request) string {
	oid, err := Owner(r)
	if err != nil {
		panic(err)
	}
	return oid
}
