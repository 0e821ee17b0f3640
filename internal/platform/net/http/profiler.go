package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler mounts pprof under prefix (e.g. "/debug") when enabled.
// The Router interface has no Mount, so the prefix is stripped by hand
// before delegating to chi's profiler mux
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	serve := func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		h.ServeHTTP(w, req)
	}
	r.Get(prefix, serve)
	r.Get(prefix+"/*", serve)
}
