// Package http provides http transport for timelapse sequences
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"geoguardian/internal/modkit/httpkit"
	phttp "geoguardian/internal/platform/net/http"
	"geoguardian/internal/services/api/timelapse/domain"
	tldom "geoguardian/internal/services/timelapse/domain"
)

// Register mounts timelapse endpoints on the given router
func Register(r httpkit.Router, gen tldom.GeneratorPort) {
	h := &handlers{gen: gen}
	r.Post("/generate", phttp.JSONHandler(h.generate))
	httpkit.Get(r, "/{sequenceID}/frames", h.frames)
	r.Get("/frame/{frameID}", h.frame)
}

type handlers struct{ gen tldom.GeneratorPort }

func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	return h.gen.Generate(r.Context(), tldom.GenerateInput{
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		BBox:         in.BBox,
		IntervalDays: in.IntervalDays,
		Width:        in.Width,
		Height:       in.Height,
	})
}

func (h *handlers) frames(r *stdhttp.Request) (any, error) {
	return h.gen.Frames(r.Context(), chi.URLParam(r, "sequenceID"))
}

// frame streams the raw image bytes; frames are immutable so clients may
// cache hard
func (h *handlers) frame(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	blob, err := h.gen.Frame(r.Context(), chi.URLParam(r, "frameID"))
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	_, _ = w.Write(blob.Data)
}
