// Package http provides http transport for change detection
package http

import (
	"encoding/base64"
	"io"
	stdhttp "net/http"

	"geoguardian/internal/core/changedetect"
	"geoguardian/internal/modkit/httpkit"
	perr "geoguardian/internal/platform/errors"
	"geoguardian/internal/platform/logger"
	"geoguardian/internal/services/api/detection/domain"
)

// Config bounds uploads and sizes the diff rendering
type Config struct {
	MaxUploadBytes int64
	DiffWidth      int
	DiffHeight     int
}

// Register mounts detection endpoints on the given router
func Register(r httpkit.Router, cfg Config) {
	h := &handlers{cfg: cfg}
	r.Post("/compare", httpkit.Handle(h.compare))
}

type handlers struct{ cfg Config }

// compare accepts multipart "before" and "after" images and returns the
// change analysis with an inline diff when one can be rendered
func (h *handlers) compare(r *stdhttp.Request) httpkit.Response {
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		return httpkit.Error(perr.InvalidArgf("expected multipart form with before and after images"))
	}

	before, err := formImage(r, "before")
	if err != nil {
		return httpkit.Error(err)
	}
	after, err := formImage(r, "after")
	if err != nil {
		return httpkit.Error(err)
	}

	report, err := changedetect.Compare(before, after)
	if err != nil {
		return httpkit.Error(err)
	}

	out := domain.CompareResponse{Report: report}
	diff, err := changedetect.RenderDiff(before, after, h.cfg.DiffWidth, h.cfg.DiffHeight)
	if err != nil {
		logger.C(r.Context()).Warn().Err(err).Msg("diff render failed")
	} else {
		out.DiffImage = base64.StdEncoding.EncodeToString(diff)
	}
	return httpkit.OK(out)
}

func formImage(r *stdhttp.Request, field string) ([]byte, error) {
	f, _, err := r.FormFile(field)
	if err != nil {
		return nil, perr.InvalidArgf("missing %s image", field)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "read %s image", field)
	}
	if len(data) == 0 {
		return nil, perr.InvalidArgf("%s image is empty", field)
	}
	return data, nil
}
