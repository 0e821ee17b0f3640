// Package http provides http transport for region monitoring
package http

import (
	"context"
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"geoguardian/internal/modkit/httpkit"
	"geoguardian/internal/platform/logger"
	phttp "geoguardian/internal/platform/net/http"
	"geoguardian/internal/services/api/monitoring/domain"
	mondom "geoguardian/internal/services/monitor/domain"
	regdom "geoguardian/internal/services/regions/domain"
)

// Register mounts monitoring endpoints on the given router
func Register(r httpkit.Router, crud regdom.CrudPort, runner mondom.RunnerPort) {
	h := &handlers{crud: crud, runner: runner}

	r.Post("/regions", phttp.JSONHandler(h.create))
	httpkit.Get(r, "/regions", h.list)
	httpkit.Get(r, "/regions/{regionID}", h.get)
	r.Put("/regions/{regionID}", phttp.JSONHandler(h.update))
	httpkit.Delete(r, "/regions/{regionID}", h.delete)
	httpkit.Post(r, "/regions/{regionID}/check", h.check)
}

type handlers struct {
	crud   regdom.CrudPort
	runner mondom.RunnerPort
}

func (h *handlers) create(r *stdhttp.Request, in domain.RegionInput) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}

	reg := regdom.Region{
		OwnerID:     owner,
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
		BBox:        in.BBox,
		AlertEmail:  in.AlertEmail,
		Monitoring:  regdom.Monitoring{Enabled: true},
	}
	applyMonitoring(&reg, in.Monitoring)

	out, err := h.crud.Create(r.Context(), reg)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.crud.ListByOwner(r.Context(), owner)
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	return h.crud.GetOwned(r.Context(), owner, chi.URLParam(r, "regionID"))
}

func (h *handlers) update(r *stdhttp.Request, in domain.RegionInput) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}

	reg, err := h.crud.GetOwned(r.Context(), owner, chi.URLParam(r, "regionID"))
	if err != nil {
		return nil, err
	}
	reg.Name = in.Name
	reg.Description = in.Description
	if in.Location != "" {
		reg.Location = in.Location
	}
	reg.BBox = in.BBox
	reg.AlertEmail = in.AlertEmail
	applyMonitoring(&reg, in.Monitoring)

	return h.crud.Update(r.Context(), reg)
}

func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}
	if err := h.crud.Delete(r.Context(), owner, chi.URLParam(r, "regionID")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// check triggers a manual cycle and responds before it finishes; a full
// fetch-compare-alert pass can take tens of seconds
func (h *handlers) check(r *stdhttp.Request) (any, error) {
	owner, err := httpkit.Owner(r)
	if err != nil {
		return nil, err
	}

	reg, err := h.crud.GetOwned(r.Context(), owner, chi.URLParam(r, "regionID"))
	if err != nil {
		return nil, err
	}

	bg := context.WithoutCancel(r.Context())
	go func() {
		if _, err := h.runner.CheckRegionNow(bg, reg.ID); err != nil {
			logger.C(bg).Error().Err(err).Str("region_id", reg.ID).Msg("manual check failed")
		}
	}()

	return httpkit.Response{
		Status: stdhttp.StatusAccepted,
		Body: domain.CheckAccepted{
			RegionID: reg.ID,
			Message:  "check started",
		},
	}, nil
}

func applyMonitoring(reg *regdom.Region, in *domain.MonitoringInput) {
	if in == nil {
		return
	}
	if in.Enabled != nil {
		reg.Monitoring.Enabled = *in.Enabled
	}
	if in.Frequency != "" {
		reg.Monitoring.Frequency = regdom.Frequency(in.Frequency)
	}
	if in.AlertSeverities != nil {
		reg.Monitoring.AlertSeverities = in.AlertSeverities
	}
}
