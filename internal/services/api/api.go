// Package api provides the HTTP API for the application
package api

import (
	"geoguardian/internal/platform/config"
	"geoguardian/internal/platform/logger"
	phttp "geoguardian/internal/platform/net/http"
	"geoguardian/internal/platform/store"

	"geoguardian/internal/modkit"
	"geoguardian/internal/modkit/httpkit"
	"geoguardian/internal/modkit/module"

	"geoguardian/internal/adapters/imagery/sentinel"

	detectionmod "geoguardian/internal/services/api/detection/module"
	apimonitoringmod "geoguardian/internal/services/api/monitoring/module"
	apitimelapsemod "geoguardian/internal/services/api/timelapse/module"

	alertsmod "geoguardian/internal/services/alerts/module"
	blobsmod "geoguardian/internal/services/blobs/module"
	monitormod "geoguardian/internal/services/monitor/module"
	mondom "geoguardian/internal/services/monitor/domain"
	regionsmod "geoguardian/internal/services/regions/module"
	timelapsemod "geoguardian/internal/services/timelapse/module"
	tldom "geoguardian/internal/services/timelapse/domain"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Domain modules first so their ports can feed the HTTP modules
	blobs := blobsmod.New(deps)
	regions := regionsmod.New(deps)
	alerts := alertsmod.New(deps)
	imagery := sentinel.NewClient(sentinel.FromConfig(deps.Cfg))

	monitor := monitormod.New(deps, modkit.WithPorts(mondom.Ports{
		Regions: regions.Ports().(regionsmod.Ports).Check,
		Blobs:   blobs.Ports().(blobsmod.Ports).Store,
		Imagery: imagery,
		Alerts:  alerts.Ports().(alertsmod.Ports).Dispatcher,
	}))
	timelapse := timelapsemod.New(deps, modkit.WithPorts(tldom.Ports{
		Blobs:   blobs.Ports().(blobsmod.Ports).Store,
		Imagery: imagery,
	}))

	// HTTP-facing modules wired off the domain ports
	apiMods := []module.Module{
		detectionmod.New(deps),
		apitimelapsemod.New(deps, modkit.WithPorts(apitimelapsemod.Ports{
			Generator: timelapse.Ports().(timelapsemod.Ports).Generator,
		})),
		apimonitoringmod.New(deps, modkit.WithPorts(apimonitoringmod.Ports{
			Regions: regions.Ports().(regionsmod.Ports).Crud,
			Runner:  monitor.Ports().(monitormod.Ports).Runner,
		})),
	}

	// every API route resolves the caller's owner scope from a header
	apiCfg := deps.Cfg.Prefix("API_")
	owner := httpkit.HeaderOwner(
		apiCfg.MayString("OWNER_HEADER", "X-Owner-ID"),
		apiCfg.MayString("OWNER_FALLBACK", ""),
	)
	mw := append(httpkit.CommonStack(), httpkit.Owned(owner))

	httpkit.MountAPIV1(r, mw, func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range []module.Module{blobs, regions, alerts, monitor, timelapse} {
			module.Register(m.Name(), m.Ports())
		}
		for _, m := range apiMods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
