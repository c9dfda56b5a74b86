// Package api provides the HTTP API for the application
package api

import (
	"idcheck/internal/platform/config"
	"idcheck/internal/platform/logger"
	phttp "idcheck/internal/platform/net/http"
	"idcheck/internal/platform/store"

	"idcheck/internal/modkit"
	"idcheck/internal/modkit/httpkit"
	"idcheck/internal/modkit/module"
	"idcheck/internal/modkit/swaggerkit"

	auditmod "idcheck/internal/services/audit/module"
	auditsvc "idcheck/internal/services/audit/service"
	batchmod "idcheck/internal/services/batch/module"
	combomod "idcheck/internal/services/combo/module"
	disposabledom "idcheck/internal/services/disposable/domain"
	disposablemod "idcheck/internal/services/disposable/module"
	emailmod "idcheck/internal/services/email/module"
	ibanmod "idcheck/internal/services/iban/module"
	metamod "idcheck/internal/services/meta/module"
	phonemod "idcheck/internal/services/phone/module"
	rlhttp "idcheck/internal/services/ratelimit/http"
	rlmod "idcheck/internal/services/ratelimit/module"
	rlsvc "idcheck/internal/services/ratelimit/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Runtime exposes the long running pieces Mount wires up so main can
// drive their lifecycles (bootstrap, background loops, shutdown)
type Runtime struct {
	Disposable disposabledom.RunnerPort
	Audit      *auditsvc.Svc
	Limiter    *rlsvc.Svc
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) Runtime {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Provider modules first so their ports can feed the validators
	disposable := disposablemod.New(deps)
	audit := auditmod.New(deps, opt.Store.CH)

	lookup := module.MustPortsOf[disposablemod.Ports](disposable).Lookup
	recorder := module.MustPortsOf[auditmod.Ports](audit).Recorder

	// Every validation route sits behind plan admission
	limiter := rlsvc.New(rlmod.FromConfig(deps.Cfg))
	admission := modkit.WithMiddlewares(rlhttp.Admission(limiter))

	email := emailmod.New(deps, emailmod.Deps{
		Disposable: lookup,
		Audit:      recorder,
	}, admission)
	emailPort := module.MustPortsOf[emailmod.Ports](email).Validator

	phone := phonemod.New(deps, recorder, admission)
	phonePort := module.MustPortsOf[phonemod.Ports](phone).Validator

	mods := []module.Module{
		metamod.New(deps),
		disposable,
		audit,
		email,
		phone,
		ibanmod.New(deps, recorder, admission),
		batchmod.New(deps, emailPort, admission),
		combomod.New(deps, emailPort, phonePort, admission),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	return Runtime{
		Disposable: module.MustPortsOf[disposablemod.Ports](disposable).Runner,
		Audit:      audit.Service(),
		Limiter:    limiter,
	}
}
