// Package module wires the disposable domain store and exposes its ports
package module

import (
	"net/http"

	modkit "idcheck/internal/modkit"
	"idcheck/internal/modkit/httpkit"
	str "idcheck/internal/platform/strings"
	"idcheck/internal/services/disposable/domain"
	disposablehttp "idcheck/internal/services/disposable/http"
	disposablesvc "idcheck/internal/services/disposable/service"
)

// Ports holds the ports exposed by the disposable module
type Ports struct {
	Lookup domain.LookupPort
	Admin  domain.AdminPort
	Runner domain.RunnerPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)

	svc *disposablesvc.Svc
}

// New constructs the disposable module, building the store from config
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("disposable"), modkit.WithPrefix("/disposable")}, opts...)...)

	svc := disposablesvc.New(FromConfig(deps.Cfg))

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Lookup: svc, Admin: svc, Runner: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		disposablehttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
