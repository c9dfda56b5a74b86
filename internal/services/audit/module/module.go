// Package module wires the audit recorder and history endpoints
package module

import (
	"net/http"

	modkit "idcheck/internal/modkit"
	"idcheck/internal/modkit/httpkit"
	str "idcheck/internal/platform/strings"
	"idcheck/internal/platform/store"
	"idcheck/internal/services/audit/domain"
	audithttp "idcheck/internal/services/audit/http"
	auditrepo "idcheck/internal/services/audit/repo"
	auditsvc "idcheck/internal/services/audit/service"
)

// Ports holds the ports exposed by the audit module
type Ports struct {
	Recorder domain.RecorderPort
	History  domain.HistoryPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)

	svc *auditsvc.Svc
}

// New constructs the audit module. The worker still needs Run driven from main
func New(deps modkit.Deps, ch store.Clickhouse, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("audit"), modkit.WithPrefix("/history")}, opts...)...)

	svc := auditsvc.New(deps.PG, auditrepo.NewPG(), ch, FromConfig(deps.Cfg))

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Recorder: svc, History: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		audithttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Service exposes the concrete service for lifecycle wiring in main
func (m *Module) Service() *auditsvc.Svc { return m.svc }

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
