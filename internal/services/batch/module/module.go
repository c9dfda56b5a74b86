// Package module wires batch email validation into the API using modkit
package module

import (
	"net/http"

	modkit "idcheck/internal/modkit"
	"idcheck/internal/modkit/httpkit"
	str "idcheck/internal/platform/strings"
	"idcheck/internal/services/batch/domain"
	batchhttp "idcheck/internal/services/batch/http"
	batchsvc "idcheck/internal/services/batch/service"
	emaildom "idcheck/internal/services/email/domain"
)

// Ports holds the ports exposed by the batch module
type Ports struct {
	Validator domain.ServicePort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)

	svc *batchsvc.Svc
}

// New constructs a batch module over the email pipeline
func New(deps modkit.Deps, email emaildom.ServicePort, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("batch"), modkit.WithPrefix("/validate/batch")}, opts...)...)

	svc := batchsvc.New(email, FromConfig(deps.Cfg))

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Validator: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		batchhttp.Register(r, m.svc)
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
