// Package module wires email validation into the API using modkit
package module

import (
	"net/http"

	modkit "idcheck/internal/modkit"
	"idcheck/internal/modkit/httpkit"
	str "idcheck/internal/platform/strings"
	auditdom "idcheck/internal/services/audit/domain"
	disposabledom "idcheck/internal/services/disposable/domain"
	"idcheck/internal/services/email/domain"
	emailhttp "idcheck/internal/services/email/http"
	emailsvc "idcheck/internal/services/email/service"
)

// Deps are the cross-module ports email validation consumes
type Deps struct {
	Disposable disposabledom.LookupPort
	Audit      auditdom.RecorderPort
	MX         domain.MXResolverPort
}

// Ports holds the ports exposed by the email module
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

	svc *emailsvc.Svc
}

// New constructs an email module with the provided dependencies and options
func New(deps modkit.Deps, wired Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("email"), modkit.WithPrefix("/validate/email")}, opts...)...)

	mx := wired.MX
	if mx == nil {
		mx = emailsvc.NewResolver(FromConfig(deps.Cfg).MXTimeout)
	}
	svc := emailsvc.New(mx, wired.Disposable, wired.Audit)

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
		emailhttp.Register(r, m.svc)
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
