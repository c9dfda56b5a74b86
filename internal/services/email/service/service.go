// Package service implements the email validation pipeline
package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"idcheck/internal/core/risk"
	pnet "idcheck/internal/platform/net"
	"idcheck/internal/platform/net/http/bind"
	auditdom "idcheck/internal/services/audit/domain"
	disposabledom "idcheck/internal/services/disposable/domain"
	"idcheck/internal/services/email/domain"
)

// Service defines the service contract for email validation
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	mx         domain.MXResolverPort
	disposable disposabledom.LookupPort
	audit      auditdom.RecorderPort

	now func() time.Time
}

// New creates a new email validation service
func New(mx domain.MXResolverPort, disposable disposabledom.LookupPort, audit auditdom.RecorderPort) *Svc {
	if mx == nil {
		panic("email.Service requires a non nil MX resolver")
	}
	if disposable == nil {
		panic("email.Service requires a non nil disposable lookup")
	}
	if audit == nil {
		audit = auditdom.NopRecorder{}
	}
	return &Svc{mx: mx, disposable: disposable, audit: audit, now: time.Now}
}

// Validate runs the full pipeline over one address.
// Stages run strictly in order; a syntax failure short-circuits everything
// after it and the untouched checks stay null in the result
func (s *Svc) Validate(ctx context.Context, raw string) domain.Result {
	started := s.now()

	email := strings.ToLower(strings.TrimSpace(norm.NFC.String(raw)))
	res := domain.Result{Email: email}

	res.SyntaxValid = bind.Get().Validator.Var(email, "email") == nil
	if !res.SyntaxValid {
		res.RiskScore = risk.Min
		s.finish(ctx, &res, started)
		return res
	}

	local, dom, _ := strings.Cut(email, "@")

	mx := s.mx.LookupMX(ctx, dom)
	res.DomainExists = ptr(mx.Exists)
	res.MXHost = mx.Host
	res.MXRecordsCount = mx.Count

	res.IsDisposable = ptr(s.disposable.Contains(dom))
	res.IsRoleAccount = ptr(isRoleAccount(local))

	free := isFreeProvider(dom)
	res.IsFreeProvider = ptr(free)
	res.ProviderType = classifyProvider(dom, free)

	if fixed, ok := commonTypos[dom]; ok {
		res.Suggestion = local + "@" + fixed
	}

	res.RiskScore = score(res)
	res.Valid = res.SyntaxValid && mx.Exists && !*res.IsDisposable

	s.finish(ctx, &res, started)
	return res
}

// finish stamps timing fields and emits the audit record
func (s *Svc) finish(ctx context.Context, res *domain.Result, started time.Time) {
	res.ValidationTimeMs = s.now().Sub(started).Milliseconds()
	res.CheckedAt = s.now().UTC()

	s.audit.Emit(auditdom.Record{
		Kind:       auditdom.KindEmail,
		Input:      res.Email,
		Valid:      res.Valid,
		RiskScore:  res.RiskScore,
		DurationMs: res.ValidationTimeMs,
		APIKey:     pnet.APIKey(ctx),
		CheckedAt:  res.CheckedAt,
	})
}

// score applies the fixed penalty table and clamps to [0,100]
func score(res domain.Result) int {
	n := risk.Max
	if res.DomainExists != nil && !*res.DomainExists {
		n -= 80
	}
	if res.IsDisposable != nil && *res.IsDisposable {
		n -= 60
	}
	if res.IsRoleAccount != nil && *res.IsRoleAccount {
		n -= 20
	}
	switch res.ProviderType {
	case domain.ProviderFree:
		n -= 10
	case domain.ProviderBusiness:
		n += 20
	}
	return risk.Clamp(n)
}

func isRoleAccount(local string) bool {
	if _, ok := roleAccounts[local]; ok {
		return true
	}
	for role := range roleAccounts {
		if strings.HasPrefix(local, role+"+") {
			return true
		}
	}
	return false
}

func isFreeProvider(dom string) bool {
	_, ok := freeProviders[dom]
	return ok
}

func classifyProvider(dom string, free bool) domain.ProviderType {
	switch {
	case free:
		return domain.ProviderFree
	case strings.HasSuffix(dom, ".edu"):
		return domain.ProviderEducation
	case strings.HasSuffix(dom, ".gov"):
		return domain.ProviderGovernment
	default:
		return domain.ProviderBusiness
	}
}

func ptr(b bool) *bool { return &b }
