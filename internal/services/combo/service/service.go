// Package service implements combined email + phone validation
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"idcheck/internal/core/risk"
	"idcheck/internal/services/combo/domain"
	emaildom "idcheck/internal/services/email/domain"
	phonedom "idcheck/internal/services/phone/domain"
)

// Service defines the service contract for combo validation
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	email emaildom.ServicePort
	phone phonedom.ServicePort

	now func() time.Time
}

// New creates a combo service over the email and phone pipelines
func New(email emaildom.ServicePort, phone phonedom.ServicePort) *Svc {
	if email == nil || phone == nil {
		panic("combo.Service requires non nil email and phone validators")
	}
	return &Svc{email: email, phone: phone, now: time.Now}
}

// Validate runs both pipelines concurrently and blends their scores
// with the fixed 60/40 email/phone weighting
func (s *Svc) Validate(ctx context.Context, email, phone, country string) domain.Result {
	started := s.now()

	var (
		emailRes emaildom.Result
		phoneRes phonedom.Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		emailRes = s.email.Validate(gctx, email)
		return nil
	})
	g.Go(func() error {
		phoneRes = s.phone.Validate(gctx, phone, country)
		return nil
	})
	_ = g.Wait()

	return domain.Result{
		EmailValidation:  &emailRes,
		PhoneValidation:  &phoneRes,
		OverallRiskScore: risk.Blend(emailRes.RiskScore, phoneRes.RiskScore),
		ValidationTimeMs: s.now().Sub(started).Milliseconds(),
		CheckedAt:        s.now().UTC(),
	}
}
