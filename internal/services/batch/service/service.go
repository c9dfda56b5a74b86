// Package service implements the batch email orchestrator
package service

import (
	"context"
	"sync"
	"time"

	"idcheck/internal/services/batch/domain"
	emaildom "idcheck/internal/services/email/domain"
)

// Config tunes the worker pool
type Config struct {
	Workers int
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 10
	}
	return c
}

// Service defines the service contract for batch validation
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	cfg   Config
	email emaildom.ServicePort

	now func() time.Time
}

// New creates a new batch service over the email pipeline
func New(email emaildom.ServicePort, cfg Config) *Svc {
	if email == nil {
		panic("batch.Service requires a non nil email validator")
	}
	return &Svc{cfg: cfg.withDefaults(), email: email, now: time.Now}
}

// ValidateBatch fans the addresses out over a fixed worker pool.
// Results land at their input index so summary order always matches
// input order; one slow address delays but never aborts the batch
func (s *Svc) ValidateBatch(ctx context.Context, emails []string) domain.Result {
	started := s.now()

	out := make([]domain.ItemResult, len(emails))

	sem := make(chan struct{}, s.cfg.Workers)
	wg := sync.WaitGroup{}

	for i := range emails {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			res := s.email.Validate(ctx, emails[i])
			out[i] = domain.ItemResult{
				Email:        res.Email,
				Valid:        res.Valid,
				IsDisposable: res.IsDisposable,
				RiskScore:    res.RiskScore,
			}
		}(i)
	}
	wg.Wait()

	valid := 0
	for i := range out {
		if out[i].Valid {
			valid++
		}
	}

	return domain.Result{
		Total:            len(emails),
		Valid:            valid,
		Invalid:          len(emails) - valid,
		ProcessingTimeMs: s.now().Sub(started).Milliseconds(),
		CheckedAt:        s.now().UTC(),
		Results:          out,
	}
}
