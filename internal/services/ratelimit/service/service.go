// Package service implements the per-identity token bucket limiter
package service

import (
	"context"
	"sync"
	"time"

	"idcheck/internal/platform/logger"
	"idcheck/internal/services/plan"
)

// Config tunes refill and eviction behavior
type Config struct {
	// Interval is the refill period. The bucket refills to full capacity once
	// per interval (not a smooth/leaky model), so a client can burst its whole
	// per-minute allowance at the start of every interval
	Interval time.Duration

	// SweepEvery is the cadence of the idle-bucket sweep driven by Run
	SweepEvery time.Duration

	// IdleAfter is how long an identity must stay quiet before its bucket is evicted
	IdleAfter time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = time.Minute
	}
	if c.SweepEvery <= 0 {
		c.SweepEvery = 5 * time.Minute
	}
	if c.IdleAfter <= 0 {
		c.IdleAfter = 30 * time.Minute
	}
	return c
}

// bucket holds one identity's tokens. All fields are guarded by mu so
// different identities never contend with each other
type bucket struct {
	mu       sync.Mutex
	capacity int
	tokens   int
	refillAt time.Time
	lastSeen time.Time
}

// Svc implements domain.AdmitterPort with lazily created buckets
type Svc struct {
	cfg Config

	mu      sync.RWMutex
	buckets map[string]*bucket

	// now is a seam for tests
	now func() time.Time
}

// New constructs the limiter
func New(cfg Config) *Svc {
	return &Svc{
		cfg:     cfg.withDefaults(),
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Admit consumes one token for identity, sizing a new bucket from the plan.
// Denied callers get false immediately; there is no queueing or waiting
func (s *Svc) Admit(identity string, p plan.Plan) bool {
	b := s.resolve(identity, p)
	now := s.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	if !now.Before(b.refillAt) {
		b.tokens = b.capacity
		b.refillAt = now.Add(s.cfg.Interval)
	}
	b.lastSeen = now
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// resolve returns the identity's bucket, creating it on first sight
func (s *Svc) resolve(identity string, p plan.Plan) *bucket {
	s.mu.RLock()
	b := s.buckets[identity]
	s.mu.RUnlock()
	if b != nil {
		return b
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if b = s.buckets[identity]; b != nil {
		return b
	}
	now := s.now()
	b = &bucket{
		capacity: p.RequestsPerMinute,
		tokens:   p.RequestsPerMinute,
		refillAt: now.Add(s.cfg.Interval),
		lastSeen: now,
	}
	s.buckets[identity] = b
	return b
}

// Sweep evicts buckets idle for at least idleFor and reports how many were dropped.
// Eviction does not change the admission contract: a swept identity simply
// starts over with a full bucket on its next request
func (s *Svc) Sweep(idleFor time.Duration) int {
	cutoff := s.now().Add(-idleFor)

	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, b := range s.buckets {
		b.mu.Lock()
		idle := b.lastSeen.Before(cutoff)
		b.mu.Unlock()
		if idle {
			delete(s.buckets, id)
			dropped++
		}
	}
	return dropped
}

// Size reports the number of live buckets
func (s *Svc) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.buckets)
}

// Run drives the periodic idle sweep until ctx is done
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("ratelimit")
	ticker := time.NewTicker(s.cfg.SweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := s.Sweep(s.cfg.IdleAfter); n > 0 {
				log.Debug().Int("evicted", n).Msg("idle buckets swept")
			}
		}
	}
}
