// Package service implements the refreshable disposable domain snapshot store
package service

import (
	"bufio"
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	perr "idcheck/internal/platform/errors"
	"idcheck/internal/platform/logger"
	str "idcheck/internal/platform/strings"
	"idcheck/internal/services/disposable/domain"
)

// DefaultFeeds are the public block lists fetched when no feeds are configured
var DefaultFeeds = []string{
	"https://raw.githubusercontent.com/disposable/disposable-email-domains/master/domains.txt",
	"https://raw.githubusercontent.com/disposable-email-blocked-domains/disposable-email-blocked-domains/master/disposable-email-blocked-domains.conf",
}

// ErrRefreshInFlight is returned when a refresh is already running
var ErrRefreshInFlight = perr.Conflictf("disposable refresh already in flight")

// Config tunes feed sources and refresh behavior
type Config struct {
	Feeds        []string
	FetchTimeout time.Duration
	RefreshEvery time.Duration
}

func (c Config) withDefaults() Config {
	c.Feeds = str.IfEmpty(c.Feeds, DefaultFeeds)
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 10 * time.Second
	}
	if c.RefreshEvery <= 0 {
		c.RefreshEvery = 6 * time.Hour
	}
	return c
}

// snapshot is the immutable published state. Readers grab the pointer once
// and never see a half-built set
type snapshot struct {
	domains     map[string]struct{}
	fromFeeds   int
	refreshedAt time.Time
}

// Svc implements domain.LookupPort and domain.AdminPort
type Svc struct {
	cfg    Config
	client *http.Client

	snap atomic.Pointer[snapshot]

	// manual entries survive feed refreshes
	mu     sync.Mutex
	manual map[string]struct{}

	refreshing atomic.Bool
}

// New constructs the store with an empty snapshot
func New(cfg Config) *Svc {
	cfg = cfg.withDefaults()
	s := &Svc{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
		manual: make(map[string]struct{}),
	}
	s.snap.Store(&snapshot{domains: make(map[string]struct{})})
	return s
}

// Contains reports whether domain is a known disposable provider.
// Lock-free; hot path for every email validation
func (s *Svc) Contains(domain string) bool {
	key := strings.ToLower(strings.TrimSpace(domain))
	if key == "" {
		return false
	}
	_, ok := s.snap.Load().domains[key]
	return ok
}

// Add records a manual entry that survives feed refreshes
func (s *Svc) Add(raw string) error {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" || !strings.Contains(key, ".") {
		return perr.InvalidArgf("domain %q is not a plausible hostname", raw)
	}

	s.mu.Lock()
	s.manual[key] = struct{}{}
	s.mu.Unlock()

	// republish so the entry is visible without waiting for a refresh
	old := s.snap.Load()
	next := make(map[string]struct{}, len(old.domains)+1)
	for d := range old.domains {
		next[d] = struct{}{}
	}
	next[key] = struct{}{}
	s.snap.Store(&snapshot{domains: next, fromFeeds: old.fromFeeds, refreshedAt: old.refreshedAt})
	return nil
}

// Refresh fetches every configured feed and publishes a fresh snapshot.
// Any fetch error leaves the current snapshot untouched. A refresh already
// in flight makes the second caller return ErrRefreshInFlight immediately
func (s *Svc) Refresh(ctx context.Context) (int, error) {
	if !s.refreshing.CompareAndSwap(false, true) {
		return 0, ErrRefreshInFlight
	}
	defer s.refreshing.Store(false)

	feed := make(map[string]struct{})
	for _, url := range s.cfg.Feeds {
		if err := s.fetchInto(ctx, url, feed); err != nil {
			return 0, err
		}
	}

	next := make(map[string]struct{}, len(feed))
	for d := range feed {
		next[d] = struct{}{}
	}
	s.mu.Lock()
	for d := range s.manual {
		next[d] = struct{}{}
	}
	s.mu.Unlock()

	old := s.snap.Load()
	added := 0
	for d := range next {
		if _, ok := old.domains[d]; !ok {
			added++
		}
	}

	s.snap.Store(&snapshot{domains: next, fromFeeds: len(feed), refreshedAt: time.Now().UTC()})
	return added, nil
}

// fetchInto downloads one feed and folds its lines into dst
func (s *Svc) fetchInto(ctx context.Context, url string, dst map[string]struct{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return perr.Internalf("build feed request %s: %v", url, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return perr.Unavailablef("fetch feed %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return perr.Unavailablef("fetch feed %s: status %d", url, resp.StatusCode)
	}

	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dst[strings.ToLower(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return perr.Unavailablef("read feed %s: %v", url, err)
	}
	return nil
}

// BootstrapIfEmpty runs a synchronous refresh when nothing is loaded yet
func (s *Svc) BootstrapIfEmpty(ctx context.Context) error {
	if len(s.snap.Load().domains) > 0 {
		return nil
	}
	n, err := s.Refresh(ctx)
	if err != nil {
		return err
	}
	logger.Named("disposable").Info().Int("domains", n).Msg("bootstrapped disposable set")
	return nil
}

// Stats reports sizes and provenance of the current snapshot
func (s *Svc) Stats() domain.Stats {
	snap := s.snap.Load()
	s.mu.Lock()
	manual := len(s.manual)
	s.mu.Unlock()

	st := domain.Stats{
		Total:     len(snap.domains),
		FromFeeds: snap.fromFeeds,
		Manual:    manual,
		Feeds:     s.cfg.Feeds,
	}
	if !snap.refreshedAt.IsZero() {
		t := snap.refreshedAt
		st.LastRefreshAt = &t
	}
	return st
}

// Run refreshes the snapshot on the configured cadence until ctx is done
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("disposable")
	ticker := time.NewTicker(s.cfg.RefreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := s.Refresh(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("disposable refresh failed, keeping previous snapshot")
				continue
			}
			log.Info().Int("added", n).Int("total", s.snap.Load().fromFeeds).Msg("disposable snapshot refreshed")
		}
	}
}
