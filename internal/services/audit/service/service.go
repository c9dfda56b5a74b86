// Package service implements the fire-and-forget audit recorder
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"idcheck/internal/modkit/repokit"
	"idcheck/internal/platform/logger"
	"idcheck/internal/platform/store"
	"idcheck/internal/services/audit/domain"
	"idcheck/internal/services/audit/repo"
)

// Config tunes queueing and flush behavior
type Config struct {
	QueueSize  int
	FlushBatch int
	FlushEvery time.Duration
}

func (c Config) withDefaults() Config {
	if c.QueueSize <= 0 {
		c.QueueSize = 1024
	}
	if c.FlushBatch <= 0 {
		c.FlushBatch = 64
	}
	if c.FlushEvery <= 0 {
		c.FlushEvery = 2 * time.Second
	}
	return c
}

// Svc implements domain.RecorderPort and domain.HistoryPort.
// Emit hands records to a single worker goroutine; a full queue drops
// rather than backpressuring a validation response
type Svc struct {
	cfg  Config
	repo repo.Storage
	ch   store.Clickhouse

	in      chan domain.Record
	dropped atomic.Int64

	closed    atomic.Bool
	closeOnce sync.Once
	done      chan struct{}
}

// New creates the audit service. ch may be nil when no mirror is configured
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], ch store.Clickhouse, cfg Config) *Svc {
	if db == nil {
		panic("audit.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("audit.Service requires a non nil Repo binder")
	}
	return &Svc{
		cfg:  cfg.withDefaults(),
		repo: binder.Bind(db),
		ch:   ch,
		in:   make(chan domain.Record, cfg.withDefaults().QueueSize),
		done: make(chan struct{}),
	}
}

// Emit implements domain.RecorderPort. It never blocks; when the queue is
// full the record is dropped and counted
func (s *Svc) Emit(rec domain.Record) {
	if s.closed.Load() {
		return
	}
	select {
	case s.in <- rec:
	default:
		n := s.dropped.Add(1)
		if n%100 == 1 {
			logger.Named("audit").Warn().Int64("dropped_total", n).Msg("audit queue full, dropping records")
		}
	}
}

// Dropped reports how many records were lost to a full queue
func (s *Svc) Dropped() int64 { return s.dropped.Load() }

// Recent implements domain.HistoryPort
func (s *Svc) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.repo.Recent(ctx, limit)
}

// Run consumes the queue until ctx is done or Close is called, batching
// writes into postgres and mirroring them to clickhouse when configured
func (s *Svc) Run(ctx context.Context) error {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.FlushEvery)
	defer ticker.Stop()

	buf := make([]domain.Record, 0, s.cfg.FlushBatch)
	for {
		select {
		case rec, ok := <-s.in:
			if !ok {
				s.flush(buf)
				return nil
			}
			buf = append(buf, rec)
			if len(buf) >= s.cfg.FlushBatch {
				s.flush(buf)
				buf = buf[:0]
			}
		case <-ticker.C:
			s.flush(buf)
			buf = buf[:0]
		case <-ctx.Done():
			// drain whatever is already queued, then stop
			for {
				select {
				case rec, ok := <-s.in:
					if !ok {
						break
					}
					buf = append(buf, rec)
					continue
				default:
				}
				break
			}
			s.flush(buf)
			return ctx.Err()
		}
	}
}

// Close stops accepting records and waits for the worker to drain
func (s *Svc) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.in)
		<-s.done
	})
}

// flush writes a batch to both sinks. Sink failures are logged and
// never surface to callers
func (s *Svc) flush(buf []domain.Record) {
	if len(buf) == 0 {
		return
	}
	log := logger.Named("audit")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.repo.WriteBatch(ctx, buf); err != nil {
		log.Warn().Err(err).Int("records", len(buf)).Msg("audit pg write failed")
	}

	if s.ch == nil {
		return
	}
	rows := make([][]any, 0, len(buf))
	for _, rec := range buf {
		rows = append(rows, []any{
			uuid.NewString(), string(rec.Kind), rec.Input, rec.Valid,
			int32(rec.RiskScore), rec.DurationMs, rec.APIKey, rec.CheckedAt,
		})
	}
	if err := s.ch.Insert(ctx, "validation_events", rows); err != nil {
		log.Warn().Err(err).Int("records", len(rows)).Msg("audit ch mirror failed")
	}
}
