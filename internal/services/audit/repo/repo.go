// Package repo provides the audit repository implementation
package repo

import (
	"context"
	"fmt"
	"strings"

	"idcheck/internal/modkit/repokit"
	"idcheck/internal/services/audit/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the audit repository
type Storage interface {
	WriteBatch(ctx context.Context, xs []domain.Record) error
	Recent(ctx context.Context, limit int) ([]domain.Entry, error)
}

// WriteBatch implements Storage
func (s *pg) WriteBatch(ctx context.Context, xs []domain.Record) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO validation_history
		(kind, input, valid, risk_score, duration_ms, api_key, checked_at) VALUES `)

	args := make([]any, 0, len(xs)*7)
	for i, rec := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*7 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6)

		args = append(args,
			string(rec.Kind), rec.Input, rec.Valid, rec.RiskScore,
			rec.DurationMs, rec.APIKey, rec.CheckedAt,
		)
	}
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

// Recent implements Storage
func (s *pg) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id, kind, input, valid, risk_score, duration_ms, api_key, checked_at
		FROM validation_history
		ORDER BY checked_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Entry, 0, limit)
	for rows.Next() {
		var e domain.Entry
		var kind string
		if err := rows.Scan(
			&e.ID, &kind, &e.Input, &e.Valid, &e.RiskScore,
			&e.DurationMs, &e.APIKey, &e.CheckedAt,
		); err != nil {
			return nil, err
		}
		e.Kind = domain.Kind(kind)
		out = append(out, e)
	}
	return out, rows.Err()
}
