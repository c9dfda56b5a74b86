// Package service implements the IBAN validation pipeline
package service

import (
	"context"
	"strings"
	"time"

	"github.com/jacoelho/banking/iban"

	"idcheck/internal/core/risk"
	pnet "idcheck/internal/platform/net"
	auditdom "idcheck/internal/services/audit/domain"
	"idcheck/internal/services/iban/domain"
)

// Service defines the service contract for IBAN validation
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	audit auditdom.RecorderPort

	now func() time.Time
}

// New creates a new IBAN validation service
func New(audit auditdom.RecorderPort) *Svc {
	if audit == nil {
		audit = auditdom.NopRecorder{}
	}
	return &Svc{audit: audit, now: time.Now}
}

// Validate checks one IBAN. Format, check-digit and unsupported-country
// failures all yield valid=false; the pipeline never returns an error
func (s *Svc) Validate(ctx context.Context, raw string) domain.Result {
	started := s.now()

	normalized := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	res := domain.Result{IBAN: normalized}

	if err := iban.Validate(normalized); err != nil {
		res.RiskScore = risk.Min
		s.finish(ctx, &res, started)
		return res
	}

	res.Valid = true
	res.RiskScore = risk.Max
	res.CountryCode = normalized[:2]
	res.CheckDigits = normalized[2:4]
	res.Country = countryName(res.CountryCode)
	res.IBANFormatted = format4(normalized)

	if l, ok := layouts[res.CountryCode]; ok {
		if len(normalized) >= l.minLen {
			res.BankCode = normalized[l.bankLo:l.bankHi]
			if l.branchHi > 0 {
				res.BranchCode = normalized[l.branchLo:l.branchHi]
			}
			res.AccountNumber = normalized[l.accountLo:]
		}
	} else if len(normalized) > 10 {
		res.AccountNumber = normalized[4:]
	}

	s.finish(ctx, &res, started)
	return res
}

func (s *Svc) finish(ctx context.Context, res *domain.Result, started time.Time) {
	res.ValidationTimeMs = s.now().Sub(started).Milliseconds()
	res.CheckedAt = s.now().UTC()

	s.audit.Emit(auditdom.Record{
		Kind:       auditdom.KindIBAN,
		Input:      mask(res.IBAN),
		Valid:      res.Valid,
		RiskScore:  res.RiskScore,
		DurationMs: res.ValidationTimeMs,
		APIKey:     pnet.APIKey(ctx),
		CheckedAt:  res.CheckedAt,
	})
}

// format4 renders the compact IBAN in groups of four
func format4(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/4)
	for i, r := range s {
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// mask keeps only the first and last four characters for the audit trail
func mask(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[:4] + "****" + s[len(s)-4:]
}
