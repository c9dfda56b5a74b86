package service

import (
	"context"
	"sync"
	"testing"

	auditdom "idcheck/internal/services/audit/domain"
	"idcheck/internal/services/phone/domain"
)

type captureAudit struct {
	mu   sync.Mutex
	recs []auditdom.Record
}

func (c *captureAudit) Emit(rec auditdom.Record) {
	c.mu.Lock()
	c.recs = append(c.recs, rec)
	c.mu.Unlock()
}

func TestValidateFrenchMobile(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "+33612345678", "")

	if !res.Valid {
		t.Fatalf("result = %+v, want valid", res)
	}
	if res.CountryCode != "FR" || res.CountryPrefix != 33 {
		t.Fatalf("country fields = %q/%d", res.CountryCode, res.CountryPrefix)
	}
	if res.Country != "France" || res.Timezone != "Europe/Paris" {
		t.Fatalf("display fields = %q/%q", res.Country, res.Timezone)
	}
	if res.Type != domain.TypeMobile {
		t.Fatalf("type = %s, want MOBILE", res.Type)
	}
	if res.RiskScore != 100 {
		t.Fatalf("risk = %d, want 100", res.RiskScore)
	}
	if res.E164Format != "+33612345678" {
		t.Fatalf("e164 = %q", res.E164Format)
	}
}

func TestValidateDefaultsToUS(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "(202) 555-0142", "")

	if !res.Valid {
		t.Fatalf("result = %+v, want valid under the US default region", res)
	}
	if res.CountryCode != "US" || res.CountryPrefix != 1 {
		t.Fatalf("country fields = %q/%d", res.CountryCode, res.CountryPrefix)
	}
	if res.Timezone != "America/New_York" {
		t.Fatalf("timezone = %q", res.Timezone)
	}
	if res.E164Format != "+12025550142" {
		t.Fatalf("e164 = %q", res.E164Format)
	}
}

func TestValidateExplicitRegion(t *testing.T) {
	s := New(nil)

	// a national GB number only parses with the right default region
	res := s.Validate(context.Background(), "020 7946 0958", "gb")
	if !res.Valid || res.CountryCode != "GB" {
		t.Fatalf("result = %+v, want a valid GB number", res)
	}
	if res.Type != domain.TypeFixedLine {
		t.Fatalf("type = %s, want FIXED_LINE", res.Type)
	}
	if res.Country != "United Kingdom" || res.Timezone != "Europe/London" {
		t.Fatalf("display fields = %q/%q", res.Country, res.Timezone)
	}
}

func TestValidateTollFreePenalty(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "+18002255288", "")

	if !res.Valid || res.Type != domain.TypeTollFree {
		t.Fatalf("result = %+v, want a valid toll-free number", res)
	}
	if res.RiskScore != 95 {
		t.Fatalf("risk = %d, want 95", res.RiskScore)
	}
}

func TestValidateUnparseable(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "not a phone", "")

	if res.Valid {
		t.Fatal("garbage must not validate")
	}
	if res.RiskScore != 0 || res.Type != "" || res.E164Format != "" {
		t.Fatalf("failed parse must leave classification empty: %+v", res)
	}
}

func TestValidateImplausibleNumber(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "+3361", "")

	if res.Valid {
		t.Fatal("a too-short number must not validate")
	}
	if res.RiskScore != 0 {
		t.Fatalf("risk = %d, want 0", res.RiskScore)
	}
}

func TestValidateEmitsAudit(t *testing.T) {
	audit := &captureAudit{}
	s := New(audit)

	s.Validate(context.Background(), "+33612345678", "")
	s.Validate(context.Background(), "garbage", "")

	audit.mu.Lock()
	defer audit.mu.Unlock()
	if len(audit.recs) != 2 {
		t.Fatalf("emitted %d audit records, want 2", len(audit.recs))
	}
	if audit.recs[0].Kind != auditdom.KindPhone || !audit.recs[0].Valid {
		t.Fatalf("first record = %+v", audit.recs[0])
	}
	if audit.recs[1].Valid || audit.recs[1].RiskScore != 0 {
		t.Fatalf("second record = %+v", audit.recs[1])
	}
}
