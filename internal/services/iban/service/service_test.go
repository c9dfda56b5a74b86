package service

import (
	"context"
	"sync"
	"testing"

	auditdom "idcheck/internal/services/audit/domain"
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

func TestValidateFrenchLayout(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "FR76 3000 6000 0112 3456 7890 189")

	if !res.Valid {
		t.Fatalf("result = %+v, want valid", res)
	}
	if res.IBAN != "FR7630006000011234567890189" {
		t.Fatalf("iban = %q, want compact uppercase", res.IBAN)
	}
	if res.CountryCode != "FR" || res.CheckDigits != "76" || res.Country != "France" {
		t.Fatalf("country fields = %q/%q/%q", res.CountryCode, res.CheckDigits, res.Country)
	}
	if res.BankCode != "30006" || res.BranchCode != "00001" || res.AccountNumber != "1234567890189" {
		t.Fatalf("bban fields = %q/%q/%q", res.BankCode, res.BranchCode, res.AccountNumber)
	}
	if res.IBANFormatted != "FR76 3000 6000 0112 3456 7890 189" {
		t.Fatalf("formatted = %q", res.IBANFormatted)
	}
	if res.RiskScore != 100 {
		t.Fatalf("risk = %d, want 100", res.RiskScore)
	}
}

func TestValidateGermanLayoutHasNoBranch(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "DE89370400440532013000")

	if !res.Valid {
		t.Fatalf("result = %+v, want valid", res)
	}
	if res.BankCode != "37040044" || res.BranchCode != "" || res.AccountNumber != "0532013000" {
		t.Fatalf("bban fields = %q/%q/%q", res.BankCode, res.BranchCode, res.AccountNumber)
	}
	if res.Country != "Germany" {
		t.Fatalf("country = %q", res.Country)
	}
}

func TestValidateBritishLayout(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "GB82WEST12345698765432")

	if !res.Valid {
		t.Fatalf("result = %+v, want valid", res)
	}
	if res.BankCode != "WEST" || res.BranchCode != "123456" || res.AccountNumber != "98765432" {
		t.Fatalf("bban fields = %q/%q/%q", res.BankCode, res.BranchCode, res.AccountNumber)
	}
}

func TestValidateSpanishLayout(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "ES9121000418450200051332")

	if !res.Valid {
		t.Fatalf("result = %+v, want valid", res)
	}
	if res.BankCode != "2100" || res.BranchCode != "0418" || res.AccountNumber != "450200051332" {
		t.Fatalf("bban fields = %q/%q/%q", res.BankCode, res.BranchCode, res.AccountNumber)
	}
}

func TestValidateGenericFallback(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "NL91ABNA0417164300")

	if !res.Valid {
		t.Fatalf("result = %+v, want valid", res)
	}
	if res.BankCode != "" || res.BranchCode != "" {
		t.Fatalf("generic layout must not decompose bank/branch: %+v", res)
	}
	if res.AccountNumber != "ABNA0417164300" {
		t.Fatalf("account = %q", res.AccountNumber)
	}
	if res.Country != "Netherlands" {
		t.Fatalf("country = %q", res.Country)
	}
}

func TestValidateRejectsMutatedCheckDigit(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "FR7630006000011234567890188")

	if res.Valid {
		t.Fatal("a mutated digit must fail the check-digit test")
	}
	if res.RiskScore != 0 {
		t.Fatalf("risk = %d, want 0", res.RiskScore)
	}
	if res.BankCode != "" || res.CountryCode != "" {
		t.Fatalf("invalid iban must not be decomposed: %+v", res)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	s := New(nil)
	res := s.Validate(context.Background(), "not an iban")

	if res.Valid || res.RiskScore != 0 {
		t.Fatalf("result = %+v, want invalid with risk 0", res)
	}
}

func TestAuditInputIsMasked(t *testing.T) {
	audit := &captureAudit{}
	s := New(audit)

	s.Validate(context.Background(), "FR7630006000011234567890189")

	audit.mu.Lock()
	defer audit.mu.Unlock()
	if len(audit.recs) != 1 {
		t.Fatalf("emitted %d audit records, want 1", len(audit.recs))
	}
	if got := audit.recs[0].Input; got != "FR76****0189" {
		t.Fatalf("audit input = %q, want masked", got)
	}
	if audit.recs[0].Kind != auditdom.KindIBAN {
		t.Fatalf("kind = %s", audit.recs[0].Kind)
	}
}

func TestFormat4(t *testing.T) {
	if got := format4("DE89370400440532013000"); got != "DE89 3704 0044 0532 0130 00" {
		t.Fatalf("format4 = %q", got)
	}
	if got := format4("FR76"); got != "FR76" {
		t.Fatalf("format4 short = %q", got)
	}
}
