// Package domain holds DTOs and contracts for IBAN validation
package domain

import (
	"context"
	"time"
)

// ValidateInput is the input for an IBAN validation
type ValidateInput struct {
	IBAN string `json:"iban" validate:"required" example:"FR7630006000011234567890189"`
}

// Result is the full outcome of an IBAN validation
type Result struct {
	IBAN             string    `json:"iban"`
	Valid            bool      `json:"valid"`
	Country          string    `json:"country,omitempty"`
	CountryCode      string    `json:"country_code,omitempty"`
	CheckDigits      string    `json:"check_digits,omitempty"`
	BankCode         string    `json:"bank_code,omitempty"`
	BranchCode       string    `json:"branch_code,omitempty"`
	AccountNumber    string    `json:"account_number,omitempty"`
	IBANFormatted    string    `json:"iban_formatted,omitempty"`
	RiskScore        int       `json:"risk_score"`
	ValidationTimeMs int64     `json:"validation_time_ms"`
	CheckedAt        time.Time `json:"checked_at"`
}

// ServicePort defines the service contract for IBAN validation
type ServicePort interface {
	Validate(ctx context.Context, raw string) Result
}
