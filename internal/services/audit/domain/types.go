// Package domain holds the audit record shapes and contracts
package domain

import "time"

// Kind labels which pipeline produced a record
type Kind string

// The validation kinds
const (
	KindEmail Kind = "EMAIL"
	KindPhone Kind = "PHONE"
	KindIBAN  Kind = "IBAN"
)

// Record is one validation outcome to persist
type Record struct {
	Kind       Kind
	Input      string
	Valid      bool
	RiskScore  int
	DurationMs int64
	APIKey     string
	CheckedAt  time.Time
}

// Entry is a history row served back over HTTP
type Entry struct {
	ID         int64     `json:"id"`
	Kind       Kind      `json:"kind"`
	Input      string    `json:"input"`
	Valid      bool      `json:"valid"`
	RiskScore  int       `json:"risk_score"`
	DurationMs int64     `json:"duration_ms"`
	APIKey     string    `json:"api_key,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}
