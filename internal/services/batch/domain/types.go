// Package domain holds DTOs and contracts for batch email validation
package domain

import (
	"context"
	"time"
)

// ValidateInput is the input for a batch run
type ValidateInput struct {
	Emails []string `json:"emails" validate:"required,min=1,max=1000,dive,required"`
}

// ItemResult is the per-address summary returned for each input
type ItemResult struct {
	Email        string `json:"email"`
	Valid        bool   `json:"valid"`
	IsDisposable *bool  `json:"is_disposable"`
	RiskScore    int    `json:"risk_score"`
}

// Result aggregates one batch run
type Result struct {
	Total            int          `json:"total"`
	Valid            int          `json:"valid"`
	Invalid          int          `json:"invalid"`
	ProcessingTimeMs int64        `json:"processing_time_ms"`
	CheckedAt        time.Time    `json:"checked_at"`
	Results          []ItemResult `json:"results"`
}

// ServicePort defines the service contract for batch validation
type ServicePort interface {
	ValidateBatch(ctx context.Context, emails []string) Result
}
