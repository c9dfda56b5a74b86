// Package domain holds DTOs and contracts for email validation
package domain

import "time"

// ProviderType classifies the mailbox provider
type ProviderType string

// The provider classes
const (
	ProviderFree       ProviderType = "FREE"
	ProviderEducation  ProviderType = "EDUCATION"
	ProviderGovernment ProviderType = "GOVERNMENT"
	ProviderBusiness   ProviderType = "BUSINESS"
)

// ValidateInput is the input for an email validation
type ValidateInput struct {
	Email string `json:"email" validate:"required" example:"jane.doe@example.com"`
}

// Result is the full outcome of an email validation.
// Pointer fields stay null when syntax fails and the later stages never ran
type Result struct {
	Email            string       `json:"email"`
	Valid            bool         `json:"valid"`
	SyntaxValid      bool         `json:"syntax_valid"`
	DomainExists     *bool        `json:"domain_exists"`
	MXHost           string       `json:"mx_host,omitempty"`
	MXRecordsCount   int          `json:"mx_records_count"`
	IsDisposable     *bool        `json:"is_disposable"`
	IsRoleAccount    *bool        `json:"is_role_account"`
	IsFreeProvider   *bool        `json:"is_free_provider"`
	ProviderType     ProviderType `json:"provider_type,omitempty"`
	Suggestion       string       `json:"suggestion,omitempty"`
	RiskScore        int          `json:"risk_score"`
	ValidationTimeMs int64        `json:"validation_time_ms"`
	CheckedAt        time.Time    `json:"checked_at"`
}
