// Package domain holds DTOs and contracts for combined email + phone validation
package domain

import (
	"context"
	"time"

	emaildom "idcheck/internal/services/email/domain"
	phonedom "idcheck/internal/services/phone/domain"
)

// ValidateInput is the input for a combo run. Country steers phone
// parsing when the number has no international prefix
type ValidateInput struct {
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Country string `json:"country,omitempty" validate:"omitempty,len=2,alpha"`
}

// Result carries both pipeline verdicts plus the blended score
type Result struct {
	EmailValidation  *emaildom.Result `json:"email_validation"`
	PhoneValidation  *phonedom.Result `json:"phone_validation"`
	OverallRiskScore int              `json:"overall_risk_score"`
	ValidationTimeMs int64            `json:"validation_time_ms"`
	CheckedAt        time.Time        `json:"checked_at"`
}

// ServicePort defines the service contract for combo validation
type ServicePort interface {
	Validate(ctx context.Context, email, phone, country string) Result
}
