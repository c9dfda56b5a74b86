// Package domain holds DTOs and contracts for phone validation
package domain

import "time"

// LineType classifies the number
type LineType string

// The line types
const (
	TypeMobile        LineType = "MOBILE"
	TypeFixedLine     LineType = "FIXED_LINE"
	TypeFixedOrMobile LineType = "FIXED_OR_MOBILE"
	TypeTollFree      LineType = "TOLL_FREE"
	TypePremiumRate   LineType = "PREMIUM_RATE"
	TypeSharedCost    LineType = "SHARED_COST"
	TypeVOIP          LineType = "VOIP"
	TypePersonal      LineType = "PERSONAL"
	TypePager         LineType = "PAGER"
	TypeUAN           LineType = "UAN"
	TypeVoicemail     LineType = "VOICEMAIL"
	TypeUnknown       LineType = "UNKNOWN"
)

// ValidateInput is the input for a phone validation
type ValidateInput struct {
	Phone   string `json:"phone" validate:"required" example:"+33612345678"`
	Country string `json:"country,omitempty" validate:"omitempty,len=2,alpha" example:"FR"`
}

// Result is the full outcome of a phone validation
type Result struct {
	Phone               string    `json:"phone"`
	Valid               bool      `json:"valid"`
	Country             string    `json:"country,omitempty"`
	CountryCode         string    `json:"country_code,omitempty"`
	CountryPrefix       int       `json:"country_prefix,omitempty"`
	NationalFormat      string    `json:"national_format,omitempty"`
	InternationalFormat string    `json:"international_format,omitempty"`
	E164Format          string    `json:"e164_format,omitempty"`
	Type                LineType  `json:"type,omitempty"`
	Timezone            string    `json:"timezone,omitempty"`
	RiskScore           int       `json:"risk_score"`
	ValidationTimeMs    int64     `json:"validation_time_ms"`
	CheckedAt           time.Time `json:"checked_at"`
}
