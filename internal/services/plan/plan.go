// Package plan defines the subscription tiers that size admission control
package plan

import "strings"

// Plan maps a subscription tier to its request allowances.
// Values are static and loaded once; there is no runtime mutation
type Plan struct {
	Name              string
	RequestsPerMinute int
	RequestsPerMonth  int
}

// The supported tiers
var (
	Free     = Plan{Name: "FREE", RequestsPerMinute: 10, RequestsPerMonth: 500}
	Starter  = Plan{Name: "STARTER", RequestsPerMinute: 50, RequestsPerMonth: 5000}
	Pro      = Plan{Name: "PRO", RequestsPerMinute: 200, RequestsPerMonth: 50000}
	Business = Plan{Name: "BUSINESS", RequestsPerMinute: 1000, RequestsPerMonth: 250000}
)

// FromKey resolves a tier by name, case-insensitively.
// Unknown names resolve to Free with ok=false so callers can fail soft
func FromKey(key string) (Plan, bool) {
	switch strings.ToUpper(strings.TrimSpace(key)) {
	case Free.Name:
		return Free, true
	case Starter.Name:
		return Starter, true
	case Pro.Name:
		return Pro, true
	case Business.Name:
		return Business, true
	}
	return Free, false
}
