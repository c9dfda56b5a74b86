// Package domain defines the admission contract for the rate limiter
package domain

import "idcheck/internal/services/plan"

// AdmitterPort gates a request for one client identity.
// Admit returns true and consumes one token iff a token is available;
// a denial mutates nothing and must surface as a fail-fast 429 at the boundary
type AdmitterPort interface {
	Admit(identity string, p plan.Plan) bool
}
