// Package http exposes the limiter as request middleware
package http

import (
	stdhttp "net/http"

	perr "idcheck/internal/platform/errors"
	"idcheck/internal/platform/logger"
	pnet "idcheck/internal/platform/net"
	phttp "idcheck/internal/platform/net/http"
	"idcheck/internal/services/plan"
	"idcheck/internal/services/ratelimit/domain"
)

const (
	headerAPIKey = "X-API-Key"
	headerPlan   = "X-Plan"

	// anonymousIdentity pools all keyless callers into one bucket
	anonymousIdentity = "anonymous"
)

// Admission gates requests through the limiter before they reach a handler.
// The caller's identity comes from X-API-Key and its allowance from X-Plan;
// missing or unknown headers fall back to the anonymous Free bucket.
// A denial replies 429 with the standard envelope and never queues
func Admission(adm domain.AdmitterPort) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			key := r.Header.Get(headerAPIKey)
			if key == "" {
				key = anonymousIdentity
			}
			p, _ := plan.FromKey(r.Header.Get(headerPlan))

			if !adm.Admit(key, p) {
				phttp.RespondError(w, r, perr.Newf(
					perr.ErrorCodeTooManyRequests,
					"rate limit exceeded for plan %s", p.Name,
				))
				return
			}

			reqID := pnet.RequestID(r.Context())
			ctx := pnet.WithRequest(r.Context(), reqID, key)
			ctx = pnet.WithPlan(ctx, p.Name)
			ctx = logger.WithRequest(ctx, reqID, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
