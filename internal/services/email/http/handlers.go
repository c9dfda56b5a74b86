// Package http provides http transport for email validation
package http

import (
	stdhttp "net/http"

	"idcheck/internal/modkit/httpkit"
	perr "idcheck/internal/platform/errors"
	"idcheck/internal/services/email/domain"
)

// Register mounts email validation endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ValidateInput](r, "/", h.validate)
	httpkit.Get(r, "/", h.validateQuery)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Validate an email address
// @Tags Email
// @Accept json
// @Produce json
// @Param payload body domain.ValidateInput true "Address"
// @Success 200 {object} domain.Result "ok"
// @Router /validate/email [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	if in.Email == "" {
		return nil, perr.Newf(perr.ErrorCodeValidation, "email is required")
	}
	return h.svc.Validate(r.Context(), in.Email), nil
}

// @Summary Validate an email address passed as a query parameter
// @Tags Email
// @Produce json
// @Param email query string true "Address"
// @Success 200 {object} domain.Result "ok"
// @Router /validate/email [get]
func (h *handlers) validateQuery(r *stdhttp.Request) (any, error) {
	email := r.URL.Query().Get("email")
	if email == "" {
		return nil, perr.Newf(perr.ErrorCodeValidation, "email query parameter is required")
	}
	return h.svc.Validate(r.Context(), email), nil
}
