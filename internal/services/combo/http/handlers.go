// Package http provides http transport for combo validation
package http

import (
	stdhttp "net/http"

	"idcheck/internal/modkit/httpkit"
	perr "idcheck/internal/platform/errors"
	"idcheck/internal/services/combo/domain"
)

// Register mounts combo validation endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ValidateInput](r, "/", h.validate)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Validate an email and a phone number together
// @Tags Combo
// @Accept json
// @Produce json
// @Param payload body domain.ValidateInput true "Email, phone and optional ISO country"
// @Success 200 {object} domain.Result "ok"
// @Router /validate/combo [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	if in.Email == "" {
		return nil, perr.Newf(perr.ErrorCodeValidation, "email is required")
	}
	if in.Phone == "" {
		return nil, perr.Newf(perr.ErrorCodeValidation, "phone is required")
	}
	return h.svc.Validate(r.Context(), in.Email, in.Phone, in.Country), nil
}
