// Package http provides http transport for phone validation
package http

import (
	stdhttp "net/http"

	"idcheck/internal/modkit/httpkit"
	perr "idcheck/internal/platform/errors"
	"idcheck/internal/services/phone/domain"
)

// Register mounts phone validation endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ValidateInput](r, "/", h.validate)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Validate a phone number
// @Tags Phone
// @Accept json
// @Produce json
// @Param payload body domain.ValidateInput true "Number and optional default region"
// @Success 200 {object} domain.Result "ok"
// @Router /validate/phone [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	if in.Phone == "" {
		return nil, perr.Newf(perr.ErrorCodeValidation, "phone is required")
	}
	return h.svc.Validate(r.Context(), in.Phone, in.Country), nil
}
