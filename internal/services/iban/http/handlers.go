// Package http provides http transport for IBAN validation
package http

import (
	stdhttp "net/http"

	"idcheck/internal/modkit/httpkit"
	perr "idcheck/internal/platform/errors"
	"idcheck/internal/services/iban/domain"
)

// Register mounts IBAN validation endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ValidateInput](r, "/", h.validate)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Validate an IBAN
// @Tags IBAN
// @Accept json
// @Produce json
// @Param payload body domain.ValidateInput true "IBAN"
// @Success 200 {object} domain.Result "ok"
// @Router /validate/iban [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	if in.IBAN == "" {
		return nil, perr.Newf(perr.ErrorCodeValidation, "iban is required")
	}
	return h.svc.Validate(r.Context(), in.IBAN), nil
}
