// Package http provides http transport for batch email validation
package http

import (
	stdhttp "net/http"

	"idcheck/internal/modkit/httpkit"
	perr "idcheck/internal/platform/errors"
	"idcheck/internal/services/batch/domain"
)

const maxBatchSize = 1000

// Register mounts batch validation endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ValidateInput](r, "/email", h.validate)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Validate a batch of email addresses
// @Tags Batch
// @Accept json
// @Produce json
// @Param payload body domain.ValidateInput true "Addresses to validate, 1 to 1000"
// @Success 200 {object} domain.Result "ok"
// @Router /validate/batch/email [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	if len(in.Emails) == 0 {
		return nil, perr.Newf(perr.ErrorCodeValidation, "emails must contain at least one address")
	}
	if len(in.Emails) > maxBatchSize {
		return nil, perr.Newf(perr.ErrorCodeValidation, "emails must contain at most %d addresses", maxBatchSize)
	}
	return h.svc.ValidateBatch(r.Context(), in.Emails), nil
}
