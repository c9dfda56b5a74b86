// Package http provides http transport for the disposable domain store
package http

import (
	stdhttp "net/http"

	"idcheck/internal/modkit/httpkit"
	"idcheck/internal/services/disposable/domain"
)

// Register mounts disposable admin endpoints on the given router
func Register(r httpkit.Router, s domain.AdminPort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.AddInput](r, "/domains", h.add)
	httpkit.Get(r, "/stats", h.stats)
	httpkit.Post(r, "/refresh", h.refresh)
}

type handlers struct{ svc domain.AdminPort }

// @Summary Add a disposable domain manually
// @Tags Disposable
// @Accept json
// @Produce json
// @Param payload body domain.AddInput true "Domain"
// @Success 201 {object} map[string]string "created"
// @Router /disposable/domains [post]
func (h *handlers) add(_ *stdhttp.Request, in domain.AddInput) (any, error) {
	if err := h.svc.Add(in.Domain); err != nil {
		return nil, err
	}
	return httpkit.Created(map[string]string{"domain": in.Domain}), nil
}

// @Summary Disposable snapshot statistics
// @Tags Disposable
// @Produce json
// @Success 200 {object} domain.Stats "ok"
// @Router /disposable/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.Stats(), nil
}

// @Summary Force a feed refresh now
// @Tags Disposable
// @Produce json
// @Success 200 {object} map[string]int "ok"
// @Router /disposable/refresh [post]
func (h *handlers) refresh(r *stdhttp.Request) (any, error) {
	added, err := h.svc.Refresh(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]int{"added": added}, nil
}
