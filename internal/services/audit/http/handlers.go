// Package http provides http transport for validation history
package http

import (
	stdhttp "net/http"
	"strconv"

	"idcheck/internal/modkit/httpkit"
	"idcheck/internal/services/audit/domain"
)

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, h domain.HistoryPort) {
	hs := &handlers{history: h}
	httpkit.Get(r, "/recent", hs.recent)
}

type handlers struct{ history domain.HistoryPort }

// @Summary Newest validation history rows
// @Tags History
// @Produce json
// @Param limit query int false "max rows, default 50"
// @Success 200 {array} domain.Entry "ok"
// @Router /history/recent [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	return h.history.Recent(r.Context(), limit)
}
