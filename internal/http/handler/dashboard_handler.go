package handler

import (
	"net/http"
	"time"

	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/service"
)

type DashboardHandler struct {
	svc service.DashboardServiceInterface
}

func NewDashboardHandler(svc service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary aggregates the caller's portfolio counters, collection rate and
// payment trend in one response.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	start := time.Now()

	summary, err := h.svc.Summary(r.Context(), caller)
	if err != nil {
		observability.RecordDashboardRequestDuration(r.Context(), string(caller.Role), "error", time.Since(start))
		response.Error(w, r, http.StatusInternalServerError, "failed to build dashboard", nil)
		return
	}

	observability.RecordDashboardRequestDuration(r.Context(), string(caller.Role), "success", time.Since(start))
	response.JSON(w, r, http.StatusOK, summary)
}
