package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/service"
)

type VisitHandler struct {
	svc service.VisitServiceInterface
}

func NewVisitHandler(svc service.VisitServiceInterface) *VisitHandler {
	return &VisitHandler{svc: svc}
}

func (h *VisitHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	var body struct {
		PropertyID  uint   `json:"property_id"`
		VisitorName string `json:"visitor_name"`
		ScheduledAt string `json:"scheduled_at"`
		Notes       string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, body.ScheduledAt)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "scheduled_at must be an RFC3339 timestamp", nil)
		return
	}

	visit, err := h.svc.Schedule(r.Context(), caller, service.ScheduleVisitInput{
		PropertyID:  body.PropertyID,
		VisitorName: body.VisitorName,
		ScheduledAt: scheduledAt,
		Notes:       body.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVisitInvalidVisitor),
			errors.Is(err, service.ErrVisitInPast):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repository.ErrPropertyNotFound):
			response.Error(w, r, http.StatusNotFound, "property not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to schedule visit", nil)
		}
		return
	}

	observability.Audit(r, "visit.scheduled", "visit_id", visit.ID, "property_id", visit.PropertyID)
	response.JSON(w, r, http.StatusCreated, visit)
}

func (h *VisitHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	req, err := parsePageRequest(r)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	propertyID, err := parseOptionalUintParam(r, "property_id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	filter := repository.VisitFilter{
		Status:     r.URL.Query().Get("status"),
		PropertyID: propertyID,
	}
	if from, set, err := parseDateParam(r, "from"); err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	} else if set {
		filter.From = &from
	}
	if to, set, err := parseDateParam(r, "to"); err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	} else if set {
		filter.To = &to
	}

	result, err := h.svc.ListPaged(r.Context(), caller, filter, req)
	if err != nil {
		if errors.Is(err, service.ErrVisitInvalidStatus) {
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to list visits", nil)
		return
	}

	observability.RecordListRequestPageSize(r.Context(), "visits", req.Limit)
	response.Paginated(w, r, http.StatusOK, result.Items, pagination(result))
}

func (h *VisitHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	visit, err := h.svc.GetByID(r.Context(), caller, id)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			response.Error(w, r, http.StatusNotFound, "visit not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to load visit", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, visit)
}

func (h *VisitHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, "complete")
}

func (h *VisitHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, "cancel")
}

// finish closes out a scheduled visit either way; both paths share the same
// body shape and error mapping.
func (h *VisitHandler) finish(w http.ResponseWriter, r *http.Request, action string) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	var visit *domain.Visit
	switch action {
	case "complete":
		visit, err = h.svc.Complete(r.Context(), caller, id, body.Notes)
	default:
		visit, err = h.svc.Cancel(r.Context(), caller, id, body.Notes)
	}
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrVisitNotFound):
			response.Error(w, r, http.StatusNotFound, "visit not found", nil)
		case errors.Is(err, service.ErrVisitNotScheduled):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to update visit", nil)
		}
		return
	}

	observability.Audit(r, "visit."+action+"d", "visit_id", id)
	response.JSON(w, r, http.StatusOK, visit)
}
