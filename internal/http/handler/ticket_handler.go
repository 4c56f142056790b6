package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/service"
)

type TicketHandler struct {
	svc service.TicketServiceInterface
}

func NewTicketHandler(svc service.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{svc: svc}
}

func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	var body struct {
		PropertyID  uint   `json:"property_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	ticket, err := h.svc.Create(r.Context(), caller, service.CreateTicketInput{
		PropertyID:  body.PropertyID,
		Title:       body.Title,
		Description: body.Description,
		Priority:    body.Priority,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketInvalidTitle),
			errors.Is(err, service.ErrTicketInvalidPriority):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repository.ErrPropertyNotFound):
			response.Error(w, r, http.StatusNotFound, "property not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to create ticket", nil)
		}
		return
	}

	observability.Audit(r, "ticket.created", "ticket_id", ticket.ID, "property_id", ticket.PropertyID)
	response.JSON(w, r, http.StatusCreated, ticket)
}

func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
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
	filter := repository.TicketFilter{
		Status:     r.URL.Query().Get("status"),
		Priority:   r.URL.Query().Get("priority"),
		PropertyID: propertyID,
	}

	result, err := h.svc.ListPaged(r.Context(), caller, filter, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketInvalidStatus),
			errors.Is(err, service.ErrTicketInvalidPriority):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to list tickets", nil)
		}
		return
	}

	observability.RecordListRequestPageSize(r.Context(), "tickets", req.Limit)
	response.Paginated(w, r, http.StatusOK, result.Items, pagination(result))
}

func (h *TicketHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ticket, err := h.svc.GetByID(r.Context(), caller, id)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			response.Error(w, r, http.StatusNotFound, "ticket not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to load ticket", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, ticket)
}

func (h *TicketHandler) AssignProvider(w http.ResponseWriter, r *http.Request) {
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
		ProviderID uint `json:"provider_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	ticket, err := h.svc.AssignProvider(r.Context(), caller, id, body.ProviderID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTicketNotFound):
			response.Error(w, r, http.StatusNotFound, "ticket not found", nil)
		case errors.Is(err, repository.ErrUserNotFound):
			response.Error(w, r, http.StatusNotFound, "provider not found", nil)
		case errors.Is(err, service.ErrAssigneeNotProvider):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to assign provider", nil)
		}
		return
	}

	observability.Audit(r, "ticket.provider_assigned", "ticket_id", id, "provider_id", body.ProviderID)
	response.JSON(w, r, http.StatusOK, ticket)
}

func (h *TicketHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	ticket, err := h.svc.UpdateStatus(r.Context(), caller, id, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTicketNotFound):
			response.Error(w, r, http.StatusNotFound, "ticket not found", nil)
		case errors.Is(err, service.ErrTicketInvalidStatus),
			errors.Is(err, service.ErrTicketInvalidTransition):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to update ticket status", nil)
		}
		return
	}

	observability.Audit(r, "ticket.status_changed", "ticket_id", id, "status", body.Status)
	response.JSON(w, r, http.StatusOK, ticket)
}
