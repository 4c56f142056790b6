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

type LegalHandler struct {
	svc service.LegalServiceInterface
}

func NewLegalHandler(svc service.LegalServiceInterface) *LegalHandler {
	return &LegalHandler{svc: svc}
}

func (h *LegalHandler) Open(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	var body struct {
		ContractID uint   `json:"contract_id"`
		Kind       string `json:"kind"`
		Summary    string `json:"summary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	legalCase, err := h.svc.Open(r.Context(), caller, service.OpenLegalCaseInput{
		ContractID: body.ContractID,
		Kind:       body.Kind,
		Summary:    body.Summary,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLegalCaseInvalidKind),
			errors.Is(err, service.ErrLegalCaseEmptySummary):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repository.ErrContractNotFound):
			response.Error(w, r, http.StatusNotFound, "contract not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to open legal case", nil)
		}
		return
	}

	observability.Audit(r, "legal_case.opened", "case_id", legalCase.ID, "contract_id", legalCase.ContractID, "kind", body.Kind)
	response.JSON(w, r, http.StatusCreated, legalCase)
}

func (h *LegalHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	req, err := parsePageRequest(r)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	filter := repository.LegalCaseFilter{
		Status: r.URL.Query().Get("status"),
		Kind:   r.URL.Query().Get("kind"),
	}

	result, err := h.svc.ListPaged(r.Context(), caller, filter, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLegalCaseInvalidStatus),
			errors.Is(err, service.ErrLegalCaseInvalidKind):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to list legal cases", nil)
		}
		return
	}

	observability.RecordListRequestPageSize(r.Context(), "legal_cases", req.Limit)
	response.Paginated(w, r, http.StatusOK, result.Items, pagination(result))
}

func (h *LegalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	legalCase, err := h.svc.GetByID(r.Context(), caller, id)
	if err != nil {
		if errors.Is(err, repository.ErrLegalCaseNotFound) {
			response.Error(w, r, http.StatusNotFound, "legal case not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to load legal case", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, legalCase)
}

func (h *LegalHandler) AssignHandler(w http.ResponseWriter, r *http.Request) {
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
		HandlerID uint `json:"handler_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	legalCase, err := h.svc.AssignHandler(r.Context(), caller, id, body.HandlerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrLegalCaseNotFound):
			response.Error(w, r, http.StatusNotFound, "legal case not found", nil)
		case errors.Is(err, repository.ErrUserNotFound):
			response.Error(w, r, http.StatusNotFound, "handler not found", nil)
		case errors.Is(err, service.ErrLegalCaseHandlerMissing),
			errors.Is(err, service.ErrLegalCaseAlreadyClosed):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to assign case handler", nil)
		}
		return
	}

	observability.Audit(r, "legal_case.handler_assigned", "case_id", id, "handler_id", body.HandlerID)
	response.JSON(w, r, http.StatusOK, legalCase)
}

func (h *LegalHandler) Close(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	legalCase, err := h.svc.Close(r.Context(), caller, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrLegalCaseNotFound):
			response.Error(w, r, http.StatusNotFound, "legal case not found", nil)
		case errors.Is(err, service.ErrLegalCaseAlreadyClosed):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to close legal case", nil)
		}
		return
	}

	observability.Audit(r, "legal_case.closed", "case_id", id)
	response.JSON(w, r, http.StatusOK, legalCase)
}
