package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/service"
)

// AdminHandler serves the cross-tenant user census. Routes are mounted behind
// the admin/support role gate; the handler itself does no role checks.
type AdminHandler struct {
	userSvc service.UserServiceInterface
}

func NewAdminHandler(userSvc service.UserServiceInterface) *AdminHandler {
	return &AdminHandler{userSvc: userSvc}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	filter := repository.UserFilter{
		Role:   domain.Role(r.URL.Query().Get("role")),
		Status: r.URL.Query().Get("status"),
	}

	result, err := h.userSvc.ListPaged(r.Context(), filter, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to list users", nil)
		return
	}

	observability.RecordListRequestPageSize(r.Context(), "admin_users", req.Limit)
	response.Paginated(w, r, http.StatusOK, result.Items, pagination(result))
}

func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	user, err := h.userSvc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Error(w, r, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to load user", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, user)
}

func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	user, err := h.userSvc.SetRole(r.Context(), id, domain.Role(body.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repository.ErrUserNotFound):
			response.Error(w, r, http.StatusNotFound, "user not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to update role", nil)
		}
		return
	}

	observability.Audit(r, "admin.user_role_changed", "user_id", id, "role", body.Role)
	response.JSON(w, r, http.StatusOK, user)
}

func (h *AdminHandler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
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

	user, err := h.userSvc.SetStatus(r.Context(), id, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserStatus):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repository.ErrUserNotFound):
			response.Error(w, r, http.StatusNotFound, "user not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to update status", nil)
		}
		return
	}

	observability.Audit(r, "admin.user_status_changed", "user_id", id, "status", body.Status)
	response.JSON(w, r, http.StatusOK, user)
}
