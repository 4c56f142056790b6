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

type TemplateHandler struct {
	svc service.TemplateService
}

func NewTemplateHandler(svc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "failed to list templates", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, templates)
}

func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	tpl, err := h.svc.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			response.Error(w, r, http.StatusNotFound, "template not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to load template", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, tpl)
}

func (h *TemplateHandler) Save(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	var body struct {
		Name    string `json:"name"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	tpl := &domain.NotificationTemplate{
		Key:     chi.URLParam(r, "key"),
		Name:    body.Name,
		Subject: body.Subject,
		Body:    body.Body,
	}
	if err := h.svc.Save(r.Context(), caller, tpl); err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateInvalidKey),
			errors.Is(err, service.ErrTemplateEmptyBody):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to save template", nil)
		}
		return
	}

	observability.Audit(r, "template.saved", "key", tpl.Key, "updated_by", caller.ID)
	response.JSON(w, r, http.StatusOK, tpl)
}

func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := h.svc.Delete(r.Context(), key); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			response.Error(w, r, http.StatusNotFound, "template not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to delete template", nil)
		return
	}
	observability.Audit(r, "template.deleted", "key", key)
	response.JSON(w, r, http.StatusOK, map[string]string{"message": "template deleted"})
}

// Preview renders the template against caller-supplied variables without
// sending anything.
func (h *TemplateHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Vars map[string]string `json:"vars"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	subject, rendered, err := h.svc.Render(r.Context(), chi.URLParam(r, "key"), body.Vars)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTemplateNotFound):
			response.Error(w, r, http.StatusNotFound, "template not found", nil)
		case errors.Is(err, service.ErrTemplateMissingVars):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to render template", nil)
		}
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]string{"subject": subject, "body": rendered})
}
