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

type PropertyHandler struct {
	svc service.PropertyServiceInterface
}

func NewPropertyHandler(svc service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	var body struct {
		Title       string  `json:"title"`
		Address     string  `json:"address"`
		Commune     string  `json:"commune"`
		RentAmount  int64   `json:"rent_amount"`
		Bedrooms    int     `json:"bedrooms"`
		Bathrooms   int     `json:"bathrooms"`
		AreaM2      float64 `json:"area_m2"`
		Description string  `json:"description"`
		BrokerID    *uint   `json:"broker_id"`
		OwnerID     uint    `json:"owner_id"` // ignored unless the caller is cross-tenant
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	property, err := h.svc.Create(r.Context(), caller, body.OwnerID, service.CreatePropertyInput{
		Title:       body.Title,
		Address:     body.Address,
		Commune:     body.Commune,
		RentAmount:  body.RentAmount,
		Bedrooms:    body.Bedrooms,
		Bathrooms:   body.Bathrooms,
		AreaM2:      body.AreaM2,
		Description: body.Description,
		BrokerID:    body.BrokerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPropertyInvalidTitle),
			errors.Is(err, service.ErrPropertyInvalidAddress),
			errors.Is(err, service.ErrPropertyInvalidRent):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to create property", nil)
		}
		return
	}

	observability.Audit(r, "property.created", "property_id", property.ID, "owner_id", property.OwnerID)
	response.JSON(w, r, http.StatusCreated, property)
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	req, err := parsePageRequest(r)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	filter := repository.PropertyFilter{
		Status:  r.URL.Query().Get("status"),
		Commune: r.URL.Query().Get("commune"),
	}

	result, err := h.svc.ListPaged(r.Context(), caller, filter, req)
	if err != nil {
		if errors.Is(err, service.ErrPropertyInvalidStatus) {
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to list properties", nil)
		return
	}

	observability.RecordListRequestPageSize(r.Context(), "properties", req.Limit)
	response.Paginated(w, r, http.StatusOK, result.Items, pagination(result))
}

func (h *PropertyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	property, err := h.svc.GetByID(r.Context(), caller, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			response.Error(w, r, http.StatusNotFound, "property not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to load property", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
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
		Title       *string `json:"title"`
		Address     *string `json:"address"`
		Commune     *string `json:"commune"`
		Status      *string `json:"status"`
		RentAmount  *int64  `json:"rent_amount"`
		Description *string `json:"description"`
		BrokerID    *uint   `json:"broker_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	property, err := h.svc.Update(r.Context(), caller, id, service.UpdatePropertyInput{
		Title:       body.Title,
		Address:     body.Address,
		Commune:     body.Commune,
		Status:      body.Status,
		RentAmount:  body.RentAmount,
		Description: body.Description,
		BrokerID:    body.BrokerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPropertyNoUpdates),
			errors.Is(err, service.ErrPropertyInvalidTitle),
			errors.Is(err, service.ErrPropertyInvalidAddress),
			errors.Is(err, service.ErrPropertyInvalidRent),
			errors.Is(err, service.ErrPropertyInvalidStatus):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repository.ErrPropertyNotFound):
			response.Error(w, r, http.StatusNotFound, "property not found", nil)
		case errors.Is(err, service.ErrNotPropertyOwner):
			response.Error(w, r, http.StatusForbidden, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to update property", nil)
		}
		return
	}

	observability.Audit(r, "property.updated", "property_id", id)
	response.JSON(w, r, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.svc.DeleteByID(r.Context(), caller, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrPropertyNotFound):
			response.Error(w, r, http.StatusNotFound, "property not found", nil)
		case errors.Is(err, service.ErrNotPropertyOwner):
			response.Error(w, r, http.StatusForbidden, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to delete property", nil)
		}
		return
	}

	observability.Audit(r, "property.deleted", "property_id", id)
	response.JSON(w, r, http.StatusOK, map[string]string{"message": "property deleted"})
}

// UploadPhoto accepts a multipart "photo" part. Size and content type are
// re-checked in the storage layer; the header values here are advisory.
func (h *PropertyHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "photo file is required", nil)
		return
	}
	defer file.Close()

	url, err := h.svc.UploadPhoto(r.Context(), caller, id, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileTooBig),
			errors.Is(err, service.ErrInvalidFileType):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repository.ErrPropertyNotFound):
			response.Error(w, r, http.StatusNotFound, "property not found", nil)
		case errors.Is(err, service.ErrNotPropertyOwner):
			response.Error(w, r, http.StatusForbidden, err.Error(), nil)
		case errors.Is(err, service.ErrStorageDisabled):
			response.Error(w, r, http.StatusServiceUnavailable, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to upload photo", nil)
		}
		return
	}

	observability.Audit(r, "property.photo_uploaded", "property_id", id, "size", header.Size)
	response.JSON(w, r, http.StatusCreated, map[string]string{"url": url})
}

// DeletePhoto removes a single photo; the object key comes in the "key"
// query parameter since stored keys contain slashes.
func (h *PropertyHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	key := r.URL.Query().Get("key")
	if key == "" {
		response.Error(w, r, http.StatusBadRequest, "key query parameter is required", nil)
		return
	}

	if err := h.svc.DeletePhoto(r.Context(), caller, id, key); err != nil {
		switch {
		case errors.Is(err, repository.ErrPropertyNotFound):
			response.Error(w, r, http.StatusNotFound, "property not found", nil)
		case errors.Is(err, service.ErrPhotoNotFound):
			response.Error(w, r, http.StatusNotFound, "photo not found", nil)
		case errors.Is(err, service.ErrNotPropertyOwner):
			response.Error(w, r, http.StatusForbidden, err.Error(), nil)
		case errors.Is(err, service.ErrStorageDisabled):
			response.Error(w, r, http.StatusServiceUnavailable, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to delete photo", nil)
		}
		return
	}

	observability.Audit(r, "property.photo_deleted", "property_id", id)
	response.JSON(w, r, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *PropertyHandler) Photos(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	urls, err := h.svc.PhotoURLs(r.Context(), caller, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPropertyNotFound):
			response.Error(w, r, http.StatusNotFound, "property not found", nil)
		case errors.Is(err, service.ErrStorageDisabled):
			response.Error(w, r, http.StatusServiceUnavailable, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to list photos", nil)
		}
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"urls": urls})
}
