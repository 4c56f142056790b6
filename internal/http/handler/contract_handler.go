package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arriendohq/arriendo/internal/export"
	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/service"
)

type ContractHandler struct {
	svc service.ContractServiceInterface
}

func NewContractHandler(svc service.ContractServiceInterface) *ContractHandler {
	return &ContractHandler{svc: svc}
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	var body struct {
		PropertyID uint   `json:"property_id"`
		TenantID   uint   `json:"tenant_id"`
		RentAmount int64  `json:"rent_amount"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	startDate, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "start_date must be a YYYY-MM-DD date", nil)
		return
	}
	endDate, err := time.Parse("2006-01-02", body.EndDate)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "end_date must be a YYYY-MM-DD date", nil)
		return
	}

	contract, err := h.svc.Create(r.Context(), caller, service.CreateContractInput{
		PropertyID: body.PropertyID,
		TenantID:   body.TenantID,
		RentAmount: body.RentAmount,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContractInvalidRent),
			errors.Is(err, service.ErrContractInvalidDates):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repository.ErrPropertyNotFound):
			response.Error(w, r, http.StatusNotFound, "property not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to create contract", nil)
		}
		return
	}

	observability.Audit(r, "contract.created", "contract_id", contract.ID, "property_id", contract.PropertyID)
	response.JSON(w, r, http.StatusCreated, contract)
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
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
	filter := repository.ContractFilter{
		Status:     r.URL.Query().Get("status"),
		PropertyID: propertyID,
	}

	result, err := h.svc.ListPaged(r.Context(), caller, filter, req)
	if err != nil {
		if errors.Is(err, service.ErrContractInvalidStatus) {
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to list contracts", nil)
		return
	}

	observability.RecordListRequestPageSize(r.Context(), "contracts", req.Limit)
	response.Paginated(w, r, http.StatusOK, result.Items, pagination(result))
}

func (h *ContractHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	contract, err := h.svc.GetByID(r.Context(), caller, id)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			response.Error(w, r, http.StatusNotFound, "contract not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to load contract", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, contract)
}

func (h *ContractHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	contract, err := h.svc.Terminate(r.Context(), caller, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrContractNotFound):
			response.Error(w, r, http.StatusNotFound, "contract not found", nil)
		case errors.Is(err, service.ErrContractNotActive):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to terminate contract", nil)
		}
		return
	}

	observability.Audit(r, "contract.terminated", "contract_id", id)
	response.JSON(w, r, http.StatusOK, contract)
}

// Export downloads the caller's contracts as csv or json. Rows are already
// scoped and projected by the service; the handler only picks the encoding.
func (h *ContractHandler) Export(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = export.FormatCSV
	}
	if !export.ValidFormat(format) {
		observability.RecordExportRequest(r.Context(), "contract", format, "invalid_format")
		response.Error(w, r, http.StatusBadRequest, "format must be csv or json", nil)
		return
	}
	filter := repository.ContractFilter{Status: r.URL.Query().Get("status")}

	rows, err := h.svc.ExportRows(r.Context(), caller, filter)
	if err != nil {
		observability.RecordExportRequest(r.Context(), "contract", format, "error")
		if errors.Is(err, service.ErrContractInvalidStatus) {
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to export contracts", nil)
		return
	}

	header := h.svc.ExportHeader()
	observability.RecordExportRequest(r.Context(), "contract", format, "success")
	observability.RecordExportRowCount(r.Context(), "contract", len(rows))
	observability.Audit(r, "contract.exported", "format", format, "rows", len(rows))

	if format == export.FormatJSON {
		records := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			record := make(map[string]string, len(header))
			for i, col := range header {
				if i < len(row) {
					record[col] = row[i]
				}
			}
			records = append(records, record)
		}
		if err := export.WriteJSON(w, "contracts", records); err != nil {
			slog.ErrorContext(r.Context(), "contract export write failed", "format", format, "error", err)
		}
		return
	}
	if err := export.WriteCSV(w, "contracts", header, rows); err != nil {
		slog.ErrorContext(r.Context(), "contract export write failed", "format", format, "error", err)
	}
}
