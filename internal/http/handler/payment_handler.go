package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/service"
)

const defaultTrendMonths = 6

type PaymentHandler struct {
	svc service.PaymentServiceInterface
}

func NewPaymentHandler(svc service.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	var body struct {
		ContractID uint   `json:"contract_id"`
		Amount     int64  `json:"amount"`
		DueDate    string `json:"due_date"`
		Method     string `json:"method"`
		Reference  string `json:"reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	dueDate, err := time.Parse("2006-01-02", body.DueDate)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "due_date must be a YYYY-MM-DD date", nil)
		return
	}

	payment, err := h.svc.Create(r.Context(), caller, service.CreatePaymentInput{
		ContractID: body.ContractID,
		Amount:     body.Amount,
		DueDate:    dueDate,
		Method:     body.Method,
		Reference:  body.Reference,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentInvalidAmount):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, repository.ErrContractNotFound):
			response.Error(w, r, http.StatusNotFound, "contract not found", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to create payment", nil)
		}
		return
	}

	observability.Audit(r, "payment.created", "payment_id", payment.ID, "contract_id", payment.ContractID)
	response.JSON(w, r, http.StatusCreated, payment)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	req, err := parsePageRequest(r)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	contractID, err := parseOptionalUintParam(r, "contract_id")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	filter := repository.PaymentFilter{
		Status:     r.URL.Query().Get("status"),
		ContractID: contractID,
	}
	if from, set, err := parseDateParam(r, "due_from"); err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	} else if set {
		filter.DueFrom = &from
	}
	if to, set, err := parseDateParam(r, "due_to"); err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	} else if set {
		filter.DueTo = &to
	}

	result, err := h.svc.ListPaged(r.Context(), caller, filter, req)
	if err != nil {
		if errors.Is(err, service.ErrPaymentInvalidStatus) {
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to list payments", nil)
		return
	}

	observability.RecordListRequestPageSize(r.Context(), "payments", req.Limit)
	response.Paginated(w, r, http.StatusOK, result.Items, pagination(result))
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	payment, err := h.svc.GetByID(r.Context(), caller, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			response.Error(w, r, http.StatusNotFound, "payment not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to load payment", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, payment)
}

func (h *PaymentHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
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
		Method    string `json:"method"`
		Reference string `json:"reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	payment, err := h.svc.MarkPaid(r.Context(), caller, id, body.Method, body.Reference)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPaymentNotFound):
			response.Error(w, r, http.StatusNotFound, "payment not found", nil)
		case errors.Is(err, service.ErrPaymentAlreadyPaid):
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "failed to settle payment", nil)
		}
		return
	}

	observability.Audit(r, "payment.settled", "payment_id", id, "method", body.Method)
	response.JSON(w, r, http.StatusOK, payment)
}

// Trend returns one point per calendar month ending at the current month.
// Months without settled payments appear with zero amount and count.
func (h *PaymentHandler) Trend(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}
	months := defaultTrendMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "months must be an integer", nil)
			return
		}
		months = v
	}

	points, err := h.svc.Trend(r.Context(), caller, months)
	if err != nil {
		if errors.Is(err, service.ErrTrendInvalidMonths) {
			response.Error(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "failed to compute payment trend", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"months": months, "trend": points})
}
