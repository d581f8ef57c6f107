package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Cycles
	CreateCycle(w http.ResponseWriter, r *http.Request)
	ListCycles(w http.ResponseWriter, r *http.Request)
	GetCycle(w http.ResponseWriter, r *http.Request)

	// Calculation
	CalculateCycle(w http.ResponseWriter, r *http.Request)
	ListDetails(w http.ResponseWriter, r *http.Request)

	// Details
	GetDetail(w http.ResponseWriter, r *http.Request)
	SetBonus(w http.ResponseWriter, r *http.Request)
	ClearBonus(w http.ResponseWriter, r *http.Request)
	SetDeduction(w http.ResponseWriter, r *http.Request)
	ClearDeduction(w http.ResponseWriter, r *http.Request)

	// Finalization
	ValidateFinalization(w http.ResponseWriter, r *http.Request)
	FinalizeCycle(w http.ResponseWriter, r *http.Request)

	// Summary
	GetCycleSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== CYCLES ==========

func (h *payrollHandlerImpl) CreateCycle(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreateCycle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll cycle created", result)
}

func (h *payrollHandlerImpl) ListCycles(w http.ResponseWriter, r *http.Request) {
	filter := payroll.CycleFilter{
		Page:  1,
		Limit: 20,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.payrollService.ListCycles(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *payrollHandlerImpl) GetCycle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cycle ID is required", nil)
		return
	}

	result, err := h.payrollService.GetCycle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== CALCULATION ==========

func (h *payrollHandlerImpl) CalculateCycle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cycle ID is required", nil)
		return
	}

	result, err := h.payrollService.CalculateCycle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll cycle calculated", result)
}

func (h *payrollHandlerImpl) ListDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cycle ID is required", nil)
		return
	}

	result, err := h.payrollService.ListDetails(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== DETAILS ==========

func (h *payrollHandlerImpl) GetDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Detail ID is required", nil)
		return
	}

	result, err := h.payrollService.GetDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) decodeAdjustment(w http.ResponseWriter, r *http.Request) (payroll.SetAdjustmentRequest, bool) {
	var req payroll.SetAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return req, false
	}
	req.DetailID = chi.URLParam(r, "id")
	return req, true
}

func (h *payrollHandlerImpl) SetBonus(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAdjustment(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.SetBonus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus updated", result)
}

func (h *payrollHandlerImpl) ClearBonus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Detail ID is required", nil)
		return
	}

	result, err := h.payrollService.ClearBonus(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus cleared", result)
}

func (h *payrollHandlerImpl) SetDeduction(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAdjustment(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.SetDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction updated", result)
}

func (h *payrollHandlerImpl) ClearDeduction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Detail ID is required", nil)
		return
	}

	result, err := h.payrollService.ClearDeduction(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction cleared", result)
}

// ========== FINALIZATION ==========

func (h *payrollHandlerImpl) ValidateFinalization(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cycle ID is required", nil)
		return
	}

	result, err := h.payrollService.ValidateFinalization(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) FinalizeCycle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cycle ID is required", nil)
		return
	}

	result, err := h.payrollService.FinalizeCycle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll cycle finalized", result)
}

// ========== SUMMARY ==========

func (h *payrollHandlerImpl) GetCycleSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Cycle ID is required", nil)
		return
	}

	result, err := h.payrollService.GetCycleSummary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
