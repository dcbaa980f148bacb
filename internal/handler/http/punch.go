package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	ListPunches(w http.ResponseWriter, r *http.Request)
	GetPunch(w http.ResponseWriter, r *http.Request)
	GetPunchBreakdown(w http.ResponseWriter, r *http.Request)
	CreatePunch(w http.ResponseWriter, r *http.Request)
	UpdatePunch(w http.ResponseWriter, r *http.Request)
	DeletePunch(w http.ResponseWriter, r *http.Request)
	BatchReplacePunches(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
	calcService  payroll.CalcService
}

func NewPunchHandler(punchService punch.PunchService, calcService payroll.CalcService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
		calcService:  calcService,
	}
}

func (h *punchHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	filter := punch.PunchFilter{
		Search: r.URL.Query().Get("search"),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("from"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			filter.FromDate = &d
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			filter.ToDate = &d
		}
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := punch.Status(v)
		filter.Status = &status
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			filter.Page = parsed
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			filter.Limit = parsed
		}
	}

	result, err := h.punchService.List(r.Context(), filter)
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

func (h *punchHandlerImpl) GetPunch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.punchService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetPunchBreakdown returns the derived pay for one punch, computing and
// caching it on first read.
func (h *punchHandlerImpl) GetPunchBreakdown(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	calc, err := h.calcService.GetOrCompute(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, calc.Breakdown)
}

func (h *punchHandlerImpl) CreatePunch(w http.ResponseWriter, r *http.Request) {
	var req punch.CreatePunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.punchService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Punch created", result)
}

func (h *punchHandlerImpl) UpdatePunch(w http.ResponseWriter, r *http.Request) {
	var req punch.UpdatePunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.punchService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punch updated", result)
}

func (h *punchHandlerImpl) DeletePunch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.punchService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punch deleted", nil)
}

func (h *punchHandlerImpl) BatchReplacePunches(w http.ResponseWriter, r *http.Request) {
	var req punch.BatchReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.punchService.BatchReplace(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punches replaced", result)
}
