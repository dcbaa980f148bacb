package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/dashboard"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/report"
	"github.com/shiftwise/timeclock-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	PayrollReport(w http.ResponseWriter, r *http.Request)
	ExportPayrollCSV(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	OvertimeLeaderboard(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService    report.ReportService
	dashboardService dashboard.DashboardService
}

func NewReportHandler(reportService report.ReportService, dashboardService dashboard.DashboardService) ReportHandler {
	return &reportHandlerImpl{
		reportService:    reportService,
		dashboardService: dashboardService,
	}
}

func (h *reportHandlerImpl) PayrollReport(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "csv" {
		h.ExportPayrollCSV(w, r)
		return
	}

	req := report.PayrollReportRequest{
		FromDate: r.URL.Query().Get("from"),
		ToDate:   r.URL.Query().Get("to"),
	}

	result, err := h.reportService.PayrollReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ExportPayrollCSV streams the period report as a CSV attachment.
func (h *reportHandlerImpl) ExportPayrollCSV(w http.ResponseWriter, r *http.Request) {
	req := report.PayrollReportRequest{
		FromDate: r.URL.Query().Get("from"),
		ToDate:   r.URL.Query().Get("to"),
	}

	filename, rows, err := h.reportService.ExportCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(w)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return
		}
	}
	writer.Flush()
}

func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now()
	if v := r.URL.Query().Get("as_of"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "as_of must be YYYY-MM-DD", nil)
			return
		}
		asOf = parsed
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reportHandlerImpl) OvertimeLeaderboard(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now()
	if v := r.URL.Query().Get("as_of"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "as_of must be YYYY-MM-DD", nil)
			return
		}
		asOf = parsed
	}

	limit := dashboard.DefaultLeaderboardSize
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	result, err := h.dashboardService.GetOvertimeLeaderboard(r.Context(), asOf, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
