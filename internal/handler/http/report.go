package http

import (
	"net/http"

	"github.com/worklane/hr-admin-backend-go/internal/domain/report"
	"github.com/worklane/hr-admin-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	LeaveSummary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// LeaveSummary implements ReportHandler.
func (h *ReportHandlerImpl) LeaveSummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reportService.EmployeeLeaveSummaries(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}
