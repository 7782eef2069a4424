package controller

import (
	"ReportDeskAPI/internal/helper"
	"ReportDeskAPI/internal/middleware"
	"ReportDeskAPI/internal/model"
	"ReportDeskAPI/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ReportController struct {
	reportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// CreateReport godoc
// @Summary      Create Report
// @Description  File a report against a review, user, business, or service. The submitter is always the caller.
// @Tags         report
// @Accept       json
// @Produce      json
// @Param        request body model.CreateReportRequest true "Report Request"
// @Success      201  {object}  helper.ResponseSuccess
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/reports [post]
func (c *ReportController) CreateReport(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	var req model.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	report, err := c.reportService.CreateReport(r.Context(), caller, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteCreated(w, report)
}

// ListReports godoc
// @Summary      List Reports
// @Description  Admins see all reports, other callers only their own submissions. Optional status filter.
// @Tags         report
// @Produce      json
// @Param        status query string false "Filter by status" Enums(pending, resolved, rejected)
// @Success      200  {object}  helper.ResponseSuccess
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/reports [get]
func (c *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	req := model.ListReportsRequest{
		Status: r.URL.Query().Get("status"),
	}

	reports, err := c.reportService.ListReports(r.Context(), caller, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, reports)
}

// TransitionReport godoc
// @Summary      Resolve or Reject Report
// @Description  Move a pending report to a terminal status. Requires Admin privileges and a non-empty response.
// @Tags         report
// @Accept       json
// @Produce      json
// @Param        reportID path string true "Report ID"
// @Param        request body model.TransitionReportRequest true "Transition Request"
// @Success      200  {object}  helper.ResponseSuccess
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      409  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/reports/{reportID} [patch]
func (c *ReportController) TransitionReport(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	reportID, err := helper.ParseID(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report ID"))
		return
	}

	var req model.TransitionReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	report, err := c.reportService.TransitionReport(r.Context(), caller, reportID, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, report)
}
