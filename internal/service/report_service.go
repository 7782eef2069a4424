package service

import (
	"ReportDeskAPI/internal/config"
	"ReportDeskAPI/internal/entity"
	"ReportDeskAPI/internal/helper"
	"ReportDeskAPI/internal/model"
	"ReportDeskAPI/internal/repository"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type ReportService struct {
	repo      *repository.Repository
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewReportService(repo *repository.Repository, cfg *config.AppConfig, validator *validator.Validate) *ReportService {
	return &ReportService{
		repo:      repo,
		cfg:       cfg,
		validator: validator,
	}
}

// CreateReport files a new pending report on behalf of the caller. Any
// authenticated user may create; the submitter is always the caller, never
// taken from the request body.
func (s *ReportService) CreateReport(ctx context.Context, caller *model.UserDTO, req model.CreateReportRequest) (*model.ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("Missing or invalid report fields")
	}

	targetID, err := helper.ParseID(req.TargetID)
	if err != nil {
		return nil, helper.NewBadRequestError("Invalid target ID")
	}

	report := &entity.Report{
		Type:        entity.ReportType(req.Type),
		TargetID:    targetID,
		Reason:      entity.ReportReason(req.Reason),
		Status:      entity.StatusPending,
		SubmittedBy: caller.ID,
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		report.Description = &description
	}

	if err := s.repo.Report.Create(ctx, report); err != nil {
		slog.Error("Failed to create report", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	resp := s.toReportResponse(report, map[int64]entity.User{
		caller.ID: {ID: caller.ID, Email: caller.Email, Name: caller.Name},
	})
	return &resp, nil
}

// ListReports returns the role-scoped report view: admins see everything,
// everyone else sees only their own submissions.
func (s *ReportService) ListReports(ctx context.Context, caller *model.UserDTO, req model.ListReportsRequest) ([]model.ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("Invalid status filter")
	}

	status := entity.ReportStatus(req.Status)

	var (
		reports []entity.Report
		err     error
	)
	if caller.IsAdmin() {
		reports, err = s.repo.Report.ListAll(ctx, status)
	} else {
		reports, err = s.repo.Report.ListBySubmitter(ctx, caller.ID, status)
	}
	if err != nil {
		slog.Error("Failed to list reports", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	users, err := s.resolveUserRefs(ctx, reports)
	if err != nil {
		slog.Error("Failed to resolve report user references", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	out := make([]model.ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, s.toReportResponse(&reports[i], users))
	}
	return out, nil
}

// TransitionReport applies an admin's terminal decision to a pending
// report. Both outcomes require a non-empty response and the deciding
// admin's own identity as resolver.
func (s *ReportService) TransitionReport(ctx context.Context, caller *model.UserDTO, reportID int64, req model.TransitionReportRequest) (*model.ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("Missing or invalid transition fields")
	}

	if strings.TrimSpace(req.Response) == "" {
		return nil, helper.NewBadRequestError("Response must not be empty")
	}

	resolvedBy, err := helper.ParseID(req.ResolvedBy)
	if err != nil {
		return nil, helper.NewBadRequestError("Invalid resolver ID")
	}
	if resolvedBy != caller.ID {
		return nil, helper.NewBadRequestError("Resolver must be the acting admin")
	}

	status := entity.ReportStatus(req.Status)

	rows, err := s.repo.Report.TransitionFromPending(ctx, reportID, status, strings.TrimSpace(req.Response), resolvedBy, time.Now().UTC())
	if err != nil {
		slog.Error("Failed to update report", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if rows == 0 {
		// Nothing was pending under that id: distinguish a missing report
		// from one that already reached a terminal status.
		if _, err := s.repo.Report.FindByID(ctx, reportID); err != nil {
			if repository.IsNotFound(err) {
				return nil, helper.NewNotFoundError("Report not found")
			}
			slog.Error("Failed to query report", "error", err)
			return nil, helper.NewInternalServerError("")
		}
		return nil, helper.NewConflictError("Report already resolved or rejected")
	}

	report, err := s.repo.Report.FindByID(ctx, reportID)
	if err != nil {
		slog.Error("Failed to reload report", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	users, err := s.resolveUserRefs(ctx, []entity.Report{*report})
	if err != nil {
		slog.Error("Failed to resolve report user references", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	resp := s.toReportResponse(report, users)
	return &resp, nil
}

// resolveUserRefs loads the submitter and resolver rows referenced by the
// given reports. References are weak: ids pointing at deleted users are
// left out of the map and render as null summaries.
func (s *ReportService) resolveUserRefs(ctx context.Context, reports []entity.Report) (map[int64]entity.User, error) {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0, len(reports))
	for i := range reports {
		if _, ok := seen[reports[i].SubmittedBy]; !ok {
			seen[reports[i].SubmittedBy] = struct{}{}
			ids = append(ids, reports[i].SubmittedBy)
		}
		if rb := reports[i].ResolvedBy; rb != nil {
			if _, ok := seen[*rb]; !ok {
				seen[*rb] = struct{}{}
				ids = append(ids, *rb)
			}
		}
	}
	return s.repo.User.FindByIDs(ctx, ids)
}

func (s *ReportService) toReportResponse(report *entity.Report, users map[int64]entity.User) model.ReportResponse {
	resp := model.ReportResponse{
		ID:          helper.FormatID(report.ID),
		Type:        string(report.Type),
		TargetID:    helper.FormatID(report.TargetID),
		Reason:      string(report.Reason),
		Description: report.Description,
		Status:      string(report.Status),
		SubmittedBy: helper.FormatID(report.SubmittedBy),
		ResolvedBy:  helper.FormatNillableID(report.ResolvedBy),
		Response:    report.Response,
		CreatedAt:   report.CreatedAt.UTC().Format(time.RFC3339),
	}

	if report.ResolvedAt != nil {
		resolvedAt := report.ResolvedAt.UTC().Format(time.RFC3339)
		resp.ResolvedAt = &resolvedAt
	}

	if u, ok := users[report.SubmittedBy]; ok {
		resp.Submitter = toUserSummary(u)
	}
	if report.ResolvedBy != nil {
		if u, ok := users[*report.ResolvedBy]; ok {
			resp.Resolver = toUserSummary(u)
		}
	}

	return resp
}

func toUserSummary(u entity.User) *model.UserSummary {
	return &model.UserSummary{
		ID:    helper.FormatID(u.ID),
		Email: u.Email,
		Name:  u.Name,
	}
}
