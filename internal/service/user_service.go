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

	"github.com/go-playground/validator/v10"
)

// UserService is the admin-only user directory. Role enforcement happens in
// the middleware gate; these methods assume an already-authorized caller.
type UserService struct {
	repo      *repository.Repository
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewUserService(repo *repository.Repository, cfg *config.AppConfig, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		cfg:       cfg,
		validator: validator,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out, nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID int64, req model.UpdateUserRequest) (*model.UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, helper.NewNotFoundError("User not found")
		}
		slog.Error("Failed to query user", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != user.Email {
		exists, err := s.repo.User.ExistsByEmail(ctx, email)
		if err != nil {
			slog.Error("Failed to check email uniqueness", "error", err)
			return nil, helper.NewInternalServerError("")
		}
		if exists {
			return nil, helper.NewConflictError("Email already registered")
		}
	}

	user.Email = email
	user.Name = strings.TrimSpace(req.Name)
	user.Role = entity.UserRole(req.Role)

	if err := s.repo.User.Update(ctx, user); err != nil {
		slog.Error("Failed to update user", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// DeleteUser removes the account physically. Reports referencing the user
// as submitter or resolver keep their ids; listings render the missing
// user as a null summary.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	rows, err := s.repo.User.Delete(ctx, userID)
	if err != nil {
		slog.Error("Failed to delete user", "error", err)
		return helper.NewInternalServerError("")
	}
	if rows == 0 {
		return helper.NewNotFoundError("User not found")
	}
	return nil
}

func (s *UserService) GetStats(ctx context.Context) (*model.DashboardStatsResponse, error) {
	stats := &model.DashboardStatsResponse{}

	var err error
	if stats.TotalUsers, err = s.repo.User.Count(ctx); err != nil {
		slog.Error("Failed to count users", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if stats.TotalReports, err = s.repo.Report.Count(ctx); err != nil {
		slog.Error("Failed to count reports", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if stats.PendingReports, err = s.repo.Report.CountByStatus(ctx, entity.StatusPending); err != nil {
		slog.Error("Failed to count pending reports", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if stats.ResolvedReports, err = s.repo.Report.CountByStatus(ctx, entity.StatusResolved); err != nil {
		slog.Error("Failed to count resolved reports", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if stats.RejectedReports, err = s.repo.Report.CountByStatus(ctx, entity.StatusRejected); err != nil {
		slog.Error("Failed to count rejected reports", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return stats, nil
}
