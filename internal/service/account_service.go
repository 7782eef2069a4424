package service

import (
	"ReportDeskAPI/internal/helper"
	"ReportDeskAPI/internal/model"
	"ReportDeskAPI/internal/repository"
	"context"
	"log/slog"
)

type AccountService struct {
	repo *repository.Repository
}

func NewAccountService(repo *repository.Repository) *AccountService {
	return &AccountService{
		repo: repo,
	}
}

func (s *AccountService) GetProfile(ctx context.Context, caller *model.UserDTO) (*model.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, caller.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, helper.NewUnauthorizedError("")
		}
		slog.Error("Failed to query user", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	resp := ToUserResponse(user)
	return &resp, nil
}
