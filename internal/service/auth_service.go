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

type AuthService struct {
	repo      *repository.Repository
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewAuthService(repo *repository.Repository, cfg *config.AppConfig, validator *validator.Validate) *AuthService {
	return &AuthService{
		repo:      repo,
		cfg:       cfg,
		validator: validator,
	}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)

	exists, err := s.repo.User.ExistsByEmail(ctx, email)
	if err != nil {
		slog.Error("Failed to check email uniqueness", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if exists {
		return nil, helper.NewConflictError("Email already registered")
	}

	hash, err := helper.HashPassword(req.Password, s.cfg.BcryptCost)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	user := &entity.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		slog.Error("Failed to create user", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, helper.NewUnauthorizedError("Invalid email or password")
		}
		slog.Error("Failed to query user", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if !helper.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, helper.NewUnauthorizedError("Invalid email or password")
	}

	token, err := helper.GenerateJWT(s.cfg.JWTSecret, s.cfg.JWTExp, user.ID)
	if err != nil {
		slog.Error("Failed to generate JWT token", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.AuthResponse{
		Token: token,
		User:  ToUserResponse(user),
	}, nil
}

// VerifyUser turns a bearer token into a verified caller identity. The user
// row is re-read on every request so a role change or account deletion
// takes effect immediately, not at token expiry.
func (s *AuthService) VerifyUser(ctx context.Context, tokenString string) (*model.UserDTO, error) {
	claims, err := helper.ParseJWT(s.cfg.JWTSecret, tokenString)
	if err != nil {
		return nil, helper.NewUnauthorizedError("")
	}

	user, err := s.repo.User.FindByID(ctx, claims.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, helper.NewUnauthorizedError("")
		}
		slog.Error("Failed to query user", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func ToUserResponse(user *entity.User) model.UserResponse {
	return model.UserResponse{
		ID:        helper.FormatID(user.ID),
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}
