package service

import (
	"ReportDeskAPI/internal/config"
	"ReportDeskAPI/internal/entity"
	"ReportDeskAPI/internal/helper"
	"ReportDeskAPI/internal/model"
	"ReportDeskAPI/internal/repository"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "Password123!"

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	return repository.NewRepository(db, nil)
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		JWTSecret:  "test-secret",
		JWTExp:     24,
		BcryptCost: bcrypt.MinCost,
	}
}

func createTestUser(t *testing.T, repo *repository.Repository, email, name string, role entity.UserRole) *entity.User {
	t.Helper()

	hash, err := helper.HashPassword(testPassword, bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func callerFor(user *entity.User) *model.UserDTO {
	return &model.UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

func assertAppErrorCode(t *testing.T, err error, code int) {
	t.Helper()

	var appErr *helper.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}
