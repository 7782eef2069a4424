package middleware

import (
	"ReportDeskAPI/internal/config"
	"ReportDeskAPI/internal/entity"
	"ReportDeskAPI/internal/helper"
	"ReportDeskAPI/internal/model"
	"ReportDeskAPI/internal/repository"
	"ReportDeskAPI/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthHarness(t *testing.T) (*AuthMiddleware, *repository.Repository, *config.AppConfig) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))

	cfg := &config.AppConfig{
		JWTSecret:  "test-secret",
		JWTExp:     24,
		BcryptCost: bcrypt.MinCost,
	}
	repo := repository.NewRepository(db, nil)

	return NewAuthMiddleware(service.NewAuthService(repo, cfg, config.NewValidator())), repo, cfg
}

func seedUser(t *testing.T, repo *repository.Repository, email string, role entity.UserRole) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: "irrelevant",
		Role:         role,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func echoCallerHandler(t *testing.T, gotCaller **model.UserDTO) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		require.True(t, ok)
		*gotCaller = caller
		w.WriteHeader(http.StatusOK)
	})
}

func TestVerifyTokenSetsCaller(t *testing.T) {
	m, repo, cfg := newAuthHarness(t)
	user := seedUser(t, repo, "alice@test.com", entity.RoleUser)

	token, err := helper.GenerateJWT(cfg.JWTSecret, cfg.JWTExp, user.ID)
	require.NoError(t, err)

	var caller *model.UserDTO
	handler := m.VerifyToken(echoCallerHandler(t, &caller))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, caller)
	assert.Equal(t, user.ID, caller.ID)
	assert.Equal(t, "alice@test.com", caller.Email)
	assert.False(t, caller.IsAdmin())
}

func TestVerifyTokenRejectsBadHeaders(t *testing.T) {
	m, _, _ := newAuthHarness(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for unauthenticated requests")
	})
	handler := m.VerifyToken(next)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestVerifyTokenRejectsDeletedUser(t *testing.T) {
	m, repo, cfg := newAuthHarness(t)
	user := seedUser(t, repo, "alice@test.com", entity.RoleUser)

	token, err := helper.GenerateJWT(cfg.JWTSecret, cfg.JWTExp, user.ID)
	require.NoError(t, err)

	rows, err := repo.User.Delete(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	handler := m.VerifyToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a deleted account")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAdmin(t *testing.T) {
	m, _, _ := newAuthHarness(t)

	handler := m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	run := func(caller *model.UserDTO) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if caller != nil {
			req = req.WithContext(context.WithValue(req.Context(), UserContextKey, caller))
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusUnauthorized, run(nil).Code)
	assert.Equal(t, http.StatusForbidden, run(&model.UserDTO{ID: 1, Role: entity.RoleUser}).Code)
	assert.Equal(t, http.StatusOK, run(&model.UserDTO{ID: 2, Role: entity.RoleAdmin}).Code)
}
