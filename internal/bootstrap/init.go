package bootstrap

import (
	"ReportDeskAPI/internal/adapter"
	"ReportDeskAPI/internal/config"
	"ReportDeskAPI/internal/controller"
	"ReportDeskAPI/internal/middleware"
	"ReportDeskAPI/internal/repository"
	"ReportDeskAPI/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func Init(cfg *config.AppConfig, db *gorm.DB, validator *validator.Validate, redisAdapter *adapter.RedisAdapter, chiMux *chi.Mux) {
	repo := repository.NewRepository(db, redisAdapter)

	authService := service.NewAuthService(repo, cfg, validator)
	accountService := service.NewAccountService(repo)
	reportService := service.NewReportService(repo, cfg, validator)
	userService := service.NewUserService(repo, cfg, validator)

	authController := controller.NewAuthController(authService)
	accountController := controller.NewAccountController(accountService)
	reportController := controller.NewReportController(reportService)
	userController := controller.NewUserController(userService)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(repo.RateLimit, cfg)

	route := NewRoute(cfg, chiMux, authMiddleware, rateLimitMiddleware, authController, accountController, reportController, userController)
	route.Register()
}
