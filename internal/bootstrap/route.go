package bootstrap

import (
	"ReportDeskAPI/internal/config"
	"ReportDeskAPI/internal/controller"
	"ReportDeskAPI/internal/middleware"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type Route struct {
	cfg                 *config.AppConfig
	chi                 *chi.Mux
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	authController      *controller.AuthController
	accountController   *controller.AccountController
	reportController    *controller.ReportController
	userController      *controller.UserController
}

func NewRoute(
	cfg *config.AppConfig,
	chi *chi.Mux,
	authMiddleware *middleware.AuthMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	reportController *controller.ReportController,
	userController *controller.UserController,
) *Route {
	return &Route{
		cfg:                 cfg,
		chi:                 chi,
		authMiddleware:      authMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		authController:      authController,
		accountController:   accountController,
		reportController:    reportController,
		userController:      userController,
	}
}

func (route *Route) Register() {
	route.chi.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to ReportDeskAPI"))
	})

	authWindow := time.Duration(route.cfg.AuthRateLimitSeconds) * time.Second

	route.chi.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(route.rateLimitMiddleware.Limit("auth", route.cfg.AuthRateLimit, authWindow))
			r.Post("/auth/register", route.authController.Register)
			r.Post("/auth/login", route.authController.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.VerifyToken)

			r.Get("/account/me", route.accountController.Me)

			r.Post("/reports", route.reportController.CreateReport)
			r.Get("/reports", route.reportController.ListReports)

			r.Group(func(r chi.Router) {
				r.Use(route.authMiddleware.RequireAdmin)

				r.Patch("/reports/{reportID}", route.reportController.TransitionReport)

				r.Get("/admin/users", route.userController.ListUsers)
				r.Put("/admin/users/{userID}", route.userController.UpdateUser)
				r.Delete("/admin/users/{userID}", route.userController.DeleteUser)
				r.Get("/admin/stats", route.userController.GetStats)
			})
		})
	})
}
