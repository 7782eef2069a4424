package controller

import (
	"ReportDeskAPI/internal/helper"
	"ReportDeskAPI/internal/middleware"
	"ReportDeskAPI/internal/service"
	"net/http"
)

type AccountController struct {
	accountService *service.AccountService
}

func NewAccountController(accountService *service.AccountService) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Me godoc
// @Summary      Current Account
// @Description  Return the caller's own profile.
// @Tags         account
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess
// @Failure      401  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/account/me [get]
func (c *AccountController) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	profile, err := c.accountService.GetProfile(r.Context(), caller)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, profile)
}
