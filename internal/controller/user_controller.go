package controller

import (
	"ReportDeskAPI/internal/helper"
	"ReportDeskAPI/internal/model"
	"ReportDeskAPI/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers godoc
// @Summary      List Users
// @Description  List all accounts. Requires Admin privileges.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess
// @Failure      401  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/admin/users [get]
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.userService.ListUsers(r.Context())
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, users)
}

// UpdateUser godoc
// @Summary      Update User
// @Description  Change a user's email, name, or role. Requires Admin privileges.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        userID path string true "User ID"
// @Param        request body model.UpdateUserRequest true "Update Request"
// @Success      200  {object}  helper.ResponseSuccess
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      409  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/admin/users/{userID} [put]
func (c *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := helper.ParseID(chi.URLParam(r, "userID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid user ID"))
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	user, err := c.userService.UpdateUser(r.Context(), userID, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, user)
}

// DeleteUser godoc
// @Summary      Delete User
// @Description  Physically delete an account. Reports referencing it are kept. Requires Admin privileges.
// @Tags         admin
// @Produce      json
// @Param        userID path string true "User ID"
// @Success      200  {object}  helper.ResponseSuccess
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/admin/users/{userID} [delete]
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := helper.ParseID(chi.URLParam(r, "userID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid user ID"))
		return
	}

	if err := c.userService.DeleteUser(r.Context(), userID); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, nil)
}

// GetStats godoc
// @Summary      Dashboard Stats
// @Description  Aggregate user and report counts for the admin dashboard.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess
// @Failure      401  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/admin/stats [get]
func (c *UserController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.userService.GetStats(r.Context())
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, stats)
}
