package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body UpdateProfileRequest true "profile fields"
// @Success 200 {object} util.Response
// @Router /profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.UserService.UpdateProfile(user.UserID, req.FullName, req.Avatar)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page number" default(1)
// @Param limit query int false "page size" default(20)
// @Param role query string false "student | admin"
// @Param status query string false "online | offline | disabled"
// @Param search query string false "name or email fragment"
// @Success 200 {object} util.PageResponse
// @Router /admin/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := service.UserFilter{
		Role:   ctx.Query("role"),
		Status: ctx.Query("status"),
		Search: ctx.Query("search"),
	}
	if v := ctx.Query("startDate"); v != "" {
		if t, err := time.Parse(util.DateFormat, v); err == nil {
			filter.StartDate = t
		}
	}
	if v := ctx.Query("endDate"); v != "" {
		if t, err := time.Parse(util.DateFormat, v); err == nil {
			filter.EndDate = t
		}
	}

	users, total, err := c.UserService.GetUsers(page, limit, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: int64(total),
		Page:  page,
		Limit: limit,
	})
}

type DisableUserRequest struct {
	Disabled bool `json:"disabled"`
}

// @Summary Disable or re-enable a user
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Param request body DisableUserRequest true "disabled flag"
// @Success 200 {object} util.Response
// @Router /admin/users/{id}/disable [put]
func (c *UserController) DisableUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))
	if userID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req DisableUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.DisableUser(userID, req.Disabled); err != nil {
		if err == util.ErrUserNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"disabled": req.Disabled})
}
