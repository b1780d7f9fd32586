package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
	StreakService   *service.StreakService
}

func NewProgressController(progressService *service.ProgressService, streakService *service.StreakService) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
		StreakService:   streakService,
	}
}

// @Summary Progress summary
// @Description Completed weeks, current week and completion percentage against the published course
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.ProgressService.GetProgressSummary(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// @Summary Weekly progress rows
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /progress/weeks [get]
func (c *ProgressController) GetWeeklyProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	rows, err := c.ProgressService.GetWeeklyProgress(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// @Summary Streak summary
// @Description Current streak, 7-day attendance grid and weekly goal percentage
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /progress/streak [get]
func (c *ProgressController) GetStreak(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.StreakService.GetStreakSummary(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}
