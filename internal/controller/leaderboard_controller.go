package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// @Summary Leaderboard
// @Description Ranked students by points, streak or achievements; the view changes order, not membership
// @Tags leaderboard
// @Produce json
// @Security ApiKeyAuth
// @Param view query string false "points | streak | achievements" default(points)
// @Success 200 {object} util.Response
// @Router /leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view := service.ParseLeaderboardView(ctx.DefaultQuery("view", "points"))
	entries, err := c.LeaderboardService.GetLeaderboard(view, user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"view":    view,
		"entries": entries,
	})
}
