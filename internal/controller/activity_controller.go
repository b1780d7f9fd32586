package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
	Hub             *service.ActivityHub
}

func NewActivityController(activityService *service.ActivityService, hub *service.ActivityHub) *ActivityController {
	return &ActivityController{
		ActivityService: activityService,
		Hub:             hub,
	}
}

// @Summary Recent activity feed
// @Tags activity
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "max events" default(20)
// @Success 200 {object} util.Response
// @Router /activity [get]
func (c *ActivityController) GetFeed(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	feed, err := c.ActivityService.GetUserFeed(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, feed)
}

// @Summary Live activity stream
// @Description Upgrades to a websocket that pushes the user's activity events as they happen
// @Tags activity
// @Security ApiKeyAuth
// @Success 101 {string} string "switching protocols"
// @Router /activity/ws [get]
func (c *ActivityController) Subscribe(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	c.Hub.ServeWS(ctx, user.UserID)
}
