package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary Engagement report
// @Description Scores every student and buckets them into active, at-risk and inactive
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/analytics/engagement [get]
func (c *AnalyticsController) GetEngagementReport(ctx *gin.Context) {
	report, err := c.AnalyticsService.GetEngagementReport()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary Single student engagement
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Router /admin/analytics/engagement/{id} [get]
func (c *AnalyticsController) GetStudentEngagement(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))
	if userID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	engagement, err := c.AnalyticsService.GetStudentEngagement(userID)
	if err != nil {
		util.NotFound(ctx, "student not found")
		return
	}

	util.Success(ctx, engagement)
}
