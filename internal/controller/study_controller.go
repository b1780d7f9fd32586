package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StudyController struct {
	StudyService *service.StudyService
}

func NewStudyController(studyService *service.StudyService) *StudyController {
	return &StudyController{StudyService: studyService}
}

type StartSessionRequest struct {
	ContentID uint `json:"contentId"`
}

// @Summary Start a study session
// @Tags study
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body StartSessionRequest true "session start payload"
// @Success 201 {object} util.Response
// @Router /study/sessions [post]
func (c *StudyController) StartSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.StudyService.StartSession(user.UserID, req.ContentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// @Summary Complete a study session
// @Description Records the session, credits the week's progress and appends the activity event atomically
// @Tags study
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.CompleteSessionRequest true "session completion payload"
// @Success 201 {object} util.Response
// @Router /study/sessions/complete [post]
func (c *StudyController) CompleteSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CompleteSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.StudyService.CompleteSession(user.UserID, req)
	if err != nil {
		if err == util.ErrInvalidWeek {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// @Summary List own study sessions
// @Tags study
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "max rows"
// @Success 200 {object} util.Response
// @Router /study/sessions [get]
func (c *StudyController) GetSessions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	sessions, err := c.StudyService.GetSessions(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}
