package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DiscussionController struct {
	DiscussionService *service.DiscussionService
}

func NewDiscussionController(discussionService *service.DiscussionService) *DiscussionController {
	return &DiscussionController{DiscussionService: discussionService}
}

// @Summary Create a discussion post
// @Tags discussions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.PostRequest true "post payload"
// @Success 201 {object} util.Response
// @Router /discussions [post]
func (c *DiscussionController) CreatePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.DiscussionService.CreatePost(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, post)
}

// @Summary List discussion posts
// @Description Pinned posts first, then newest; readable without logging in
// @Tags discussions
// @Produce json
// @Param page query int false "page number" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.PageResponse
// @Router /discussions [get]
func (c *DiscussionController) GetPosts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	posts, total, err := c.DiscussionService.GetPosts(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  posts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Post detail with replies
// @Tags discussions
// @Produce json
// @Param id path string true "post id"
// @Success 200 {object} util.Response
// @Router /discussions/{id} [get]
func (c *DiscussionController) GetPostDetail(ctx *gin.Context) {
	post, err := c.DiscussionService.GetPostDetail(ctx.Param("id"))
	if err != nil {
		if err == util.ErrPostNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, post)
}

// @Summary Reply to a post
// @Tags discussions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "post id"
// @Param request body service.ReplyRequest true "reply payload"
// @Success 201 {object} util.Response
// @Router /discussions/{id}/replies [post]
func (c *DiscussionController) CreateReply(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.DiscussionService.CreateReply(user.UserID, ctx.Param("id"), req)
	if err != nil {
		if err == util.ErrPostNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, reply)
}

type LikeRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=post reply"`
	ContentID   string `json:"contentId" binding:"required"`
}

// @Summary Toggle a like
// @Tags discussions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body LikeRequest true "like target"
// @Success 200 {object} util.Response
// @Router /discussions/likes [post]
func (c *DiscussionController) ToggleLike(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	liked, err := c.DiscussionService.ToggleLike(user.UserID, req.ContentType, req.ContentID)
	if err != nil {
		if err == util.ErrPostNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"liked": liked})
}

// @Summary Delete a post
// @Description Authors delete their own posts; admins can delete any
// @Tags discussions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "post id"
// @Success 200 {object} util.Response
// @Router /discussions/{id} [delete]
func (c *DiscussionController) DeletePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.DiscussionService.DeletePost(user.UserID, user.Role, ctx.Param("id"))
	if err != nil {
		switch err {
		case util.ErrPostNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrPermissionDenied:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
