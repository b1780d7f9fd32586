package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary Published course content
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param week query int false "filter by week"
// @Success 200 {object} util.Response
// @Router /content [get]
func (c *ContentController) GetPublished(ctx *gin.Context) {
	week, _ := strconv.Atoi(ctx.DefaultQuery("week", "0"))
	items, err := c.ContentService.GetPublished(week)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary All course content
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page number" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.PageResponse
// @Router /admin/content [get]
func (c *ContentController) GetAll(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	items, total, err := c.ContentService.GetAll(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Create course content
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.ContentRequest true "content payload"
// @Success 201 {object} util.Response
// @Router /admin/content [post]
func (c *ContentController) Create(ctx *gin.Context) {
	var req service.ContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := c.ContentService.Create(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, content)
}

// @Summary Update course content
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "content id"
// @Param request body service.ContentRequest true "content payload"
// @Success 200 {object} util.Response
// @Router /admin/content/{id} [put]
func (c *ContentController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid content id")
		return
	}

	var req service.ContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := c.ContentService.Update(id, req)
	if err != nil {
		if err == util.ErrContentNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, content)
}

// @Summary Delete course content
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "content id"
// @Success 200 {object} util.Response
// @Router /admin/content/{id} [delete]
func (c *ContentController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid content id")
		return
	}

	if err := c.ContentService.Delete(id); err != nil {
		if err == util.ErrContentNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

type PublishRequest struct {
	Published bool `json:"published"`
}

// @Summary Publish or unpublish content
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "content id"
// @Param request body PublishRequest true "published flag"
// @Success 200 {object} util.Response
// @Router /admin/content/{id}/publish [put]
func (c *ContentController) SetPublished(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid content id")
		return
	}

	var req PublishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := c.ContentService.SetPublished(id, req.Published)
	if err != nil {
		if err == util.ErrContentNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, content)
}

// @Summary Upload a course material file
// @Description Accepts a multipart file, probes video duration and stores it with the configured provider
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "material file"
// @Success 201 {object} util.Response
// @Router /admin/content/upload [post]
func (c *ContentController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, durationSeconds, err := c.ContentService.UploadMaterial(ctx.Request.Context(), header)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"url":             url,
		"durationSeconds": durationSeconds,
	})
}
