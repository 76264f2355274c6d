package http

import (
	"github.com/gin-gonic/gin"

	"qr-menu/internal/catalog"
	"qr-menu/pkg/response"
)

// CreateCategory godoc
// @Summary     Create a category
// @Tags        Admin Categories
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       body body createCategoryReq true "Category data"
// @Success     201 {object} categoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/admin/categories [POST]
func (h *handler) CreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateCategory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, categoryResp{Category: output.Category})
}

// ListCategories godoc
// @Summary     List categories
// @Tags        Admin Categories
// @Produce     json
// @Security    AdminKey
// @Success     200 {object} listCategoriesResp
// @Router      /api/v1/admin/categories [GET]
func (h *handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListCategories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCategories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listCategoriesResp{Categories: output.Categories})
}

// UpdateCategory godoc
// @Summary     Update a category
// @Tags        Admin Categories
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       id   path string            true "Category ID"
// @Param       body body updateCategoryReq true "Fields to update"
// @Success     200 {object} categoryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/categories/{id} [PUT]
func (h *handler) UpdateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateCategoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateCategory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, categoryResp{Category: output.Category})
}

// DeleteCategory godoc
// @Summary     Delete a category
// @Description Refused with 409 while items still belong to it.
// @Tags        Admin Categories
// @Produce     json
// @Security    AdminKey
// @Param       id path string true "Category ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - category in use"
// @Router      /api/v1/admin/categories/{id} [DELETE]
func (h *handler) DeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteCategory(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateTag godoc
// @Summary     Create a tag
// @Tags        Admin Tags
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       body body createTagReq true "Tag data"
// @Success     201 {object} tagResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - key already exists"
// @Router      /api/v1/admin/tags [POST]
func (h *handler) CreateTag(c *gin.Context) {
	ctx := c.Request.Context()

	var req createTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateTag(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTag: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, tagResp{Tag: output.Tag})
}

// ListTags godoc
// @Summary     List tags
// @Tags        Admin Tags
// @Produce     json
// @Security    AdminKey
// @Param       active query bool false "Only active tags"
// @Success     200 {object} listTagsResp
// @Router      /api/v1/admin/tags [GET]
func (h *handler) ListTags(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTags(ctx, catalog.ListTagsInput{ActiveOnly: c.Query("active") == "true"})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTags: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listTagsResp{Tags: output.Tags})
}

// UpdateTag godoc
// @Summary     Update a tag
// @Tags        Admin Tags
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       id   path string       true "Tag ID"
// @Param       body body updateTagReq true "Fields to update"
// @Success     200 {object} tagResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/tags/{id} [PUT]
func (h *handler) UpdateTag(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateTagReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateTag(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTag: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, tagResp{Tag: output.Tag})
}

// DeleteTag godoc
// @Summary     Delete a tag
// @Description Also removes the tag from every item.
// @Tags        Admin Tags
// @Produce     json
// @Security    AdminKey
// @Param       id path string true "Tag ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/tags/{id} [DELETE]
func (h *handler) DeleteTag(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteTag(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTag: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
