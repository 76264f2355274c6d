package http

import (
	"github.com/gin-gonic/gin"

	"qr-menu/internal/catalog"
	"qr-menu/pkg/response"
)

// CreateFilter godoc
// @Summary     Create a customer filter
// @Description The predicate is checked before storing; unresolved tag references come back as warnings.
// @Tags        Admin Filters
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       body body createFilterReq true "Filter data"
// @Success     201 {object} filterResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - key already exists or reserved"
// @Failure     422 {object} response.Resp "Invalid predicate"
// @Router      /api/v1/admin/filters [POST]
func (h *handler) CreateFilter(c *gin.Context) {
	ctx := c.Request.Context()

	var req createFilterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateFilter(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFilter: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newFilterResp(output))
}

// ListFilters godoc
// @Summary     List filters
// @Tags        Admin Filters
// @Produce     json
// @Security    AdminKey
// @Param       active query bool false "Only active filters"
// @Success     200 {object} listFiltersResp
// @Router      /api/v1/admin/filters [GET]
func (h *handler) ListFilters(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListFilters(ctx, catalog.ListFiltersInput{ActiveOnly: c.Query("active") == "true"})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListFilters: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listFiltersResp{Filters: output.Filters})
}

// UpdateFilter godoc
// @Summary     Update a filter
// @Tags        Admin Filters
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       id   path string          true "Filter ID"
// @Param       body body updateFilterReq true "Fields to update"
// @Success     200 {object} filterResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Invalid predicate"
// @Router      /api/v1/admin/filters/{id} [PUT]
func (h *handler) UpdateFilter(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateFilterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateFilter(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateFilter: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFilterResp(output))
}

// DeleteFilter godoc
// @Summary     Delete a filter
// @Tags        Admin Filters
// @Produce     json
// @Security    AdminKey
// @Param       id path string true "Filter ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/filters/{id} [DELETE]
func (h *handler) DeleteFilter(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteFilter(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteFilter: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ReorderFilters godoc
// @Summary     Reorder filters
// @Description The body lists every filter ID once, in display order.
// @Tags        Admin Filters
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       body body reorderFiltersReq true "Ordered filter IDs"
// @Success     200 {object} listFiltersResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/admin/filters/order [PUT]
func (h *handler) ReorderFilters(c *gin.Context) {
	ctx := c.Request.Context()

	var req reorderFiltersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ReorderFilters(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ReorderFilters: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listFiltersResp{Filters: output.Filters})
}
