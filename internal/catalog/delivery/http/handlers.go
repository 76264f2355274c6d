package http

import (
	"github.com/gin-gonic/gin"

	"qr-menu/pkg/response"
)

// CreateItem godoc
// @Summary     Create a menu item
// @Description Creates a dish or drink. The category and all tag IDs must exist.
// @Tags        Admin Items
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       body body createItemReq true "Item data"
// @Success     201  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/items [POST]
func (h *handler) CreateItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newItemResp(output))
}

// ListItems godoc
// @Summary     List menu items
// @Description Returns a page of items, including hidden ones unless visible=true.
// @Tags        Admin Items
// @Produce     json
// @Security    AdminKey
// @Param       category query string false "Category ID"
// @Param       visible  query bool   false "Only visible items"
// @Param       limit    query int    false "Page size (default: 100)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listItemsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/items [GET]
func (h *handler) ListItems(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListItemsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListItems(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListItems: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListItemsResp(output))
}

// DetailItem godoc
// @Summary     Get item detail
// @Tags        Admin Items
// @Produce     json
// @Security    AdminKey
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/items/{id} [GET]
func (h *handler) DetailItem(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.DetailItem(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output))
}

// UpdateItem godoc
// @Summary     Update a menu item
// @Description Partial update: omitted fields keep their stored value.
// @Tags        Admin Items
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       id   path string        true "Item ID"
// @Param       body body updateItemReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/items/{id} [PUT]
func (h *handler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output))
}

// DeleteItem godoc
// @Summary     Delete a menu item
// @Tags        Admin Items
// @Produce     json
// @Security    AdminKey
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/items/{id} [DELETE]
func (h *handler) DeleteItem(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.DeleteItem(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
