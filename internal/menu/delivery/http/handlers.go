package http

import (
	"github.com/gin-gonic/gin"

	"qr-menu/internal/menu"
	"qr-menu/pkg/response"
)

// GetMenu godoc
// @Summary     Customer menu
// @Description Visible items grouped by category. An unknown filter key returns the full menu.
// @Tags        Menu
// @Produce     json
// @Param       filter query string false "Filter key" default(all)
// @Success     200 {object} menuResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/menu [GET]
func (h *handler) GetMenu(c *gin.Context) {
	ctx := c.Request.Context()

	var req getMenuReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetMenu(ctx, menu.GetMenuInput{FilterKey: req.Filter})
	if err != nil {
		h.l.Errorf(ctx, "uc.GetMenu: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMenuResp(output))
}

// ListFilters godoc
// @Summary     Customer filter bar
// @Tags        Menu
// @Produce     json
// @Success     200 {object} listFiltersResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/menu/filters [GET]
func (h *handler) ListFilters(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListFilters(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListFilters: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListFiltersResp(output))
}

// Preview godoc
// @Summary     Preview the menu with unsaved items
// @Description Includes hidden items. Drafts are appended to their category whether or not they match the filter.
// @Tags        Admin Menu
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       body body previewReq true "Filter and draft items"
// @Success     200 {object} menuResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/admin/menu/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMenuResp(output))
}
