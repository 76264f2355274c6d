package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateItemReq binds and validates the create item request body.
func (h *handler) processCreateItemReq(c *gin.Context) (createItemReq, error) {
	var req createItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListItemsReq binds and validates the list items query parameters.
func (h *handler) processListItemsReq(c *gin.Context) (listItemsReq, error) {
	var req listItemsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateItemReq binds and validates the update item request body + URI param.
func (h *handler) processUpdateItemReq(c *gin.Context) (updateItemReq, error) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, req.validate()
}

// bindWithID binds a JSON body and requires the :id URI param.
func bindWithID[T any](c *gin.Context, req *T) (string, error) {
	if err := c.ShouldBindJSON(req); err != nil {
		return "", err
	}
	id := c.Param("id")
	if id == "" {
		return "", errIDRequired
	}
	return id, nil
}

func (h *handler) processUpdateCategoryReq(c *gin.Context) (updateCategoryReq, error) {
	var req updateCategoryReq
	id, err := bindWithID(c, &req)
	req.ID = id
	return req, err
}

func (h *handler) processUpdateTagReq(c *gin.Context) (updateTagReq, error) {
	var req updateTagReq
	id, err := bindWithID(c, &req)
	req.ID = id
	return req, err
}

func (h *handler) processUpdateFilterReq(c *gin.Context) (updateFilterReq, error) {
	var req updateFilterReq
	id, err := bindWithID(c, &req)
	req.ID = id
	return req, err
}
