package http

import (
	"github.com/gin-gonic/gin"

	"qr-menu/internal/middleware"
)

// RegisterRoutes maps the admin catalog endpoints. Every route requires the admin key.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	admin := rg.Group("", mw.AdminAuth())

	items := admin.Group("/items")
	{
		items.POST("", h.CreateItem)
		items.GET("", h.ListItems)
		items.GET("/:id", h.DetailItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}

	categories := admin.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	tags := admin.Group("/tags")
	{
		tags.POST("", h.CreateTag)
		tags.GET("", h.ListTags)
		tags.PUT("/:id", h.UpdateTag)
		tags.DELETE("/:id", h.DeleteTag)
	}

	filters := admin.Group("/filters")
	{
		filters.POST("", h.CreateFilter)
		filters.GET("", h.ListFilters)
		filters.PUT("/order", h.ReorderFilters)
		filters.PUT("/:id", h.UpdateFilter)
		filters.DELETE("/:id", h.DeleteFilter)
	}
}
