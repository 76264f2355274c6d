package http

import (
	"github.com/gin-gonic/gin"

	"qr-menu/internal/middleware"
)

// RegisterRoutes maps the public menu endpoints under rg and the preview endpoint
// under admin.
func RegisterRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	public := rg.Group("/menu", mw.RateLimit())
	{
		public.GET("", h.GetMenu)
		public.GET("/filters", h.ListFilters)
	}

	admin.POST("/menu/preview", mw.AdminAuth(), h.Preview)
}
