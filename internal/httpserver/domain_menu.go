package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	menuHTTP "qr-menu/internal/menu/delivery/http"
	menuUC "qr-menu/internal/menu/usecase"
)

// setupMenuDomain wires the public menu under /api/v1/menu and the admin preview.
func (srv HTTPServer) setupMenuDomain(ctx context.Context, api, admin *gin.RouterGroup) error {
	uc := menuUC.New(srv.catalogRepo, srv.l, menuUC.Config{
		CacheSize: srv.menuCacheSize,
		CacheTTL:  srv.menuCacheTTL,
	})
	h := menuHTTP.New(srv.l, uc)
	menuHTTP.RegisterRoutes(api, admin, h, srv.mw)

	srv.l.Infof(ctx, "Menu domain registered")
	return nil
}
