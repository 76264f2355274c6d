package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogHTTP "qr-menu/internal/catalog/delivery/http"
	catalogUC "qr-menu/internal/catalog/usecase"
)

// setupCatalogDomain wires the admin CRUD endpoints under /api/v1/admin.
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, admin *gin.RouterGroup) error {
	uc := catalogUC.New(srv.catalogRepo, srv.l)
	h := catalogHTTP.New(srv.l, uc)
	catalogHTTP.RegisterRoutes(admin, h, srv.mw)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}
