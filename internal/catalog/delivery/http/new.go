package http

import (
	"qr-menu/internal/catalog"
	"qr-menu/pkg/log"
)

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates a new HTTP handler for the catalog admin endpoints.
func New(l log.Logger, uc catalog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
