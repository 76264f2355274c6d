package http

import (
	"qr-menu/internal/menu"
	"qr-menu/pkg/log"
)

type handler struct {
	l  log.Logger
	uc menu.UseCase
}

// New creates a new HTTP handler for the customer menu.
func New(l log.Logger, uc menu.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
