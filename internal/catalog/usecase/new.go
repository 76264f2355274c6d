package usecase

import (
	"github.com/google/uuid"

	"qr-menu/internal/catalog/repository"
	"qr-menu/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	newID func() string
}

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		newID: uuid.NewString,
	}
}
