package memory

import (
	"context"
	"sync"
	"time"

	"qr-menu/internal/catalog/repository"
	"qr-menu/internal/model"
)

type implRepository struct {
	mu         sync.RWMutex
	items      []model.Item
	categories []model.Category
	tags       []model.Tag
	filters    []model.Filter
	revision   int64
	now        func() time.Time
}

// New creates an in-memory Repository. It is safe for concurrent use and is meant for
// local development and tests.
func New() repository.Repository {
	return &implRepository{now: time.Now}
}

// Revision implements repository.Repository.
func (r *implRepository) Revision(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision, nil
}

// bump must be called with mu held for writing.
func (r *implRepository) bump() {
	r.revision++
}

func indexOf[T any](list []T, match func(T) bool) int {
	for i := range list {
		if match(list[i]) {
			return i
		}
	}
	return -1
}
