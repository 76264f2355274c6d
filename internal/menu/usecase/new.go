package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"qr-menu/internal/catalog/repository"
	"qr-menu/internal/menu"
	"qr-menu/pkg/log"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

// Config sizes the menu caches. Zero values fall back to defaults.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type menuKey struct {
	revision  int64
	filterKey string
}

type implUseCase struct {
	repo      repository.Repository
	l         log.Logger
	snapshots *expirable.LRU[int64, snapshot]
	menus     *expirable.LRU[menuKey, menu.MenuOutput]
}

// New creates a menu UseCase reading from the catalog repository.
func New(repo repository.Repository, l log.Logger, cfg Config) *implUseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &implUseCase{
		repo:      repo,
		l:         l,
		snapshots: expirable.NewLRU[int64, snapshot](4, nil, cfg.CacheTTL),
		menus:     expirable.NewLRU[menuKey, menu.MenuOutput](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}
