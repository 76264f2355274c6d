package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"qr-menu/internal/catalog/repository"
	"qr-menu/internal/middleware"
	"qr-menu/pkg/log"
)

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	allowedOrigins  []string
	shutdownTimeout time.Duration

	// Storage
	catalogRepo repository.Repository
	db          Pinger

	// Domains
	mw            middleware.Middleware
	menuCacheSize int
	menuCacheTTL  time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	// Storage. DB is optional and only used by the readiness probe.
	CatalogRepo repository.Repository
	DB          Pinger

	Middleware    middleware.Config
	MenuCacheSize int
	MenuCacheTTL  time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		shutdownTimeout: cfg.ShutdownTimeout,
		catalogRepo:     cfg.CatalogRepo,
		db:              cfg.DB,
		mw:              middleware.New(logger, cfg.Middleware),
		menuCacheSize:   cfg.MenuCacheSize,
		menuCacheTTL:    cfg.MenuCacheTTL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.catalogRepo == nil {
		return errors.New("catalog repository is required")
	}
	return nil
}
