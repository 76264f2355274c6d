package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"qr-menu/config"
	"qr-menu/internal/catalog/repository"
	"qr-menu/internal/catalog/repository/memory"
	"qr-menu/internal/catalog/repository/postgre"
	"qr-menu/internal/httpserver"
	"qr-menu/pkg/log"
)

type storage struct {
	repo repository.Repository
	db   *sql.DB
}

func (s storage) pinger() httpserver.Pinger {
	if s.db == nil {
		return nil
	}
	return s.db
}

func (s storage) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func openStorage(ctx context.Context, cfg config.StorageConfig, l log.Logger) (storage, error) {
	if cfg.Driver == config.StorageMemory {
		l.Warn(ctx, "Using in-memory storage, the catalog is lost on restart")
		return storage{repo: memory.New()}, nil
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN)
	if err != nil {
		return storage{}, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return storage{}, fmt.Errorf("ping postgres: %w", err)
	}

	if cfg.AutoMigrate {
		if err := postgre.MigrateUp(ctx, db); err != nil {
			_ = db.Close()
			return storage{}, fmt.Errorf("migrate: %w", err)
		}
		l.Info(ctx, "Catalog schema is up to date")
	}

	l.Info(ctx, "Connected to PostgreSQL")
	return storage{repo: postgre.New(db, l), db: db}, nil
}
