// Package storage opens the persistence medium selected in the config.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/loginkeeper/internal/client/config"
	"github.com/dmitrijs2005/loginkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/loginkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/loginkeeper/internal/filex"
	"github.com/pressly/goose/v3"
	backend "github.com/redis/go-redis/v9"

	_ "modernc.org/sqlite"
)

var ErrUnknownStoreKind = errors.New("unknown store kind")

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the repository for cfg.StoreKind and a closer releasing
// whatever it holds (database handle, redis connection pool).
func Open(ctx context.Context, cfg *config.Config) (metadata.Repository, io.Closer, error) {
	switch cfg.StoreKind {
	case config.StoreSQLite:
		if _, err := filex.EnsureParentDir(cfg.StorePath); err != nil {
			return nil, nil, err
		}
		db, err := InitDatabase(ctx, cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return metadata.NewSQLiteRepository(db), db, nil

	case config.StoreFile:
		return metadata.NewFileRepository(cfg.StorePath), nopCloser{}, nil

	case config.StoreRedis:
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		return metadata.NewRedisRepository(client, cfg.RedisPrefix), client, nil

	case config.StoreMemory:
		return metadata.NewMemoryRepository(), nopCloser{}, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStoreKind, cfg.StoreKind)
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite file at dsn and migrates it.
// SQLite serializes writers anyway, so one connection is enough and keeps
// ":memory:" databases from splitting across connections.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return db, nil
}
