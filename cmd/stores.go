package main

import (
	"context"
	"fmt"

	"github.com/dtroode/careercoach-server/internal/config"
	"github.com/dtroode/careercoach-server/internal/model"
	"github.com/dtroode/careercoach-server/internal/repository/postgres"
	"github.com/dtroode/careercoach-server/internal/repository/sqlite"
	"github.com/dtroode/careercoach-server/internal/storage/memory"
	"github.com/dtroode/careercoach-server/internal/storage/redis"
)

func openUserStore(ctx context.Context, cfg *config.Config) (model.UserStore, func(), error) {
	switch cfg.Database.Driver {
	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewUserRepository(db), func() { _ = db.Close() }, nil
	case "postgres":
		conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewUserRepository(conn), func() { _ = conn.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func openStateStore(ctx context.Context, cfg *config.Config) (model.StateStore, func(), error) {
	switch cfg.OAuth.StateDriver {
	case "redis":
		client, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return redis.NewStateStore(client), func() { _ = client.Close() }, nil
	case "memory":
		return memory.NewStateStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported oauth state driver %q", cfg.OAuth.StateDriver)
	}
}
