package app

import (
	"context"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/database/seeder"
	"career-compass/internal/infrastructure/cache"
	"career-compass/migrations"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	logger := log.Default()
	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Logger: logger,
	}, nil
}

// Migrate applies pending migrations. The embedded set is used unless
// DB_MIGRATIONS_DIR points somewhere else.
func (c *Container) Migrate(ctx context.Context) error {
	r := migration.Runner{Dir: c.Config.Database.MigrationsDir, FS: migrations.FS, Logger: c.Logger}
	return r.Run(ctx, c.DB.SQLDB())
}

func (c *Container) Seed(ctx context.Context) error {
	r := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}
	return r.Run(ctx, c.DB)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
