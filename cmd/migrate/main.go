package main

import (
	"context"
	"flag"
	"log"
	"time"

	"career-compass/internal/app"
	"career-compass/internal/config"
)

func main() {
	seed := flag.Bool("seed", false, "run seeders after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := c.Migrate(ctx); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Printf("migrations applied")

	if !*seed && !cfg.Database.RunSeeders {
		return
	}
	if err := c.Seed(ctx); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seeders applied")
}
