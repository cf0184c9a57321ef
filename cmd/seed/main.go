package main

import (
	"context"
	"os"

	"cpu-catalog-be/internal/config"
	"cpu-catalog-be/internal/repository/unitofwork"
	"cpu-catalog-be/internal/seed"
	"cpu-catalog-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	db, err := database.NewGormDB(database.GormConfig{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: cfg.Database.LogLevel,
	})
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	color.Cyan("Seeding CPU catalog...")
	res, err := seed.Catalog(ctx, uow)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}

	if res.Skipped {
		color.Yellow("Sockets already present, skipping.")
		return
	}
	color.Green("Created %d sockets and %d CPUs.", res.Sockets, res.Cpus)
}
