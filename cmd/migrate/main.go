package main

import (
	"fmt"
	"os"

	"cpu-catalog-be/internal/config"
	"cpu-catalog-be/internal/model"
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

	models := model.Models()
	color.Cyan("Running AutoMigrate for %d tables (%s)...", len(models), cfg.Database.Driver)

	for _, m := range models {
		if err := database.AutoMigrate(db, m); err != nil {
			color.Red("  ✗ %v", err)
			os.Exit(1)
		}
		color.Green("  ✓ %s", tableName(m))
	}

	color.Green("Migration complete.")
}

func tableName(m interface{}) string {
	if t, ok := m.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return fmt.Sprintf("%T", m)
}
