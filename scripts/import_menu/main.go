package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"mini-pos/internal/catalog"
	"mini-pos/internal/config"
	"mini-pos/internal/database"
	"mini-pos/internal/model"
	"mini-pos/internal/repository"

	"github.com/spf13/pflag"
)

// importMenu loads a CSV menu (plain or gzipped) into the menu_items table,
// replacing whatever is there. Connection settings come from DB_* variables
// unless --dsn is given.
func main() {
	path := pflag.StringP("file", "f", "data/menu/menu.csv", "menu CSV to import")
	dsn := pflag.String("dsn", "", "PostgreSQL connection string (overrides DB_* variables)")
	createSchema := pflag.Bool("create-schema", true, "create the menu_items table if missing")
	pflag.Parse()

	if err := run(*path, *dsn, *createSchema); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path, dsn string, createSchema bool) error {
	dbConfig, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := config.NewLogger(config.LoggerConfig{Level: "info", Format: "console"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	menu, err := catalog.NewFileLoader(logger).Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read menu: %w", err)
	}

	if dsn == "" {
		dsn = dbConfig.ConnectionString()
	}
	pool, err := database.NewPoolFromURL(ctx, dsn, dbConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer pool.Close()

	if createSchema {
		if _, err := pool.Exec(ctx, repository.Schema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	var items []model.MenuItem
	for _, category := range menu.Categories() {
		items = append(items, menu.Items(category)...)
	}

	if err := repository.NewMenuRepository(pool, logger).ReplaceMenu(ctx, items); err != nil {
		return fmt.Errorf("failed to import menu: %w", err)
	}

	fmt.Printf("Imported %d items in %d categories from %s\n", len(items), len(menu.Categories()), path)
	if skipped := menu.Skipped(); len(skipped) > 0 {
		fmt.Printf("Skipped %d rows:\n", len(skipped))
		for _, row := range skipped {
			fmt.Printf("  - %v\n", row)
		}
	}

	return nil
}
