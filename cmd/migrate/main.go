package main

import (
	"context"
	"fmt"
	"os"

	"github.com/despensapp/despensa-api/internal/infrastructure/postgres"
	"github.com/despensapp/despensa-api/pkg/config"
	"github.com/despensapp/despensa-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "migración: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	log.Info().Msg("aplicando migraciones...")

	if err := postgres.Migrate(pool); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}

	log.Info().Msg("migraciones aplicadas")
	return nil
}
