package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/config"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/database"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/migration"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

var configFile string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migration",
		Long:  `Bring the database schema up to date with the current model definitions.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file (optional, environment variables apply on top)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migration.Run(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("database migration completed")
	return nil
}
