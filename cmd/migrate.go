package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "todo-list-api.com/todo-list-api/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log, err := config.NewLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := config.NewDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN, log)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get sql db: %w", err)
		}
		defer sqlDB.Close()

		if err := config.Migrate(db); err != nil {
			return err
		}

		log.Info("schema migrated", zap.String("driver", cfg.DatabaseDriver))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
