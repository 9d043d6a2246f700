package main

import (
	"fmt"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				names, err := database.MigrationNames()
				if err != nil {
					return err
				}
				for _, name := range names {
					cmd.Println(name)
				}
				return nil
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			log := logger.NewLoggerWithService(cfg.Observability, nil)
			if err := database.Migrate(cmd.Context(), &log, cfg); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print the embedded migrations without applying them")
	return cmd
}
