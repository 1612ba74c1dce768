package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/careercoach-server/database"
	"github.com/dtroode/careercoach-server/internal/config"
	"github.com/dtroode/careercoach-server/internal/repository/sqlite"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			switch cfg.Database.Driver {
			case "sqlite":
				db, err := sqlite.Open(cmd.Context(), cfg.Database.DSN)
				if err != nil {
					return err
				}
				_ = db.Close()
			default:
				if err := database.Migrate(cmd.Context(), cfg.Database.DSN); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", cfg.Database.Driver)
			return nil
		},
	}
}
