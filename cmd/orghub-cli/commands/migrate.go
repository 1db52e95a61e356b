package commands

import (
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/orghub/database"
	"github.com/l3montree-dev/orghub/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Run the database migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := shared.DatabaseFactory()
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}

			if err := database.RunMigrationsWithDB(db); err != nil {
				return fmt.Errorf("could not run migrations: %w", err)
			}

			slog.Info("database migrations applied")
			return nil
		},
	}

	return &migrate
}
