package commands

import (
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/fixflow/database"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := shared.DatabaseFactory()
			if err != nil {
				return fmt.Errorf("could not connect to the database: %w", err)
			}
			if err := database.RunMigrationsWithDB(db); err != nil {
				return err
			}
			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				return err
			}
			slog.Info("database migrated", "version", version, "dirty", dirty)
			return nil
		},
	}
}
