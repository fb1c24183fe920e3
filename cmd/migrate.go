package cmd

import (
	"context"

	"catalog/infrastructure/persistence/gormstore"
	apperrors "catalog/pkg/errors"

	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema (development only)",
		RunE: runWithApp(opts, func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			if app.DB() == nil {
				return apperrors.InvalidArgument("migrate requires a database driver, got memory")
			}
			if err := gormstore.AutoMigrate(app.DB()); err != nil {
				return err
			}
			writeJSON(cmd.OutOrStdout(), map[string]string{"status": "migrated"})
			return nil
		}),
	}
}
