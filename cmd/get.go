package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func newGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <kind> <id>",
		Short: "Show one aggregate by id",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(opts, func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			k, err := parseKind(args[0])
			if err != nil {
				return err
			}

			var out any
			switch k {
			case kindCategory:
				out, err = app.Categories.Get(ctx, args[1])
			case kindCastMember:
				out, err = app.CastMembers.Get(ctx, args[1])
			case kindGenre:
				out, err = app.Genres.Get(ctx, args[1])
			case kindVideo:
				out, err = app.Videos.Get(ctx, args[1])
			}
			if err != nil {
				return err
			}
			writeJSON(cmd.OutOrStdout(), out)
			return nil
		}),
	}
}

func newDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <kind> <id>",
		Short: "Delete one aggregate by id",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(opts, func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			k, err := parseKind(args[0])
			if err != nil {
				return err
			}

			switch k {
			case kindCategory:
				err = app.Categories.Delete(ctx, args[1])
			case kindCastMember:
				err = app.CastMembers.Delete(ctx, args[1])
			case kindGenre:
				err = app.Genres.Delete(ctx, args[1])
			case kindVideo:
				err = app.Videos.Delete(ctx, args[1])
			}
			if err != nil {
				return err
			}
			writeJSON(cmd.OutOrStdout(), map[string]string{"deleted": args[1]})
			return nil
		}),
	}
}
