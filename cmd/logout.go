package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoboard/internal/app"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/logging"
)

// LogoutCmd returns the logout subcommand
func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE:  runLogout,
	}
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dir, err := dataDir(cmd)
	if err != nil {
		return err
	}

	container, err := app.New(ctx, config.Default(),
		app.WithDataDir(dir),
		app.WithLogger(logging.Discard()))
	if err != nil {
		return err
	}
	defer func() { _ = container.Close() }()

	if err := container.Store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
	return nil
}
