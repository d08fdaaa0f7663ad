package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "todoboard",
	Short: "todoboard - your task board in the terminal",
	Long: `todoboard signs you in to a board server and shows your task board.

The session token is kept in ~/.todoboard/session.db so the next start
goes straight to the board. Use "todoboard logout" to forget it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.Flags().String("server", "", "Board server URL (overrides config and TODOBOARD_SERVER)")
	rootCmd.Flags().Bool("ephemeral", false, "Keep the session in memory only")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the session database and logs (default ~/.todoboard)")

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(LogoutCmd())
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runTUI(cmd *cobra.Command, args []string) error {
	server, _ := cmd.Flags().GetString("server")
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")
	dir, _ := cmd.Flags().GetString("data-dir")

	return launcher.Launch(cmd.Context(), launcher.Options{
		Server:    server,
		DataDir:   dir,
		Ephemeral: ephemeral,
	})
}

// dataDir resolves --data-dir, falling back to the configured data directory
func dataDir(cmd *cobra.Command) (string, error) {
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		return dir, nil
	}
	return config.DataDir()
}
