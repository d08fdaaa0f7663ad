package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoboard/internal/boardserver"
	"github.com/thenoetrevino/todoboard/internal/logging"
)

// ServeCmd returns the serve subcommand
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local board server",
		Long: `Run a board server backed by a YAML fixture.

Without --fixture a demo account is served (username "demo", password "demo").

Examples:
  # Demo board on the default address
  todoboard serve

  # Your own fixture, with tokens that survive restarts
  todoboard serve --fixture board.yaml --secret "$(cat secret.txt)"
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "127.0.0.1:8080", "Address to listen on")
	cmd.Flags().String("fixture", "", "YAML file with users and their boards")
	cmd.Flags().String("secret", "", "Token signing secret (random when empty)")
	cmd.Flags().Duration("token-ttl", boardserver.DefaultTokenTTL, "How long issued tokens stay valid")
	cmd.Flags().Bool("verbose", false, "Log every request")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	fixturePath, _ := cmd.Flags().GetString("fixture")
	secret, _ := cmd.Flags().GetString("secret")
	ttl, _ := cmd.Flags().GetDuration("token-ttl")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	var fixture *boardserver.Fixture
	if fixturePath != "" {
		f, err := boardserver.LoadFixture(fixturePath)
		if err != nil {
			return err
		}
		fixture = f
	}

	opts := []boardserver.Option{
		boardserver.WithLogger(logger),
		boardserver.WithTokenTTL(ttl),
	}
	if secret != "" {
		opts = append(opts, boardserver.WithSecret([]byte(secret)))
	} else {
		logger.Warn("no --secret given, tokens will not survive a restart")
	}

	server, err := boardserver.New(fixture, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	err = server.Run(cmd.Context(), addr)
	logger.Info("board server exited", "uptime", time.Since(start).Round(time.Second))
	return err
}
