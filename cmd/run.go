package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtrainer/internal/app"
	"github.com/abhisek/mathtrainer/internal/problemgen"
	"github.com/abhisek/mathtrainer/internal/session"
	"github.com/abhisek/mathtrainer/internal/training"
)

// runApp opens the store, builds the session controller, and launches the
// TUI. A non-nil start begins a session right away.
func runApp(cmd *cobra.Command, start *training.Configuration) error {
	ctx := cmd.Context()
	v := viperForCmd(cmd)

	cleanup, err := setupLogging(v, true)
	if err != nil {
		return err
	}
	defer cleanup()

	st, err := openStore(v)
	if err != nil {
		return err
	}
	defer st.Close()

	gen := problemgen.New(nil, problemgen.DefaultConfig())
	ctrl := session.NewController(gen, st.ConfigRepo(), session.WithLogger(slog.Default()))

	slog.Info("starting math trainer", "version", version)
	return app.Run(ctx, app.Options{
		Controller: ctrl,
		Start:      start,
	})
}
