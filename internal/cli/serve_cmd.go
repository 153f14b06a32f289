package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr, prefix string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP admin and suggestion gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.HTTPAddr
			}
			if prefix == "" {
				prefix = app.Config.HTTPPrefix
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			srv := server.New(server.Config{Addr: addr, Prefix: prefix}, app.Admin, app.Engine, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "URL prefix (default from config)")

	return cmd
}
