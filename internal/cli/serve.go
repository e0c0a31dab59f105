package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/smallnest/studymap/server"
)

func (a *app) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if a.cfg.Server.Tracing {
				shutdown, err := server.SetupTracing(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer func() {
					if err := shutdown(context.Background()); err != nil {
						a.logger.Warn("flush traces: %v", err)
					}
				}()
			}

			gen, release, err := a.generator(ctx)
			if err != nil {
				return err
			}
			defer release()

			srv := server.New(gen, a.finder(ctx),
				server.WithLogger(a.logger),
				server.WithAllowedOrigins(a.cfg.Server.AllowedOrigins...),
				server.WithRateLimit(a.cfg.Server.RateLimit),
				server.WithTracing(a.cfg.Server.Tracing),
			)
			return srv.ListenAndServe(ctx, a.cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config and PORT)")
	return cmd
}
