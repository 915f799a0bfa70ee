package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"campfinder/cmd/bootstrap"
	"campfinder/cmd/bootstrap/components"
	"campfinder/internal/infra/messaging"
	"campfinder/internal/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newRelayCommand() *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Publish queued reservation events to the message broker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				cfg   config.Config
				relay *messaging.Relay
			)
			app := fx.New(
				bootstrap.CoreModule,
				components.MessagingModule,
				fx.NopLogger,
				fx.Populate(&cfg, &relay),
			)
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}
			defer func() { _ = app.Stop(context.Background()) }()

			if !cfg.AMQP.Enabled() {
				return errors.New("AMQP_URL is not set")
			}
			if once {
				_, err := relay.ProcessBatch(cmd.Context())
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return relay.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "process a single batch and exit")
	return cmd
}
