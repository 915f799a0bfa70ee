package cli

import (
	"context"

	"campfinder/cmd/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "campfinder",
		Short:         "Campsite finder API and operator tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newRelayCommand(),
		newUserCommand(),
		newReservationCommand(),
		newExportCommand(),
	)
	return root
}

// runOnce starts the core graph, populates targets, runs fn and tears the
// graph down again.
func runOnce(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(targets...),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Stop(context.Background()) }()

	return fn(ctx)
}
