package cli

import (
	"context"
	"fmt"

	"campfinder/cmd/bootstrap"
	"campfinder/internal/infra/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var pool *pgxpool.Pool
			app := fx.New(
				bootstrap.ConfigModule,
				bootstrap.LoggerModule,
				bootstrap.DBModule,
				fx.NopLogger,
				fx.Populate(&pool),
			)
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}
			defer func() { _ = app.Stop(context.Background()) }()

			applied, err := migrate.Up(cmd.Context(), pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			}
			for _, v := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "applied", v)
			}
			return nil
		},
	}
}
