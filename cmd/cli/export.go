package cli

import (
	"context"
	"fmt"
	"os"

	"campfinder/internal/infra/export"
	"campfinder/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data for operators",
	}
	cmd.AddCommand(newExportReservationsCommand())
	return cmd
}

func newExportReservationsCommand() *cobra.Command {
	var (
		out        string
		campsiteID string
	)
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "Write reservations to an xlsx workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter *uuid.UUID
			if campsiteID != "" {
				id, err := uuid.Parse(campsiteID)
				if err != nil {
					return fmt.Errorf("invalid campsite id %q: %w", campsiteID, err)
				}
				filter = &id
			}

			var reservations queries.ReservationQueries
			return runOnce(cmd.Context(), func(ctx context.Context) error {
				rows, err := reservations.ListForExport(ctx, filter)
				if err != nil {
					return err
				}

				f, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := export.WriteReservations(f, rows); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d reservations to %s\n", len(rows), out)
				return nil
			}, &reservations)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "reservations.xlsx", "output file")
	cmd.Flags().StringVar(&campsiteID, "campsite", "", "only this campsite")
	return cmd
}
