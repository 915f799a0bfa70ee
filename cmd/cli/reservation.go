package cli

import (
	"context"
	"fmt"

	"campfinder/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newReservationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservation",
		Short: "Operate on reservations",
	}
	cmd.AddCommand(newConfirmCommand())
	return cmd
}

func newConfirmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <reservation-id>",
		Short: "Confirm a pending reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid reservation id %q: %w", args[0], err)
			}

			var reservations commands.ReservationCommands
			return runOnce(cmd.Context(), func(ctx context.Context) error {
				view, err := reservations.ConfirmReservation(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reservation %s is %s (%s to %s)\n",
					view.ID, view.Status, view.StartDate.Format("2006-01-02"), view.EndDate.Format("2006-01-02"))
				return nil
			}, &reservations)
		},
	}
}
