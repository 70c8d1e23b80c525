package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/multi-converter/internal/controller"
)

// ErrUnhealthy is returned when the service answers with a non-healthy status
var ErrUnhealthy = errors.New("service is not healthy")

func healthCmd(ac *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the service health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := controller.CheckHealth(cmd.Context(), ac.backend, ac.logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", status.Status)
			if status.Message != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Message: %s\n", status.Message)
			}

			if !status.IsHealthy() {
				return fmt.Errorf("%w: %s", ErrUnhealthy, status.Status)
			}
			return nil
		},
	}
}
