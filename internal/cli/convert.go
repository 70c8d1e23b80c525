package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/multi-converter/internal/controller"
	"github.com/ytget/multi-converter/internal/model"
)

// ErrConversionFailed is returned when the conversion showed an error message
var ErrConversionFailed = errors.New("conversion failed")

func convertCmd(ac *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <category> <value> <from> <to>",
		Short: "Convert one value",
		Long: "Convert one value through the service.\n\n" +
			"Categories: length, weight, temperature, volume, currency, number-base.",
		Example: "  multi-converter convert length 1 meter foot\n" +
			"  multi-converter convert number-base ff hexadecimal binary",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}

			h := controller.NewHandler(category)
			port := newConsolePort(cmd.OutOrStdout(), map[string]string{
				h.InputID: args[1],
				h.FromID:  args[2],
				h.ToID:    args[3],
			})

			ctrl := controller.New(ac.backend, port,
				controller.WithClock(controller.DiscardClock{}),
				controller.WithLogger(ac.logger))

			msg, err := ctrl.Submit(cmd.Context(), category)
			if err != nil {
				return err
			}
			if msg.IsError() {
				return ErrConversionFailed
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Result: %s\n", port.Value(h.ResultID))
			return nil
		},
	}
}
