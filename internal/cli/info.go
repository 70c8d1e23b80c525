package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/multi-converter/internal/ui"
)

func infoCmd(ac *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the service description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := ac.backend.Info(cmd.Context())
			if err != nil {
				return err
			}

			l := ui.NewLocalization()
			l.SetLanguage(ac.opts.Language)
			fmt.Fprintln(cmd.OutOrStdout(), ui.AboutText(info, l))
			return nil
		},
	}
}
