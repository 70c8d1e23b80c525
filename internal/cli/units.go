package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/multi-converter/internal/model"
)

func unitsCmd(ac *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "units [category]",
		Short: "List the units offered for each category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := model.Categories()
			if len(args) == 1 {
				c, err := model.ParseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []model.Category{c}
			}

			catalog, err := ac.backend.Units(cmd.Context())
			if err != nil {
				return err
			}

			for _, c := range categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c, strings.Join(catalog.Units(c), ", "))
			}
			return nil
		},
	}
}
