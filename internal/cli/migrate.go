package cli

import (
	"fmt"
	"jamat/helper"

	"github.com/spf13/cobra"
)

func (r *root) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|drop|step-up>",
		Short:     "Apply or roll back schema migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{helper.ActionUp, helper.ActionDown, helper.ActionDrop, helper.ActionStepUp},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := helper.Runner(r.application().Config, args[0]); err != nil {
				return err //nolint:wrapcheck
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", args[0])

			return err //nolint:wrapcheck
		},
	}
}
