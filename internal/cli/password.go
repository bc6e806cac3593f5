package cli

import (
	"bufio"
	"fmt"
	"jamat/shared/password"
	"strings"

	"github.com/spf13/cobra"
)

// newHashPasswordCmd prints a bcrypt hash suitable for the administrator password setting.
// The password is read from stdin so it stays out of shell history.
func (r *root) newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Hash the administrator password read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("reading password: %w", err)
			}

			hash, err := password.Hash(strings.TrimRight(line, "\r\n"))
			if err != nil {
				return err //nolint:wrapcheck
			}

			if r.isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]string{"hash": hash})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

			return err //nolint:wrapcheck
		},
	}
}
