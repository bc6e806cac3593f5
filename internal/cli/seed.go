package cli

import (
	"fmt"
	"jamat/internal/seed"

	"github.com/spf13/cobra"
)

func (r *root) newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed <mosques|groups>",
		Short: "Bulk load reference data",
		Long: `Bulk load mosques or external groups from a CSV or XLSX file.
Rows are inserted in one transaction: a single invalid row loads nothing.

Columns:
  mosques  name,address,phone,email,notes
  groups   type,name

Examples:
  jamatctl seed mosques --file wa_mosques.csv
  jamatctl seed groups --file s3://reference/external_jamat.xlsx`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"mosques", "groups"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runSeed(cmd, args[0], file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "local path or s3://bucket/key")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (r *root) runSeed(cmd *cobra.Command, kind, file string) error {
	app := r.application()
	ctx := actorContext(cmd.Context())

	data, err := seed.Read(ctx, app.Storage, file)
	if err != nil {
		return err //nolint:wrapcheck
	}

	records, err := seed.Records(file, data)
	if err != nil {
		return err //nolint:wrapcheck
	}

	var count int

	switch kind {
	case "mosques":
		rows, err := seed.Mosques(records)
		if err != nil {
			return err //nolint:wrapcheck
		}

		count, err = app.Mosques.Import(ctx, rows)
		if err != nil {
			return err //nolint:wrapcheck
		}
	case "groups":
		rows, err := seed.Groups(records)
		if err != nil {
			return err //nolint:wrapcheck
		}

		count, err = app.Groups.Import(ctx, rows)
		if err != nil {
			return err //nolint:wrapcheck
		}
	default:
		return fmt.Errorf("unknown seed target %q, use mosques or groups", kind)
	}

	if r.isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]any{"target": kind, "inserted": count})
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d %s from %s\n", count, kind, file)

	return err //nolint:wrapcheck
}
