package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"jamat/internal/domains/dashboard/model"
	"jamat/internal/report"
	"text/tabwriter"
)

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(v) //nolint:wrapcheck
}

func printCounts(out io.Writer, title string, counts model.Counts) error {
	if _, err := fmt.Fprintf(out, "\n%s\n", title); err != nil {
		return fmt.Errorf("writing %s: %w", title, err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	for _, entry := range report.Sorted(counts) {
		if _, err := fmt.Fprintf(w, "  %s\t%d\n", entry.Name, entry.Count); err != nil {
			return fmt.Errorf("writing %s: %w", title, err)
		}
	}

	return w.Flush() //nolint:wrapcheck
}

func orDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}

	return *value
}
