package cli

import (
	"fmt"
	"io"
	"jamat/infras/s3"
	"jamat/internal/domains/dashboard/model/dto"
	visitDto "jamat/internal/domains/visit/model/dto"
	"jamat/internal/report"
	"jamat/shared/constant"
	"jamat/shared/validator"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (r *root) newDashboardCmd() *cobra.Command {
	var (
		req    visitDto.VisitQueryRequest
		export string
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print visits in a window with counts per host and visitor",
		Long: `Print every visit whose start date falls in the window, bounds included.
The window defaults to the reporting epoch through today.

Examples:
  jamatctl dashboard --start 2025-01-01 --end 2025-06-30
  jamatctl dashboard --host 3 --format json
  jamatctl dashboard --export s3://reports/2025.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.runDashboard(cmd, req, export)
		},
	}

	cmd.Flags().StringVar(&req.StartDate, "start", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.EndDate, "end", "", "window end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.HostFilter, "host", constant.FilterAll, "host mosque id or all")
	cmd.Flags().StringVar(&req.VisitingFilter, "visiting", constant.FilterAll, "visiting mosque id or all")
	cmd.Flags().StringVar(&req.SortDir, "sort", "ASC", "order by start date (ASC|DESC)")
	cmd.Flags().StringVar(&export, "export", "", "also write an XLSX workbook to a local path or s3://bucket/key")

	return cmd
}

func (r *root) runDashboard(cmd *cobra.Command, req visitDto.VisitQueryRequest, export string) error {
	if err := validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	app := r.application()

	query, err := app.Dashboard.Window(req)
	if err != nil {
		return err //nolint:wrapcheck
	}

	res, err := app.Dashboard.Dashboard(cmd.Context(), query)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if export != "" {
		if err := exportWorkbook(cmd, app.Storage, export, res); err != nil {
			return err
		}
	}

	if r.isJSON() {
		return printJSON(cmd.OutOrStdout(), res)
	}

	return printDashboard(cmd.OutOrStdout(), res)
}

func exportWorkbook(cmd *cobra.Command, storage s3.S3, location string, res dto.DashboardResponse) error {
	data, err := report.Workbook(res)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if bucket, key, ok := s3.ParseURI(location); ok {
		if err := storage.PutObject(cmd.Context(), bucket, key, constant.ContentTypeXLSX, data); err != nil {
			return fmt.Errorf("failed to upload %s: %w", location, err)
		}
	} else if err := os.WriteFile(location, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", location, err)
	}

	_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Exported dashboard to %s\n", location)

	return err //nolint:wrapcheck
}

func printDashboard(out io.Writer, res dto.DashboardResponse) error {
	filters := res.Filters

	if _, err := fmt.Fprintf(out, "Visits %s..%s (host: %s, visiting: %s): %d\n\n",
		filters.StartDate, filters.EndDate, filters.HostFilter, filters.VisitingFilter, res.Total); err != nil {
		return fmt.Errorf("writing dashboard header: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tHOST\tVISITOR\tSTART\tEND\tNOTES"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, visit := range res.Visits {
		visitor := visit.VisitingMosqueName
		if visit.VisitingGroupID != nil {
			visitor = visit.VisitingGroupName
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			visit.ID, orDash(visit.HostName), orDash(visitor), visit.StartDate, visit.EndDate, visit.Notes); err != nil {
			return fmt.Errorf("writing visit row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing visits: %w", err)
	}

	if err := printCounts(out, "By host", res.HostCounts); err != nil {
		return err
	}

	if err := printCounts(out, "By visiting mosque", res.VisitingCounts); err != nil {
		return err
	}

	return printCounts(out, "By visiting group", res.VisitingGroupCounts)
}
