// Package report renders a dashboard as an XLSX workbook.
package report

import (
	"cmp"
	"fmt"
	dashboardModel "jamat/internal/domains/dashboard/model"
	"jamat/internal/domains/dashboard/model/dto"
	"slices"

	"github.com/xuri/excelize/v2"
)

const (
	SheetVisits   = "Visits"
	SheetHosts    = "Hosts"
	SheetVisitors = "Visiting Mosques"
	SheetGroups   = "Visiting Groups"
)

var visitHeader = []any{"ID", "Host", "Visiting Mosque", "Visiting Group", "Start Date", "End Date", "Notes"}

// Entry is one row of a frequency table.
type Entry struct {
	Name  string
	Count int
}

// Sorted orders counts by frequency, most visits first, then by name.
func Sorted(counts dashboardModel.Counts) []Entry {
	entries := make([]Entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, Entry{Name: name, Count: count})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return entries
}

// Workbook writes the visit list and the three frequency tables, one sheet each.
func Workbook(res dto.DashboardResponse) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName(file.GetSheetName(0), SheetVisits); err != nil {
		return nil, fmt.Errorf("failed to name visits sheet: %w", err)
	}

	if err := file.SetSheetRow(SheetVisits, "A1", &visitHeader); err != nil {
		return nil, fmt.Errorf("failed to write visits header: %w", err)
	}

	for i, visit := range res.Visits {
		row := []any{
			visit.ID,
			deref(visit.HostName),
			deref(visit.VisitingMosqueName),
			deref(visit.VisitingGroupName),
			visit.StartDate.String(),
			visit.EndDate.String(),
			visit.Notes,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address visit row: %w", err)
		}

		if err := file.SetSheetRow(SheetVisits, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write visit row: %w", err)
		}
	}

	tables := []struct {
		sheet  string
		label  string
		counts dashboardModel.Counts
	}{
		{SheetHosts, "Host", res.HostCounts},
		{SheetVisitors, "Visiting Mosque", res.VisitingCounts},
		{SheetGroups, "Visiting Group", res.VisitingGroupCounts},
	}

	for _, table := range tables {
		if err := writeCounts(file, table.sheet, table.label, table.counts); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeCounts(file *excelize.File, sheet, label string, counts dashboardModel.Counts) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", sheet, err)
	}

	if err := file.SetSheetRow(sheet, "A1", &[]any{label, "Visits"}); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	for i, entry := range Sorted(counts) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address %s row: %w", sheet, err)
		}

		if err := file.SetSheetRow(sheet, cell, &[]any{entry.Name, entry.Count}); err != nil {
			return fmt.Errorf("failed to write %s row: %w", sheet, err)
		}
	}

	return nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
