// Package seed turns CSV or XLSX reference data into mosque and group import rows.
package seed

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"jamat/infras/s3"
	groupDto "jamat/internal/domains/group/model/dto"
	mosqueDto "jamat/internal/domains/mosque/model/dto"
	"os"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

var (
	ErrEmptyFile     = errors.New("seed file has no header row")
	ErrMissingHeader = errors.New("seed file is missing a required column")
	ErrNoStorage     = errors.New("object storage is not configured")
)

const (
	columnName    = "name"
	columnAddress = "address"
	columnPhone   = "phone"
	columnEmail   = "email"
	columnNotes   = "notes"
	columnType    = "type"
)

// Record is one data row keyed by its normalised header.
type Record map[string]string

// Read loads a seed file from disk or from an s3://bucket/key object.
func Read(ctx context.Context, storage s3.S3, location string) ([]byte, error) {
	if bucket, key, ok := s3.ParseURI(location); ok {
		if storage == nil {
			return nil, ErrNoStorage
		}

		data, err := storage.GetObject(ctx, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}

	return data, nil
}

// Records parses the content by the location's extension. Anything that is not .xlsx is read as CSV.
func Records(location string, data []byte) ([]Record, error) {
	var (
		rows [][]string
		err  error
	)

	if strings.EqualFold(path.Ext(location), ".xlsx") {
		rows, err = workbookRows(data)
	} else {
		rows, err = csvRows(data)
	}

	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	header := make([]string, len(rows[0]))
	for i, column := range rows[0] {
		header[i] = normalizeHeader(column)
	}

	records := make([]Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := Record{}
		blank := true

		for i, column := range header {
			value := cellValue(row, i)
			if value != "" {
				blank = false
			}

			record[column] = value
		}

		if blank {
			continue
		}

		records = append(records, record)
	}

	log.Debug().Str("location", location).Int("records", len(records)).Msg("parsed seed file")

	return records, nil
}

// Mosques maps records with name,address,phone,email,notes columns.
func Mosques(records []Record) ([]mosqueDto.ImportMosque, error) {
	if err := requireColumns(records, columnName); err != nil {
		return nil, err
	}

	rows := make([]mosqueDto.ImportMosque, len(records))
	for i, record := range records {
		rows[i] = mosqueDto.ImportMosque{
			Name:    record[columnName],
			Address: record[columnAddress],
			Phone:   record[columnPhone],
			Email:   record[columnEmail],
			Notes:   record[columnNotes],
		}
	}

	return rows, nil
}

// Groups maps records with type,name columns.
func Groups(records []Record) ([]groupDto.ImportGroup, error) {
	if err := requireColumns(records, columnName); err != nil {
		return nil, err
	}

	rows := make([]groupDto.ImportGroup, len(records))
	for i, record := range records {
		rows[i] = groupDto.ImportGroup{
			Type: record[columnType],
			Name: record[columnName],
		}
	}

	return rows, nil
}

func requireColumns(records []Record, columns ...string) error {
	if len(records) == 0 {
		return nil
	}

	for _, column := range columns {
		if _, ok := records[0][column]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingHeader, column)
		}
	}

	return nil
}

func csvRows(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func workbookRows(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptyFile
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	return rows, nil
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
