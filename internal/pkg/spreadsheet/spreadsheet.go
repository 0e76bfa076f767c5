package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const maxXLSRows = 100000

var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Format is the lowercase extension without the dot: csv, xlsx or xls.
func Format(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

// ReadRows reads every row of the first sheet (or the CSV body) as strings.
func ReadRows(reader io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	switch Format(filename) {
	case "csv":
		return readCSV(data)
	case "xlsx":
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("no worksheet found")
		}
		// raw values keep date cells as serials, which ParseWorkbookDate understands
		return file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	case "xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, err
		}
		if workbook.NumSheets() == 0 {
			return nil, fmt.Errorf("no worksheet found")
		}
		return workbook.ReadAllCells(maxXLSRows), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

// Records splits rows into the header and one header->cell map per data row.
// Short rows yield empty cells; completely blank rows are dropped. Repeated
// header names get a ".1", ".2" suffix and a blank header over data becomes
// "Unnamed: <index>", so no cell shares a key with another.
func Records(rows [][]string) ([]string, []map[string]string) {
	if len(rows) == 0 {
		return nil, nil
	}
	header := uniqueHeader(rows)

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			rec[name] = cellValue(row, i)
		}
		records = append(records, rec)
	}
	return header, records
}

func uniqueHeader(rows [][]string) []string {
	header := make([]string, len(rows[0]))
	taken := make(map[string]struct{}, len(header))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
		if header[i] != "" {
			taken[header[i]] = struct{}{}
		}
	}

	seen := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			if !columnHasData(rows[1:], i) {
				continue
			}
			name = fmt.Sprintf("Unnamed: %d", i)
			for n := 1; ; n++ {
				if _, dup := taken[name]; !dup {
					break
				}
				name = fmt.Sprintf("Unnamed: %d.%d", i, n)
			}
			header[i] = name
			taken[name] = struct{}{}
			continue
		}

		seen[name]++
		if seen[name] == 1 {
			continue
		}
		for n := seen[name] - 1; ; n++ {
			candidate := fmt.Sprintf("%s.%d", name, n)
			if _, dup := taken[candidate]; !dup {
				header[i] = candidate
				taken[candidate] = struct{}{}
				seen[name] = n + 1
				break
			}
		}
	}
	return header
}

func columnHasData(rows [][]string, idx int) bool {
	for _, row := range rows {
		if strings.TrimSpace(cellValue(row, idx)) != "" {
			return true
		}
	}
	return false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteCSV writes header and rows as CSV.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
