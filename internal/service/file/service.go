package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/pkg/spreadsheet"
	"github.com/balsons/erp-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

// ImportSheet is one parsed upload: its header and one header->cell map per row.
type ImportSheet struct {
	Header  []string
	Records []map[string]string

	format string
	data   []byte
}

type FileService interface {
	// ReadImport parses a CSV/XLSX/XLS upload without touching storage
	ReadImport(ctx context.Context, filename string, content io.Reader) (ImportSheet, error)
	// Archive stores the original bytes of sheet and returns the stored path,
	// or "" when archiving is disabled
	Archive(ctx context.Context, sheet ImportSheet) (string, error)
}

type fileServiceImpl struct {
	storage       storage.FileStorage
	archiveImport bool
}

func NewFileService(storage storage.FileStorage, archiveImport bool) FileService {
	return &fileServiceImpl{
		storage:       storage,
		archiveImport: archiveImport,
	}
}

var contentTypes = map[string]string{
	"csv":  "text/csv",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xls":  "application/vnd.ms-excel",
}

// ReadImport implements FileService
func (s *fileServiceImpl) ReadImport(ctx context.Context, filename string, content io.Reader) (ImportSheet, error) {
	format := spreadsheet.Format(filename)
	if _, ok := contentTypes[format]; !ok {
		return ImportSheet{}, employee.ErrUnsupportedFormat
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return ImportSheet{}, fmt.Errorf("failed to read upload: %w", err)
	}

	rows, err := spreadsheet.ReadRows(bytes.NewReader(data), filename)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrUnsupportedFormat) {
			return ImportSheet{}, employee.ErrUnsupportedFormat
		}
		return ImportSheet{}, fmt.Errorf("failed to parse %s: %w", format, err)
	}

	header, records := spreadsheet.Records(rows)
	if len(header) == 0 {
		return ImportSheet{}, employee.ErrNoImportRows
	}

	for _, rec := range records {
		normalizeDates(rec, format != "csv")
	}

	return ImportSheet{
		Header:  nonEmpty(header),
		Records: records,
		format:  format,
		data:    data,
	}, nil
}

// Archive implements FileService
func (s *fileServiceImpl) Archive(ctx context.Context, sheet ImportSheet) (string, error) {
	if !s.archiveImport {
		return "", nil
	}
	contentType, ok := contentTypes[sheet.format]
	if !ok {
		return "", employee.ErrUnsupportedFormat
	}

	path := filepath.Join("imports", time.Now().Format("2006-01-02"), uuid.New().String()+"."+sheet.format)
	archived, err := s.storage.Upload(ctx, bytes.NewReader(sheet.data), path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to archive import: %w", err)
	}
	return archived, nil
}

// normalizeDates rewrites recognised date cells to the stored layout. Excel
// serials are only trusted from workbooks; anything unrecognised stays raw.
func normalizeDates(rec map[string]string, serials bool) {
	for _, col := range employee.Schema {
		if col.Kind != employee.KindDate {
			continue
		}
		raw, ok := rec[col.Name]
		if !ok {
			continue
		}
		parse := spreadsheet.ParseDate
		if serials {
			parse = spreadsheet.ParseWorkbookDate
		}
		if t, ok := parse(raw); ok {
			rec[col.Name] = t.Format(employee.DateLayout)
		}
	}
}

func nonEmpty(header []string) []string {
	out := make([]string, 0, len(header))
	for _, h := range header {
		if strings.TrimSpace(h) != "" {
			out = append(out, h)
		}
	}
	return out
}
