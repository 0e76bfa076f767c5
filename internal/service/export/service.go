package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/pkg/spreadsheet"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

var contentTypes = map[string]string{
	FormatCSV:  "text/csv",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatPDF:  "application/pdf",
}

// ContentType returns the MIME type for format, or "" when it is not exportable.
func ContentType(format string) string {
	return contentTypes[strings.ToLower(format)]
}

type ExportService interface {
	// Export renders the current table in format and writes it to w
	Export(ctx context.Context, format string, w io.Writer) error
}

type exportServiceImpl struct {
	employeeService employee.EmployeeService
}

func NewExportService(employeeService employee.EmployeeService) ExportService {
	return &exportServiceImpl{employeeService: employeeService}
}

// Export implements ExportService
func (s *exportServiceImpl) Export(ctx context.Context, format string, w io.Writer) error {
	format = strings.ToLower(format)
	if ContentType(format) == "" {
		return employee.ErrUnsupportedExport
	}

	t, err := s.employeeService.LoadTable(ctx)
	if err != nil {
		return err
	}

	switch format {
	case FormatCSV:
		err = WriteCSV(w, t)
	case FormatXLSX:
		err = WriteXLSX(w, t)
	case FormatPDF:
		err = WritePDF(w, t)
	}
	if err != nil {
		return fmt.Errorf("failed to export employee master as %s: %w", format, err)
	}

	slog.Info("Employee master exported", "format", format, "rows", len(t.Records))
	return nil
}

func rows(t employee.Table) [][]string {
	out := make([][]string, len(t.Records))
	for i, e := range t.Records {
		out[i] = e.Cells(t.Columns)
	}
	return out
}

// WriteCSV writes the table exactly as the flat-file store would persist it.
func WriteCSV(w io.Writer, t employee.Table) error {
	return spreadsheet.WriteCSV(w, t.Columns, rows(t))
}

const sheetName = "Employee Master"

// WriteXLSX writes the table to a single worksheet. Decimal schema cells are
// written as numbers so the sheet can be summed directly.
func WriteXLSX(w io.Writer, t employee.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, e := range t.Records {
		row := make([]interface{}, len(t.Columns))
		for j, c := range t.Columns {
			row[j] = xlsxValue(e, c)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	if len(t.Columns) > 0 {
		if err := f.SetPanes(sheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func xlsxValue(e employee.Employee, column string) interface{} {
	d, ok := e.Decimal(column)
	if !ok {
		return e.Cell(column)
	}
	f, _ := d.Float64()
	return f
}

var pdfColumns = []struct {
	name  string
	width float64
}{
	{employee.ColECNumber, 22},
	{employee.ColEmployeeCode, 28},
	{employee.ColFullName, 70},
	{employee.ColJoiningDate, 26},
	{employee.ColStatus, 26},
	{employee.ColBasicSalary, 32},
	{employee.ColGrandTotal, 36},
}

// WritePDF renders a landscape roster with the Grand Total sum on the last line.
func WritePDF(w io.Writer, t employee.Table) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(sheetName, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, sheetName)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 8, c.name, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	total := decimal.Zero
	for _, e := range t.Records {
		for _, c := range pdfColumns {
			align := "L"
			if c.name == employee.ColBasicSalary || c.name == employee.ColGrandTotal {
				align = "R"
			}
			pdf.CellFormat(c.width, 7, e.Cell(c.name), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		if _, unparsed := e.Extra[employee.ColGrandTotal]; !unparsed {
			total = total.Add(e.GrandTotal)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Employees: %d    Total Grand Total: %s", len(t.Records), total.StringFixed(2)))

	return pdf.Output(w)
}
