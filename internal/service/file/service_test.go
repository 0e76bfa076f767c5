package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestFileService(t *testing.T, archive bool) (FileService, storage.FileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	return NewFileService(st, archive), st, dir
}

func TestFileService_ReadImport_CSV(t *testing.T) {
	svc, _, dir := newTestFileService(t, true)

	sheet, err := svc.ReadImport(context.Background(), "upload.csv", strings.NewReader("EC Number,Surname,\nEC005,RAO,\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"EC Number", "Surname"}, sheet.Header)
	require.Len(t, sheet.Records, 1)
	assert.Equal(t, "EC005", sheet.Records[0]["EC Number"])

	// reading never writes to storage
	_, err = os.Stat(filepath.Join(dir, "imports"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileService_Archive(t *testing.T) {
	svc, st, _ := newTestFileService(t, true)
	ctx := context.Background()

	sheet, err := svc.ReadImport(ctx, "upload.csv", strings.NewReader("EC Number\nEC001\n"))
	require.NoError(t, err)

	path, err := svc.Archive(ctx, sheet)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "imports"))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	rc, err := st.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(rc)
	require.NoError(t, err)
	assert.Equal(t, "EC Number\nEC001\n", buf.String())
}

func TestFileService_Archive_Disabled(t *testing.T) {
	svc, _, dir := newTestFileService(t, false)
	ctx := context.Background()

	sheet, err := svc.ReadImport(ctx, "upload.csv", strings.NewReader("EC Number\nEC001\n"))
	require.NoError(t, err)

	path, err := svc.Archive(ctx, sheet)
	require.NoError(t, err)
	assert.Empty(t, path)
	_, err = os.Stat(filepath.Join(dir, "imports"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileService_ReadImport_CSVDates(t *testing.T) {
	svc, _, _ := newTestFileService(t, false)

	body := "EC Number,Date of Birth,Date of Joining,Grade\n" +
		"EC001,12345,15/03/1990,12345\n" +
		"EC002,someday,,A1\n"
	sheet, err := svc.ReadImport(context.Background(), "upload.csv", strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, sheet.Records, 2)

	// bare numbers in a CSV are not Excel serials
	assert.Equal(t, "12345", sheet.Records[0][employee.ColDOB])
	assert.Equal(t, "1990-03-15", sheet.Records[0][employee.ColJoiningDate])
	assert.Equal(t, "12345", sheet.Records[0]["Grade"])
	assert.Equal(t, "someday", sheet.Records[1][employee.ColDOB])
	assert.Equal(t, "", sheet.Records[1][employee.ColJoiningDate])
}

func TestFileService_ReadImport_XLSXSerialDates(t *testing.T) {
	svc, _, _ := newTestFileService(t, false)

	f := excelize.NewFile()
	name := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(name, "A1", &[]interface{}{"EC Number", "Date of Birth", "Basic Salary"}))
	require.NoError(t, f.SetSheetRow(name, "A2", &[]interface{}{"EC010", 32947, 12000}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	sheet, err := svc.ReadImport(context.Background(), "upload.xlsx", &buf)
	require.NoError(t, err)
	require.Len(t, sheet.Records, 1)
	assert.Equal(t, "1990-03-15", sheet.Records[0][employee.ColDOB])
	assert.Equal(t, "12000", sheet.Records[0][employee.ColBasicSalary])
}

func TestFileService_ReadImport_Errors(t *testing.T) {
	svc, _, _ := newTestFileService(t, false)
	ctx := context.Background()

	_, err := svc.ReadImport(ctx, "upload.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, employee.ErrUnsupportedFormat)

	_, err = svc.ReadImport(ctx, "empty.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, employee.ErrNoImportRows)
}
