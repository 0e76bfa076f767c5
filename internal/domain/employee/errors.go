package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrPersistenceFailure = errors.New("failed to persist employee master")
	ErrCorruptTable       = errors.New("employee master file is unreadable")
	ErrNoImportRows       = errors.New("import file contains no rows")
	ErrUnsupportedFormat  = errors.New("unsupported file format: only csv, xlsx, xls allowed")
)

var ErrUnsupportedExport = errors.New("unsupported export format: only csv, xlsx, pdf allowed")
