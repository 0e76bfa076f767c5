package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Employee domain errors
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUnsupportedFormat):
		BadRequest(w, employee.ErrUnsupportedFormat.Error(), nil)
	case errors.Is(err, employee.ErrUnsupportedExport):
		BadRequest(w, employee.ErrUnsupportedExport.Error(), nil)
	case errors.Is(err, employee.ErrNoImportRows):
		BadRequest(w, "Import file contains no rows", nil)
	case errors.Is(err, employee.ErrPersistenceFailure):
		slog.Error("Employee master not persisted", "error", err)
		InternalServerError(w, "Failed to save employee master")
	case errors.Is(err, employee.ErrCorruptTable):
		slog.Error("Employee master unreadable", "error", err)
		InternalServerError(w, "Employee master file is unreadable")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
