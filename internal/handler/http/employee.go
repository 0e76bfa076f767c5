package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/handler/http/response"
	"github.com/balsons/erp-backend-go/internal/service/export"
	"github.com/go-chi/chi/v5"
)

// maxImportSize bounds the multipart body of an import request.
const maxImportSize = 32 << 20

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	ImportEmployees(w http.ResponseWriter, r *http.Request)
	ExportEmployees(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	exportService   export.ExportService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, exportService export.ExportService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		exportService:   exportService,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var filter employee.EmployeeFilter
	query := r.URL.Query()

	if status := query.Get("employee_status"); status != "" {
		filter.Status = &status
	}
	if search := query.Get("search"); search != "" {
		filter.Search = &search
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Employees, &response.Meta{
		TotalItems: result.Total,
		Columns:    result.Columns,
	})
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	ecNumber := chi.URLParam(r, "ecNumber")
	if ecNumber == "" {
		response.BadRequest(w, "EC Number is required", nil)
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), ecNumber)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("Employee %s added", result.ECNumber), result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ECNumber = chi.URLParam(r, "ecNumber")

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Employee %s updated", result.ECNumber), result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ecNumber := chi.URLParam(r, "ecNumber")
	if ecNumber == "" {
		response.BadRequest(w, "EC Number is required", nil)
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), ecNumber); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Employee %s deleted", ecNumber), nil)
}

// ImportEmployees implements EmployeeHandler. Every "file" part is imported.
func (h *employeeHandlerImpl) ImportEmployees(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	var req employee.ImportEmployeesRequest
	for _, fh := range r.MultipartForm.File["file"] {
		f, err := fh.Open()
		if err != nil {
			response.BadRequest(w, "Failed to read uploaded file", nil)
			return
		}
		defer f.Close()
		req.Files = append(req.Files, employee.ImportFile{Filename: fh.Filename, Content: f})
	}

	result, err := h.employeeService.ImportEmployees(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("%d employees imported", result.Imported), result)
}

// ExportEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatCSV
	}

	var buf bytes.Buffer
	if err := h.exportService.Export(r.Context(), format, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="employee_master_data.%s"`, format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
