package employee

import (
	"io"
	"strings"
	"time"

	"github.com/balsons/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	MinDOB         = time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	MinJoiningDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
)

func statusValues() []string {
	out := make([]string, len(Statuses))
	for i, s := range Statuses {
		out[i] = string(s)
	}
	return out
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// validateDate appends an error when value is set but malformed or outside [min, today].
func validateDate(errs *validator.ValidationErrors, field, value string, min time.Time) {
	if validator.IsEmpty(value) {
		return
	}
	date, ok := validator.IsValidDate(value)
	if !ok {
		*errs = append(*errs, validator.ValidationError{Field: field, Message: field + " must be in YYYY-MM-DD format"})
		return
	}
	if !validator.IsDateWithin(date, min, today()) {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be between " + min.Format(DateLayout) + " and today",
		})
	}
}

func parseOptionalDate(value string) *time.Time {
	if validator.IsEmpty(value) {
		return nil
	}
	t, ok := validator.IsValidDate(value)
	if !ok {
		return nil
	}
	return &t
}

// ========== CREATE ==========

type CreateEmployeeRequest struct {
	EmployeeCode  string          `json:"employee_code"`
	Surname       string          `json:"surname"`
	FirstName     string          `json:"first_name"`
	MiddleName    string          `json:"middle_name"`
	DOB           string          `json:"dob"`
	Email         string          `json:"email"`
	JoiningDate   string          `json:"joining_date"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	IFSCCode      string          `json:"ifsc_code"`
	PFNumber      string          `json:"pf_number"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Status        string          `json:"employee_status"`
}

// Normalize applies the entry-form conventions: codes and names are trimmed and
// uppercased, email is trimmed, an empty status means Active.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeCode = upper(r.EmployeeCode)
	r.Surname = upper(r.Surname)
	r.FirstName = upper(r.FirstName)
	r.MiddleName = upper(r.MiddleName)
	r.Email = strings.TrimSpace(r.Email)
	r.DOB = strings.TrimSpace(r.DOB)
	r.JoiningDate = strings.TrimSpace(r.JoiningDate)
	if validator.IsEmpty(r.Status) {
		r.Status = string(StatusActive)
	}
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "basic_salary must be non-negative"})
	}
	validateDate(&errs, "dob", r.DOB, MinDOB)
	validateDate(&errs, "joining_date", r.JoiningDate, MinJoiningDate)
	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, statusValues()) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_status",
			Message: "employee_status must be one of " + strings.Join(statusValues(), ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEmployee builds the record without EC Number and salary components.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	e := Employee{
		EmployeeCode:  r.EmployeeCode,
		Email:         r.Email,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		IFSCCode:      r.IFSCCode,
		PFNumber:      r.PFNumber,
		DOB:           parseOptionalDate(r.DOB),
		JoiningDate:   parseOptionalDate(r.JoiningDate),
		Status:        EmployeeStatus(r.Status),
	}
	e.SetNames(r.Surname, r.FirstName, r.MiddleName)
	return e
}

// ========== UPDATE ==========

// UpdateEmployeeRequest carries the editable fields; nil keeps the current value.
type UpdateEmployeeRequest struct {
	ECNumber    string           `json:"-"`
	Surname     *string          `json:"surname,omitempty"`
	FirstName   *string          `json:"first_name,omitempty"`
	MiddleName  *string          `json:"middle_name,omitempty"`
	DOB         *string          `json:"dob,omitempty"`
	JoiningDate *string          `json:"joining_date,omitempty"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
	Status      *string          `json:"employee_status,omitempty"`
}

func (r *UpdateEmployeeRequest) Normalize() {
	r.ECNumber = strings.TrimSpace(r.ECNumber)
	for _, p := range []*string{r.Surname, r.FirstName, r.MiddleName} {
		if p != nil {
			*p = upper(*p)
		}
	}
	for _, p := range []*string{r.DOB, r.JoiningDate, r.Status} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ECNumber) {
		errs = append(errs, validator.ValidationError{Field: "ec_number", Message: "ec_number is required"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "basic_salary must be non-negative"})
	}
	if r.DOB != nil {
		validateDate(&errs, "dob", *r.DOB, MinDOB)
	}
	if r.JoiningDate != nil {
		validateDate(&errs, "joining_date", *r.JoiningDate, MinJoiningDate)
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, statusValues()) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_status",
			Message: "employee_status must be one of " + strings.Join(statusValues(), ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyTo overwrites the editable fields of e. Unset fields keep their value;
// salary components are rederived by the caller from the resulting Basic Salary.
func (r *UpdateEmployeeRequest) ApplyTo(e *Employee) {
	surname, firstName, middleName := e.Surname, e.FirstName, e.MiddleName
	if r.Surname != nil {
		surname = *r.Surname
	}
	if r.FirstName != nil {
		firstName = *r.FirstName
	}
	if r.MiddleName != nil {
		middleName = *r.MiddleName
	}
	e.SetNames(surname, firstName, middleName)

	if r.DOB != nil {
		e.SetDOB(parseOptionalDate(*r.DOB))
	}
	if r.JoiningDate != nil {
		e.SetJoiningDate(parseOptionalDate(*r.JoiningDate))
	}
	if r.Status != nil {
		e.SetStatus(EmployeeStatus(*r.Status))
	}
}

// ========== LIST ==========

type EmployeeFilter struct {
	Status *string
	Search *string
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, statusValues()) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_status",
			Message: "employee_status must be one of " + strings.Join(statusValues(), ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Matches reports whether e passes the filter.
func (f EmployeeFilter) Matches(e Employee) bool {
	if f.Status != nil && string(e.Status) != *f.Status {
		return false
	}
	if f.Search != nil {
		q := strings.ToUpper(strings.TrimSpace(*f.Search))
		if q == "" {
			return true
		}
		for _, v := range []string{e.Cell(ColECNumber), e.Cell(ColEmployeeCode), e.Cell(ColFullName)} {
			if strings.Contains(strings.ToUpper(v), q) {
				return true
			}
		}
		return false
	}
	return true
}

// ========== IMPORT ==========

type ImportFile struct {
	Filename string
	Content  io.Reader
}

type ImportEmployeesRequest struct {
	Files []ImportFile
}

func (r *ImportEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Files) == 0 {
		errs = append(errs, validator.ValidationError{Field: "file", Message: "at least one file is required"})
	}
	for _, f := range r.Files {
		ext := strings.ToLower(f.Filename[strings.LastIndex(f.Filename, ".")+1:])
		if !validator.IsInSlice(ext, []string{"csv", "xlsx", "xls"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type for " + f.Filename + ": only csv, xlsx, xls allowed",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportEmployeesResponse struct {
	Received int      `json:"received"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped_duplicates"`
	Total    int      `json:"total"`
	Archived []string `json:"archived,omitempty"`
}

// ========== RESPONSES ==========

type EmployeeResponse struct {
	EmployeeCode  string            `json:"employee_code"`
	ECNumber      string            `json:"ec_number"`
	Surname       string            `json:"surname"`
	FirstName     string            `json:"first_name"`
	MiddleName    string            `json:"middle_name"`
	FullName      string            `json:"full_name"`
	DOB           string            `json:"dob,omitempty"`
	Email         string            `json:"email"`
	JoiningDate   string            `json:"joining_date,omitempty"`
	BankName      string            `json:"bank_name"`
	AccountNumber string            `json:"account_number"`
	IFSCCode      string            `json:"ifsc_code"`
	PFNumber      string            `json:"pf_number"`
	BasicSalary   decimal.Decimal   `json:"basic_salary"`
	DA            decimal.Decimal   `json:"da"`
	TA            decimal.Decimal   `json:"ta"`
	OA            decimal.Decimal   `json:"oa"`
	LTA           decimal.Decimal   `json:"lta"`
	HRA           decimal.Decimal   `json:"hra"`
	PF            decimal.Decimal   `json:"pf"`
	ESCI          decimal.Decimal   `json:"esci"`
	GrandTotal    decimal.Decimal   `json:"grand_total"`
	Status        string            `json:"employee_status"`
	Extra         map[string]string `json:"extra,omitempty"`
}

type ListEmployeeResponse struct {
	Columns   []string           `json:"columns"`
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeCode:  e.EmployeeCode,
		ECNumber:      e.ECNumber,
		Surname:       e.Surname,
		FirstName:     e.FirstName,
		MiddleName:    e.MiddleName,
		FullName:      e.FullName,
		DOB:           formatDate(e.DOB),
		Email:         e.Email,
		JoiningDate:   formatDate(e.JoiningDate),
		BankName:      e.BankName,
		AccountNumber: e.AccountNumber,
		IFSCCode:      e.IFSCCode,
		PFNumber:      e.PFNumber,
		BasicSalary:   e.BasicSalary,
		DA:            e.DA,
		TA:            e.TA,
		OA:            e.OA,
		LTA:           e.LTA,
		HRA:           e.HRA,
		PF:            e.PF,
		ESCI:          e.ESCI,
		GrandTotal:    e.GrandTotal,
		Status:        string(e.Status),
		Extra:         e.Extra,
	}
}
