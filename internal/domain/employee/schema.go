package employee

// Column names of the employee master table.
const (
	ColEmployeeCode  = "Employee Code"
	ColECNumber      = "EC Number"
	ColSurname       = "Surname"
	ColFirstName     = "First Name"
	ColMiddleName    = "Middle Name"
	ColFullName      = "Name of Employee"
	ColDOB           = "Date of Birth"
	ColEmail         = "Email ID"
	ColJoiningDate   = "Joining Date"
	ColBankName      = "Bank Name"
	ColAccountNumber = "Account Number"
	ColIFSCCode      = "IFSC Code"
	ColPFNumber      = "PF Number (UAN)"
	ColBasicSalary   = "Basic Salary"
	ColDA            = "DA"
	ColTA            = "TA"
	ColOA            = "OA"
	ColLTA           = "LTA"
	ColHRA           = "HRA"
	ColPF            = "PF"
	ColESCI          = "ESCI"
	ColGrandTotal    = "Grand Total"
	ColStatus        = "Employee Status"
)

type ColumnKind string

const (
	KindString  ColumnKind = "string"
	KindDate    ColumnKind = "date"
	KindDecimal ColumnKind = "decimal"
	KindStatus  ColumnKind = "status"
)

type Column struct {
	Name    string
	Kind    ColumnKind
	Default string
}

// Schema is the fixed, ordered column set of the persisted table.
var Schema = []Column{
	{Name: ColEmployeeCode, Kind: KindString},
	{Name: ColECNumber, Kind: KindString},
	{Name: ColSurname, Kind: KindString},
	{Name: ColFirstName, Kind: KindString},
	{Name: ColMiddleName, Kind: KindString},
	{Name: ColFullName, Kind: KindString},
	{Name: ColDOB, Kind: KindDate},
	{Name: ColEmail, Kind: KindString},
	{Name: ColJoiningDate, Kind: KindDate},
	{Name: ColBankName, Kind: KindString},
	{Name: ColAccountNumber, Kind: KindString},
	{Name: ColIFSCCode, Kind: KindString},
	{Name: ColPFNumber, Kind: KindString},
	{Name: ColBasicSalary, Kind: KindDecimal},
	{Name: ColDA, Kind: KindDecimal},
	{Name: ColTA, Kind: KindDecimal},
	{Name: ColOA, Kind: KindDecimal},
	{Name: ColLTA, Kind: KindDecimal},
	{Name: ColHRA, Kind: KindDecimal},
	{Name: ColPF, Kind: KindDecimal},
	{Name: ColESCI, Kind: KindDecimal},
	{Name: ColGrandTotal, Kind: KindDecimal},
	{Name: ColStatus, Kind: KindStatus, Default: string(StatusActive)},
}

// SalaryColumns are recomputed whenever Basic Salary changes.
var SalaryColumns = []string{
	ColBasicSalary, ColDA, ColTA, ColOA, ColLTA, ColHRA, ColPF, ColESCI, ColGrandTotal,
}

// ColumnNames returns the schema column names in order.
func ColumnNames() []string {
	names := make([]string, len(Schema))
	for i, c := range Schema {
		names[i] = c.Name
	}
	return names
}

// LookupColumn returns the schema definition for name.
func LookupColumn(name string) (Column, bool) {
	for _, c := range Schema {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
