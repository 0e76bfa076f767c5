package employee

import (
	"strings"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
)

// Normalize makes sure the Employee Status column exists and every row carries
// a status, defaulting to Active. Applying it twice changes nothing.
func Normalize(t employee.Table) employee.Table {
	out := t.Clone()
	out.EnsureColumns(employee.ColStatus)
	for i := range out.Records {
		if strings.TrimSpace(out.Records[i].Cell(employee.ColStatus)) == "" {
			out.Records[i].SetStatus(employee.StatusActive)
		}
	}
	return out
}
