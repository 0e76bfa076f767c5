package employee

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/balsons/erp-backend-go/internal/pkg/validator"
)

var nonDigit = regexp.MustCompile(`\D`)

// NextECNumber returns "EC" + (highest numeric part among existing + 1),
// zero-padded to three digits. Entries without digits are ignored; no
// uniqueness check is made against non-numeric entries.
func NextECNumber(existing []string) string {
	maxNum, found := 0, false
	for _, ec := range existing {
		digits := nonDigit.ReplaceAllString(ec, "")
		if !validator.IsNumeric(digits) {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			// does not fit an int; cannot take part in allocation
			continue
		}
		if !found || n > maxNum {
			maxNum, found = n, true
		}
	}
	if !found {
		return "EC001"
	}
	return fmt.Sprintf("EC%03d", maxNum+1)
}
