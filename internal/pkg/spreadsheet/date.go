package spreadsheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
}

// ParseWorkbookDate is ParseDate plus Excel numeric serials, for cells read
// from XLSX/XLS where a date column holds the raw serial.
func ParseWorkbookDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial >= 10000 && serial <= 80000 {
			if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return dateOnlyUTC(parsed), true
			}
		}
		return time.Time{}, false
	}
	return ParseDate(value)
}

// ParseDate accepts ISO dates and common day-first layouts. Bare numbers are
// never dates here.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return dateOnlyUTC(parsed), true
		}
	}
	return time.Time{}, false
}

func dateOnlyUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
