package sheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006.1.2",
	"2006-1-2",
	"06.01.02",
	"06-01-02",
	"06/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006년 1월 2일",
	"2006-01",
	"2006.01",
	"2006",
}

// ParseDate converts a raw numeric or untyped cell into a calendar date.
// Numbers are Excel serials in the 1900 or 1904 date system of the workbook;
// anything else goes through ParseDateText. Empty cells yield nil.
func ParseDate(raw string, date1904 bool) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial < 1 {
			return nil
		}
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return nil
		}
		return model.DatePtr(t)
	}

	return ParseDateText(raw)
}

// ParseDateText parses a text cell in one of the common layouts. Digits
// alone are a year, never a serial. Unknown text yields nil.
func ParseDateText(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return model.DatePtr(t)
		}
	}
	return nil
}
