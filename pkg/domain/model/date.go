package model

import "time"

// DateOf truncates t to its calendar day. The result is midnight UTC of the
// same year, month and day so that dates read from spreadsheets and the
// local "today" compare on calendar days only.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current local calendar date
func Today() time.Time {
	return DateOf(time.Now())
}

// DaysBetween returns the number of whole days from `from` to `to`
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

// FormatDate formats a nullable date for table display (yy.mm.dd)
func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("06.01.02")
}

// DatePtr returns a pointer to the calendar day of t
func DatePtr(t time.Time) *time.Time {
	d := DateOf(t)
	return &d
}
