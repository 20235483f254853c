package model

import (
	"time"

	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

// ScheduleRecord is one milestone of a schedule sheet
type ScheduleRecord struct {
	ID      types.RecordID `json:"id"`
	Row     int            `json:"row"`
	Date    *time.Time     `json:"date,omitempty"`
	Vehicle string         `json:"vehicle"`
	Stage   string         `json:"stage"`
	Note    string         `json:"note,omitempty"`
}

// NextOccurrence returns the ID of the earliest record dated today or later.
// Records without a date are ignored; on equal dates the first record wins.
func NextOccurrence(records []*ScheduleRecord, today time.Time) (types.RecordID, bool) {
	idx := NextOccurrenceIndex(records, today)
	if idx < 0 {
		return "", false
	}
	return records[idx].ID, true
}

// NextOccurrenceIndex is NextOccurrence returning the position of the record
// in records, or -1 when none is upcoming. IDs may repeat within a sheet, the
// position does not.
func NextOccurrenceIndex(records []*ScheduleRecord, today time.Time) int {
	today = DateOf(today)

	next := -1
	var nextDate time.Time
	for i, r := range records {
		if r == nil || r.Date == nil {
			continue
		}
		d := DateOf(*r.Date)
		if d.Before(today) {
			continue
		}
		if next < 0 || d.Before(nextDate) {
			next = i
			nextDate = d
		}
	}
	return next
}

// ScheduleRow is a schedule record decorated for display
type ScheduleRow struct {
	Record   *ScheduleRecord `json:"record"`
	DueLabel string          `json:"due_label"`
	Next     bool            `json:"next"`
}
