package model

import (
	"time"

	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

// IssueRecord is one row of an issue tracking sheet
type IssueRecord struct {
	ID             types.RecordID `json:"id"`
	Row            int            `json:"row"`
	Activity       string         `json:"activity"`
	OccurredAt     *time.Time     `json:"occurred_at,omitempty"`
	TargetDate     *time.Time     `json:"target_date,omitempty"`
	StatusLabel    string         `json:"status_label"`
	Vehicle        string         `json:"vehicle"`
	IssuingDept    string         `json:"issuing_dept"`
	RespondingDept string         `json:"responding_dept"`
	Problem        string         `json:"problem"`
	Improvement    string         `json:"improvement"`
}

// IsOverdue reports whether a record with the given normalized status is
// past its target date
func (r *IssueRecord) IsOverdue(status types.StatusCategory, today time.Time) bool {
	if status == types.StatusDone || r.TargetDate == nil {
		return false
	}
	return DateOf(*r.TargetDate).Before(DateOf(today))
}

// IssueRow is an issue record decorated for display
type IssueRow struct {
	Record        *IssueRecord         `json:"record"`
	Status        types.StatusCategory `json:"status"`
	Overdue       bool                 `json:"overdue"`
	DisplayStatus string               `json:"display_status"`
	DueLabel      string               `json:"due_label"`
}

// DisplayStatus returns the status text with its traffic light marker
func DisplayStatus(status types.StatusCategory, overdue bool) string {
	switch {
	case status == types.StatusDone:
		return status.Label() + " 🟢"
	case overdue:
		return status.Label() + " 🔴"
	case status == types.StatusNotStarted:
		return status.Label() + " ⚪"
	default:
		return status.Label() + " 🟡"
	}
}
