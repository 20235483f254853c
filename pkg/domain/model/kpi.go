package model

import (
	"math"
	"time"

	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

// KPISnapshot holds the aggregate counts of one issue collection at one point
// in time. Done, InProgress, NotStarted and Overdue are disjoint and add up
// to Total.
type KPISnapshot struct {
	Taxonomy       types.Taxonomy `json:"taxonomy"`
	Total          int            `json:"total"`
	Done           int            `json:"done"`
	InProgress     int            `json:"in_progress"`
	NotStarted     int            `json:"not_started"`
	Overdue        int            `json:"overdue"`
	CompletionRate float64        `json:"completion_rate"`
}

// ComputeKPI aggregates the records as of today
func ComputeKPI(records []*IssueRecord, normalizer *StatusNormalizer, today time.Time) *KPISnapshot {
	snapshot := &KPISnapshot{
		Taxonomy: normalizer.Taxonomy(),
		Total:    len(records),
	}

	for _, r := range records {
		status := normalizer.Normalize(r.StatusLabel)
		switch {
		case status == types.StatusDone:
			snapshot.Done++
		case r.IsOverdue(status, today):
			snapshot.Overdue++
		case status == types.StatusNotStarted:
			snapshot.NotStarted++
		}
	}
	snapshot.InProgress = snapshot.Total - snapshot.Done - snapshot.Overdue - snapshot.NotStarted
	snapshot.CompletionRate = CompletionRate(snapshot.Done, snapshot.Total)

	return snapshot
}

// CompletionRate returns done/total as a percentage rounded to one decimal
// place, or 0 when total is 0
func CompletionRate(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(done)/float64(total)*1000) / 10
}
