package model

import (
	"time"

	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

// IssueBoard is the rendered state of one issue source
type IssueBoard struct {
	Source Source       `json:"source"`
	KPI    *KPISnapshot `json:"kpi,omitempty"`
	Rows   []IssueRow   `json:"rows"`
	Error  string       `json:"error,omitempty"`
}

// ScheduleBoard is the rendered state of one schedule source
type ScheduleBoard struct {
	Source   Source         `json:"source"`
	Rows     []ScheduleRow  `json:"rows"`
	NextID   types.RecordID `json:"next_id,omitempty"`
	Timeline *Timeline      `json:"timeline,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// Dashboard is one full render pass over every configured source
type Dashboard struct {
	Title     string           `json:"title"`
	Today     time.Time        `json:"today"`
	Schedules []*ScheduleBoard `json:"schedules"`
	Issues    []*IssueBoard    `json:"issues"`
}

// Summaries returns the issue boards shown on the summary tab
func (d *Dashboard) Summaries() []*IssueBoard {
	var result []*IssueBoard
	for _, b := range d.Issues {
		if b.Source.Summary {
			result = append(result, b)
		}
	}
	return result
}

// Tab is one entry of the dashboard navigation
type Tab struct {
	ID    types.SourceID `json:"id"`
	Title string         `json:"title"`
}

// Tabs returns the navigation: schedules, the summary tab, then issue sources
func (d *Dashboard) Tabs() []Tab {
	tabs := make([]Tab, 0, len(d.Schedules)+len(d.Issues)+1)
	for _, b := range d.Schedules {
		tabs = append(tabs, Tab{ID: b.Source.ID, Title: b.Source.Title})
	}
	tabs = append(tabs, Tab{ID: SummaryTabID, Title: "📊 대시보드"})
	for _, b := range d.Issues {
		tabs = append(tabs, Tab{ID: b.Source.ID, Title: b.Source.Title})
	}
	return tabs
}
