package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

// Dashboard runs render passes. Every call re-reads the sources and
// recomputes all KPIs; nothing is cached between calls.
type Dashboard struct {
	loader     interfaces.SourceLoader
	config     *model.DashboardConfig
	normalizer *model.StatusNormalizer
	annotator  *model.DueDateAnnotator
	// Schedule rows have no status and never show an overdue countdown
	scheduleAnnotator *model.DueDateAnnotator
	clock             func() time.Time
}

var _ interfaces.Dashboard = (*Dashboard)(nil)

// DashboardOption is a functional option for configuring Dashboard
type DashboardOption func(*Dashboard)

// WithClock overrides the clock used to determine today
func WithClock(clock func() time.Time) DashboardOption {
	return func(d *Dashboard) {
		d.clock = clock
	}
}

// NewDashboard creates a new Dashboard use case
func NewDashboard(loader interfaces.SourceLoader, config *model.DashboardConfig, opts ...DashboardOption) *Dashboard {
	normalizer := config.Normalizer()
	d := &Dashboard{
		loader:            loader,
		config:            config,
		normalizer:        normalizer,
		annotator:         config.Annotator(),
		scheduleAnnotator: model.NewDueDateAnnotator(normalizer, types.OverdueHideCountdown, ""),
		clock:             time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the dashboard layout
func (d *Dashboard) Config() *model.DashboardConfig {
	return d.config
}

func (d *Dashboard) today() time.Time {
	return model.DateOf(d.clock())
}

// Build loads every source and computes all boards
func (d *Dashboard) Build(ctx context.Context) (*model.Dashboard, error) {
	today := d.today()
	result := &model.Dashboard{
		Title: d.config.Title,
		Today: today,
	}

	for _, src := range d.config.Sources {
		switch src.Kind {
		case types.SourceKindSchedule:
			result.Schedules = append(result.Schedules, d.buildScheduleBoard(ctx, src, today))
		case types.SourceKindIssue:
			result.Issues = append(result.Issues, d.buildIssueBoard(ctx, src, today))
		}
	}

	ctxlog.From(ctx).Debug("Dashboard built",
		"today", today.Format("2006-01-02"),
		"schedules", len(result.Schedules),
		"issues", len(result.Issues),
	)

	return result, nil
}

// IssueBoard loads and computes a single issue source
func (d *Dashboard) IssueBoard(ctx context.Context, id types.SourceID) (*model.IssueBoard, error) {
	src, err := d.findSource(id, types.SourceKindIssue)
	if err != nil {
		return nil, err
	}
	return d.buildIssueBoard(ctx, *src, d.today()), nil
}

// ScheduleBoard loads and computes a single schedule source
func (d *Dashboard) ScheduleBoard(ctx context.Context, id types.SourceID) (*model.ScheduleBoard, error) {
	src, err := d.findSource(id, types.SourceKindSchedule)
	if err != nil {
		return nil, err
	}
	return d.buildScheduleBoard(ctx, *src, d.today()), nil
}

// Summary computes the boards shown on the summary tab
func (d *Dashboard) Summary(ctx context.Context) ([]*model.IssueBoard, error) {
	today := d.today()
	var boards []*model.IssueBoard
	for _, src := range d.config.SourcesOf(types.SourceKindIssue) {
		if !src.Summary {
			continue
		}
		boards = append(boards, d.buildIssueBoard(ctx, src, today))
	}
	return boards, nil
}

func (d *Dashboard) findSource(id types.SourceID, kind types.SourceKind) (*model.Source, error) {
	src := d.config.FindSource(id)
	if src == nil || src.Kind != kind {
		return nil, goerr.Wrap(model.ErrSourceNotFound, "no such source",
			goerr.V("id", id),
			goerr.V("kind", kind))
	}
	return src, nil
}

// buildIssueBoard never fails: a source that cannot be read yields a board
// carrying the error so that the other boards still render
func (d *Dashboard) buildIssueBoard(ctx context.Context, src model.Source, today time.Time) *model.IssueBoard {
	board := &model.IssueBoard{Source: src}

	records, err := d.loader.LoadIssues(ctx, d.config.SourcePath(&src), src.Sheet)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to load issue source",
			"error", err,
			"source", src.ID,
			"file", src.File,
		)
		board.Error = err.Error()
		return board
	}

	board.KPI = model.ComputeKPI(records, d.normalizer, today)
	board.Rows = make([]model.IssueRow, 0, len(records))
	for _, r := range records {
		status := d.normalizer.Normalize(r.StatusLabel)
		overdue := r.IsOverdue(status, today)
		board.Rows = append(board.Rows, model.IssueRow{
			Record:        r,
			Status:        status,
			Overdue:       overdue,
			DisplayStatus: model.DisplayStatus(status, overdue),
			DueLabel:      d.annotator.AnnotateStatus(r.TargetDate, status, today),
		})
	}

	return board
}

func (d *Dashboard) buildScheduleBoard(ctx context.Context, src model.Source, today time.Time) *model.ScheduleBoard {
	board := &model.ScheduleBoard{Source: src}

	records, err := d.loader.LoadSchedules(ctx, d.config.SourcePath(&src), src.Sheet)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to load schedule source",
			"error", err,
			"source", src.ID,
			"file", src.File,
		)
		board.Error = err.Error()
		return board
	}

	nextIdx := model.NextOccurrenceIndex(records, today)
	if nextIdx >= 0 {
		board.NextID = records[nextIdx].ID
	}

	board.Rows = make([]model.ScheduleRow, 0, len(records))
	for i, r := range records {
		board.Rows = append(board.Rows, model.ScheduleRow{
			Record:   r,
			DueLabel: d.scheduleAnnotator.AnnotateStatus(r.Date, types.StatusInProgress, today),
			Next:     i == nextIdx,
		})
	}
	board.Timeline = model.BuildTimeline(records, today)

	return board
}
