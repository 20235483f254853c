package model

import (
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

// Source describes one spreadsheet and the tab rendered from it
type Source struct {
	ID         types.SourceID   `yaml:"id" json:"id"`
	Title      string           `yaml:"title" json:"title"`
	ChartTitle string           `yaml:"chart_title,omitempty" json:"chart_title,omitempty"`
	Kind       types.SourceKind `yaml:"kind" json:"kind"`
	File       string           `yaml:"file" json:"file"`
	Sheet      string           `yaml:"sheet,omitempty" json:"sheet,omitempty"`
	Summary    bool             `yaml:"summary,omitempty" json:"summary"`
}

// Validate validates the source definition
func (s *Source) Validate() error {
	if s.ID == "" {
		return goerr.New("source ID is required")
	}
	if s.ID == SummaryTabID {
		return goerr.New("source ID is reserved", goerr.V("id", s.ID))
	}
	if s.Title == "" {
		return goerr.New("source title is required", goerr.V("id", s.ID))
	}
	if !s.Kind.IsValid() {
		return goerr.New("invalid source kind", goerr.V("id", s.ID), goerr.V("kind", s.Kind))
	}
	if s.File == "" {
		return goerr.New("source file is required", goerr.V("id", s.ID))
	}
	if s.Summary && s.Kind != types.SourceKindIssue {
		return goerr.New("only issue sources can be summarized", goerr.V("id", s.ID))
	}
	return nil
}

// SummaryTabID is the tab showing the KPI summary of all summarized sources
const SummaryTabID types.SourceID = "summary"

// StatusConfig configures status normalization
type StatusConfig struct {
	Taxonomy           types.Taxonomy `yaml:"taxonomy"`
	DoneKeywords       []string       `yaml:"done_keywords,omitempty"`
	InProgressKeywords []string       `yaml:"in_progress_keywords,omitempty"`
}

// DueConfig configures the due-date labels
type DueConfig struct {
	OverduePolicy types.OverduePolicy `yaml:"overdue_policy"`
	Placeholder   string              `yaml:"placeholder"`
}

// DashboardConfig is the full dashboard layout
type DashboardConfig struct {
	Title   string       `yaml:"title"`
	DataDir string       `yaml:"data_dir"`
	Status  StatusConfig `yaml:"status"`
	Due     DueConfig    `yaml:"due"`
	Sources []Source     `yaml:"sources"`
}

// DefaultDashboardConfig returns the layout of the air vent project
// dashboard: two schedules and four issue sheets under ./data
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		Title:   "KMC NQ6 AIR VENT PROJECT",
		DataDir: "data",
		Status: StatusConfig{
			Taxonomy: types.TaxonomyBinary,
		},
		Due: DueConfig{
			OverduePolicy: types.OverdueHideCountdown,
		},
		Sources: []Source{
			{ID: "schedule", Title: "🗓 고객·프로젝트 일정", ChartTitle: "고객 대일정 (월·분기)", Kind: types.SourceKindSchedule, File: "project_schedule.xlsx"},
			{ID: "internal_schedule", Title: "🏢 사내 일정", ChartTitle: "사내 일정 (월·분기)", Kind: types.SourceKindSchedule, File: "internal_schedule.xlsx"},
			{ID: "customer", Title: "📣 고객 이슈", Kind: types.SourceKindIssue, File: "customer_issue.xlsx", Summary: true},
			{ID: "internal", Title: "🏭 사내 이슈", Kind: types.SourceKindIssue, File: "internal_issue.xlsx", Summary: true},
			{ID: "supplier", Title: "🤝 협력사 이슈", Kind: types.SourceKindIssue, File: "supplier_issue.xlsx", Summary: true},
			{ID: "design_review", Title: "🎨 디자인리뷰", Kind: types.SourceKindIssue, File: "design_review.xlsx"},
		},
	}
}

// ApplyDefaults fills zero values with the defaults
func (c *DashboardConfig) ApplyDefaults() {
	def := DefaultDashboardConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.Status.Taxonomy == "" {
		c.Status.Taxonomy = def.Status.Taxonomy
	}
	if c.Due.OverduePolicy == "" {
		c.Due.OverduePolicy = def.Due.OverduePolicy
	}
	if len(c.Sources) == 0 {
		c.Sources = def.Sources
	}
}

// Validate validates the configuration
func (c *DashboardConfig) Validate() error {
	if !c.Status.Taxonomy.IsValid() {
		return goerr.New("invalid status taxonomy", goerr.V("taxonomy", c.Status.Taxonomy))
	}
	if !c.Due.OverduePolicy.IsValid() {
		return goerr.New("invalid overdue policy", goerr.V("policy", c.Due.OverduePolicy))
	}
	if len(c.Sources) == 0 {
		return goerr.New("at least one source is required")
	}

	idMap := make(map[types.SourceID]bool)
	for i, src := range c.Sources {
		if err := src.Validate(); err != nil {
			return goerr.Wrap(err, "invalid source at index",
				goerr.V("index", i),
				goerr.V("id", src.ID))
		}
		if idMap[src.ID] {
			return goerr.New("duplicate source ID",
				goerr.V("id", src.ID))
		}
		idMap[src.ID] = true
	}

	return nil
}

// FindSource finds a source by its ID
func (c *DashboardConfig) FindSource(id types.SourceID) *Source {
	for _, src := range c.Sources {
		if src.ID == id {
			result := src
			return &result
		}
	}
	return nil
}

// SourcesOf returns the sources of one kind in configuration order
func (c *DashboardConfig) SourcesOf(kind types.SourceKind) []Source {
	var result []Source
	for _, src := range c.Sources {
		if src.Kind == kind {
			result = append(result, src)
		}
	}
	return result
}

// SourcePath resolves the file of a source against the data directory
func (c *DashboardConfig) SourcePath(src *Source) string {
	if filepath.IsAbs(src.File) {
		return src.File
	}
	return filepath.Join(c.DataDir, src.File)
}

// Normalizer builds the status normalizer described by the configuration
func (c *DashboardConfig) Normalizer() *StatusNormalizer {
	return NewStatusNormalizer(c.Status.Taxonomy,
		WithDoneKeywords(c.Status.DoneKeywords...),
		WithInProgressKeywords(c.Status.InProgressKeywords...),
	)
}

// Annotator builds the due-date annotator described by the configuration
func (c *DashboardConfig) Annotator() *DueDateAnnotator {
	return NewDueDateAnnotator(c.Normalizer(), c.Due.OverduePolicy, c.Due.Placeholder)
}
