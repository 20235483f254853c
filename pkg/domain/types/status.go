package types

// StatusCategory is the canonical bucket a free-text status label maps into
type StatusCategory string

const (
	StatusDone       StatusCategory = "done"
	StatusInProgress StatusCategory = "in-progress"
	StatusNotStarted StatusCategory = "not-started"
)

// String returns the string representation of the category
func (s StatusCategory) String() string {
	return string(s)
}

// IsValid checks if the category is one of the closed set
func (s StatusCategory) IsValid() bool {
	switch s {
	case StatusDone, StatusInProgress, StatusNotStarted:
		return true
	default:
		return false
	}
}

// Label returns the display label used in the source spreadsheets
func (s StatusCategory) Label() string {
	switch s {
	case StatusDone:
		return "완료"
	case StatusInProgress:
		return "진행중"
	case StatusNotStarted:
		return "미진행"
	default:
		return string(s)
	}
}

// Taxonomy selects which categories a deployment distinguishes
type Taxonomy string

const (
	// TaxonomyBinary distinguishes done and in-progress only
	TaxonomyBinary Taxonomy = "binary"
	// TaxonomyTernary adds not-started
	TaxonomyTernary Taxonomy = "ternary"
)

// IsValid checks if the taxonomy is known
func (t Taxonomy) IsValid() bool {
	switch t {
	case TaxonomyBinary, TaxonomyTernary:
		return true
	default:
		return false
	}
}

// Categories returns the closed set of categories of the taxonomy
func (t Taxonomy) Categories() []StatusCategory {
	if t == TaxonomyTernary {
		return []StatusCategory{StatusDone, StatusInProgress, StatusNotStarted}
	}
	return []StatusCategory{StatusDone, StatusInProgress}
}

// Contains reports whether the category belongs to the taxonomy
func (t Taxonomy) Contains(s StatusCategory) bool {
	for _, c := range t.Categories() {
		if c == s {
			return true
		}
	}
	return false
}

// Fallback returns the category used when no keyword matches
func (t Taxonomy) Fallback() StatusCategory {
	if t == TaxonomyTernary {
		return StatusNotStarted
	}
	return StatusInProgress
}

// OverduePolicy decides how a countdown is shown once the target date has passed
type OverduePolicy string

const (
	// OverdueHideCountdown shows nothing for overdue records
	OverdueHideCountdown OverduePolicy = "hide_overdue_countdown"
	// OverdueShowPositive shows "D+n" with the number of days overdue
	OverdueShowPositive OverduePolicy = "show_overdue_as_positive"
)

// IsValid checks if the policy is known
func (p OverduePolicy) IsValid() bool {
	switch p {
	case OverdueHideCountdown, OverdueShowPositive:
		return true
	default:
		return false
	}
}
