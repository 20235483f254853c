package model

import (
	"fmt"
	"time"

	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

// DueDateAnnotator produces the relative-day label shown next to a target date
type DueDateAnnotator struct {
	normalizer  *StatusNormalizer
	policy      types.OverduePolicy
	placeholder string
}

// NewDueDateAnnotator creates an annotator. The placeholder is returned for
// done records and records without a target date.
func NewDueDateAnnotator(normalizer *StatusNormalizer, policy types.OverduePolicy, placeholder string) *DueDateAnnotator {
	if !policy.IsValid() {
		policy = types.OverdueHideCountdown
	}
	return &DueDateAnnotator{
		normalizer:  normalizer,
		policy:      policy,
		placeholder: placeholder,
	}
}

// Annotate returns "D-n" before the target date, "D-DAY" on it and, after it,
// either nothing or "D+n" depending on the overdue policy
func (a *DueDateAnnotator) Annotate(target *time.Time, statusLabel string, today time.Time) string {
	return a.AnnotateStatus(target, a.normalizer.Normalize(statusLabel), today)
}

// AnnotateStatus is Annotate for an already normalized status
func (a *DueDateAnnotator) AnnotateStatus(target *time.Time, status types.StatusCategory, today time.Time) string {
	if status == types.StatusDone || target == nil {
		return a.placeholder
	}

	diff := DaysBetween(today, *target)
	switch {
	case diff > 0:
		return fmt.Sprintf("D-%d", diff)
	case diff == 0:
		return "D-DAY"
	case a.policy == types.OverdueShowPositive:
		return fmt.Sprintf("D+%d", -diff)
	default:
		return ""
	}
}
