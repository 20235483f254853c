package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

func TestNextOccurrence(t *testing.T) {
	today := *date(2024, 2, 1)

	t.Run("nearest future record", func(t *testing.T) {
		records := []*model.ScheduleRecord{
			{ID: "past", Date: date(2024, 1, 1)},
			{ID: "april", Date: date(2024, 4, 1)},
			{ID: "march", Date: date(2024, 3, 1)},
		}
		id, ok := model.NextOccurrence(records, today)
		gt.True(t, ok)
		gt.Equal(t, types.RecordID("march"), id)
	})

	t.Run("today counts as upcoming", func(t *testing.T) {
		records := []*model.ScheduleRecord{
			{ID: "march", Date: date(2024, 3, 1)},
			{ID: "today", Date: date(2024, 2, 1)},
		}
		id, ok := model.NextOccurrence(records, today)
		gt.True(t, ok)
		gt.Equal(t, types.RecordID("today"), id)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		late := time.Date(2024, 2, 1, 23, 0, 0, 0, time.UTC)
		records := []*model.ScheduleRecord{{ID: "x", Date: &late}}
		id, ok := model.NextOccurrence(records, time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))
		gt.True(t, ok)
		gt.Equal(t, types.RecordID("x"), id)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		records := []*model.ScheduleRecord{
			{ID: "first", Date: date(2024, 3, 1)},
			{ID: "second", Date: date(2024, 3, 1)},
		}
		id, _ := model.NextOccurrence(records, today)
		gt.Equal(t, types.RecordID("first"), id)
	})

	t.Run("no upcoming record", func(t *testing.T) {
		records := []*model.ScheduleRecord{
			{ID: "past", Date: date(2024, 1, 1)},
			{ID: "undated"},
		}
		id, ok := model.NextOccurrence(records, today)
		gt.False(t, ok)
		gt.Equal(t, types.RecordID(""), id)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := model.NextOccurrence(nil, today)
		gt.False(t, ok)
	})
}

func TestNextOccurrenceIndex(t *testing.T) {
	today := *date(2024, 3, 10)

	t.Run("repeated IDs resolve by position", func(t *testing.T) {
		records := []*model.ScheduleRecord{
			{ID: "1", Date: date(2024, 1, 5)},
			{ID: "2", Date: date(2024, 4, 1)},
			{ID: "1", Date: date(2024, 3, 12)},
		}
		gt.Equal(t, 2, model.NextOccurrenceIndex(records, today))

		id, ok := model.NextOccurrence(records, today)
		gt.True(t, ok)
		gt.Equal(t, types.RecordID("1"), id)
	})

	t.Run("nil records are skipped", func(t *testing.T) {
		records := []*model.ScheduleRecord{nil, {ID: "a", Date: date(2024, 3, 10)}}
		gt.Equal(t, 1, model.NextOccurrenceIndex(records, today))
	})

	t.Run("none", func(t *testing.T) {
		records := []*model.ScheduleRecord{{ID: "past", Date: date(2024, 3, 9)}}
		gt.Equal(t, -1, model.NextOccurrenceIndex(records, today))
	})
}

func TestDateHelpers(t *testing.T) {
	gt.Equal(t, 9, model.DaysBetween(*date(2024, 3, 1), *date(2024, 3, 10)))
	gt.Equal(t, -9, model.DaysBetween(*date(2024, 3, 10), *date(2024, 3, 1)))
	gt.Equal(t, "24.03.10", model.FormatDate(date(2024, 3, 10)))
	gt.Equal(t, "", model.FormatDate(nil))

	local := time.Date(2024, 3, 10, 23, 59, 0, 0, time.FixedZone("KST", 9*60*60))
	gt.Equal(t, *date(2024, 3, 10), model.DateOf(local))
}
