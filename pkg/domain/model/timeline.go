package model

import (
	"fmt"
	"time"
)

// quarterColors are the background colors of the quarter bands
var quarterColors = map[int]string{
	1: "#E3F2FD",
	2: "#E8F5E9",
	3: "#FFFDE7",
	4: "#FCE4EC",
}

// QuarterBand is one calendar quarter of a timeline
type QuarterBand struct {
	Year     int       `json:"year"`
	Quarter  int       `json:"quarter"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Label    string    `json:"label"`
	Color    string    `json:"color"`
	LeftPct  float64   `json:"left_pct"`
	WidthPct float64   `json:"width_pct"`
}

// TimelineMarker is one dated schedule record placed on a timeline
type TimelineMarker struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Lane    int       `json:"lane"`
	Vehicle string    `json:"vehicle"`
	Stage   string    `json:"stage"`
	LeftPct float64   `json:"left_pct"`
}

// Timeline is the layout of a schedule chart. Positions are percentages of
// the span from the first band's start to the last band's end.
type Timeline struct {
	Start   time.Time        `json:"start"`
	End     time.Time        `json:"end"`
	Bands   []QuarterBand    `json:"bands"`
	Lanes   []string         `json:"lanes"`
	Markers []TimelineMarker `json:"markers"`
	ShowNow bool             `json:"show_now"`
	NowPct  float64          `json:"now_pct"`
}

// QuarterOf returns the quarter (1-4) of t
func QuarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// QuarterStart returns the first day of the quarter containing t
func QuarterStart(t time.Time) time.Time {
	month := time.Month((QuarterOf(t)-1)*3 + 1)
	return time.Date(t.Year(), month, 1, 0, 0, 0, 0, time.UTC)
}

// BuildTimeline lays out the dated records on quarter bands. It returns nil
// when no record has a date.
func BuildTimeline(records []*ScheduleRecord, today time.Time) *Timeline {
	var first, last time.Time
	dated := 0
	for _, r := range records {
		if r == nil || r.Date == nil {
			continue
		}
		d := DateOf(*r.Date)
		if dated == 0 || d.Before(first) {
			first = d
		}
		if dated == 0 || d.After(last) {
			last = d
		}
		dated++
	}
	if dated == 0 {
		return nil
	}

	tl := &Timeline{
		Start: QuarterStart(first),
		End:   QuarterStart(last).AddDate(0, 3, 0),
	}
	span := tl.End.Sub(tl.Start)

	pct := func(t time.Time) float64 {
		return float64(t.Sub(tl.Start)) / float64(span) * 100
	}

	for q := tl.Start; q.Before(tl.End); q = q.AddDate(0, 3, 0) {
		end := q.AddDate(0, 3, 0)
		quarter := QuarterOf(q)
		tl.Bands = append(tl.Bands, QuarterBand{
			Year:     q.Year(),
			Quarter:  quarter,
			Start:    q,
			End:      end,
			Label:    fmt.Sprintf("%d Q%d", q.Year(), quarter),
			Color:    quarterColors[quarter],
			LeftPct:  pct(q),
			WidthPct: pct(end) - pct(q),
		})
	}

	lanes := make(map[string]int)
	for _, r := range records {
		if r == nil || r.Date == nil {
			continue
		}
		lane, ok := lanes[r.Vehicle]
		if !ok {
			lane = len(tl.Lanes)
			lanes[r.Vehicle] = lane
			tl.Lanes = append(tl.Lanes, r.Vehicle)
		}
		d := DateOf(*r.Date)
		tl.Markers = append(tl.Markers, TimelineMarker{
			ID:      r.ID.String(),
			Date:    d,
			Lane:    lane,
			Vehicle: r.Vehicle,
			Stage:   r.Stage,
			LeftPct: pct(d),
		})
	}

	now := DateOf(today)
	if !now.Before(tl.Start) && now.Before(tl.End) {
		tl.ShowNow = true
		tl.NowPct = pct(now)
	}

	return tl
}
