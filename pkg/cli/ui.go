package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	mutedStyle  = lipgloss.NewStyle().Foreground(cMuted)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	goodStyle   = cellStyle.Foreground(cGood)
	warnStyle   = cellStyle.Foreground(cWarn)
	badStyle    = cellStyle.Foreground(cBad)
)

const (
	colSource = iota
	colTotal
	colDone
	colInProgress
	colNotStarted
	colOverdue
	colRate
	colNote
)

// renderReport renders the KPI snapshots of the boards as a console table
func renderReport(out *reportOutput) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📊 " + out.Title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("기준일 " + out.Today.Format("2006-01-02")))
	b.WriteString("\n")

	if len(out.Boards) == 0 {
		b.WriteString(mutedStyle.Render("요약 대상 이슈 시트가 없습니다."))
		return b.String()
	}

	rows := make([][]string, 0, len(out.Boards))
	for _, board := range out.Boards {
		rows = append(rows, reportRow(board))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("이슈 시트", "📦 전체", "✅ 완료", "🟡 진행중", "⚪ 미진행", "🔴 기한초과", "📊 완료율", "비고").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(out.Boards) {
				return cellStyle
			}
			board := out.Boards[row]
			switch {
			case board.Error != "" && col == colNote:
				return badStyle
			case board.KPI == nil:
				return cellStyle
			case col == colOverdue && board.KPI.Overdue > 0:
				return badStyle
			case col == colRate:
				return rateStyle(board.KPI.CompletionRate)
			default:
				return cellStyle
			}
		})

	b.WriteString(t.String())
	return b.String()
}

func reportRow(board *model.IssueBoard) []string {
	row := make([]string, colNote+1)
	row[colSource] = board.Source.Title
	if board.KPI == nil {
		for i := colTotal; i < colNote; i++ {
			row[i] = "-"
		}
		row[colNote] = board.Error
		return row
	}

	kpi := board.KPI
	row[colTotal] = fmt.Sprint(kpi.Total)
	row[colDone] = fmt.Sprint(kpi.Done)
	row[colInProgress] = fmt.Sprint(kpi.InProgress)
	row[colNotStarted] = "-"
	if kpi.Taxonomy == types.TaxonomyTernary {
		row[colNotStarted] = fmt.Sprint(kpi.NotStarted)
	}
	row[colOverdue] = fmt.Sprint(kpi.Overdue)
	row[colRate] = fmt.Sprintf("%.1f%%", kpi.CompletionRate)
	return row
}

func rateStyle(rate float64) lipgloss.Style {
	switch {
	case rate >= 100:
		return goodStyle
	case rate >= 50:
		return warnStyle
	default:
		return badStyle
	}
}
