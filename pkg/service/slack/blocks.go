package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
	"github.com/slack-go/slack"
)

// progressWidth is the number of cells of the completion bar
const progressWidth = 10

// GetCompletionEmoji returns emoji based on the completion rate
func GetCompletionEmoji(rate float64) string {
	switch {
	case rate >= 100:
		return "🟢"
	case rate >= 50:
		return "🟡"
	default:
		return "🔴"
	}
}

// ProgressBar renders the completion rate as a bar of squares
func ProgressBar(rate float64) string {
	filled := int(rate / 100 * progressWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > progressWidth {
		filled = progressWidth
	}
	return strings.Repeat("■", filled) + strings.Repeat("□", progressWidth-filled)
}

// BlockBuilder provides methods to build Slack message blocks
type BlockBuilder struct{}

// NewBlockBuilder creates a new BlockBuilder instance
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

// BuildSummaryBlocks builds the KPI digest of the summarized issue boards
func (b *BlockBuilder) BuildSummaryBlocks(title string, today time.Time, boards []*model.IssueBoard, dashboardURL string) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("📊 %s", title), false, false),
		),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("기준일 %s", today.Format("2006-01-02")), false, false),
		),
	}

	if len(boards) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "_요약 대상 이슈 시트가 없습니다._", false, false),
			nil, nil,
		))
	}

	for _, board := range boards {
		blocks = append(blocks, slack.NewDividerBlock())
		blocks = append(blocks, b.buildBoardBlock(board))
	}

	if dashboardURL != "" {
		blocks = append(blocks, slack.NewDividerBlock())
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("<%s|대시보드 열기>", dashboardURL), false, false),
		))
	}

	return blocks
}

func (b *BlockBuilder) buildBoardBlock(board *model.IssueBoard) slack.Block {
	if board.Error != "" || board.KPI == nil {
		msg := board.Error
		if msg == "" {
			msg = "no data"
		}
		return slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*%s*\n⚠️ %s", board.Source.Title, msg), false, false),
			nil, nil,
		)
	}

	kpi := board.KPI
	headline := fmt.Sprintf("*%s*\n%s `%s` %.1f%%",
		board.Source.Title, GetCompletionEmoji(kpi.CompletionRate), ProgressBar(kpi.CompletionRate), kpi.CompletionRate)

	fields := []*slack.TextBlockObject{
		kpiField("전체", kpi.Total),
		kpiField(types.StatusDone.Label(), kpi.Done),
		kpiField(types.StatusInProgress.Label(), kpi.InProgress),
	}
	if kpi.Taxonomy == types.TaxonomyTernary {
		fields = append(fields, kpiField(types.StatusNotStarted.Label(), kpi.NotStarted))
	}
	fields = append(fields, kpiField("지연", kpi.Overdue))

	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, headline, false, false),
		fields,
		nil,
	)
}

func kpiField(label string, count int) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*%s*\n%d", label, count), false, false)
}

// BuildSummaryText builds the notification fallback text of a digest
func (b *BlockBuilder) BuildSummaryText(title string, boards []*model.IssueBoard) string {
	parts := make([]string, 0, len(boards))
	for _, board := range boards {
		if board.KPI == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %.1f%%", board.Source.Title, board.KPI.CompletionRate))
	}
	if len(parts) == 0 {
		return title
	}
	return fmt.Sprintf("%s: %s", title, strings.Join(parts, ", "))
}

// BuildErrorBlocks builds error message blocks
func (b *BlockBuilder) BuildErrorBlocks(errorMessage string) []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(
				slack.MarkdownType,
				fmt.Sprintf("❌ %s", errorMessage),
				false,
				false,
			),
			nil,
			nil,
		),
	}
}
