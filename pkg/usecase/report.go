package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	slackSvc "github.com/secmon-lab/trackboard/pkg/service/slack"
	"github.com/slack-go/slack"
)

// Report posts KPI digests of the summary tab to Slack
type Report struct {
	dashboard   interfaces.Dashboard
	slackClient interfaces.SlackClient
	channelID   string
	botName     string
	blocks      *slackSvc.BlockBuilder
}

var _ interfaces.Report = (*Report)(nil)

// NewReport creates a new Report use case. slackClient may be nil, in which
// case PostSummary returns ErrSlackNotConfigured. A given client must pass
// auth.test so that a bad token fails at startup instead of on first post.
func NewReport(ctx context.Context, dashboard interfaces.Dashboard, slackClient interfaces.SlackClient, channelID string) (*Report, error) {
	r := &Report{
		dashboard:   dashboard,
		slackClient: slackClient,
		channelID:   channelID,
		blocks:      slackSvc.NewBlockBuilder(),
	}

	if slackClient != nil {
		authResp, err := slackClient.AuthTestContext(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to authenticate with Slack")
		}
		r.botName = authResp.User
		ctxlog.From(ctx).Info("Slack bot authenticated",
			"botUserID", authResp.UserID,
			"botName", authResp.User,
			"team", authResp.Team,
		)
	} else {
		ctxlog.From(ctx).Debug("Slack client not provided, KPI digests disabled")
	}

	return r, nil
}

// IsConfigured reports whether digests can be posted
func (r *Report) IsConfigured() bool {
	return r.slackClient != nil && r.channelID != ""
}

// PostSummary posts the summary KPIs to the configured Slack channel
func (r *Report) PostSummary(ctx context.Context, dashboardURL string) error {
	if !r.IsConfigured() {
		return goerr.Wrap(model.ErrSlackNotConfigured, "cannot post summary")
	}

	dash, err := r.dashboard.Build(ctx)
	if err != nil {
		err = goerr.Wrap(err, "failed to build dashboard")
		r.postError(ctx, "KPI 요약을 만들지 못했습니다: "+err.Error())
		return err
	}
	boards := dash.Summaries()

	blocks := r.blocks.BuildSummaryBlocks(dash.Title, dash.Today, boards, dashboardURL)
	text := r.blocks.BuildSummaryText(dash.Title, boards)

	channel, ts, err := r.slackClient.PostMessage(ctx, r.channelID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post summary", goerr.V("channel", r.channelID))
	}

	ctxlog.From(ctx).Info("Posted KPI summary",
		"channel", channel,
		"ts", ts,
		"boards", len(boards),
		"bot", r.botName,
	)

	return nil
}

// postError tells the channel that the digest failed. The original error is
// returned by the caller, so a failure here is only logged.
func (r *Report) postError(ctx context.Context, message string) {
	blocks := r.blocks.BuildErrorBlocks(message)
	if _, _, err := r.slackClient.PostMessage(ctx, r.channelID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(message, false),
	); err != nil {
		ctxlog.From(ctx).Warn("Failed to post error message",
			"error", err,
			"channel", r.channelID,
		)
	}
}
