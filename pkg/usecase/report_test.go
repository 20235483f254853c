package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/usecase"
	"github.com/slack-go/slack"
)

func authOK(ctx context.Context) (*slack.AuthTestResponse, error) {
	return &slack.AuthTestResponse{UserID: "U0BOT", User: "trackboard", Team: "Acme"}, nil
}

func TestReport_PostSummary(t *testing.T) {
	ctx := testContext()
	dashboard := usecase.NewDashboard(testLoader(), testDashboardConfig(), usecase.WithClock(fixedClock))

	t.Run("posts to the configured channel", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			AuthTestContextFunc: authOK,
			PostMessageFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return channelID, "1700000000.000100", nil
			},
		}
		report, err := usecase.NewReport(ctx, dashboard, client, "C0123")
		gt.NoError(t, err).Required()
		gt.True(t, report.IsConfigured())
		gt.A(t, client.AuthTestContextCalls()).Length(1)

		gt.NoError(t, report.PostSummary(ctx, "https://board.example.com"))

		calls := client.PostMessageCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, "C0123", calls[0].ChannelID)
		gt.A(t, calls[0].Options).Length(2)
	})

	t.Run("slack error is returned", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			AuthTestContextFunc: authOK,
			PostMessageFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return "", "", goerr.New("channel_not_found")
			},
		}
		report, err := usecase.NewReport(ctx, dashboard, client, "C0123")
		gt.NoError(t, err).Required()
		gt.Error(t, report.PostSummary(ctx, ""))
	})

	t.Run("not configured", func(t *testing.T) {
		report, err := usecase.NewReport(ctx, dashboard, nil, "C0123")
		gt.NoError(t, err).Required()
		gt.False(t, report.IsConfigured())
		err = report.PostSummary(ctx, "")
		gt.True(t, errors.Is(err, model.ErrSlackNotConfigured))

		client := &mocks.SlackClientMock{AuthTestContextFunc: authOK}
		report, err = usecase.NewReport(ctx, dashboard, client, "")
		gt.NoError(t, err).Required()
		err = report.PostSummary(ctx, "")
		gt.True(t, errors.Is(err, model.ErrSlackNotConfigured))
		gt.A(t, client.PostMessageCalls()).Length(0)
	})
}

func TestNewReport_AuthFailure(t *testing.T) {
	ctx := testContext()
	dashboard := usecase.NewDashboard(testLoader(), testDashboardConfig(), usecase.WithClock(fixedClock))

	client := &mocks.SlackClientMock{
		AuthTestContextFunc: func(ctx context.Context) (*slack.AuthTestResponse, error) {
			return nil, goerr.New("invalid_auth")
		},
	}
	report, err := usecase.NewReport(ctx, dashboard, client, "C0123")
	gt.Error(t, err)
	gt.Nil(t, report)
	gt.True(t, strings.Contains(err.Error(), "invalid_auth"))
	gt.A(t, client.PostMessageCalls()).Length(0)
}

func TestReport_PostSummary_BuildFailure(t *testing.T) {
	ctx := testContext()
	buildErr := goerr.New("failed to open workbook")
	dashboard := &mocks.DashboardMock{
		BuildFunc: func(ctx context.Context) (*model.Dashboard, error) {
			return nil, buildErr
		},
	}

	t.Run("error digest is posted", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			AuthTestContextFunc: authOK,
			PostMessageFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return channelID, "1700000000.000200", nil
			},
		}
		report, err := usecase.NewReport(ctx, dashboard, client, "C0123")
		gt.NoError(t, err).Required()

		err = report.PostSummary(ctx, "")
		gt.True(t, errors.Is(err, buildErr))
		gt.A(t, dashboard.BuildCalls()).Length(1)

		calls := client.PostMessageCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, "C0123", calls[0].ChannelID)
		gt.A(t, calls[0].Options).Length(2)
	})

	t.Run("failed error digest keeps the build error", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			AuthTestContextFunc: authOK,
			PostMessageFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return "", "", goerr.New("channel_not_found")
			},
		}
		report, err := usecase.NewReport(ctx, dashboard, client, "C0123")
		gt.NoError(t, err).Required()

		err = report.PostSummary(ctx, "")
		gt.True(t, errors.Is(err, buildErr))
		gt.A(t, client.PostMessageCalls()).Length(1)
	})
}
