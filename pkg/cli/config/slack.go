package config

import (
	"log/slog"

	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/trackboard/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for posting KPI digests",
			Category:    "Slack",
			Sources:     cli.EnvVars("TRACKBOARD_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID receiving KPI digests",
			Category:    "Slack",
			Sources:     cli.EnvVars("TRACKBOARD_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// Configure creates a Slack client, or returns nil if not configured
func (s *Slack) Configure(logger *slog.Logger) interfaces.SlackClient {
	if !s.IsConfigured() {
		logger.Warn("Slack not configured - KPI digests are disabled")
		return nil
	}

	logger.Info("Configuring Slack client", "channel", s.ChannelID)
	return slackSvc.New(s.OAuthToken)
}

// IsConfigured checks if both the token and the channel are given
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
