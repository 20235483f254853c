package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/cli/config"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/service/sheet"
	"github.com/secmon-lab/trackboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const (
	reportFormatTable = "table"
	reportFormatJSON  = "json"
)

type reportOutput struct {
	Title  string              `json:"title"`
	Today  time.Time           `json:"today"`
	Boards []*model.IssueBoard `json:"boards"`
}

func cmdReport() *cli.Command {
	var (
		dashboardCfg config.Dashboard
		slackCfg     config.Slack
		format       string
		all          bool
		post         bool
		dashboardURL string
	)

	flags := joinFlags(
		dashboardCfg.Flags(),
		slackCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format (table, json)",
				Value:       reportFormatTable,
				Destination: &format,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "Report every issue source, not only the summarized ones",
				Destination: &all,
			},
			&cli.BoolFlag{
				Name:        "post",
				Usage:       "Also post the summary digest to Slack",
				Destination: &post,
			},
			&cli.StringFlag{
				Name:        "dashboard-url",
				Usage:       "Dashboard URL linked from the Slack digest",
				Sources:     cli.EnvVars("TRACKBOARD_FRONTEND_URL"),
				Destination: &dashboardURL,
			},
		},
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Print the KPI summary of the issue sources",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if format != reportFormatTable && format != reportFormatJSON {
				return goerr.New("invalid report format", goerr.V("format", format))
			}

			layout, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}
			dashboardUC := usecase.NewDashboard(sheet.NewLoader(), layout)

			dash, err := dashboardUC.Build(ctx)
			if err != nil {
				return err
			}

			boards := dash.Summaries()
			if all {
				boards = dash.Issues
			}

			if err := writeReport(os.Stdout, format, &reportOutput{
				Title:  dash.Title,
				Today:  dash.Today,
				Boards: boards,
			}); err != nil {
				return err
			}

			if !post {
				return nil
			}

			slackClient := slackCfg.Configure(logger)
			if slackClient == nil {
				return goerr.New("Slack is not configured. Please provide TRACKBOARD_SLACK_OAUTH_TOKEN and TRACKBOARD_SLACK_CHANNEL")
			}
			if dashboardURL != "" {
				dashboardURL = strings.TrimRight(dashboardURL, "/") + "/?tab=" + model.SummaryTabID.String()
			}
			reportUC, err := usecase.NewReport(ctx, dashboardUC, slackClient, slackCfg.ChannelID)
			if err != nil {
				return err
			}
			return reportUC.PostSummary(ctx, dashboardURL)
		},
	}
}

func writeReport(w io.Writer, format string, out *reportOutput) error {
	switch format {
	case reportFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			return goerr.Wrap(err, "failed to encode report")
		}
		return nil

	default:
		if _, err := fmt.Fprintln(w, renderReport(out)); err != nil {
			return goerr.Wrap(err, "failed to write report")
		}
		return nil
	}
}
