package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . Auth Dashboard Report

import (
	"context"

	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

// Auth guards the dashboard behind the shared password
type Auth interface {
	// Login checks the password and opens a session
	Login(ctx context.Context, password string) (*model.Session, error)

	// ValidateSession validates a session by ID and secret
	ValidateSession(ctx context.Context, sessionID, sessionSecret string) (*model.Session, error)

	// Logout deletes a session
	Logout(ctx context.Context, sessionID string) error
}

// Dashboard runs render passes over the configured sources
type Dashboard interface {
	// Build loads every source and computes all boards
	Build(ctx context.Context) (*model.Dashboard, error)

	// IssueBoard loads and computes a single issue source
	IssueBoard(ctx context.Context, id types.SourceID) (*model.IssueBoard, error)

	// ScheduleBoard loads and computes a single schedule source
	ScheduleBoard(ctx context.Context, id types.SourceID) (*model.ScheduleBoard, error)

	// Summary computes the boards shown on the summary tab
	Summary(ctx context.Context) ([]*model.IssueBoard, error)
}

// Report publishes KPI digests
type Report interface {
	// IsConfigured reports whether a Slack destination is set
	IsConfigured() bool

	// PostSummary posts the summary KPIs to the configured Slack channel.
	// A non-empty dashboardURL is linked from the message.
	PostSummary(ctx context.Context, dashboardURL string) error
}
