package interfaces

//go:generate moq -out mocks/source_mock.go -pkg mocks . SourceLoader

import (
	"context"

	"github.com/secmon-lab/trackboard/pkg/domain/model"
)

// SourceLoader reads records from a spreadsheet. An empty sheet name means
// the first sheet of the workbook.
type SourceLoader interface {
	LoadIssues(ctx context.Context, path, sheet string) ([]*model.IssueRecord, error)
	LoadSchedules(ctx context.Context, path, sheet string) ([]*model.ScheduleRecord, error)
}
