package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . SessionRepository

import (
	"context"

	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

// SessionRepository stores gate sessions. Record data is never persisted:
// sources are re-read on every render pass.
type SessionRepository interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id types.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id types.SessionID) error

	// Close closes the repository connection
	Close() error
}
