package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL is the lifetime of a gate session
const DefaultSessionTTL = 24 * time.Hour

// Auth implements the shared-password access gate with repository-based
// session storage
type Auth struct {
	repo         interfaces.SessionRepository
	passwordHash []byte
	sessionTTL   time.Duration
}

var _ interfaces.Auth = (*Auth)(nil)

// AuthOption configures Auth
type AuthOption func(*Auth)

// WithSessionTTL sets the session lifetime
func WithSessionTTL(ttl time.Duration) AuthOption {
	return func(a *Auth) {
		if ttl > 0 {
			a.sessionTTL = ttl
		}
	}
}

// NewAuth creates a new Auth use case. passwordHash is a bcrypt hash of the
// shared password.
func NewAuth(repo interfaces.SessionRepository, passwordHash []byte, opts ...AuthOption) *Auth {
	a := &Auth{
		repo:         repo,
		passwordHash: passwordHash,
		sessionTTL:   DefaultSessionTTL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// HashPassword returns the bcrypt hash of a plain password
func HashPassword(password string) ([]byte, error) {
	if password == "" {
		return nil, goerr.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

// Login checks the password and opens a session. A wrong password returns
// ErrIncorrectPassword; retries are not limited.
func (a *Auth) Login(ctx context.Context, password string) (*model.Session, error) {
	logger := ctxlog.From(ctx)

	if password == "" || len(a.passwordHash) == 0 {
		return nil, goerr.Wrap(model.ErrIncorrectPassword, "empty password")
	}

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Info("Login rejected")
			return nil, goerr.Wrap(model.ErrIncorrectPassword, "password mismatch")
		}
		return nil, goerr.Wrap(err, "failed to compare password")
	}

	session, err := model.NewSession(a.sessionTTL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session")
	}

	if err := a.repo.SaveSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to save session")
	}

	logger.Info("Created new session",
		"sessionID", session.ID,
		"expiresAt", session.ExpiresAt,
	)

	return session, nil
}

// ValidateSession validates a session by ID and secret
func (a *Auth) ValidateSession(ctx context.Context, sessionID, sessionSecret string) (*model.Session, error) {
	if sessionID == "" || sessionSecret == "" {
		return nil, goerr.New("session ID and secret are required")
	}

	session, err := a.repo.GetSession(ctx, types.SessionID(sessionID))
	if err != nil {
		return nil, goerr.Wrap(err, "session not found")
	}

	// Validate secret
	if session.Secret != types.SessionSecret(sessionSecret) {
		return nil, goerr.New("invalid session secret")
	}

	// Check expiration
	if session.IsExpired() {
		if err := a.repo.DeleteSession(ctx, session.ID); err != nil {
			ctxlog.From(ctx).Warn("Failed to delete expired session", "error", err, "sessionID", session.ID)
		}
		return nil, goerr.New("session expired")
	}

	return session, nil
}

// Logout deletes a session
func (a *Auth) Logout(ctx context.Context, sessionID string) error {
	logger := ctxlog.From(ctx)

	if sessionID == "" {
		return goerr.New("session ID is required")
	}

	if err := a.repo.DeleteSession(ctx, types.SessionID(sessionID)); err != nil {
		return goerr.Wrap(err, "failed to delete session")
	}

	logger.Info("Deleted session",
		"sessionID", sessionID,
	)

	return nil
}
