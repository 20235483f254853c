package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/domain/types"
	"github.com/secmon-lab/trackboard/pkg/repository"
	"github.com/secmon-lab/trackboard/pkg/usecase"
	"golang.org/x/crypto/bcrypt"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return ctxlog.With(context.Background(), logger)
}

func newTestAuth(t *testing.T, repo interfaces.SessionRepository, opts ...usecase.AuthOption) *usecase.Auth {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	gt.NoError(t, err).Required()
	return usecase.NewAuth(repo, hash, opts...)
}

func TestHashPassword(t *testing.T) {
	hash, err := usecase.HashPassword("open-sesame")
	gt.NoError(t, err).Required()
	gt.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("open-sesame")))

	_, err = usecase.HashPassword("")
	gt.Error(t, err)
}

func TestAuthLogin(t *testing.T) {
	ctx := testContext()
	repo := repository.NewMemory()
	auth := newTestAuth(t, repo)

	t.Run("Correct password", func(t *testing.T) {
		session, err := auth.Login(ctx, "open-sesame")
		gt.NoError(t, err).Required()
		gt.NotEqual(t, "", session.ID.String())
		gt.NotEqual(t, "", session.Secret.String())
		gt.True(t, session.ExpiresAt.After(time.Now().Add(23*time.Hour)))

		stored, err := repo.GetSession(ctx, session.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, session.Secret, stored.Secret)
	})

	t.Run("Wrong password can be retried", func(t *testing.T) {
		for range 3 {
			_, err := auth.Login(ctx, "wrong")
			gt.Error(t, err)
			gt.True(t, errors.Is(err, model.ErrIncorrectPassword))
		}

		_, err := auth.Login(ctx, "open-sesame")
		gt.NoError(t, err)
	})

	t.Run("Empty password", func(t *testing.T) {
		_, err := auth.Login(ctx, "")
		gt.True(t, errors.Is(err, model.ErrIncorrectPassword))
	})

	t.Run("Each login gets its own session", func(t *testing.T) {
		s1, err := auth.Login(ctx, "open-sesame")
		gt.NoError(t, err).Required()
		s2, err := auth.Login(ctx, "open-sesame")
		gt.NoError(t, err).Required()
		gt.NotEqual(t, s1.ID, s2.ID)
	})
}

func TestAuthSessionTTL(t *testing.T) {
	ctx := testContext()
	auth := newTestAuth(t, repository.NewMemory(), usecase.WithSessionTTL(time.Hour))

	session, err := auth.Login(ctx, "open-sesame")
	gt.NoError(t, err).Required()
	gt.True(t, session.ExpiresAt.Before(time.Now().Add(2*time.Hour)))
}

func TestAuthValidateSession(t *testing.T) {
	ctx := testContext()
	repo := repository.NewMemory()
	auth := newTestAuth(t, repo)

	session, err := auth.Login(ctx, "open-sesame")
	gt.NoError(t, err).Required()

	t.Run("Valid session", func(t *testing.T) {
		validated, err := auth.ValidateSession(ctx, session.ID.String(), session.Secret.String())
		gt.NoError(t, err).Required()
		gt.Equal(t, session.ID, validated.ID)
	})

	t.Run("Invalid secret", func(t *testing.T) {
		_, err := auth.ValidateSession(ctx, session.ID.String(), "wrong-secret")
		gt.Error(t, err)
	})

	t.Run("Non-existent session", func(t *testing.T) {
		_, err := auth.ValidateSession(ctx, "non-existent", "secret")
		gt.Error(t, err)
	})

	t.Run("Empty credentials", func(t *testing.T) {
		_, err := auth.ValidateSession(ctx, "", "")
		gt.Error(t, err)
	})

	t.Run("Expired session is removed", func(t *testing.T) {
		expired, err := model.NewSession(time.Hour)
		gt.NoError(t, err).Required()
		expired.ExpiresAt = time.Now().Add(-time.Minute)
		gt.NoError(t, repo.SaveSession(ctx, expired)).Required()

		_, err = auth.ValidateSession(ctx, expired.ID.String(), expired.Secret.String())
		gt.Error(t, err)

		_, err = repo.GetSession(ctx, expired.ID)
		gt.True(t, errors.Is(err, model.ErrSessionNotFound))
	})
}

func TestAuthLogout(t *testing.T) {
	ctx := testContext()
	repo := repository.NewMemory()
	auth := newTestAuth(t, repo)

	session, err := auth.Login(ctx, "open-sesame")
	gt.NoError(t, err).Required()

	gt.NoError(t, auth.Logout(ctx, session.ID.String()))

	_, err = auth.ValidateSession(ctx, session.ID.String(), session.Secret.String())
	gt.Error(t, err)

	gt.Error(t, auth.Logout(ctx, ""))
	gt.Error(t, auth.Logout(ctx, session.ID.String()))
}

func TestAuth_RepositoryErrors(t *testing.T) {
	ctx := testContext()
	storeErr := goerr.New("firestore unavailable")

	t.Run("save failure is not a wrong password", func(t *testing.T) {
		repo := &mocks.SessionRepositoryMock{
			SaveSessionFunc: func(ctx context.Context, session *model.Session) error {
				return storeErr
			},
		}
		auth := newTestAuth(t, repo)

		session, err := auth.Login(ctx, "open-sesame")
		gt.Error(t, err)
		gt.Nil(t, session)
		gt.True(t, errors.Is(err, storeErr))
		gt.False(t, errors.Is(err, model.ErrIncorrectPassword))
		gt.A(t, repo.SaveSessionCalls()).Length(1)
	})

	t.Run("wrong password does not touch the repository", func(t *testing.T) {
		repo := &mocks.SessionRepositoryMock{}
		auth := newTestAuth(t, repo)

		_, err := auth.Login(ctx, "wrong")
		gt.True(t, errors.Is(err, model.ErrIncorrectPassword))
		gt.A(t, repo.SaveSessionCalls()).Length(0)
	})

	t.Run("lookup failure rejects the session", func(t *testing.T) {
		repo := &mocks.SessionRepositoryMock{
			GetSessionFunc: func(ctx context.Context, id types.SessionID) (*model.Session, error) {
				return nil, storeErr
			},
		}
		auth := newTestAuth(t, repo)

		_, err := auth.ValidateSession(ctx, "sid", "secret")
		gt.True(t, errors.Is(err, storeErr))
		calls := repo.GetSessionCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, types.SessionID("sid"), calls[0].ID)
	})

	t.Run("expired session is rejected when cleanup fails", func(t *testing.T) {
		expired := &model.Session{
			ID:        "sid",
			Secret:    "secret",
			CreatedAt: time.Now().Add(-2 * time.Hour),
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		repo := &mocks.SessionRepositoryMock{
			GetSessionFunc: func(ctx context.Context, id types.SessionID) (*model.Session, error) {
				return expired, nil
			},
			DeleteSessionFunc: func(ctx context.Context, id types.SessionID) error {
				return storeErr
			},
		}
		auth := newTestAuth(t, repo)

		_, err := auth.ValidateSession(ctx, "sid", "secret")
		gt.Error(t, err)
		gt.A(t, repo.DeleteSessionCalls()).Length(1)
	})

	t.Run("logout failure is returned", func(t *testing.T) {
		repo := &mocks.SessionRepositoryMock{
			DeleteSessionFunc: func(ctx context.Context, id types.SessionID) error {
				return storeErr
			},
		}
		auth := newTestAuth(t, repo)

		gt.True(t, errors.Is(auth.Logout(ctx, "sid"), storeErr))
	})
}
