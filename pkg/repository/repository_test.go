package repository_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/repository"
)

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.SessionRepository) {
	t.Run("SaveSession and GetSession", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		session, err := model.NewSession(time.Hour)
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.SaveSession(ctx, session)).Required()

		retrieved, err := repo.GetSession(ctx, session.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, session.ID, retrieved.ID)
		gt.Equal(t, session.Secret, retrieved.Secret)
		// Timestamp comparison with tolerance for storage precision
		gt.True(t, session.ExpiresAt.Sub(retrieved.ExpiresAt).Abs() < time.Second)
	})

	t.Run("GetSession_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		session, err := model.NewSession(time.Hour)
		gt.NoError(t, err).Required()

		_, err = repo.GetSession(context.Background(), session.ID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrSessionNotFound))
	})

	t.Run("DeleteSession", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		session, err := model.NewSession(time.Hour)
		gt.NoError(t, err).Required()
		gt.NoError(t, repo.SaveSession(ctx, session)).Required()

		gt.NoError(t, repo.DeleteSession(ctx, session.ID))

		_, err = repo.GetSession(ctx, session.ID)
		gt.Error(t, err)

		err = repo.DeleteSession(ctx, session.ID)
		gt.True(t, errors.Is(err, model.ErrSessionNotFound))
	})

	t.Run("Invalid input", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.SaveSession(ctx, nil))
		gt.Error(t, repo.SaveSession(ctx, &model.Session{}))
		_, err := repo.GetSession(ctx, "")
		gt.Error(t, err)
		gt.Error(t, repo.DeleteSession(ctx, ""))
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.SessionRepository {
		return repository.NewMemory()
	})
}

func TestMemoryRepository_StoresCopies(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	session, err := model.NewSession(time.Hour)
	gt.NoError(t, err).Required()
	gt.NoError(t, repo.SaveSession(ctx, session)).Required()
	gt.Equal(t, 1, repo.Count())

	session.Secret = "tampered"
	retrieved, err := repo.GetSession(ctx, session.ID)
	gt.NoError(t, err).Required()
	gt.NotEqual(t, session.Secret, retrieved.Secret)
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.SessionRepository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err).Required()
		return repo
	})
}
