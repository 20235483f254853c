package config_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trackboard/pkg/cli/config"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/secmon-lab/trackboard/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

func TestGate_Password(t *testing.T) {
	ctx := context.Background()
	cfg := config.Gate{Password: "open-sesame", SessionTTL: time.Hour}

	auth, err := cfg.Configure(repository.NewMemory())
	gt.NoError(t, err).Required()

	session, err := auth.Login(ctx, "open-sesame")
	gt.NoError(t, err).Required()
	gt.True(t, session.ExpiresAt.Before(time.Now().Add(time.Hour+time.Minute)))

	_, err = auth.Login(ctx, "wrong")
	gt.True(t, errors.Is(err, model.ErrIncorrectPassword))
}

func TestGate_PasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	gt.NoError(t, err).Required()

	cfg := config.Gate{Password: "ignored", PasswordHash: string(hash)}
	auth, err := cfg.Configure(repository.NewMemory())
	gt.NoError(t, err).Required()

	_, err = auth.Login(context.Background(), "hashed-secret")
	gt.NoError(t, err)

	_, err = auth.Login(context.Background(), "ignored")
	gt.Error(t, err)
}

func TestGate_Missing(t *testing.T) {
	cfg := config.Gate{}
	_, err := cfg.Configure(repository.NewMemory())
	gt.Error(t, err)
}
