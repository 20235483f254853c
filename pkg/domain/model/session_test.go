package model_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
)

func TestNewSession(t *testing.T) {
	session, err := model.NewSession(time.Hour)
	gt.NoError(t, err).Required()
	gt.NotEqual(t, "", session.ID.String())
	gt.NotEqual(t, "", session.Secret.String())
	gt.True(t, session.IsValid())
	gt.False(t, session.IsExpired())

	other, err := model.NewSession(time.Hour)
	gt.NoError(t, err).Required()
	gt.NotEqual(t, session.ID, other.ID)
	gt.NotEqual(t, session.Secret, other.Secret)
}

func TestSessionExpired(t *testing.T) {
	session, err := model.NewSession(-time.Minute)
	gt.NoError(t, err).Required()
	gt.True(t, session.IsExpired())
	gt.False(t, session.IsValid())
}

func TestAuthContext(t *testing.T) {
	ctx := context.Background()
	gt.False(t, model.IsAuthenticated(ctx))

	_, ok := model.GetAuthContext(ctx)
	gt.False(t, ok)
	gt.False(t, model.GetOrCreateAuthContext(ctx).Authenticated)

	session, err := model.NewSession(time.Hour)
	gt.NoError(t, err).Required()

	ctx = model.WithAuthContext(ctx, model.NewSessionAuthContext(session))
	gt.True(t, model.IsAuthenticated(ctx))

	authCtx, ok := model.GetAuthContext(ctx)
	gt.True(t, ok)
	gt.Equal(t, session.ID, authCtx.SessionID)

	clone := authCtx.Clone()
	clone.Authenticated = false
	gt.True(t, authCtx.Authenticated)

	// nil is ignored
	gt.True(t, ctx == model.WithAuthContext(ctx, nil))
}
