package model

import (
	"context"

	"github.com/secmon-lab/trackboard/pkg/domain/types"
)

type contextKey string

const authContextKey contextKey = "authContext"

// AuthContext carries the gate state of the current request. It replaces a
// process-wide "authenticated" flag: each request sees only its own session.
type AuthContext struct {
	SessionID     types.SessionID `json:"session_id,omitempty"`
	Authenticated bool            `json:"authenticated"`
}

// NewAuthContext creates an unauthenticated AuthContext
func NewAuthContext() *AuthContext {
	return &AuthContext{}
}

// NewSessionAuthContext creates an AuthContext for a validated session
func NewSessionAuthContext(session *Session) *AuthContext {
	return &AuthContext{
		SessionID:     session.ID,
		Authenticated: true,
	}
}

// WithAuthContext adds AuthContext to the context
func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	if authCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, authContextKey, authCtx)
}

// GetAuthContext retrieves AuthContext from the context
func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	authCtx, ok := ctx.Value(authContextKey).(*AuthContext)
	return authCtx, ok
}

// GetOrCreateAuthContext retrieves AuthContext from context or creates a new one if not present
func GetOrCreateAuthContext(ctx context.Context) *AuthContext {
	if authCtx, ok := GetAuthContext(ctx); ok && authCtx != nil {
		return authCtx
	}
	return NewAuthContext()
}

// IsAuthenticated reports whether the request context passed the gate
func IsAuthenticated(ctx context.Context) bool {
	authCtx, ok := GetAuthContext(ctx)
	return ok && authCtx != nil && authCtx.Authenticated
}

// Clone creates a copy of the AuthContext
func (a *AuthContext) Clone() *AuthContext {
	if a == nil {
		return nil
	}
	return &AuthContext{
		SessionID:     a.SessionID,
		Authenticated: a.Authenticated,
	}
}
