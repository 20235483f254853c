package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Gate holds the access gate configuration
type Gate struct {
	Password     string
	PasswordHash string
	SessionTTL   time.Duration
}

// Flags returns CLI flags for Gate configuration
func (g *Gate) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "password",
			Usage:       "Shared dashboard password",
			Category:    "Gate",
			Sources:     cli.EnvVars("TRACKBOARD_PASSWORD"),
			Destination: &g.Password,
		},
		&cli.StringFlag{
			Name:        "password-hash",
			Usage:       "bcrypt hash of the shared dashboard password (takes precedence over --password)",
			Category:    "Gate",
			Sources:     cli.EnvVars("TRACKBOARD_PASSWORD_HASH"),
			Destination: &g.PasswordHash,
		},
		&cli.DurationFlag{
			Name:        "session-ttl",
			Usage:       "Lifetime of a login session",
			Category:    "Gate",
			Value:       usecase.DefaultSessionTTL,
			Sources:     cli.EnvVars("TRACKBOARD_SESSION_TTL"),
			Destination: &g.SessionTTL,
		},
	}
}

// Configure creates the gate use case on top of the session repository
func (g *Gate) Configure(repo interfaces.SessionRepository) (*usecase.Auth, error) {
	hash, err := g.hash()
	if err != nil {
		return nil, err
	}

	var opts []usecase.AuthOption
	if g.SessionTTL > 0 {
		opts = append(opts, usecase.WithSessionTTL(g.SessionTTL))
	}
	return usecase.NewAuth(repo, hash, opts...), nil
}

func (g *Gate) hash() ([]byte, error) {
	if g.PasswordHash != "" {
		return []byte(g.PasswordHash), nil
	}
	if g.Password == "" {
		return nil, goerr.New("dashboard password is required. Please provide TRACKBOARD_PASSWORD or TRACKBOARD_PASSWORD_HASH")
	}

	hash, err := usecase.HashPassword(g.Password)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to hash dashboard password")
	}
	return hash, nil
}

// LogValue returns structured log value
func (g Gate) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_password", g.Password != ""),
		slog.Bool("has_password_hash", g.PasswordHash != ""),
		slog.Duration("session_ttl", g.SessionTTL),
	)
}
