package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrSessionNotFound    = goerr.New("session not found")
	ErrIncorrectPassword  = goerr.New("incorrect password")
	ErrSourceNotFound     = goerr.New("source not found")
	ErrSlackNotConfigured = goerr.New("slack is not configured")
)
