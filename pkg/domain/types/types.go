package types

import (
	"github.com/google/uuid"
)

// SessionID represents a session identifier
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SessionID(id.String()), nil
}

// SessionSecret represents a session secret token
type SessionSecret string

// String returns the string representation
func (s SessionSecret) String() string {
	return string(s)
}

// SourceID identifies one configured spreadsheet source (and its tab)
type SourceID string

// String returns the string representation
func (id SourceID) String() string {
	return string(id)
}

// RecordID identifies a row within a source. It is the value of the "NO"
// column when present, otherwise the spreadsheet row number.
type RecordID string

// String returns the string representation
func (id RecordID) String() string {
	return string(id)
}

// SourceKind tells which record type a source holds
type SourceKind string

const (
	SourceKindSchedule SourceKind = "schedule"
	SourceKindIssue    SourceKind = "issue"
)

// IsValid checks if the kind is known
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindSchedule, SourceKindIssue:
		return true
	default:
		return false
	}
}
