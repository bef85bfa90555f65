package application

import (
	"time"

	"github.com/bnema/meshsos/internal/domain"
)

type HandshakeLogEntry struct {
	At      time.Time
	Message string
}

// HandshakeSnapshot is what a pairing screen renders.
type HandshakeSnapshot struct {
	State     domain.HandshakeState
	Role      domain.HandshakeRole
	Signal    string
	Status    string
	Connected bool
	Deadline  time.Time
	Err       error
	PeerCount int
	PeerIDs   []string
	Logs      []HandshakeLogEntry
}

// ErrorMessage is the text to show for Err, or "" when there is none.
func (s HandshakeSnapshot) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

type PendingFall struct {
	Event     domain.FallEvent
	ExpiresAt time.Time
	Remaining time.Duration
}
