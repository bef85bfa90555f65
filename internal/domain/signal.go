package domain

import (
	"fmt"
	"strings"
)

type SignalType string

const (
	SignalOffer  SignalType = "offer"
	SignalAnswer SignalType = "answer"
)

func (t SignalType) Valid() bool {
	switch t {
	case SignalOffer, SignalAnswer:
		return true
	default:
		return false
	}
}

// Signal is one half of a connection negotiation. The payload is an opaque
// session description owned by the mesh.
type Signal struct {
	Type    SignalType
	Payload string
}

func (s Signal) Validate() error {
	if !s.Type.Valid() {
		return fmt.Errorf("unsupported signal type %q", s.Type)
	}
	if strings.TrimSpace(s.Payload) == "" {
		return fmt.Errorf("signal payload is required")
	}

	return nil
}

type PeerStatus string

const (
	PeerOnline  PeerStatus = "online"
	PeerOffline PeerStatus = "offline"
)

type PeerRecord struct {
	ID     string
	Status PeerStatus
}
