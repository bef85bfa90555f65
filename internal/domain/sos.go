package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type MessageID string

type SOSStatus string

const (
	SOSQueued   SOSStatus = "queued"
	SOSSent     SOSStatus = "sent"
	SOSRelayed  SOSStatus = "relayed"
	SOSReceived SOSStatus = "received"
)

func (s SOSStatus) Valid() bool {
	switch s {
	case SOSQueued, SOSSent, SOSRelayed, SOSReceived:
		return true
	default:
		return false
	}
}

type Location struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range", l.Longitude)
	}
	if l.Accuracy < 0 {
		return fmt.Errorf("accuracy must not be negative")
	}

	return nil
}

type SOSMessage struct {
	ID              MessageID
	Text            string
	Location        *Location
	Timestamp       time.Time
	Status          SOSStatus
	IsAutoTriggered bool
	IsPanic         bool
	FallSeverity    Severity
	FallImpact      *float64
	SenderID        string
	Hops            int
}

func (m SOSMessage) Validate() error {
	if strings.TrimSpace(string(m.ID)) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidMessage)
	}
	if !m.Status.Valid() {
		return fmt.Errorf("%w: unsupported status %q", ErrInvalidMessage, m.Status)
	}
	if m.FallSeverity != "" && !m.FallSeverity.Valid() {
		return fmt.Errorf("%w: unsupported fall severity %q", ErrInvalidMessage, m.FallSeverity)
	}
	if m.Location != nil {
		if err := m.Location.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}
	}
	if m.Hops < 0 {
		return fmt.Errorf("%w: hops must not be negative", ErrInvalidMessage)
	}

	return nil
}

const PanicMessageText = "🚨 PANIC BUTTON – Emergency assistance required at this location."

// FallMessageText is the body sent when a fall countdown runs out.
func FallMessageText(event FallEvent) string {
	return fmt.Sprintf("🚨 AUTOMATIC FALL DETECTED - %s impact (%d m/s²). Assistance required at this location.",
		event.Severity, int(math.Round(event.PeakImpact)))
}

type AlertPrefs struct {
	Sound  bool
	Haptic bool
}

func DefaultAlertPrefs() AlertPrefs {
	return AlertPrefs{Sound: true, Haptic: true}
}
