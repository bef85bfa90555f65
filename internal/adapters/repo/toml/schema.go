package toml

import "fmt"

const currentSchemaVersion = 1

type messagesFileSchema struct {
	Version  int             `toml:"version"`
	Messages []messageSchema `toml:"messages"`
}

func (s *messagesFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s messagesFileSchema) validateVersion() error {
	return checkVersion("messages", s.Version)
}

type messageSchema struct {
	ID              string          `toml:"id"`
	Text            string          `toml:"text"`
	Timestamp       string          `toml:"timestamp"`
	Status          string          `toml:"status"`
	IsAutoTriggered bool            `toml:"is_auto_triggered,omitempty"`
	IsPanic         bool            `toml:"is_panic,omitempty"`
	FallSeverity    string          `toml:"fall_severity,omitempty"`
	FallImpact      *float64        `toml:"fall_impact,omitempty"`
	SenderID        string          `toml:"sender_id"`
	Hops            int             `toml:"hops"`
	Location        *locationSchema `toml:"location,omitempty"`
}

type locationSchema struct {
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Accuracy  float64 `toml:"accuracy"`
}

type prefsFileSchema struct {
	Version int          `toml:"version"`
	Alerts  *alertSchema `toml:"alerts,omitempty"`
}

func (s *prefsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s prefsFileSchema) validateVersion() error {
	return checkVersion("prefs", s.Version)
}

type alertSchema struct {
	Sound  *bool `toml:"sound,omitempty"`
	Haptic *bool `toml:"haptic,omitempty"`
}

func checkVersion(kind string, version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported %s schema version %d (current %d)", kind, version, currentSchemaVersion)
	}

	return nil
}
