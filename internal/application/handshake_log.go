package application

import "time"

const handshakeLogSize = 12

// handshakeLog keeps the most recent diagnostics, newest first.
type handshakeLog struct {
	entries []HandshakeLogEntry
}

func (l *handshakeLog) add(at time.Time, message string) {
	l.entries = append([]HandshakeLogEntry{{At: at, Message: message}}, l.entries...)
	if len(l.entries) > handshakeLogSize {
		l.entries = l.entries[:handshakeLogSize]
	}
}

func (l *handshakeLog) snapshot() []HandshakeLogEntry {
	return append([]HandshakeLogEntry(nil), l.entries...)
}
