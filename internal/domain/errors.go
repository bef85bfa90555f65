package domain

import "errors"

var (
	ErrSensorUnavailable = errors.New("motion sensor unavailable")
	ErrPermissionDenied  = errors.New("motion sensor permission denied")
	ErrSignalDecode      = errors.New("signal decode failed")
	ErrProtocolState     = errors.New("signal not valid in current handshake state")
	ErrHandshakeTimeout  = errors.New("handshake timed out")
	ErrMeshConnection    = errors.New("mesh connection failed")
	ErrMessageNotFound   = errors.New("message not found")
	ErrInvalidMessage    = errors.New("invalid message")
	ErrIdentityNotFound  = errors.New("identity not found")
)

// HandshakeError is a user-visible handshake condition. Message is what the
// user should read; Kind is one of the handshake sentinels above.
type HandshakeError struct {
	Kind    error
	Message string
}

func (e *HandshakeError) Error() string {
	return e.Message
}

func (e *HandshakeError) Unwrap() error {
	return e.Kind
}

func newHandshakeError(kind error, message string) *HandshakeError {
	return &HandshakeError{Kind: kind, Message: message}
}
