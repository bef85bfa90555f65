package ports

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// DeadlineHandle identifies an armed deadline. The zero handle is never
// returned by Arm and cancelling it is a no-op.
type DeadlineHandle uint64

type Deadlines interface {
	Arm(after time.Duration, fire func()) DeadlineHandle
	// Cancel reports whether the deadline was still pending.
	Cancel(handle DeadlineHandle) bool
}
