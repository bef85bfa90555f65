package clock

import (
	"sync"
	"time"

	"github.com/bnema/meshsos/internal/ports"
)

// System arms deadlines on the runtime timer. Callbacks run on their own
// goroutine.
type System struct {
	mu     sync.Mutex
	next   ports.DeadlineHandle
	timers map[ports.DeadlineHandle]*time.Timer
}

var (
	_ ports.Clock     = (*System)(nil)
	_ ports.Deadlines = (*System)(nil)
)

func NewSystem() *System {
	return &System{timers: map[ports.DeadlineHandle]*time.Timer{}}
}

func (s *System) Now() time.Time {
	return time.Now()
}

func (s *System) Arm(after time.Duration, fire func()) ports.DeadlineHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	handle := s.next
	s.timers[handle] = time.AfterFunc(after, func() {
		s.mu.Lock()
		_, pending := s.timers[handle]
		delete(s.timers, handle)
		s.mu.Unlock()

		if pending {
			fire()
		}
	})

	return handle
}

func (s *System) Cancel(handle ports.DeadlineHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[handle]
	if !ok {
		return false
	}
	delete(s.timers, handle)
	timer.Stop()

	return true
}
