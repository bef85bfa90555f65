package clock

import (
	"sort"
	"sync"
	"time"

	"github.com/bnema/meshsos/internal/ports"
)

// Virtual is a manually advanced clock. Deadlines fire synchronously from
// Advance, in deadline order, with Now() set to the deadline being fired.
type Virtual struct {
	mu      sync.Mutex
	now     time.Time
	next    ports.DeadlineHandle
	pending map[ports.DeadlineHandle]virtualDeadline
}

type virtualDeadline struct {
	at   time.Time
	seq  ports.DeadlineHandle
	fire func()
}

var (
	_ ports.Clock     = (*Virtual)(nil)
	_ ports.Deadlines = (*Virtual)(nil)
)

func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start, pending: map[ports.DeadlineHandle]virtualDeadline{}}
}

func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

func (v *Virtual) Arm(after time.Duration, fire func()) ports.DeadlineHandle {
	v.mu.Lock()
	defer v.mu.Unlock()

	if after < 0 {
		after = 0
	}
	v.next++
	v.pending[v.next] = virtualDeadline{at: v.now.Add(after), seq: v.next, fire: fire}

	return v.next
}

func (v *Virtual) Cancel(handle ports.DeadlineHandle) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.pending[handle]; !ok {
		return false
	}
	delete(v.pending, handle)

	return true
}

// Pending returns the number of armed deadlines.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending)
}

// Advance moves time forward by d, firing every deadline that falls due.
// Deadlines armed by a callback fire in the same call if they are due.
func (v *Virtual) Advance(d time.Duration) {
	v.AdvanceTo(v.Now().Add(d))
}

func (v *Virtual) AdvanceTo(target time.Time) {
	for {
		v.mu.Lock()
		due, ok := v.nextDue(target)
		if !ok {
			if target.After(v.now) {
				v.now = target
			}
			v.mu.Unlock()
			return
		}
		delete(v.pending, due.seq)
		if due.at.After(v.now) {
			v.now = due.at
		}
		v.mu.Unlock()

		due.fire()
	}
}

func (v *Virtual) nextDue(target time.Time) (virtualDeadline, bool) {
	due := make([]virtualDeadline, 0, len(v.pending))
	for _, d := range v.pending {
		if !d.at.After(target) {
			due = append(due, d)
		}
	}
	if len(due) == 0 {
		return virtualDeadline{}, false
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})

	return due[0], true
}
