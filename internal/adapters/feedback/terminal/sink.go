// Package terminal renders alert feedback on a terminal: the bell for sound
// and a printed pulse pattern for haptics.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/meshsos/internal/ports"
)

// Pattern mirrors the vibration pattern of the device alert, in ms.
var Pattern = []int{200, 100, 200, 100, 400}

type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

var _ ports.FeedbackSink = (*Sink)(nil)

func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) Sound() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, "\a")
}

func (s *Sink) Haptic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := make([]string, 0, len(Pattern))
	for i, ms := range Pattern {
		mark := "~"
		if i%2 == 0 {
			mark = strings.Repeat("█", ms/100)
		}
		parts = append(parts, mark)
	}
	_, _ = fmt.Fprintf(s.w, "[haptic] %s\n", strings.Join(parts, " "))
}
