// Package replay implements a motion sensor that plays back a recorded
// accelerometer trace. Traces are YAML documents with one sample per entry.
package replay

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
	"gopkg.in/yaml.v3"
)

//go:embed traces/fall.yaml
var fallTrace []byte

type Trace struct {
	Name    string       `yaml:"name"`
	Samples []TracePoint `yaml:"samples"`
}

type TracePoint struct {
	OffsetMS int64   `yaml:"t_ms"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
}

func ParseTrace(raw []byte) (Trace, error) {
	var trace Trace
	if err := yaml.Unmarshal(raw, &trace); err != nil {
		return Trace{}, fmt.Errorf("parse trace: %w", err)
	}
	if err := trace.validate(); err != nil {
		return Trace{}, err
	}
	return trace, nil
}

func LoadTrace(path string) (Trace, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Trace{}, fmt.Errorf("read trace: %w", err)
	}
	return ParseTrace(raw)
}

// FallTrace returns the bundled trace of a phone falling off a table.
func FallTrace() Trace {
	trace, err := ParseTrace(fallTrace)
	if err != nil {
		panic(err)
	}
	return trace
}

func (t Trace) validate() error {
	if len(t.Samples) == 0 {
		return fmt.Errorf("trace has no samples")
	}
	if !sort.SliceIsSorted(t.Samples, func(i, j int) bool {
		return t.Samples[i].OffsetMS < t.Samples[j].OffsetMS
	}) {
		return fmt.Errorf("trace samples must be ordered by t_ms")
	}
	if t.Samples[0].OffsetMS < 0 {
		return fmt.Errorf("trace offsets must not be negative")
	}
	return nil
}

type Option func(*Sensor)

// WithStart sets the wall time of offset zero.
func WithStart(start time.Time) Option {
	return func(s *Sensor) { s.start = start }
}

// WithPacing makes Replay wait between samples as the trace timestamps say.
func WithPacing(paced bool) Option {
	return func(s *Sensor) { s.paced = paced }
}

func WithPermissionDenied() Option {
	return func(s *Sensor) { s.denied = true }
}

func WithUnavailable() Option {
	return func(s *Sensor) { s.unavailable = true }
}

type Sensor struct {
	trace       Trace
	start       time.Time
	paced       bool
	denied      bool
	unavailable bool

	mu       sync.Mutex
	handlers map[int]func(domain.MotionSample)
	nextSub  int
}

var _ ports.MotionSensor = (*Sensor)(nil)

func New(trace Trace, opts ...Option) *Sensor {
	s := &Sensor{
		trace:    trace,
		start:    time.Now(),
		handlers: map[int]func(domain.MotionSample){},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sensor) RequestPermission(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.denied {
		return domain.ErrPermissionDenied
	}
	return nil
}

func (s *Sensor) Subscribe(handler func(domain.MotionSample)) (func(), error) {
	if s.unavailable {
		return nil, domain.ErrSensorUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.handlers[id] = handler

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers, id)
	}, nil
}

func (s *Sensor) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

// Replay delivers every trace sample to the current subscribers and returns
// how many samples were delivered. A sample is dropped when nobody is
// subscribed, as a real sensor would.
func (s *Sensor) Replay(ctx context.Context) (int, error) {
	delivered := 0
	var prev int64

	for i, point := range s.trace.Samples {
		if s.paced && i > 0 {
			wait := time.Duration(point.OffsetMS-prev) * time.Millisecond
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return delivered, ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return delivered, err
		}
		prev = point.OffsetMS

		sample := domain.MotionSample{
			X:  point.X,
			Y:  point.Y,
			Z:  point.Z,
			At: s.start.Add(time.Duration(point.OffsetMS) * time.Millisecond),
		}
		for _, handler := range s.snapshot() {
			handler(sample)
			delivered++
		}
	}

	return delivered, nil
}

func (s *Sensor) snapshot() []func(domain.MotionSample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.handlers))
	for id := range s.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]func(domain.MotionSample), 0, len(ids))
	for _, id := range ids {
		out = append(out, s.handlers[id])
	}
	return out
}
