package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
)

// FallMonitor feeds motion samples from a sensor into the fall detector.
// A missing sensor or a refused permission leaves the monitor disarmed
// without reporting an error.
type FallMonitor struct {
	sensor  ports.MotionSensor
	cfg     domain.FallDetectionConfig
	metrics ports.Metrics
	logger  *slog.Logger

	mu          sync.Mutex
	state       domain.FallDetectorState
	onFall      func(domain.FallEvent)
	unsubscribe func()
	starting    bool
	generation  uint64
}

func NewFallMonitor(sensor ports.MotionSensor, cfg domain.FallDetectionConfig, metrics ports.Metrics, logger *slog.Logger) *FallMonitor {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &FallMonitor{
		sensor:  sensor,
		cfg:     cfg,
		metrics: metrics,
		logger:  loggerOrDiscard(logger),
	}
}

// Start subscribes to the sensor. Calling it while already armed does
// nothing, including replacing onFall.
func (m *FallMonitor) Start(ctx context.Context, onFall func(domain.FallEvent)) {
	m.mu.Lock()
	if m.unsubscribe != nil || m.starting {
		m.mu.Unlock()
		return
	}
	m.starting = true
	m.onFall = onFall
	m.state = m.state.Rearm()
	generation := m.generation
	m.mu.Unlock()

	if err := m.sensor.RequestPermission(ctx); err != nil {
		m.abortStart(generation, "motion permission unavailable", err)
		return
	}

	unsubscribe, err := m.sensor.Subscribe(m.handleSample)
	if err != nil {
		m.abortStart(generation, "motion sensor unavailable", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != generation {
		unsubscribe()
		return
	}
	m.starting = false
	m.unsubscribe = unsubscribe
	m.logger.Debug("fall monitor armed")
}

// Stop releases the sensor subscription. It is safe to call repeatedly.
func (m *FallMonitor) Stop() {
	m.mu.Lock()
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.starting = false
	m.onFall = nil
	m.generation++
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
		m.logger.Debug("fall monitor disarmed")
	}
}

func (m *FallMonitor) Armed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unsubscribe != nil
}

func (m *FallMonitor) abortStart(generation uint64, msg string, err error) {
	m.mu.Lock()
	if m.generation == generation {
		m.starting = false
		m.onFall = nil
	}
	m.mu.Unlock()

	m.logger.Debug(msg, "err", err)
}

func (m *FallMonitor) handleSample(sample domain.MotionSample) {
	m.mu.Lock()
	if m.unsubscribe == nil && !m.starting {
		m.mu.Unlock()
		return
	}

	next, event := domain.IngestMotion(m.cfg, m.state, sample)
	m.state = next
	onFall := m.onFall
	m.mu.Unlock()

	if event == nil {
		return
	}

	m.metrics.FallDetected(event.Severity)
	m.logger.Info("fall detected", "severity", event.Severity, "peak", event.PeakImpact)
	if onFall != nil {
		onFall(*event)
	}
}
