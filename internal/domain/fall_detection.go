package domain

import (
	"fmt"
	"time"
)

type FallDetectionConfig struct {
	Threshold         float64
	BurstWindow       time.Duration
	MinSamplesInBurst int
	Cooldown          time.Duration
	Severity          SeverityThresholds
}

func DefaultFallDetectionConfig() FallDetectionConfig {
	return FallDetectionConfig{
		Threshold:         50,
		BurstWindow:       700 * time.Millisecond,
		MinSamplesInBurst: 2,
		Cooldown:          15 * time.Second,
		Severity:          DefaultSeverityThresholds(),
	}
}

func (c FallDetectionConfig) Validate() error {
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive")
	}
	if c.BurstWindow <= 0 {
		return fmt.Errorf("burst window must be positive")
	}
	if c.MinSamplesInBurst < 1 {
		return fmt.Errorf("min samples in burst must be at least 1")
	}
	if c.Cooldown < 0 {
		return fmt.Errorf("cooldown must not be negative")
	}
	if err := c.Severity.Validate(); err != nil {
		return err
	}

	return nil
}

type FallEvent struct {
	PeakImpact float64
	Severity   Severity
	DetectedAt time.Time
}

// FallDetectorState is the whole memory of the detector between two samples.
// The zero value is a freshly armed detector that has never fired.
type FallDetectorState struct {
	Previous *MotionSample
	Impacts  []ImpactSample
	LastFall time.Time
}

// Rearm drops the reading history but keeps the cooldown reference, so a
// stop/start cycle cannot produce a second alert for the same fall.
func (s FallDetectorState) Rearm() FallDetectorState {
	return FallDetectorState{LastFall: s.LastFall}
}

// IngestMotion advances the detector by one sample. It never mutates the
// state it is given.
func IngestMotion(cfg FallDetectionConfig, state FallDetectorState, sample MotionSample) (FallDetectorState, *FallEvent) {
	next := FallDetectorState{
		LastFall: state.LastFall,
		Impacts:  append([]ImpactSample(nil), state.Impacts...),
	}
	current := sample
	next.Previous = &current

	if state.Previous == nil {
		return next, nil
	}

	delta := sample.Delta(*state.Previous)
	if delta <= cfg.Threshold {
		return next, nil
	}

	next.Impacts = append(next.Impacts, ImpactSample{At: sample.At, Magnitude: delta})
	next.Impacts = pruneImpacts(next.Impacts, sample.At, cfg.BurstWindow)

	if len(next.Impacts) < cfg.MinSamplesInBurst {
		return next, nil
	}
	if !state.LastFall.IsZero() && sample.At.Sub(state.LastFall) <= cfg.Cooldown {
		return next, nil
	}

	peak := peakImpact(next.Impacts)
	next.LastFall = sample.At
	next.Impacts = nil

	return next, &FallEvent{
		PeakImpact: peak,
		Severity:   cfg.Severity.Classify(peak),
		DetectedAt: sample.At,
	}
}

func pruneImpacts(impacts []ImpactSample, now time.Time, window time.Duration) []ImpactSample {
	kept := impacts[:0]
	for _, impact := range impacts {
		if now.Sub(impact.At) > window {
			continue
		}
		kept = append(kept, impact)
	}
	return kept
}

func peakImpact(impacts []ImpactSample) float64 {
	peak := 0.0
	for _, impact := range impacts {
		if impact.Magnitude > peak {
			peak = impact.Magnitude
		}
	}
	return peak
}
