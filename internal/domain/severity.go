package domain

import "fmt"

type Severity string

const (
	SeverityLight    Severity = "light"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLight, SeverityModerate, SeveritySevere, SeverityCritical:
		return true
	default:
		return false
	}
}

// SeverityThresholds holds the exclusive upper bound of each band below
// critical. Anything at or above Severe is critical.
type SeverityThresholds struct {
	Light    float64
	Moderate float64
	Severe   float64
}

func DefaultSeverityThresholds() SeverityThresholds {
	return SeverityThresholds{Light: 70, Moderate: 100, Severe: 140}
}

func (t SeverityThresholds) Validate() error {
	if t.Light <= 0 {
		return fmt.Errorf("light severity bound must be positive")
	}
	if t.Moderate <= t.Light || t.Severe <= t.Moderate {
		return fmt.Errorf("severity bounds must be strictly increasing (got %v, %v, %v)", t.Light, t.Moderate, t.Severe)
	}

	return nil
}

func (t SeverityThresholds) Classify(peak float64) Severity {
	switch {
	case peak < t.Light:
		return SeverityLight
	case peak < t.Moderate:
		return SeverityModerate
	case peak < t.Severe:
		return SeveritySevere
	default:
		return SeverityCritical
	}
}
