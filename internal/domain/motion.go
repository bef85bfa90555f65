package domain

import (
	"math"
	"time"
)

// MotionSample is a raw accelerometer reading including gravity.
type MotionSample struct {
	X  float64
	Y  float64
	Z  float64
	At time.Time
}

// Delta returns the Euclidean distance between two readings.
func (s MotionSample) Delta(prev MotionSample) float64 {
	dx := s.X - prev.X
	dy := s.Y - prev.Y
	dz := s.Z - prev.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

type ImpactSample struct {
	At        time.Time
	Magnitude float64
}
