package ports

import (
	"context"

	"github.com/bnema/meshsos/internal/domain"
)

type MotionSensor interface {
	// RequestPermission returns domain.ErrPermissionDenied when the user refuses.
	RequestPermission(ctx context.Context) error
	// Subscribe returns domain.ErrSensorUnavailable when the platform has no sensor.
	Subscribe(handler func(domain.MotionSample)) (unsubscribe func(), err error)
}
