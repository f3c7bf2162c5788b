package capture

import (
	"context"
	"sync"

	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
)

// DefaultCameraCascade is the facing-mode preference order: rear camera
// exactly, then rear as a preference, then any camera.
func DefaultCameraCascade() []service.CameraConstraint {
	return []service.CameraConstraint{
		{Facing: service.FacingRear, Exact: true},
		{Facing: service.FacingRear},
		{Facing: service.FacingAny},
	}
}

// CameraSession is an acquired camera stream with guaranteed single release.
type CameraSession struct {
	stream     service.CameraStream
	constraint service.CameraConstraint
	once       sync.Once
	closeErr   error
}

// AcquireCamera walks the cascade until a camera is granted. The returned
// error classifies the refusal: any denial wins over failures, and failures
// win over absent hardware.
func AcquireCamera(ctx context.Context, camera service.Camera, cascade []service.CameraConstraint) (*CameraSession, error) {
	if camera == nil {
		return nil, deviceAppError(service.AcquireUnavailable, "no camera configured")
	}

	if len(cascade) == 0 {
		cascade = DefaultCameraCascade()
	}

	worst := service.AcquireUnavailable
	reason := "no camera available"

	for _, constraint := range cascade {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		acq := camera.Acquire(ctx, constraint)
		if acq.OK() {
			return &CameraSession{stream: acq.Resource, constraint: constraint}, nil
		}

		if rank(acq.Status) > rank(worst) {
			worst = acq.Status
			reason = acq.Reason
		} else if acq.Status == worst && acq.Reason != "" {
			reason = acq.Reason
		}
	}

	return nil, deviceAppError(worst, reason)
}

func rank(status service.AcquireStatus) int {
	switch status {
	case service.AcquireDenied:
		return 3
	case service.AcquireFailed:
		return 2
	case service.AcquireUnavailable:
		return 1
	default:
		return 0
	}
}

// WithCamera acquires a camera, runs fn and releases the camera on every exit path.
func WithCamera(ctx context.Context, camera service.Camera, cascade []service.CameraConstraint, fn func(*CameraSession) error) (err error) {
	session, err := AcquireCamera(ctx, camera, cascade)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := session.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	return fn(session)
}

// Constraint returns the constraint that was granted.
func (s *CameraSession) Constraint() service.CameraConstraint {
	return s.constraint
}

// Capture snapshots the current frame.
func (s *CameraSession) Capture(ctx context.Context) (Photo, error) {
	frame, err := s.stream.Capture(ctx)
	if err != nil {
		return Photo{}, errors.Wrap(err, "capture frame")
	}

	if len(frame.Data) == 0 {
		return Photo{}, errors.New("camera returned an empty frame")
	}

	contentType := frame.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return Photo{ContentType: contentType, Data: frame.Data}, nil
}

// Close releases the stream. Calling it more than once is safe.
func (s *CameraSession) Close() error {
	s.once.Do(func() {
		s.closeErr = s.stream.Close()
	})

	return s.closeErr
}
