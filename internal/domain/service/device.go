package service

import (
	"context"
	"fmt"
	"time"

	"fieldops/internal/domain/entity"
)

// AcquireStatus is the outcome of a device acquisition.
type AcquireStatus string

const (
	AcquireGranted     AcquireStatus = "GRANTED"
	AcquireDenied      AcquireStatus = "DENIED"
	AcquireUnavailable AcquireStatus = "UNAVAILABLE"
	AcquireFailed      AcquireStatus = "FAILED"
)

// Acquisition is the result of asking for a device: the resource when
// granted, otherwise the reason it was refused.
type Acquisition[T any] struct {
	Status   AcquireStatus
	Resource T
	Reason   string
}

// Granted wraps an acquired resource.
func Granted[T any](resource T) Acquisition[T] {
	return Acquisition[T]{Status: AcquireGranted, Resource: resource}
}

// Refused builds a non-granted acquisition.
func Refused[T any](status AcquireStatus, reason string) Acquisition[T] {
	return Acquisition[T]{Status: status, Reason: reason}
}

// OK reports whether the resource was granted.
func (a Acquisition[T]) OK() bool {
	return a.Status == AcquireGranted
}

// DeviceError is a device failure classified by cause.
type DeviceError struct {
	Status AcquireStatus
	Reason string
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device %s: %s", e.Status, e.Reason)
}

// FacingMode selects which camera to open.
type FacingMode string

const (
	FacingRear  FacingMode = "environment"
	FacingFront FacingMode = "user"
	FacingAny   FacingMode = ""
)

// CameraConstraint describes the requested camera. Exact refuses any other
// facing mode; otherwise the facing mode is a preference.
type CameraConstraint struct {
	Facing FacingMode
	Exact  bool
}

// Frame is a still image captured from a camera stream.
type Frame struct {
	ContentType string
	Data        []byte
}

// CameraStream is an open camera. It must be closed exactly once.
type CameraStream interface {
	Capture(ctx context.Context) (Frame, error)
	Close() error
}

// Camera opens camera streams.
type Camera interface {
	Acquire(ctx context.Context, constraint CameraConstraint) Acquisition[CameraStream]
}

// PositionUpdate is one delivery of a position subscription: either a fix
// or an error that ends the subscription.
type PositionUpdate struct {
	Coordinate entity.Coordinate
	Accuracy   float64
	Timestamp  time.Time
	Err        *DeviceError
}

// PositionSubscription is a live stream of position updates.
// Updates is closed after Close or after an error update.
type PositionSubscription interface {
	Updates() <-chan PositionUpdate
	Close() error
}

// Geolocation subscribes to position updates of a device.
type Geolocation interface {
	Subscribe(ctx context.Context, deviceID string, highAccuracy bool) Acquisition[PositionSubscription]
}

// PositionFeed receives the position fixes that field clients push for a device.
type PositionFeed interface {
	// Publish delivers a fix to the device's subscribers and returns how many received it.
	Publish(deviceID string, update PositionUpdate) int
	// Fail ends the device's subscriptions with an error.
	Fail(deviceID string, err *DeviceError) int
}
