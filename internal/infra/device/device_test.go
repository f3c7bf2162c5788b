package device

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldops/config"
	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jpegBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

func cameraServer(t *testing.T, status int) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		_, _ = w.Write(jpegBytes)
	}))
	t.Cleanup(srv.Close)

	return srv.URL
}

func newCamera(rear, front, anyURL string) service.Camera {
	cfg := &config.Config{Capture: &config.CaptureConfig{
		Camera:        config.CameraConfig{Rear: rear, Front: front, Any: anyURL},
		CameraTimeout: time.Second,
	}}

	return NewSnapshotCamera(cfg, nil)
}

func TestSnapshotCamera_Acquire(t *testing.T) {
	ctx := context.Background()
	rearExact := service.CameraConstraint{Facing: service.FacingRear, Exact: true}
	rearIdeal := service.CameraConstraint{Facing: service.FacingRear}

	t.Run("exact rear needs a rear camera", func(t *testing.T) {
		cam := newCamera("", "", cameraServer(t, http.StatusOK))

		acq := cam.Acquire(ctx, rearExact)
		assert.Equal(t, service.AcquireUnavailable, acq.Status)

		acq = cam.Acquire(ctx, rearIdeal)
		require.True(t, acq.OK(), "a preferred facing mode falls back to any camera")
		require.NoError(t, acq.Resource.Close())
	})

	t.Run("captures frames until closed", func(t *testing.T) {
		cam := newCamera(cameraServer(t, http.StatusOK), "", "")

		acq := cam.Acquire(ctx, rearExact)
		require.True(t, acq.OK())

		frame, err := acq.Resource.Capture(ctx)
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", frame.ContentType)
		assert.Equal(t, jpegBytes, frame.Data)

		require.NoError(t, acq.Resource.Close())
		_, err = acq.Resource.Capture(ctx)
		assert.Error(t, err)
	})

	tests := []struct {
		name   string
		status int
		want   service.AcquireStatus
	}{
		{"forbidden", http.StatusForbidden, service.AcquireDenied},
		{"unauthorized", http.StatusUnauthorized, service.AcquireDenied},
		{"missing", http.StatusNotFound, service.AcquireUnavailable},
		{"broken", http.StatusInternalServerError, service.AcquireFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newCamera(cameraServer(t, tt.status), "", "")

			acq := cam.Acquire(ctx, rearExact)
			assert.Equal(t, tt.want, acq.Status)
			assert.NotEmpty(t, acq.Reason)
		})
	}
}

func TestSnapshotStream_RejectsOversizedFrame(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(jpegBytes)
	}))
	t.Cleanup(srv.Close)

	exact := &snapshotStream{url: srv.URL, client: srv.Client(), maxSize: int64(len(jpegBytes))}
	frame, err := exact.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, frame.Data)

	small := &snapshotStream{url: srv.URL, client: srv.Client(), maxSize: int64(len(jpegBytes) - 1)}
	_, err = small.Capture(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestPositionHub_DeliversToSubscribers(t *testing.T) {
	hub := NewPositionHub(nil)
	ctx := context.Background()

	acq := hub.Subscribe(ctx, "session-1", true)
	require.True(t, acq.OK())
	other := hub.Subscribe(ctx, "session-2", true)
	require.True(t, other.OK())

	fix := service.PositionUpdate{Coordinate: entity.Coordinate{Latitude: -22.9, Longitude: -47.06}, Accuracy: 5}
	assert.Equal(t, 1, hub.Publish("session-1", fix))

	select {
	case got := <-acq.Resource.Updates():
		assert.Equal(t, fix, got)
	case <-time.After(time.Second):
		t.Fatal("fix was not delivered")
	}

	select {
	case <-other.Resource.Updates():
		t.Fatal("fix leaked to another device")
	default:
	}

	require.NoError(t, acq.Resource.Close())
	require.NoError(t, acq.Resource.Close())
	assert.Equal(t, 0, hub.Subscribers("session-1"))
	assert.Equal(t, 0, hub.Publish("session-1", fix))

	_, open := <-acq.Resource.Updates()
	assert.False(t, open)
}

func TestPositionHub_SlowSubscriberKeepsLatest(t *testing.T) {
	hub := NewPositionHub(nil)
	acq := hub.Subscribe(context.Background(), "session-1", true)
	require.True(t, acq.OK())

	for i := range subscriptionBuffer + 5 {
		hub.Publish("session-1", service.PositionUpdate{Accuracy: float64(i)})
	}

	var last service.PositionUpdate
	for range subscriptionBuffer {
		last = <-acq.Resource.Updates()
	}
	assert.InDelta(t, float64(subscriptionBuffer+4), last.Accuracy, 0)
}

func TestPositionHub_FailEndsSubscription(t *testing.T) {
	hub := NewPositionHub(nil)
	acq := hub.Subscribe(context.Background(), "session-1", true)
	require.True(t, acq.OK())

	for range subscriptionBuffer {
		hub.Publish("session-1", service.PositionUpdate{})
	}
	assert.Equal(t, 1, hub.Fail("session-1", &service.DeviceError{Status: service.AcquireDenied, Reason: "permission revoked"}))

	var last service.PositionUpdate
	for u := range acq.Resource.Updates() {
		last = u
	}
	require.NotNil(t, last.Err)
	assert.Equal(t, service.AcquireDenied, last.Err.Status)
	assert.Equal(t, 0, hub.Subscribers("session-1"))
	require.NoError(t, acq.Resource.Close())
}

func TestPositionHub_RefusesWithoutDevice(t *testing.T) {
	hub := NewPositionHub(nil)

	acq := hub.Subscribe(context.Background(), "", true)
	assert.Equal(t, service.AcquireUnavailable, acq.Status)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	acq = hub.Subscribe(ctx, "session-1", true)
	assert.Equal(t, service.AcquireFailed, acq.Status)
}
