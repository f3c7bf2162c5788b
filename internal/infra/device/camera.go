// Package device provides the camera and geolocation adapters used by capture workflows.
package device

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"fieldops/config"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
)

const (
	defaultCameraTimeout = 10 * time.Second
	maxFrameSize         = 20 << 20
)

// SnapshotCamera opens network cameras that serve a still image per GET,
// one URL per facing mode.
type SnapshotCamera struct {
	urls       map[service.FacingMode]string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSnapshotCamera creates the camera adapter from the capture configuration.
func NewSnapshotCamera(cfg *config.Config, logger *slog.Logger) service.Camera {
	timeout := defaultCameraTimeout
	urls := map[service.FacingMode]string{}

	if cfg.Capture != nil {
		if cfg.Capture.CameraTimeout > 0 {
			timeout = cfg.Capture.CameraTimeout
		}
		urls[service.FacingRear] = strings.TrimSpace(cfg.Capture.Camera.Rear)
		urls[service.FacingFront] = strings.TrimSpace(cfg.Capture.Camera.Front)
		urls[service.FacingAny] = strings.TrimSpace(cfg.Capture.Camera.Any)
	}

	return &SnapshotCamera{
		urls:       urls,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// candidates lists the URLs that satisfy constraint, most preferred first.
func (c *SnapshotCamera) candidates(constraint service.CameraConstraint) []string {
	var order []service.FacingMode
	switch {
	case constraint.Exact && constraint.Facing != service.FacingAny:
		order = []service.FacingMode{constraint.Facing}
	case constraint.Facing == service.FacingFront:
		order = []service.FacingMode{service.FacingFront, service.FacingAny, service.FacingRear}
	default:
		order = []service.FacingMode{constraint.Facing, service.FacingAny, service.FacingRear, service.FacingFront}
	}

	seen := make(map[string]bool)
	var urls []string
	for _, mode := range order {
		if u := c.urls[mode]; u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}

	return urls
}

// Acquire tries the matching cameras and opens the first one that answers.
func (c *SnapshotCamera) Acquire(ctx context.Context, constraint service.CameraConstraint) service.Acquisition[service.CameraStream] {
	urls := c.candidates(constraint)
	if len(urls) == 0 {
		return service.Refused[service.CameraStream](service.AcquireUnavailable, "no camera for facing mode "+facingName(constraint.Facing))
	}

	var refusal service.Acquisition[service.CameraStream]
	for _, u := range urls {
		stream := &snapshotStream{url: u, client: c.httpClient, maxSize: maxFrameSize}

		if _, err := stream.Capture(ctx); err != nil {
			refusal = classify(err)
			if c.logger != nil {
				c.logger.DebugContext(ctx, "[Camera] Test snapshot failed",
					slog.String("facing", facingName(constraint.Facing)),
					slog.Any("error", err),
				)
			}

			continue
		}

		return service.Granted[service.CameraStream](stream)
	}

	return refusal
}

func facingName(mode service.FacingMode) string {
	if mode == service.FacingAny {
		return "any"
	}

	return string(mode)
}

// snapshotStatusError is a non-success camera response.
type snapshotStatusError struct {
	status int
}

func (e *snapshotStatusError) Error() string {
	return "camera responded with " + http.StatusText(e.status)
}

func classify(err error) service.Acquisition[service.CameraStream] {
	var statusErr *snapshotStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return service.Refused[service.CameraStream](service.AcquireDenied, statusErr.Error())
		case http.StatusNotFound, http.StatusServiceUnavailable:
			return service.Refused[service.CameraStream](service.AcquireUnavailable, statusErr.Error())
		}
	}

	return service.Refused[service.CameraStream](service.AcquireFailed, err.Error())
}

type snapshotStream struct {
	url     string
	client  *http.Client
	maxSize int64

	mu     sync.Mutex
	closed bool
}

var errStreamClosed = errors.New("camera stream is closed")

// Capture fetches the current frame.
func (s *snapshotStream) Capture(ctx context.Context) (service.Frame, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return service.Frame{}, errStreamClosed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return service.Frame{}, errors.WithStack(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return service.Frame{}, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return service.Frame{}, &snapshotStatusError{status: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSize+1))
	if err != nil {
		return service.Frame{}, errors.Wrap(err, "read frame")
	}
	if int64(len(data)) > s.maxSize {
		return service.Frame{}, errors.Errorf("camera frame exceeds %d bytes", s.maxSize)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
	}

	return service.Frame{ContentType: contentType, Data: data}, nil
}

// Close releases the stream. Capturing from a closed stream fails.
func (s *snapshotStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errStreamClosed
	}
	s.closed = true

	return nil
}
