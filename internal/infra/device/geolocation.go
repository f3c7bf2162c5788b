package device

import (
	"context"
	"log/slog"
	"sync"

	"fieldops/internal/domain/service"
)

const subscriptionBuffer = 16

// PositionHub fans position fixes pushed by field clients out to the
// workflows subscribed to that client.
type PositionHub struct {
	mu     sync.Mutex
	subs   map[string]map[*subscription]struct{}
	logger *slog.Logger
}

// NewPositionHub creates an empty hub.
func NewPositionHub(logger *slog.Logger) *PositionHub {
	return &PositionHub{
		subs:   make(map[string]map[*subscription]struct{}),
		logger: logger,
	}
}

// NewGeolocation exposes the hub as the geolocation capability.
func NewGeolocation(h *PositionHub) service.Geolocation {
	return h
}

// NewPositionFeed exposes the hub as the sink of pushed fixes.
func NewPositionFeed(h *PositionHub) service.PositionFeed {
	return h
}

// Subscribe opens a subscription to the fixes of deviceID.
func (h *PositionHub) Subscribe(ctx context.Context, deviceID string, _ bool) service.Acquisition[service.PositionSubscription] {
	if deviceID == "" {
		return service.Refused[service.PositionSubscription](service.AcquireUnavailable, "no device to track")
	}

	if err := ctx.Err(); err != nil {
		return service.Refused[service.PositionSubscription](service.AcquireFailed, err.Error())
	}

	sub := &subscription{
		hub:      h,
		deviceID: deviceID,
		updates:  make(chan service.PositionUpdate, subscriptionBuffer),
	}

	h.mu.Lock()
	if h.subs[deviceID] == nil {
		h.subs[deviceID] = make(map[*subscription]struct{})
	}
	h.subs[deviceID][sub] = struct{}{}
	h.mu.Unlock()

	return service.Granted[service.PositionSubscription](sub)
}

// Publish delivers a fix to every subscriber of deviceID and returns how
// many received it. A subscriber that falls behind loses its oldest fix.
func (h *PositionHub) Publish(deviceID string, update service.PositionUpdate) int {
	subs := h.subscribers(deviceID)
	for _, s := range subs {
		s.deliver(update)
	}

	return len(subs)
}

// Fail ends every subscription of deviceID with a device error.
func (h *PositionHub) Fail(deviceID string, devErr *service.DeviceError) int {
	subs := h.subscribers(deviceID)
	for _, s := range subs {
		s.fail(devErr)
	}

	if len(subs) > 0 && h.logger != nil {
		h.logger.Info("[Geolocation] Device reported an error",
			slog.String("device_id", deviceID),
			slog.String("status", string(devErr.Status)),
			slog.String("reason", devErr.Reason),
		)
	}

	return len(subs)
}

// Subscribers returns the number of open subscriptions of deviceID.
func (h *PositionHub) Subscribers(deviceID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs[deviceID])
}

func (h *PositionHub) subscribers(deviceID string) []*subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*subscription, 0, len(h.subs[deviceID]))
	for s := range h.subs[deviceID] {
		out = append(out, s)
	}

	return out
}

func (h *PositionHub) remove(s *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subs[s.deviceID], s)
	if len(h.subs[s.deviceID]) == 0 {
		delete(h.subs, s.deviceID)
	}
}

type subscription struct {
	hub      *PositionHub
	deviceID string
	updates  chan service.PositionUpdate

	mu     sync.Mutex
	closed bool
}

func (s *subscription) Updates() <-chan service.PositionUpdate {
	return s.updates
}

func (s *subscription) deliver(update service.PositionUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.push(update)
	}
}

func (s *subscription) fail(devErr *service.DeviceError) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.push(service.PositionUpdate{Err: devErr})
	s.closed = true
	close(s.updates)
	s.mu.Unlock()

	s.hub.remove(s)
}

// push enqueues update, dropping the oldest queued update when full.
// Callers hold s.mu.
func (s *subscription) push(update service.PositionUpdate) {
	for {
		select {
		case s.updates <- update:
			return
		default:
		}

		select {
		case <-s.updates:
		default:
		}
	}
}

// Close ends the subscription. It is safe to call more than once.
func (s *subscription) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.updates)
	}
	s.mu.Unlock()

	s.hub.remove(s)

	return nil
}
