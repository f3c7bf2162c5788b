package capture

import (
	"context"
	"sync"
	"time"

	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/geo"
	"fieldops/internal/domain/service"
)

// TrackingStatus is the observable state of live location tracking.
type TrackingStatus struct {
	Active   bool               `json:"active"`
	Sequence uint64             `json:"sequence"`
	Position *entity.Coordinate `json:"position,omitempty"`
	Accuracy float64            `json:"accuracy,omitempty"`
	FixedAt  *time.Time         `json:"fixedAt,omitempty"`
	Match    *geo.Match         `json:"match,omitempty"`
	Error    *TrackingError     `json:"error,omitempty"`
}

// TrackingError explains why tracking stopped.
type TrackingError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// tracker consumes a position subscription and re-matches on every fix.
// Results are numbered and only a newer result replaces the stored one.
type tracker struct {
	sub        service.PositionSubscription
	matcher    geo.Matcher
	candidates []entity.Location
	cancel     context.CancelFunc
	done       chan struct{}
	stopOnce   sync.Once

	mu      sync.Mutex
	next    uint64
	applied uint64
	status  TrackingStatus
}

func startTracker(ctx context.Context, sub service.PositionSubscription, matcher geo.Matcher, candidates []entity.Location) *tracker {
	ctx, cancel := context.WithCancel(ctx)
	t := &tracker{
		sub:        sub,
		matcher:    matcher,
		candidates: candidates,
		cancel:     cancel,
		done:       make(chan struct{}),
		status:     TrackingStatus{Active: true},
	}

	go t.run(ctx)

	return t
}

func (t *tracker) run(ctx context.Context) {
	defer close(t.done)

	updates := t.sub.Updates()
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				t.finish(nil)
				return
			}

			if update.Err != nil {
				t.finish(update.Err)
				return
			}

			t.handle(update)
		}
	}
}

func (t *tracker) handle(update service.PositionUpdate) {
	seq := t.reserve()
	match, found := t.matcher.Match(update.Coordinate, t.candidates)

	var m *geo.Match
	if found {
		m = &match
	}

	t.apply(seq, update, m)
}

func (t *tracker) reserve() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++

	return t.next
}

// apply stores a result unless a newer one is already stored.
func (t *tracker) apply(seq uint64, update service.PositionUpdate, match *geo.Match) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq <= t.applied {
		return false
	}

	pos := update.Coordinate
	fixedAt := update.Timestamp
	t.applied = seq
	t.status.Sequence = seq
	t.status.Position = &pos
	t.status.Accuracy = update.Accuracy
	t.status.FixedAt = &fixedAt
	t.status.Match = match

	return true
}

func (t *tracker) finish(devErr *service.DeviceError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status.Active = false
	if devErr != nil {
		appErr := deviceAppError(devErr.Status, devErr.Reason)
		t.status.Error = &TrackingError{Code: appErr.ErrorCode(), Message: appErr.Error()}
	}
}

func (t *tracker) snapshot() TrackingStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.status
	if s.Match != nil {
		m := *s.Match
		s.Match = &m
	}

	return s
}

// stop ends the subscription and waits for the consumer to exit. Only the
// first call reports the subscription's close error.
func (t *tracker) stop() error {
	var err error
	t.stopOnce.Do(func() {
		t.cancel()
		err = t.sub.Close()
		<-t.done

		t.mu.Lock()
		t.status.Active = false
		t.mu.Unlock()
	})

	return err
}
