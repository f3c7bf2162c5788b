package capture

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultSessionTTL is how long an idle workflow is kept.
const DefaultSessionTTL = 2 * time.Hour

type registryEntry struct {
	workflow *Workflow
	lastSeen time.Time
}

// Registry holds one workflow per session and evicts idle ones.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
	hooks   []func(cutoff time.Time) int
}

// NewRegistry creates a registry that evicts workflows idle for longer than ttl.
func NewRegistry(ttl time.Duration, logger *slog.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &Registry{
		entries: make(map[string]*registryEntry),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// Get returns the workflow of a session and marks it as used.
func (r *Registry) Get(sessionID string) (*Workflow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		return nil, false
	}

	e.lastSeen = r.now()

	return e.workflow, true
}

// Put stores w for the session, releasing the devices of the workflow it replaces.
func (r *Registry) Put(sessionID string, w *Workflow) {
	r.mu.Lock()
	old, ok := r.entries[sessionID]
	r.entries[sessionID] = &registryEntry{workflow: w, lastSeen: r.now()}
	r.mu.Unlock()

	if ok && old.workflow != w {
		old.workflow.Close()
	}
}

// Remove drops the workflow of a session and releases its devices.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	e, ok := r.entries[sessionID]
	delete(r.entries, sessionID)
	r.mu.Unlock()

	if ok {
		e.workflow.Close()
	}
}

// Len returns the number of live workflows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// OnSweep registers fn to run on every sweep with the same idle cutoff, so
// per-session state kept outside the registry expires with its workflow.
func (r *Registry) OnSweep(fn func(cutoff time.Time) int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hooks = append(r.hooks, fn)
}

// Sweep evicts workflows idle for longer than the TTL and returns how many were evicted.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Workflow
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e.workflow)
			delete(r.entries, id)
		}
	}
	hooks := r.hooks
	r.mu.Unlock()

	for _, fn := range hooks {
		fn(cutoff)
	}

	for _, w := range expired {
		w.Close()
	}

	if len(expired) > 0 && r.logger != nil {
		r.logger.Info("[Capture] Evicted idle workflows", slog.Int("count", len(expired)))
	}

	return len(expired)
}

// Run sweeps periodically until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = r.ttl / 4
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close releases every workflow.
func (r *Registry) Close() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*registryEntry)
	r.mu.Unlock()

	for _, e := range entries {
		e.workflow.Close()
	}
}
