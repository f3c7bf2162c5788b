package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/service"
	"fieldops/internal/usecase"
)

// appState is the cached backend data of one session.
type appState struct {
	mu        sync.RWMutex
	users     []entity.User
	locations []entity.Location
	records   []entity.ServiceRecord
	loaded    map[usecase.Collection]bool
	lastSeen  time.Time
}

// stateService implements the StateUsecase interface.
type stateService struct {
	backend service.Backend
	logger  *slog.Logger

	mu     sync.Mutex
	states map[string]*appState
	now    func() time.Time
}

// NewStateService is the constructor for stateService.
func NewStateService(backend service.Backend, logger *slog.Logger) usecase.StateUsecase {
	return &stateService{
		backend: backend,
		logger:  logger,
		states:  make(map[string]*appState),
		now:     time.Now,
	}
}

func (srv *stateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *stateService) state(sessionID string) *appState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	st, ok := srv.states[sessionID]
	if !ok {
		st = &appState{loaded: make(map[usecase.Collection]bool)}
		srv.states[sessionID] = st
	}
	st.lastSeen = srv.now()

	return st
}

// ensure loads a collection on first use.
func (srv *stateService) ensure(ctx context.Context, session *usecase.Session, c usecase.Collection) error {
	st := srv.state(session.ID)

	st.mu.RLock()
	loaded := st.loaded[c]
	st.mu.RUnlock()

	if loaded {
		return nil
	}

	return srv.Refresh(ctx, session, c)
}

// Users returns the cached users.
func (srv *stateService) Users(ctx context.Context, session *usecase.Session) ([]entity.User, error) {
	if err := srv.ensure(ctx, session, usecase.CollectionUsers); err != nil {
		return nil, err
	}

	st := srv.state(session.ID)
	st.mu.RLock()
	defer st.mu.RUnlock()

	return slices.Clone(st.users), nil
}

// Locations returns the cached locations.
func (srv *stateService) Locations(ctx context.Context, session *usecase.Session) ([]entity.Location, error) {
	if err := srv.ensure(ctx, session, usecase.CollectionLocations); err != nil {
		return nil, err
	}

	st := srv.state(session.ID)
	st.mu.RLock()
	defer st.mu.RUnlock()

	return slices.Clone(st.locations), nil
}

// Records returns the cached records, limited to the assigned city for scoped users.
func (srv *stateService) Records(ctx context.Context, session *usecase.Session) ([]entity.ServiceRecord, error) {
	if err := srv.ensure(ctx, session, usecase.CollectionRecords); err != nil {
		return nil, err
	}

	st := srv.state(session.ID)
	st.mu.RLock()
	defer st.mu.RUnlock()

	if !session.User.Role.IsScoped() {
		return slices.Clone(st.records), nil
	}

	city := session.User.City()
	out := make([]entity.ServiceRecord, 0, len(st.records))
	for _, r := range st.records {
		if r.LocationCity == city {
			out = append(out, r)
		}
	}

	return out, nil
}

// Refresh refetches collections from the backend. Fetches run without the
// lock; each result replaces its collection wholesale.
func (srv *stateService) Refresh(ctx context.Context, session *usecase.Session, collections ...usecase.Collection) error {
	if len(collections) == 0 {
		collections = []usecase.Collection{usecase.CollectionUsers, usecase.CollectionLocations, usecase.CollectionRecords}
	}

	st := srv.state(session.ID)
	for _, c := range collections {
		switch c {
		case usecase.CollectionUsers:
			users, err := srv.backend.ListUsers(ctx)
			if err != nil {
				return err
			}

			st.mu.Lock()
			st.users = users
			st.loaded[c] = true
			st.mu.Unlock()

		case usecase.CollectionLocations:
			locations, err := srv.backend.ListLocations(ctx)
			if err != nil {
				return err
			}

			st.mu.Lock()
			st.locations = locations
			st.loaded[c] = true
			st.mu.Unlock()

		case usecase.CollectionRecords:
			records, err := srv.backend.ListRecords(ctx, scopeCity(session))
			if err != nil {
				return err
			}

			st.mu.Lock()
			st.records = records
			st.loaded[c] = true
			st.mu.Unlock()
		}

		srv.log(ctx).Debug("Collection refreshed", slog.String("collection", string(c)))
	}

	return nil
}

// Replace swaps every collection at once.
func (srv *stateService) Replace(session *usecase.Session, data usecase.Collections) {
	st := srv.state(session.ID)

	st.mu.Lock()
	defer st.mu.Unlock()

	st.users = slices.Clone(data.Users)
	st.locations = slices.Clone(data.Locations)
	st.records = slices.Clone(data.Records)
	st.loaded[usecase.CollectionUsers] = true
	st.loaded[usecase.CollectionLocations] = true
	st.loaded[usecase.CollectionRecords] = true
}

// Drop forgets the session's cache.
func (srv *stateService) Drop(sessionID string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.states, sessionID)
}

// Sweep forgets caches unused since cutoff. Sessions that lapse without a
// logout are only released here.
func (srv *stateService) Sweep(cutoff time.Time) int {
	srv.mu.Lock()
	evicted := 0
	for id, st := range srv.states {
		if st.lastSeen.Before(cutoff) {
			delete(srv.states, id)
			evicted++
		}
	}
	srv.mu.Unlock()

	if evicted > 0 {
		srv.logger.Info("[State] Evicted idle session caches", slog.Int("count", evicted))
	}

	return evicted
}

// scopeCity is the city the backend should limit records to, empty for unscoped users.
func scopeCity(session *usecase.Session) string {
	if session.User.Role.IsScoped() {
		return session.User.City()
	}

	return ""
}
