package usecase

import (
	"context"
	"time"

	"fieldops/internal/domain/entity"
)

// Collection names a cached backend collection.
type Collection string

const (
	CollectionUsers     Collection = "users"
	CollectionLocations Collection = "locations"
	CollectionRecords   Collection = "records"
)

// Collections is a full copy of the cached backend data.
type Collections struct {
	Users     []entity.User          `json:"users"`
	Locations []entity.Location      `json:"locations"`
	Records   []entity.ServiceRecord `json:"records"`
}

// StateUsecase caches backend collections per session. Reads share the
// cache; a refresh replaces a collection wholesale and the last one wins.
type StateUsecase interface {
	Users(ctx context.Context, session *Session) ([]entity.User, error)
	Locations(ctx context.Context, session *Session) ([]entity.Location, error)
	// Records returns the records visible to the session's user.
	Records(ctx context.Context, session *Session) ([]entity.ServiceRecord, error)
	// Refresh refetches the named collections from the backend.
	Refresh(ctx context.Context, session *Session, collections ...Collection) error
	// Replace swaps every cached collection at once.
	Replace(session *Session, data Collections)
	// Drop forgets everything cached for a session.
	Drop(sessionID string)
	// Sweep drops the caches of sessions unused since cutoff and returns how many.
	Sweep(cutoff time.Time) int
}
