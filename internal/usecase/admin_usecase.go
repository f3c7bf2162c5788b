package usecase

import (
	"context"

	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/service"
)

// LocationInput carries the writable fields of a location.
type LocationInput struct {
	City       string             `json:"city" validate:"required"`
	Name       string             `json:"name" validate:"required"`
	Area       float64            `json:"area" validate:"gte=0"`
	Coordinate *entity.Coordinate `json:"coordinate,omitempty"`
}

// AdminUsecase manages the master data held by the backend.
type AdminUsecase interface {
	ListLocations(ctx context.Context, session *Session) ([]entity.Location, error)
	CreateLocation(ctx context.Context, session *Session, input LocationInput) (*entity.Location, error)
	UpdateLocation(ctx context.Context, session *Session, id string, input LocationInput) (*entity.Location, error)
	DeleteLocation(ctx context.Context, session *Session, id string) error
	// LocationsGeoJSON renders the located locations as a FeatureCollection.
	LocationsGeoJSON(ctx context.Context, session *Session) ([]byte, error)

	ListUsers(ctx context.Context, session *Session) ([]entity.User, error)
	CreateUser(ctx context.Context, session *Session, input service.UserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, session *Session, id string, input service.UserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, session *Session, id string) error
}
