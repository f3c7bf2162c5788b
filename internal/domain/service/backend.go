package service

import (
	"context"

	"fieldops/internal/domain/entity"
)

// AuthGateway exchanges credentials for a bearer token.
type AuthGateway interface {
	// Login returns the access token issued by the backend.
	Login(ctx context.Context, email, password string) (string, error)
}

// UserInput carries the writable fields of a user.
type UserInput struct {
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	Password     string      `json:"password,omitempty"`
	Role         entity.Role `json:"role"`
	AssignedCity *string     `json:"assignedCity,omitempty"`
}

// UserGateway manages the users collection of the backend.
type UserGateway interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	CreateUser(ctx context.Context, input UserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id string, input UserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// LocationGateway manages the locations collection of the backend.
type LocationGateway interface {
	ListLocations(ctx context.Context) ([]entity.Location, error)
	CreateLocation(ctx context.Context, location entity.Location) (*entity.Location, error)
	UpdateLocation(ctx context.Context, location entity.Location) (*entity.Location, error)
	DeleteLocation(ctx context.Context, id string) error
}

// RecordGateway manages the records collection of the backend.
type RecordGateway interface {
	// ListRecords returns every record, or only those of city when it is not empty.
	ListRecords(ctx context.Context, city string) ([]entity.ServiceRecord, error)
	// GetRecord returns the record with its authoritative photo lists.
	GetRecord(ctx context.Context, id string) (*entity.ServiceRecord, error)
	// CreateRecord stores the structured fields of a record and returns it with its identifier.
	CreateRecord(ctx context.Context, record entity.ServiceRecord) (*entity.ServiceRecord, error)
	DeleteRecord(ctx context.Context, id string) error
}

// PhotoFile is an encoded image ready for upload.
type PhotoFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// PhotoGateway stores and serves record photos.
type PhotoGateway interface {
	// UploadPhotos attaches files to a record under phase and returns their references.
	UploadPhotos(ctx context.Context, recordID string, phase entity.Phase, files []PhotoFile) ([]entity.PhotoRef, error)
	// FetchPhoto downloads the bytes behind a backend reference.
	FetchPhoto(ctx context.Context, ref entity.PhotoRef) ([]byte, error)
}

// Backend is the full REST surface of the system of record.
type Backend interface {
	AuthGateway
	UserGateway
	LocationGateway
	RecordGateway
	PhotoGateway
}

type accessTokenKey struct{}

// WithAccessToken returns a context carrying the bearer token for backend calls.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext returns the bearer token stored in ctx, if any.
func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}
