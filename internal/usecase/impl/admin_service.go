package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/geo"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
	"fieldops/internal/usecase"

	"github.com/paulmach/orb/geojson"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	backend service.Backend
	state   usecase.StateUsecase
	logger  *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(backend service.Backend, state usecase.StateUsecase, logger *slog.Logger) usecase.AdminUsecase {
	return &adminService{
		backend: backend,
		state:   state,
		logger:  logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// refresh reloads a collection after a mutation. The mutation already
// succeeded, so a failed reload is only logged.
func (srv *adminService) refresh(ctx context.Context, session *usecase.Session, c usecase.Collection) {
	if err := srv.state.Refresh(ctx, session, c); err != nil {
		srv.log(ctx).Warn("Failed to refresh collection",
			slog.String("collection", string(c)),
			slog.Any("error", err),
		)
	}
}

func locationFromInput(id string, input usecase.LocationInput) (entity.Location, error) {
	loc := entity.Location{
		ID:         id,
		City:       strings.TrimSpace(input.City),
		Name:       strings.TrimSpace(input.Name),
		Area:       input.Area,
		Coordinate: input.Coordinate,
	}

	switch {
	case loc.City == "":
		return loc, domainerrors.ErrValidationFailed.WithDetails("city is required")
	case loc.Name == "":
		return loc, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case math.IsNaN(loc.Area) || math.IsInf(loc.Area, 0) || loc.Area < 0:
		return loc, domainerrors.ErrValidationFailed.WithDetails("area must be a non-negative number")
	case loc.Coordinate != nil && !geo.IsValid(*loc.Coordinate):
		return loc, domainerrors.ErrValidationFailed.WithDetails("coordinate is out of range")
	}

	return loc, nil
}

// ListLocations returns the cached locations.
func (srv *adminService) ListLocations(ctx context.Context, session *usecase.Session) ([]entity.Location, error) {
	return srv.state.Locations(ctx, session)
}

// CreateLocation creates a location on the backend.
func (srv *adminService) CreateLocation(ctx context.Context, session *usecase.Session, input usecase.LocationInput) (*entity.Location, error) {
	loc, err := locationFromInput("", input)
	if err != nil {
		return nil, err
	}

	created, err := srv.backend.CreateLocation(ctx, loc)
	if err != nil {
		return nil, err
	}
	srv.refresh(ctx, session, usecase.CollectionLocations)

	return created, nil
}

// UpdateLocation replaces a location on the backend.
func (srv *adminService) UpdateLocation(ctx context.Context, session *usecase.Session, id string, input usecase.LocationInput) (*entity.Location, error) {
	if id == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location id is required")
	}

	loc, err := locationFromInput(id, input)
	if err != nil {
		return nil, err
	}

	updated, err := srv.backend.UpdateLocation(ctx, loc)
	if err != nil {
		return nil, err
	}
	srv.refresh(ctx, session, usecase.CollectionLocations)

	return updated, nil
}

// DeleteLocation removes a location on the backend.
func (srv *adminService) DeleteLocation(ctx context.Context, session *usecase.Session, id string) error {
	if err := srv.backend.DeleteLocation(ctx, id); err != nil {
		return err
	}
	srv.refresh(ctx, session, usecase.CollectionLocations)

	return nil
}

// LocationsGeoJSON renders the located locations as a FeatureCollection.
func (srv *adminService) LocationsGeoJSON(ctx context.Context, session *usecase.Session) ([]byte, error) {
	locations, err := srv.state.Locations(ctx, session)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, loc := range locations {
		if !loc.HasCoordinate() {
			continue
		}

		f := geojson.NewFeature(loc.Coordinate.Point())
		f.ID = loc.ID
		f.Properties["name"] = loc.Name
		f.Properties["city"] = loc.City
		f.Properties["area"] = loc.Area
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

func validateUser(input service.UserInput, creating bool) (service.UserInput, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	if input.AssignedCity != nil {
		city := strings.TrimSpace(*input.AssignedCity)
		input.AssignedCity = &city
		if city == "" {
			input.AssignedCity = nil
		}
	}

	switch {
	case input.Email == "" || !strings.Contains(input.Email, "@"):
		return input, domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	case input.Name == "":
		return input, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case !input.Role.IsValid():
		return input, domainerrors.ErrValidationFailed.WithDetails("role must be ADMIN, OPERATOR or FISCAL")
	case input.Role.IsScoped() && input.AssignedCity == nil:
		return input, domainerrors.ErrValidationFailed.WithDetails(input.Role.String() + " users need an assigned city")
	case creating && input.Password == "":
		return input, domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	return input, nil
}

// ListUsers returns the cached users.
func (srv *adminService) ListUsers(ctx context.Context, session *usecase.Session) ([]entity.User, error) {
	return srv.state.Users(ctx, session)
}

// CreateUser creates a user on the backend.
func (srv *adminService) CreateUser(ctx context.Context, session *usecase.Session, input service.UserInput) (*entity.User, error) {
	input, err := validateUser(input, true)
	if err != nil {
		return nil, err
	}

	user, err := srv.backend.CreateUser(ctx, input)
	if err != nil {
		return nil, err
	}
	srv.refresh(ctx, session, usecase.CollectionUsers)

	return user, nil
}

// UpdateUser replaces a user on the backend. An empty password keeps the current one.
func (srv *adminService) UpdateUser(ctx context.Context, session *usecase.Session, id string, input service.UserInput) (*entity.User, error) {
	input, err := validateUser(input, false)
	if err != nil {
		return nil, err
	}

	user, err := srv.backend.UpdateUser(ctx, id, input)
	if err != nil {
		return nil, err
	}
	srv.refresh(ctx, session, usecase.CollectionUsers)

	return user, nil
}

// DeleteUser removes a user on the backend. Admins cannot delete themselves.
func (srv *adminService) DeleteUser(ctx context.Context, session *usecase.Session, id string) error {
	if id == session.User.ID {
		return domainerrors.ErrForbidden.WithDetails("cannot delete the signed-in user")
	}

	if err := srv.backend.DeleteUser(ctx, id); err != nil {
		return err
	}
	srv.refresh(ctx, session, usecase.CollectionUsers)

	return nil
}
