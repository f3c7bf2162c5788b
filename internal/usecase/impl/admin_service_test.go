package impl

import (
	"context"
	"encoding/json"
	"testing"

	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	mockSvc "fieldops/internal/mocks/service"
	"fieldops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service usecase.AdminUsecase
	backend *mockSvc.MockBackend
	state   usecase.StateUsecase
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	t.Helper()

	backend := mockSvc.NewMockBackend(t)
	state := NewStateService(backend, discardLogger())

	return adminServiceFixtures{
		service: NewAdminService(backend, state, discardLogger()),
		backend: backend,
		state:   state,
	}
}

func TestAdminService_CreateLocation_RefreshesCache(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	session := testSession("s-1", entity.RoleAdmin, "")

	created := &entity.Location{ID: "l-1", City: "Lisbon", Name: "Park", Area: 120}
	fx.backend.EXPECT().
		CreateLocation(ctx, entity.Location{City: "Lisbon", Name: "Park", Area: 120}).
		Return(created, nil)
	fx.backend.EXPECT().ListLocations(mock.Anything).Return([]entity.Location{*created}, nil).Once()

	loc, err := fx.service.CreateLocation(ctx, session, usecase.LocationInput{
		City: " Lisbon ",
		Name: "Park ",
		Area: 120,
	})

	require.NoError(t, err)
	assert.Equal(t, created, loc)

	cached, err := fx.service.ListLocations(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, []entity.Location{*created}, cached)
}

func TestAdminService_LocationValidation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.LocationInput
	}{
		{name: "missing city", input: usecase.LocationInput{Name: "Park"}},
		{name: "missing name", input: usecase.LocationInput{City: "Lisbon"}},
		{name: "negative area", input: usecase.LocationInput{City: "Lisbon", Name: "Park", Area: -1}},
		{
			name: "coordinate out of range",
			input: usecase.LocationInput{
				City:       "Lisbon",
				Name:       "Park",
				Coordinate: &entity.Coordinate{Latitude: 91, Longitude: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)

			_, err := fx.service.CreateLocation(context.Background(), testSession("s-1", entity.RoleAdmin, ""), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAdminService_UpdateLocation_CompletesArea(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	session := testSession("s-1", entity.RoleAdmin, "")

	want := entity.Location{ID: "l-1", City: "Lisbon", Name: "Park", Area: 350}
	fx.backend.EXPECT().UpdateLocation(ctx, want).Return(&want, nil)
	fx.backend.EXPECT().ListLocations(mock.Anything).Return([]entity.Location{want}, nil)

	loc, err := fx.service.UpdateLocation(ctx, session, "l-1", usecase.LocationInput{City: "Lisbon", Name: "Park", Area: 350})

	require.NoError(t, err)
	assert.InDelta(t, 350, loc.Area, 0.001)
}

func TestAdminService_DeleteLocation_BackendError(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	backendErr := domainerrors.NewBackendError(404, "not found")

	fx.backend.EXPECT().DeleteLocation(ctx, "l-9").Return(backendErr)

	err := fx.service.DeleteLocation(ctx, testSession("s-1", entity.RoleAdmin, ""), "l-9")

	assert.ErrorIs(t, err, backendErr)
}

func TestAdminService_LocationsGeoJSON(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	session := testSession("s-1", entity.RoleAdmin, "")

	fx.backend.EXPECT().ListLocations(mock.Anything).Return([]entity.Location{
		{ID: "l-1", City: "Lisbon", Name: "Park", Area: 120, Coordinate: &entity.Coordinate{Latitude: 38.7, Longitude: -9.1}},
		{ID: "l-2", City: "Lisbon", Name: "No GPS"},
	}, nil)

	data, err := fx.service.LocationsGeoJSON(ctx, session)
	require.NoError(t, err)

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			ID       string `json:"id"`
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "FeatureCollection", doc.Type)
	require.Len(t, doc.Features, 1)
	assert.Equal(t, "l-1", doc.Features[0].ID)
	assert.Equal(t, "Point", doc.Features[0].Geometry.Type)
	assert.Equal(t, []float64{-9.1, 38.7}, doc.Features[0].Geometry.Coordinates)
	assert.Equal(t, "Park", doc.Features[0].Properties["name"])
}

func TestAdminService_CreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		session := testSession("s-1", entity.RoleAdmin, "")

		input := service.UserInput{
			Email:        "op@example.com",
			Name:         "Operator",
			Password:     "pw",
			Role:         entity.RoleOperator,
			AssignedCity: strPtr("Porto"),
		}
		created := &entity.User{ID: "u-2", Email: input.Email, Name: input.Name, Role: input.Role, AssignedCity: input.AssignedCity}

		fx.backend.EXPECT().CreateUser(ctx, input).Return(created, nil)
		fx.backend.EXPECT().ListUsers(mock.Anything).Return([]entity.User{*created}, nil)

		user, err := fx.service.CreateUser(ctx, session, input)

		require.NoError(t, err)
		assert.Equal(t, created, user)
	})

	t.Run("scoped role needs a city", func(t *testing.T) {
		fx := createTestAdminService(t)

		_, err := fx.service.CreateUser(context.Background(), testSession("s-1", entity.RoleAdmin, ""), service.UserInput{
			Email:        "f@example.com",
			Name:         "Fiscal",
			Password:     "pw",
			Role:         entity.RoleFiscal,
			AssignedCity: strPtr("  "),
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("password required", func(t *testing.T) {
		fx := createTestAdminService(t)

		_, err := fx.service.CreateUser(context.Background(), testSession("s-1", entity.RoleAdmin, ""), service.UserInput{
			Email: "a@example.com",
			Name:  "Admin",
			Role:  entity.RoleAdmin,
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestAdminService(t)

		_, err := fx.service.CreateUser(context.Background(), testSession("s-1", entity.RoleAdmin, ""), service.UserInput{
			Email:    "a@example.com",
			Name:     "Admin",
			Password: "pw",
			Role:     entity.Role("ROOT"),
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAdminService_UpdateUser_KeepsPassword(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	input := service.UserInput{Email: "a@example.com", Name: "Admin", Role: entity.RoleAdmin}
	fx.backend.EXPECT().UpdateUser(ctx, "u-2", input).Return(&entity.User{ID: "u-2"}, nil)
	fx.backend.EXPECT().ListUsers(mock.Anything).Return(nil, domainerrors.NewBackendError(502, "down"))

	user, err := fx.service.UpdateUser(ctx, testSession("s-1", entity.RoleAdmin, ""), "u-2", input)

	require.NoError(t, err)
	assert.Equal(t, "u-2", user.ID)
}

func TestAdminService_DeleteUser(t *testing.T) {
	t.Run("cannot delete self", func(t *testing.T) {
		fx := createTestAdminService(t)
		session := testSession("s-1", entity.RoleAdmin, "")

		err := fx.service.DeleteUser(context.Background(), session, session.User.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.backend.EXPECT().DeleteUser(ctx, "u-9").Return(nil)
		fx.backend.EXPECT().ListUsers(mock.Anything).Return([]entity.User{}, nil)

		require.NoError(t, fx.service.DeleteUser(ctx, testSession("s-1", entity.RoleAdmin, ""), "u-9"))
	})
}
