package capture

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/geo"
	mockSvc "fieldops/internal/mocks/service"

	"github.com/stretchr/testify/require"
)

type staticLocations []entity.Location

func (s staticLocations) Locations(context.Context) ([]entity.Location, error) {
	return s, nil
}

func ptr[T any](v T) *T { return &v }

var (
	testNow = time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)

	praca = entity.Coordinate{Latitude: -22.9056, Longitude: -47.0608}

	testLocations = staticLocations{
		{ID: "loc-1", City: "Campinas", Name: "Praça Central", Area: 1200, Coordinate: &praca},
		{ID: "loc-2", City: "Campinas", Name: "Parque Taquaral", Area: 5400, Coordinate: &entity.Coordinate{Latitude: -22.8747, Longitude: -47.0556}},
		{ID: "loc-3", City: "Santos", Name: "Orla"},
	}

	jpegPhoto = Photo{ContentType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff, 0xd9}}
)

func testOperator(city *string) entity.User {
	return entity.User{ID: "op-1", Name: "Ana", Role: entity.RoleOperator, AssignedCity: city}
}

type workflowFixture struct {
	backend   *mockSvc.MockBackend
	camera    *mockSvc.MockCamera
	geoloc    *mockSvc.MockGeolocation
	submitted []entity.ServiceRecord
	workflow  *Workflow
}

func newFixture(t *testing.T, operator entity.User) *workflowFixture {
	t.Helper()

	f := &workflowFixture{
		backend: mockSvc.NewMockBackend(t),
		camera:  mockSvc.NewMockCamera(t),
		geoloc:  mockSvc.NewMockGeolocation(t),
	}

	f.workflow = New(Options{
		Operator:    operator,
		DeviceID:    "session-1",
		Gateway:     f.backend,
		Locations:   testLocations,
		Camera:      f.camera,
		Geolocation: f.geoloc,
		Matcher:     geo.NewMatcher(100),
		OnSubmitted: func(_ context.Context, r entity.ServiceRecord) {
			f.submitted = append(f.submitted, r)
		},
		Now: func() time.Time { return testNow },
	})

	return f
}

// advanceToConfirm walks an operator with an assigned city up to CONFIRM.
func advanceToConfirm(t *testing.T, w *Workflow) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, w.SelectService(ctx, entity.ServiceMowing))
	require.NoError(t, w.SelectLocation(ctx, "loc-1"))
	_, err := w.AddPhoto(ctx, entity.PhaseBefore, jpegPhoto)
	require.NoError(t, err)
	require.NoError(t, w.FinishPhotos(ctx, entity.PhaseBefore))
	_, err = w.AddPhoto(ctx, entity.PhaseAfter, jpegPhoto)
	require.NoError(t, err)
	require.NoError(t, w.FinishPhotos(ctx, entity.PhaseAfter))
	require.Equal(t, StateConfirm, w.Snapshot().State)
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)

	type coded interface{ ErrorCode() string }
	var c coded
	require.ErrorAs(t, err, &c)

	return c.ErrorCode()
}
