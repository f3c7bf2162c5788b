package geo

import (
	"math"
	"testing"

	"fieldops/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coord(lat, lng float64) *entity.Coordinate {
	return &entity.Coordinate{Latitude: lat, Longitude: lng}
}

// metersNorth returns the latitude offset of d meters along a meridian.
func metersNorth(d float64) float64 {
	return d / EarthRadiusMeters * 180 / math.Pi
}

func TestDistance(t *testing.T) {
	a := entity.Coordinate{Latitude: -23.5505, Longitude: -46.6333}
	b := entity.Coordinate{Latitude: -22.9068, Longitude: -43.1729}

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, Distance(a, b), Distance(b, a))
	})

	t.Run("zero for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(a, a))
	})

	t.Run("100 meters north-south", func(t *testing.T) {
		north := entity.Coordinate{Latitude: a.Latitude + 100.0/111195.0, Longitude: a.Longitude}
		assert.InDelta(t, 100.0, Distance(a, north), 1.0)
	})

	t.Run("known city pair", func(t *testing.T) {
		// São Paulo to Rio de Janeiro is roughly 360 km.
		assert.InDelta(t, 360000, Distance(a, b), 5000)
	})
}

func TestFindNearest(t *testing.T) {
	pos := entity.Coordinate{Latitude: -23.5505, Longitude: -46.6333}

	tests := []struct {
		name       string
		candidates []entity.Location
		radius     float64
		wantID     string
		wantFound  bool
	}{
		{
			name:      "no candidates",
			radius:    100,
			wantFound: false,
		},
		{
			name: "candidates without coordinates are ignored",
			candidates: []entity.Location{
				{ID: "a", Name: "Plaza"},
				{ID: "b", Name: "Park"},
			},
			radius:    100,
			wantFound: false,
		},
		{
			name: "closest within radius wins",
			candidates: []entity.Location{
				{ID: "far", Coordinate: coord(pos.Latitude+metersNorth(80), pos.Longitude)},
				{ID: "near", Coordinate: coord(pos.Latitude+metersNorth(20), pos.Longitude)},
				{ID: "out", Coordinate: coord(pos.Latitude+metersNorth(500), pos.Longitude)},
			},
			radius:    100,
			wantID:    "near",
			wantFound: true,
		},
		{
			name: "all outside radius",
			candidates: []entity.Location{
				{ID: "a", Coordinate: coord(pos.Latitude+metersNorth(150), pos.Longitude)},
				{ID: "b", Coordinate: coord(pos.Latitude-metersNorth(200), pos.Longitude)},
			},
			radius:    100,
			wantFound: false,
		},
		{
			name: "tie keeps first in input order",
			candidates: []entity.Location{
				{ID: "first", Coordinate: coord(pos.Latitude+metersNorth(50), pos.Longitude)},
				{ID: "second", Coordinate: coord(pos.Latitude+metersNorth(50), pos.Longitude)},
			},
			radius:    100,
			wantID:    "first",
			wantFound: true,
		},
		{
			name: "radius is configurable",
			candidates: []entity.Location{
				{ID: "a", Coordinate: coord(pos.Latitude+metersNorth(150), pos.Longitude)},
			},
			radius:    200,
			wantID:    "a",
			wantFound: true,
		},
		{
			name: "exact position matches with zero radius",
			candidates: []entity.Location{
				{ID: "here", Coordinate: coord(pos.Latitude, pos.Longitude)},
			},
			radius:    0,
			wantID:    "here",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindNearest(pos, tt.candidates, tt.radius)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantID, got.ID)
			} else {
				assert.Equal(t, entity.Location{}, got)
			}
		})
	}
}

func TestFindNearest_NeverExceedsRadius(t *testing.T) {
	origins := []entity.Coordinate{
		{Latitude: -23.5505, Longitude: -46.6333},
		{Latitude: 64.1466, Longitude: -21.9426},
		{Latitude: 0, Longitude: 179.9995},
		{Latitude: 89.9, Longitude: 10},
	}
	radii := []float64{10, 100, 1000, 2000000}

	for _, origin := range origins {
		candidates := make([]entity.Location, 0, 64)
		for i := range 64 {
			angle := float64(i) * 2 * math.Pi / 64
			d := float64(i*i) * 1.7
			lat := origin.Latitude + metersNorth(d)*math.Cos(angle)
			lng := origin.Longitude + metersNorth(d)*math.Sin(angle)/math.Max(math.Cos(origin.Latitude*math.Pi/180), 0.01)
			if lng > 180 {
				lng -= 360
			}
			candidates = append(candidates, entity.Location{ID: string(rune('A' + i%26)), Coordinate: coord(lat, lng)})
		}

		for _, radius := range radii {
			got, found := FindNearest(origin, candidates, radius)
			if !found {
				continue
			}
			require.NotNil(t, got.Coordinate)
			assert.LessOrEqual(t, Distance(origin, *got.Coordinate), radius)
		}
	}
}

func TestFindNearest_AntimeridianCandidate(t *testing.T) {
	pos := entity.Coordinate{Latitude: 0, Longitude: 179.9999}
	candidates := []entity.Location{
		{ID: "across", Coordinate: coord(0, -179.9999)},
	}

	got, found := FindNearest(pos, candidates, 100)
	require.True(t, found)
	assert.Equal(t, "across", got.ID)
}

func TestMatcher(t *testing.T) {
	assert.Equal(t, DefaultRadiusMeters, NewMatcher(0).Radius)
	assert.Equal(t, 250.0, NewMatcher(250).Radius)

	pos := entity.Coordinate{Latitude: 10, Longitude: 10}
	m := NewMatcher(0)
	match, ok := m.Match(pos, []entity.Location{
		{ID: "x", Coordinate: coord(10+metersNorth(40), 10)},
	})
	require.True(t, ok)
	assert.Equal(t, "x", match.Location.ID)
	assert.InDelta(t, 40, match.DistanceMeters, 0.01)
}
