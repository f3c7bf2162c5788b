// Package geo resolves a live position to the nearest known location.
package geo

import (
	"math"

	"fieldops/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusMeters is the spherical Earth radius used by Distance.
	EarthRadiusMeters = 6371000.0

	// DefaultRadiusMeters is the "same building or lot" matching tolerance.
	DefaultRadiusMeters = 100.0

	// Bounds wider than this are not worth building; every candidate is checked exactly.
	maxPrefilterMeters = 500000.0
)

// Distance returns the haversine great-circle distance between a and b in meters.
func Distance(a, b entity.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	deltaLat := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// IsValid reports whether c is a finite coordinate within Earth bounds.
func IsValid(c entity.Coordinate) bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Match is a location resolved from a position together with its distance.
type Match struct {
	Location       entity.Location `json:"location"`
	DistanceMeters float64         `json:"distanceMeters"`
}

// FindNearest returns the candidate closest to pos whose distance does not
// exceed radiusMeters. Candidates without a coordinate are skipped. On equal
// distances the earliest candidate wins.
func FindNearest(pos entity.Coordinate, candidates []entity.Location, radiusMeters float64) (entity.Location, bool) {
	m, ok := nearest(pos, candidates, radiusMeters)
	return m.Location, ok
}

func nearest(pos entity.Coordinate, candidates []entity.Location, radiusMeters float64) (Match, bool) {
	if radiusMeters < 0 || !IsValid(pos) {
		return Match{}, false
	}

	bound, usable := prefilterBound(pos, radiusMeters)

	var (
		best  Match
		found bool
	)

	for _, candidate := range candidates {
		if candidate.Coordinate == nil || !IsValid(*candidate.Coordinate) {
			continue
		}

		if usable && !bound.Contains(candidate.Coordinate.Point()) {
			continue
		}

		d := Distance(pos, *candidate.Coordinate)
		if d > radiusMeters {
			continue
		}

		if !found || d < best.DistanceMeters {
			best = Match{Location: candidate, DistanceMeters: d}
			found = true
		}
	}

	return best, found
}

// prefilterBound returns a box that contains every point within radius of pos.
// orb measures on a slightly larger sphere, so the radius is scaled up and
// padded. The box is unusable when it would wrap the antimeridian or when the
// radius is too wide for the box to be meaningful.
func prefilterBound(pos entity.Coordinate, radiusMeters float64) (orb.Bound, bool) {
	if radiusMeters > maxPrefilterMeters {
		return orb.Bound{}, false
	}

	scaled := radiusMeters*orb.EarthRadius/EarthRadiusMeters*1.01 + 1
	bound := orbgeo.NewBoundAroundPoint(pos.Point(), scaled)

	for _, v := range []float64{bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1]} {
		if math.IsNaN(v) {
			return orb.Bound{}, false
		}
	}

	if bound.Min[0] > bound.Max[0] {
		return orb.Bound{}, false
	}

	return bound, true
}

// Matcher applies FindNearest with the configured radius.
type Matcher struct {
	Radius float64
}

// NewMatcher returns a matcher for radiusMeters, or DefaultRadiusMeters when it is not positive.
func NewMatcher(radiusMeters float64) Matcher {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}

	return Matcher{Radius: radiusMeters}
}

// Match resolves pos against candidates.
func (m Matcher) Match(pos entity.Coordinate, candidates []entity.Location) (Match, bool) {
	return nearest(pos, candidates, m.Radius)
}
