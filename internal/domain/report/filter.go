// Package report filters and aggregates service records for review and export.
package report

import (
	"sort"
	"time"

	"fieldops/internal/domain/entity"
)

// Criteria narrows a record collection. Zero values mean "no restriction".
type Criteria struct {
	Start        *time.Time
	End          *time.Time
	ServiceTypes map[entity.ServiceType]struct{}
	City         *string
}

// NewCriteria builds criteria from optional bounds and a list of service types.
func NewCriteria(start, end *time.Time, types []entity.ServiceType, city string) Criteria {
	c := Criteria{Start: start, End: end}
	if len(types) > 0 {
		c.ServiceTypes = make(map[entity.ServiceType]struct{}, len(types))
		for _, st := range types {
			c.ServiceTypes[st] = struct{}{}
		}
	}

	if city != "" {
		c.City = &city
	}

	return c
}

// ForUser forces the city of scoped users, whatever the caller asked for.
func (c Criteria) ForUser(u entity.User) Criteria {
	if u.Role.IsScoped() {
		city := u.City()
		c.City = &city
	}

	return c
}

// endOfDay returns the last representable instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Matches reports whether r satisfies every restriction of c.
func (c Criteria) Matches(r entity.ServiceRecord) bool {
	if c.Start != nil && r.StartTime.Before(*c.Start) {
		return false
	}

	if c.End != nil && r.StartTime.After(endOfDay(*c.End)) {
		return false
	}

	if len(c.ServiceTypes) > 0 {
		if _, ok := c.ServiceTypes[r.ServiceType]; !ok {
			return false
		}
	}

	if c.City != nil && r.LocationCity != *c.City {
		return false
	}

	return true
}

// Filter returns the records matching c, most recent start time first.
// Records with equal start times keep their input order.
func Filter(records []entity.ServiceRecord, c Criteria) []entity.ServiceRecord {
	out := make([]entity.ServiceRecord, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})

	return out
}

// TotalArea sums the area of records, counting unknown areas as zero.
func TotalArea(records []entity.ServiceRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.Area()
	}

	return total
}
