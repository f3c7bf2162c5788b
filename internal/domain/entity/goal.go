package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// YearMonth is a calendar month, serialized as YYYY-MM.
type YearMonth struct {
	Year  int
	Month time.Month
}

const yearMonthLayout = "2006-01"

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q: %w", s, err)
	}

	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// YearMonthOf returns the month containing t, in t's location.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// String formats the month as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// IsZero reports whether the month is unset.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// Interval returns the half-open [start, end) range of the month in loc.
func (ym YearMonth) Interval(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether t falls within the month, evaluated in t's location.
func (ym YearMonth) Contains(t time.Time) bool {
	return t.Year() == ym.Year && t.Month() == ym.Month
}

// MarshalText implements encoding.TextMarshaler.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ym *YearMonth) UnmarshalText(text []byte) error {
	parsed, err := ParseYearMonth(string(text))
	if err != nil {
		return err
	}

	*ym = parsed

	return nil
}

// Goal is a monthly target of serviced area for a city.
type Goal struct {
	ID         uuid.UUID `json:"id"`
	City       string    `json:"city"`
	Month      YearMonth `json:"month"`
	TargetArea float64   `json:"targetArea"`
}
