package impl

import (
	"io"
	"log/slog"
	"time"

	"fieldops/internal/domain/entity"
	"fieldops/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func areaPtr(v float64) *float64 { return &v }

func testSession(id string, role entity.Role, city string) *usecase.Session {
	s := &usecase.Session{
		ID:    id,
		Token: "token-" + id,
		User: entity.User{
			ID:    "user-" + id,
			Email: id + "@example.com",
			Name:  "User " + id,
			Role:  role,
		},
		CreatedAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	if city != "" {
		s.User.AssignedCity = strPtr(city)
	}

	return s
}

func testRecord(id, city string, st entity.ServiceType, start time.Time, area float64) entity.ServiceRecord {
	return entity.ServiceRecord{
		ID:           id,
		OperatorID:   "op-1",
		OperatorName: "Operator",
		ServiceType:  st,
		LocationID:   strPtr("loc-" + id),
		LocationName: "Square " + id,
		LocationCity: city,
		LocationArea: areaPtr(area),
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	}
}
