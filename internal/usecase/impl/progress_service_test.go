package impl

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	"fieldops/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittedEvent(recordID, city, month string, area float64) *service.RecordSubmittedEvent {
	return &service.RecordSubmittedEvent{
		RecordID:    recordID,
		OperatorID:  "op-1",
		City:        city,
		Month:       month,
		ServiceType: entity.ServiceMowing.String(),
		Area:        area,
		SubmittedAt: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

func TestProgressService_RecordSubmitted(t *testing.T) {
	store := memory.NewKVStore()
	ctx := context.Background()
	goal := entity.Goal{ID: uuid.New(), City: "Lisbon", Month: march2025(), TargetArea: 100}
	require.NoError(t, saveGoals(ctx, store, []entity.Goal{
		goal,
		{ID: uuid.New(), City: "Porto", Month: march2025(), TargetArea: 100},
	}))

	srv := NewProgressService(store, discardLogger())

	progress, err := srv.RecordSubmitted(ctx, submittedEvent("r-1", "Lisbon", "2025-03", 60))
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, goal.ID, progress[0].Goal.ID)
	assert.InDelta(t, 60, progress[0].Percent, 0.001)
	assert.False(t, progress[0].Reached())

	progress, err = srv.RecordSubmitted(ctx, submittedEvent("r-2", "Lisbon", "2025-03", 50))
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.InDelta(t, 110, progress[0].Realized, 0.001)
	assert.True(t, progress[0].Reached())

	// Redelivery counts once.
	progress, err = srv.RecordSubmitted(ctx, submittedEvent("r-2", "Lisbon", "2025-03", 50))
	require.NoError(t, err)
	assert.InDelta(t, 110, progress[0].Realized, 0.001)
}

func TestProgressService_NoGoalForMonth(t *testing.T) {
	srv := NewProgressService(memory.NewKVStore(), discardLogger())

	progress, err := srv.RecordSubmitted(context.Background(), submittedEvent("r-1", "Lisbon", "2025-03", 60))

	require.NoError(t, err)
	assert.Empty(t, progress)
}

func TestProgressService_InvalidEvents(t *testing.T) {
	tests := []struct {
		name  string
		event *service.RecordSubmittedEvent
	}{
		{name: "missing record", event: submittedEvent("", "Lisbon", "2025-03", 1)},
		{name: "missing city", event: submittedEvent("r-1", "", "2025-03", 1)},
		{name: "bad month", event: submittedEvent("r-1", "Lisbon", "03/2025", 1)},
		{name: "negative area", event: submittedEvent("r-1", "Lisbon", "2025-03", -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewProgressService(memory.NewKVStore(), discardLogger())

			_, err := srv.RecordSubmitted(context.Background(), tt.event)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
