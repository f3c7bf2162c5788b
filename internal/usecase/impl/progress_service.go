package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"

	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/report"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
	"fieldops/internal/usecase"
)

// tally is the realized area of one (city, month), keyed by record ID.
type tally map[string]float64

func (t tally) total() float64 {
	var sum float64
	for _, area := range t {
		sum += area
	}

	return sum
}

func tallyKey(city string, month entity.YearMonth) string {
	return "tally/" + city + "/" + month.String()
}

// progressService implements the ProgressUsecase interface.
type progressService struct {
	store  service.KVStore
	logger *slog.Logger

	mu sync.Mutex
}

// NewProgressService is the constructor for progressService.
func NewProgressService(store service.KVStore, logger *slog.Logger) usecase.ProgressUsecase {
	return &progressService{
		store:  store,
		logger: logger,
	}
}

func (srv *progressService) loadTally(ctx context.Context, key string) (tally, error) {
	data, ok, err := srv.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return tally{}, nil
	}

	t := tally{}
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, domainerrors.NewStoreError(err, "tally "+key+" is unreadable")
	}

	return t, nil
}

// RecordSubmitted adds the record to its tally and reports the goals of the month.
func (srv *progressService) RecordSubmitted(ctx context.Context, event *service.RecordSubmittedEvent) ([]report.Progress, error) {
	if event.RecordID == "" || event.City == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event needs a record id and a city")
	}
	if math.IsNaN(event.Area) || event.Area < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event area must be a non-negative number")
	}

	month, err := entity.ParseYearMonth(event.Month)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	key := tallyKey(event.City, month)
	t, err := srv.loadTally(ctx, key)
	if err != nil {
		return nil, err
	}

	before := t.total()
	t[event.RecordID] = event.Area
	after := t.total()

	data, err := json.Marshal(t)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := srv.store.Set(ctx, key, data); err != nil {
		return nil, err
	}

	goals, err := loadGoals(ctx, srv.store)
	if err != nil {
		return nil, err
	}

	out := make([]report.Progress, 0)
	for _, g := range goals {
		if g.City != event.City || g.Month != month {
			continue
		}

		p := report.Progress{
			Goal:     g,
			Realized: after,
			Target:   g.TargetArea,
			Percent:  report.Percent(after, g.TargetArea),
		}
		out = append(out, p)

		if p.Reached() && report.Percent(before, g.TargetArea) < 100 {
			logger.Info("Goal reached",
				slog.String("goal_id", g.ID.String()),
				slog.String("city", g.City),
				slog.String("month", month.String()),
				slog.Float64("realized", after),
				slog.Float64("target", g.TargetArea),
			)
		}
	}

	logger.Info("Record counted towards goals",
		slog.String("record_id", event.RecordID),
		slog.String("city", event.City),
		slog.String("month", month.String()),
		slog.Int("goals", len(out)),
	)

	return out, nil
}
