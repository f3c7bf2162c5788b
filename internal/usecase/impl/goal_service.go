package impl

import (
	"cmp"
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"sync"

	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/report"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
	"fieldops/internal/usecase"

	"github.com/google/uuid"
)

const goalsKey = "goals"

// loadGoals reads the goal set; a missing key is an empty set.
func loadGoals(ctx context.Context, store service.KVStore) ([]entity.Goal, error) {
	data, ok, err := store.Get(ctx, goalsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entity.Goal{}, nil
	}

	var goals []entity.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, domainerrors.NewStoreError(err, "goal set is unreadable")
	}

	return goals, nil
}

func saveGoals(ctx context.Context, store service.KVStore, goals []entity.Goal) error {
	data, err := json.Marshal(goals)
	if err != nil {
		return errors.WithStack(err)
	}

	return store.Set(ctx, goalsKey, data)
}

// sortGoals orders goals by month, most recent first, then by city.
func sortGoals(goals []entity.Goal) {
	slices.SortStableFunc(goals, func(a, b entity.Goal) int {
		if c := cmp.Compare(b.Month.String(), a.Month.String()); c != 0 {
			return c
		}

		return cmp.Compare(a.City, b.City)
	})
}

// goalService implements the GoalUsecase interface.
type goalService struct {
	store  service.KVStore
	state  usecase.StateUsecase
	logger *slog.Logger

	// mu serializes read-modify-write cycles on the goal set.
	mu sync.Mutex
}

// NewGoalService is the constructor for goalService.
func NewGoalService(store service.KVStore, state usecase.StateUsecase, logger *slog.Logger) usecase.GoalUsecase {
	return &goalService{
		store:  store,
		state:  state,
		logger: logger,
	}
}

func (srv *goalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateGoal(input usecase.GoalInput) error {
	if strings.TrimSpace(input.City) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("city is required")
	}
	if input.Month.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("month is required")
	}
	if input.TargetArea < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("target area must not be negative")
	}

	return nil
}

// List returns every goal.
func (srv *goalService) List(ctx context.Context) ([]entity.Goal, error) {
	goals, err := loadGoals(ctx, srv.store)
	if err != nil {
		return nil, err
	}
	sortGoals(goals)

	return goals, nil
}

// Create adds a goal.
func (srv *goalService) Create(ctx context.Context, input usecase.GoalInput) (*entity.Goal, error) {
	if err := validateGoal(input); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	goals, err := loadGoals(ctx, srv.store)
	if err != nil {
		return nil, err
	}

	goal := entity.Goal{
		ID:         uuid.New(),
		City:       strings.TrimSpace(input.City),
		Month:      input.Month,
		TargetArea: input.TargetArea,
	}
	goals = append(goals, goal)

	if err := saveGoals(ctx, srv.store, goals); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Goal created",
		slog.String("goal_id", goal.ID.String()),
		slog.String("city", goal.City),
		slog.String("month", goal.Month.String()),
	)

	return &goal, nil
}

// Update replaces the fields of a goal.
func (srv *goalService) Update(ctx context.Context, id uuid.UUID, input usecase.GoalInput) (*entity.Goal, error) {
	if err := validateGoal(input); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	goals, err := loadGoals(ctx, srv.store)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(goals, func(g entity.Goal) bool { return g.ID == id })
	if i < 0 {
		return nil, domainerrors.ErrNotFound.WithDetails("goal " + id.String())
	}

	goals[i].City = strings.TrimSpace(input.City)
	goals[i].Month = input.Month
	goals[i].TargetArea = input.TargetArea

	if err := saveGoals(ctx, srv.store, goals); err != nil {
		return nil, err
	}

	goal := goals[i]

	return &goal, nil
}

// Delete removes a goal.
func (srv *goalService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	goals, err := loadGoals(ctx, srv.store)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(goals, func(g entity.Goal) bool { return g.ID == id })
	if i < 0 {
		return domainerrors.ErrNotFound.WithDetails("goal " + id.String())
	}

	return saveGoals(ctx, srv.store, slices.Delete(goals, i, i+1))
}

// Progress returns the progress of the goals visible to the session's user.
func (srv *goalService) Progress(ctx context.Context, session *usecase.Session) ([]report.Progress, error) {
	goals, err := srv.List(ctx)
	if err != nil {
		return nil, err
	}

	records, err := srv.state.Records(ctx, session)
	if err != nil {
		return nil, err
	}

	out := make([]report.Progress, 0, len(goals))
	for _, g := range goals {
		if session.User.Role.IsScoped() && g.City != session.User.City() {
			continue
		}
		out = append(out, report.GoalProgress(g, records))
	}

	return out, nil
}

// Replace swaps the whole goal set.
func (srv *goalService) Replace(ctx context.Context, goals []entity.Goal) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return saveGoals(ctx, srv.store, slices.Clone(goals))
}
