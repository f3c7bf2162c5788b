package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/errors"
	"fieldops/internal/usecase"
)

// backupFile is the document written by Export.
type backupFile struct {
	Users     []entity.User          `json:"users"`
	Locations []entity.Location      `json:"locations"`
	Records   []entity.ServiceRecord `json:"records"`
	Goals     []entity.Goal          `json:"goals"`
}

// backupService implements the BackupUsecase interface.
type backupService struct {
	state  usecase.StateUsecase
	goals  usecase.GoalUsecase
	logger *slog.Logger
}

// NewBackupService is the constructor for backupService.
func NewBackupService(state usecase.StateUsecase, goals usecase.GoalUsecase, logger *slog.Logger) usecase.BackupUsecase {
	return &backupService{
		state:  state,
		goals:  goals,
		logger: logger,
	}
}

// Export serializes the cached collections and the goal set.
func (srv *backupService) Export(ctx context.Context, session *usecase.Session) ([]byte, error) {
	var (
		file backupFile
		err  error
	)

	if file.Users, err = srv.state.Users(ctx, session); err != nil {
		return nil, err
	}
	if file.Locations, err = srv.state.Locations(ctx, session); err != nil {
		return nil, err
	}
	if file.Records, err = srv.state.Records(ctx, session); err != nil {
		return nil, err
	}
	if file.Goals, err = srv.goals.List(ctx); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// decodeCollection decodes one top-level array of the backup.
func decodeCollection[T any](raw map[string]json.RawMessage, name string) ([]T, error) {
	msg, ok := raw[name]
	if !ok {
		return nil, domainerrors.ErrRestoreInvalid.WithDetails("missing collection " + name)
	}

	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 || msg[0] != '[' {
		return nil, domainerrors.ErrRestoreInvalid.WithDetails(name + " is not an array")
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(msg, &elements); err != nil {
		return nil, domainerrors.ErrRestoreInvalid.WithDetails(name + " is not an array")
	}

	out := make([]T, len(elements))
	for i, element := range elements {
		if err := json.Unmarshal(element, &out[i]); err != nil {
			return nil, domainerrors.ErrRestoreInvalid.WithDetails(
				name + " element " + strconv.Itoa(i) + ": " + err.Error())
		}
	}

	return out, nil
}

func decodeBackup(data []byte) (*backupFile, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domainerrors.ErrRestoreInvalid.WithDetails("not a JSON object")
	}

	var (
		file backupFile
		err  error
	)

	if file.Users, err = decodeCollection[entity.User](raw, "users"); err != nil {
		return nil, err
	}
	if file.Locations, err = decodeCollection[entity.Location](raw, "locations"); err != nil {
		return nil, err
	}
	if file.Records, err = decodeCollection[entity.ServiceRecord](raw, "records"); err != nil {
		return nil, err
	}
	if file.Goals, err = decodeCollection[entity.Goal](raw, "goals"); err != nil {
		return nil, err
	}

	return &file, nil
}

// Restore validates the whole file before touching any state.
func (srv *backupService) Restore(ctx context.Context, session *usecase.Session, data []byte) error {
	file, err := decodeBackup(data)
	if err != nil {
		return err
	}

	if err := srv.goals.Replace(ctx, file.Goals); err != nil {
		return err
	}

	srv.state.Replace(session, usecase.Collections{
		Users:     file.Users,
		Locations: file.Locations,
		Records:   file.Records,
	})

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Backup restored",
		slog.Int("users", len(file.Users)),
		slog.Int("locations", len(file.Locations)),
		slog.Int("records", len(file.Records)),
		slog.Int("goals", len(file.Goals)),
	)

	return nil
}
