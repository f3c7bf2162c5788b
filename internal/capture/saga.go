package capture

import (
	"context"
	"fmt"
	"strings"

	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
)

// Gateway is the part of the backend the submission needs.
type Gateway interface {
	service.LocationGateway
	service.RecordGateway
	service.PhotoGateway
}

// LocationSource lists the known locations.
type LocationSource interface {
	Locations(ctx context.Context) ([]entity.Location, error)
}

// submission runs the ordered side effects of a submit: resolve the
// location, create the record, upload BEFORE photos, upload AFTER photos.
// Every completed step is recorded in draft.Progress, so a rerun after a
// failure resumes at the first unfinished step.
type submission struct {
	gateway   Gateway
	locations LocationSource
	operator  entity.User
}

func (s *submission) run(ctx context.Context, draft *Draft) (*entity.ServiceRecord, error) {
	if draft.Progress.Uploaded == nil {
		draft.Progress.Uploaded = make(map[entity.Phase][]entity.PhotoRef)
	}

	if err := s.resolveLocation(ctx, draft); err != nil {
		return nil, err
	}

	if err := s.createRecord(ctx, draft); err != nil {
		return nil, err
	}

	for _, phase := range []entity.Phase{entity.PhaseBefore, entity.PhaseAfter} {
		if err := s.upload(ctx, draft, phase); err != nil {
			return nil, err
		}
	}

	record := draft.record(s.operator)
	record.ID = draft.Progress.RecordID
	record.BeforePhotos = draft.Progress.Uploaded[entity.PhaseBefore]
	record.AfterPhotos = draft.Progress.Uploaded[entity.PhaseAfter]

	return &record, nil
}

// resolveLocation reuses a location of the same city and name, ignoring
// case, or creates it with area 0.
func (s *submission) resolveLocation(ctx context.Context, draft *Draft) error {
	if draft.LocationID != nil {
		return nil
	}

	if draft.Progress.LocationID == "" {
		loc, err := s.findOrCreate(ctx, draft.LocationCity, draft.LocationName)
		if err != nil {
			return newLocationCreateError(draft.LocationCity, draft.LocationName, err)
		}

		area := loc.Area
		draft.Progress.LocationID = loc.ID
		draft.Progress.LocationArea = &area
	}

	id := draft.Progress.LocationID
	draft.LocationID = &id
	draft.LocationArea = draft.Progress.LocationArea

	return nil
}

func (s *submission) findOrCreate(ctx context.Context, city, name string) (*entity.Location, error) {
	if s.locations != nil {
		known, err := s.locations.Locations(ctx)
		if err != nil {
			return nil, err
		}

		for _, loc := range known {
			if loc.City == city && strings.EqualFold(strings.TrimSpace(loc.Name), name) {
				return &loc, nil
			}
		}
	}

	created, err := s.gateway.CreateLocation(ctx, entity.Location{City: city, Name: name, Area: 0})
	if err != nil {
		return nil, err
	}

	if created == nil || created.ID == "" {
		return nil, errors.New("backend returned a location without identifier")
	}

	return created, nil
}

func (s *submission) createRecord(ctx context.Context, draft *Draft) error {
	if draft.Progress.RecordID != "" {
		return nil
	}

	created, err := s.gateway.CreateRecord(ctx, draft.record(s.operator))
	if err != nil {
		return newRecordCreateError(err)
	}

	if created == nil || created.ID == "" {
		return newRecordCreateError(errors.New("backend returned a record without identifier"))
	}

	draft.Progress.RecordID = created.ID

	return nil
}

func (s *submission) upload(ctx context.Context, draft *Draft, phase entity.Phase) error {
	if draft.Progress.uploaded(phase) {
		return nil
	}

	photos := *draft.photos(phase)
	if len(photos) == 0 {
		draft.Progress.Uploaded[phase] = []entity.PhotoRef{}
		return nil
	}

	files := make([]service.PhotoFile, len(photos))
	for i, p := range photos {
		files[i] = service.PhotoFile{
			Name:        fmt.Sprintf("%s-%d%s", strings.ToLower(phase.String()), i+1, p.extension()),
			ContentType: p.ContentType,
			Data:        p.Data,
		}
	}

	refs, err := s.gateway.UploadPhotos(ctx, draft.Progress.RecordID, phase, files)
	if err != nil {
		return newPhotoUploadError(draft.Progress.RecordID, phase, err)
	}

	if refs == nil {
		refs = []entity.PhotoRef{}
	}

	draft.Progress.Uploaded[phase] = refs

	return nil
}
