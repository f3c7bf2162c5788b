package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fieldops/internal/delivery/context"
	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/report"
	"fieldops/internal/domain/service"
	"fieldops/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	artifactTimeLayout = "20060102-1504"
	refetchConcurrency = 4
)

// ReportServiceParams holds dependencies for the report service, injected by Fx
type ReportServiceParams struct {
	fx.In

	State       usecase.StateUsecase
	Records     service.RecordGateway
	Artifacts   service.ArtifactStore
	Spreadsheet service.RecordRenderer `name:"spreadsheet"`
	Photos      service.RecordRenderer `name:"photos"`
	Logger      *slog.Logger
}

// reportService implements the ReportUsecase interface.
type reportService struct {
	state     usecase.StateUsecase
	records   service.RecordGateway
	artifacts service.ArtifactStore
	renderers map[usecase.ExportFormat]service.RecordRenderer
	logger    *slog.Logger
	now       func() time.Time
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		state:     params.State,
		records:   params.Records,
		artifacts: params.Artifacts,
		renderers: map[usecase.ExportFormat]service.RecordRenderer{
			usecase.ExportSpreadsheet: params.Spreadsheet,
			usecase.ExportPhotos:      params.Photos,
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reportService) filter(ctx context.Context, session *usecase.Session, query usecase.RecordQuery) ([]entity.ServiceRecord, error) {
	if query.Start != nil && query.End != nil && query.End.Before(*query.Start) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end date is before start date")
	}

	for _, st := range query.ServiceTypes {
		if !st.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown service type " + st.String())
		}
	}

	records, err := srv.state.Records(ctx, session)
	if err != nil {
		return nil, err
	}

	criteria := report.NewCriteria(query.Start, query.End, query.ServiceTypes, query.City).ForUser(session.User)

	return report.Filter(records, criteria), nil
}

// Records filters the records visible to the session's user.
func (srv *reportService) Records(ctx context.Context, session *usecase.Session, query usecase.RecordQuery) (*usecase.RecordReport, error) {
	records, err := srv.filter(ctx, session, query)
	if err != nil {
		return nil, err
	}

	return &usecase.RecordReport{
		Records:   records,
		TotalArea: report.TotalArea(records),
	}, nil
}

// Export renders the selected records with the requested renderer and saves
// the result as an artifact.
func (srv *reportService) Export(ctx context.Context, session *usecase.Session, req usecase.ExportRequest) (*service.Artifact, error) {
	renderer, ok := srv.renderers[req.Format]
	if !ok || renderer == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown export format " + string(req.Format))
	}

	filtered, err := srv.filter(ctx, session, req.Query)
	if err != nil {
		return nil, err
	}

	selected := selectRecords(filtered, req)
	if len(selected) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no records selected")
	}

	if req.Format == usecase.ExportPhotos {
		selected, err = srv.refetch(ctx, selected)
		if err != nil {
			return nil, err
		}
	}

	data, err := renderer.Render(ctx, selected)
	if err != nil {
		return nil, err
	}

	artifact := &service.Artifact{
		Name:        "records-" + srv.now().Format(artifactTimeLayout) + renderer.Extension(),
		ContentType: renderer.ContentType(),
		Data:        data,
	}
	if err := srv.artifacts.Save(ctx, artifact); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Report exported",
		slog.String("format", string(req.Format)),
		slog.Int("records", len(selected)),
		slog.String("key", artifact.Key),
	)

	return artifact, nil
}

// selectRecords applies the request's selection to the filtered records.
func selectRecords(filtered []entity.ServiceRecord, req usecase.ExportRequest) []entity.ServiceRecord {
	sel := report.NewSelection(filtered)
	if req.All {
		sel.ToggleAll()

		return sel.Records()
	}

	for _, id := range req.RecordIDs {
		if !sel.IsSelected(id) {
			sel.Toggle(id)
		}
	}

	return sel.Records()
}

// refetch replaces each record with the backend's copy, which carries the
// authoritative photo lists. Order is preserved.
func (srv *reportService) refetch(ctx context.Context, records []entity.ServiceRecord) ([]entity.ServiceRecord, error) {
	out := make([]entity.ServiceRecord, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(refetchConcurrency)

	for i, rec := range records {
		g.Go(func() error {
			fresh, err := srv.records.GetRecord(gctx, rec.ID)
			if err != nil {
				return err
			}
			out[i] = *fresh

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Artifact returns a previously saved export.
func (srv *reportService) Artifact(ctx context.Context, key string) ([]byte, error) {
	return srv.artifacts.Open(ctx, key)
}
