package impl

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	mockSvc "fieldops/internal/mocks/service"
	"fieldops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service     *reportService
	backend     *mockSvc.MockBackend
	artifacts   *mockSvc.MockArtifactStore
	spreadsheet *mockSvc.MockRecordRenderer
	photos      *mockSvc.MockRecordRenderer
	state       usecase.StateUsecase
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	t.Helper()

	backend := mockSvc.NewMockBackend(t)
	artifacts := mockSvc.NewMockArtifactStore(t)
	spreadsheet := mockSvc.NewMockRecordRenderer(t)
	photos := mockSvc.NewMockRecordRenderer(t)
	state := NewStateService(backend, discardLogger())

	srv := NewReportService(ReportServiceParams{
		State:       state,
		Records:     backend,
		Artifacts:   artifacts,
		Spreadsheet: spreadsheet,
		Photos:      photos,
		Logger:      discardLogger(),
	}).(*reportService)
	srv.now = func() time.Time { return time.Date(2025, 3, 31, 17, 45, 0, 0, time.UTC) }

	return reportServiceFixtures{
		service:     srv,
		backend:     backend,
		artifacts:   artifacts,
		spreadsheet: spreadsheet,
		photos:      photos,
		state:       state,
	}
}

func reportRecords() []entity.ServiceRecord {
	return []entity.ServiceRecord{
		testRecord("r-1", "Lisbon", entity.ServiceMowing, time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC), 100),
		testRecord("r-2", "Lisbon", entity.ServiceWeeding, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), 50),
		testRecord("r-3", "Porto", entity.ServiceMowing, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), 25),
	}
}

func TestReportService_Records(t *testing.T) {
	t.Run("admin filters by city and type", func(t *testing.T) {
		fx := createTestReportService(t)
		session := testSession("s-1", entity.RoleAdmin, "")
		fx.state.Replace(session, usecase.Collections{Records: reportRecords()})

		got, err := fx.service.Records(context.Background(), session, usecase.RecordQuery{
			ServiceTypes: []entity.ServiceType{entity.ServiceMowing},
		})

		require.NoError(t, err)
		require.Len(t, got.Records, 2)
		assert.Equal(t, "r-3", got.Records[0].ID)
		assert.InDelta(t, 125, got.TotalArea, 0.001)
	})

	t.Run("fiscal is forced to assigned city", func(t *testing.T) {
		fx := createTestReportService(t)
		session := testSession("s-1", entity.RoleFiscal, "Lisbon")
		fx.state.Replace(session, usecase.Collections{Records: reportRecords()})

		got, err := fx.service.Records(context.Background(), session, usecase.RecordQuery{City: "Porto"})

		require.NoError(t, err)
		require.Len(t, got.Records, 2)
		for _, r := range got.Records {
			assert.Equal(t, "Lisbon", r.LocationCity)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		fx := createTestReportService(t)
		start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, -1)

		_, err := fx.service.Records(context.Background(), testSession("s-1", entity.RoleAdmin, ""),
			usecase.RecordQuery{Start: &start, End: &end})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown service type", func(t *testing.T) {
		fx := createTestReportService(t)

		_, err := fx.service.Records(context.Background(), testSession("s-1", entity.RoleAdmin, ""),
			usecase.RecordQuery{ServiceTypes: []entity.ServiceType{"PAINTING_CLOUDS"}})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestReportService_ExportSpreadsheet(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	session := testSession("s-1", entity.RoleAdmin, "")
	fx.state.Replace(session, usecase.Collections{Records: reportRecords()})

	fx.spreadsheet.EXPECT().
		Render(ctx, mock.MatchedBy(func(records []entity.ServiceRecord) bool {
			return len(records) == 1 && records[0].ID == "r-2"
		})).
		Return([]byte("xlsx"), nil)
	fx.spreadsheet.EXPECT().Extension().Return(".xlsx")
	fx.spreadsheet.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	fx.artifacts.EXPECT().Save(ctx, mock.AnythingOfType("*service.Artifact")).
		Run(func(_ context.Context, a *service.Artifact) { a.Key = "exports/2025/03/x.xlsx" }).
		Return(nil)

	artifact, err := fx.service.Export(ctx, session, usecase.ExportRequest{
		RecordIDs: []string{"r-2", "r-2", "r-missing"},
		Format:    usecase.ExportSpreadsheet,
	})

	require.NoError(t, err)
	assert.Equal(t, "records-20250331-1745.xlsx", artifact.Name)
	assert.Equal(t, "exports/2025/03/x.xlsx", artifact.Key)
	assert.Equal(t, []byte("xlsx"), artifact.Data)
}

func TestReportService_ExportPhotos_RefetchesRecords(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	session := testSession("s-1", entity.RoleAdmin, "")
	fx.state.Replace(session, usecase.Collections{Records: reportRecords()})

	for _, r := range reportRecords() {
		fresh := r
		fresh.BeforePhotos = []entity.PhotoRef{entity.PhotoRef("/photos/" + r.ID + "/before.jpg")}
		fx.backend.EXPECT().GetRecord(mock.Anything, r.ID).Return(&fresh, nil)
	}

	fx.photos.EXPECT().
		Render(ctx, mock.MatchedBy(func(records []entity.ServiceRecord) bool {
			if len(records) != 3 || records[0].ID != "r-3" || records[2].ID != "r-1" {
				return false
			}
			for _, r := range records {
				if len(r.BeforePhotos) != 1 {
					return false
				}
			}

			return true
		})).
		Return([]byte("%PDF"), nil)
	fx.photos.EXPECT().Extension().Return(".pdf")
	fx.photos.EXPECT().ContentType().Return("application/pdf")
	fx.artifacts.EXPECT().Save(ctx, mock.AnythingOfType("*service.Artifact")).Return(nil)

	artifact, err := fx.service.Export(ctx, session, usecase.ExportRequest{All: true, Format: usecase.ExportPhotos})

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", artifact.ContentType)
}

func TestReportService_Export_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		fx := createTestReportService(t)

		_, err := fx.service.Export(context.Background(), testSession("s-1", entity.RoleAdmin, ""),
			usecase.ExportRequest{All: true, Format: "csv"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("empty selection", func(t *testing.T) {
		fx := createTestReportService(t)
		session := testSession("s-1", entity.RoleAdmin, "")
		fx.state.Replace(session, usecase.Collections{Records: reportRecords()})

		_, err := fx.service.Export(context.Background(), session,
			usecase.ExportRequest{RecordIDs: []string{"nope"}, Format: usecase.ExportSpreadsheet})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("refetch failure aborts", func(t *testing.T) {
		fx := createTestReportService(t)
		session := testSession("s-1", entity.RoleAdmin, "")
		fx.state.Replace(session, usecase.Collections{Records: reportRecords()[:1]})

		backendErr := domainerrors.NewBackendError(500, "boom")
		fx.backend.EXPECT().GetRecord(mock.Anything, "r-1").Return(nil, backendErr)

		_, err := fx.service.Export(context.Background(), session,
			usecase.ExportRequest{All: true, Format: usecase.ExportPhotos})

		assert.ErrorIs(t, err, backendErr)
	})

	t.Run("render failure saves nothing", func(t *testing.T) {
		fx := createTestReportService(t)
		session := testSession("s-1", entity.RoleAdmin, "")
		fx.state.Replace(session, usecase.Collections{Records: reportRecords()})

		fx.spreadsheet.EXPECT().Render(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInternalError)

		_, err := fx.service.Export(context.Background(), session,
			usecase.ExportRequest{All: true, Format: usecase.ExportSpreadsheet})

		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	})
}

func TestReportService_Artifact(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.artifacts.EXPECT().Open(ctx, "exports/2025/03/x.pdf").Return([]byte("%PDF"), nil)

	data, err := fx.service.Artifact(ctx, "exports/2025/03/x.pdf")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}
