package artifact

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fieldops/config"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	"fieldops/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *BlobStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStore(bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))
	store.now = func() time.Time { return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC) }

	return store
}

func TestBlobStore_SaveAndOpen(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	artifact := &service.Artifact{
		Name:        "records-2024-03.XLSX",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("workbook"),
	}
	require.NoError(t, store.Save(ctx, artifact))

	assert.Regexp(t, `^exports/2024/03/[0-9a-f-]{36}\.xlsx$`, artifact.Key)
	assert.Equal(t, 8, artifact.Size)

	attrs, err := store.bucket.Attributes(ctx, artifact.Key)
	require.NoError(t, err)
	assert.Equal(t, artifact.ContentType, attrs.ContentType)
	assert.Equal(t, "records-2024-03.XLSX", attrs.Metadata[metaName])
	assert.Equal(t, util.Checksum([]byte("workbook")), attrs.Metadata[metaChecksum])

	data, err := store.Open(ctx, artifact.Key)
	require.NoError(t, err)
	assert.Equal(t, []byte("workbook"), data)
}

func TestBlobStore_KeysAreUnique(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	a := &service.Artifact{Name: "a.pdf", Data: []byte("1")}
	b := &service.Artifact{Name: "a.pdf", Data: []byte("2")}
	require.NoError(t, store.Save(ctx, a))
	require.NoError(t, store.Save(ctx, b))
	assert.NotEqual(t, a.Key, b.Key)
}

func TestBlobStore_OpenMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Open(ctx, "exports/2024/03/missing.pdf")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = store.Open(ctx, "../secrets")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestNewArtifactStore_DefaultsToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	store, err := NewArtifactStore(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	artifact := &service.Artifact{Name: "x.pdf", Data: []byte("%PDF")}
	require.NoError(t, store.Save(context.Background(), artifact))

	lc.RequireStart()
	lc.RequireStop()
}

func TestNewArtifactStore_BadURL(t *testing.T) {
	_, err := NewArtifactStore(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Export: &config.ExportConfig{BucketURL: "nope://bucket"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
