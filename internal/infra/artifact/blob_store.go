// Package artifact keeps generated export files in a gocloud blob bucket.
package artifact

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"fieldops/config"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	"fieldops/internal/errors"
	"fieldops/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	keyPrefix     = "exports"
	metaName      = "name"
	metaChecksum  = "checksum"
	defaultBucket = "mem://"
)

// BlobStore implements service.ArtifactStore on a blob bucket.
type BlobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
	now    func() time.Time
}

// Params holds dependencies for the ArtifactStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewArtifactStore opens the bucket named by export.bucketUrl and closes it on shutdown.
func NewArtifactStore(params Params) (service.ArtifactStore, error) {
	bucketURL := defaultBucket
	if params.Config.Export != nil && params.Config.Export.BucketURL != "" {
		bucketURL = params.Config.Export.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}
	params.Logger.Info("Artifact bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, params.Logger), nil
}

// NewBlobStore wraps an open bucket.
func NewBlobStore(bucket *blob.Bucket, logger *slog.Logger) *BlobStore {
	return &BlobStore{bucket: bucket, logger: logger, now: time.Now}
}

// Save writes the artifact under exports/<yyyy>/<mm>/<uuid><ext> and fills in
// its Key and Size.
func (s *BlobStore) Save(ctx context.Context, artifact *service.Artifact) error {
	now := s.now().UTC()
	key := path.Join(keyPrefix, now.Format("2006"), now.Format("01"), uuid.NewString()+strings.ToLower(path.Ext(artifact.Name)))

	checksum := util.Checksum(artifact.Data)
	opts := &blob.WriterOptions{
		ContentType: artifact.ContentType,
		Metadata: map[string]string{
			metaName:     artifact.Name,
			metaChecksum: checksum,
		},
	}

	if err := s.bucket.WriteAll(ctx, key, artifact.Data, opts); err != nil {
		return errors.Wrapf(err, "failed to write artifact %s", artifact.Name)
	}

	artifact.Key = key
	artifact.Size = len(artifact.Data)

	s.logger.InfoContext(ctx, "Artifact saved",
		slog.String("key", key),
		slog.String("name", artifact.Name),
		slog.String("size", util.FormatBytes(int64(artifact.Size))),
		slog.String("checksum", checksum),
	)

	return nil
}

// Open returns the bytes of a saved artifact.
func (s *BlobStore) Open(ctx context.Context, key string) ([]byte, error) {
	if !strings.HasPrefix(key, keyPrefix+"/") {
		return nil, domainerrors.ErrNotFound.WithDetails("artifact " + key)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, domainerrors.ErrNotFound.WithDetails("artifact " + key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read artifact %s", key)
	}

	return data, nil
}
