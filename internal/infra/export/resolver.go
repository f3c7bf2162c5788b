package export

import (
	"context"

	"fieldops/internal/domain/entity"
	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/domain/service"
	"fieldops/internal/util"
)

// PhotoResolver turns a photo reference into image bytes.
type PhotoResolver interface {
	Resolve(ctx context.Context, ref entity.PhotoRef) ([]byte, error)
}

type photoResolver struct {
	photos service.PhotoGateway
}

// NewPhotoResolver decodes inline data URLs and fetches every other
// reference from the backend.
func NewPhotoResolver(photos service.PhotoGateway) PhotoResolver {
	return &photoResolver{photos: photos}
}

func (r *photoResolver) Resolve(ctx context.Context, ref entity.PhotoRef) ([]byte, error) {
	if ref.IsDataURL() {
		data, _, err := util.DecodeDataURL(string(ref))
		if err != nil {
			return nil, domainerrors.ErrPhotoFetchFailed.WithDetails(err.Error())
		}

		return data, nil
	}

	data, err := r.photos.FetchPhoto(ctx, ref)
	if err != nil {
		details := err.Error()
		if appErr, ok := domainerrors.AsAppError(err); ok {
			details = appErr.Message()
		}

		return nil, domainerrors.ErrPhotoFetchFailed.WithDetails(string(ref) + ": " + details)
	}

	if len(data) == 0 {
		return nil, domainerrors.ErrPhotoFetchFailed.WithDetails(string(ref) + ": empty photo")
	}

	return data, nil
}
