package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
)

// PublishBlob uploads a JSON document to dst, creating the container first if
// needed. Existing content is overwritten.
func (x *UseCase) PublishBlob(ctx context.Context, dst model.BlobDestination, data []byte) error {
	repo := x.clients.BlobRepository()
	if repo == nil {
		return goerr.Wrap(types.ErrInvalidOption, "blob repository is not configured")
	}

	if err := repo.EnsureContainer(ctx, dst.Container); err != nil {
		return goerr.Wrap(err, "failed to ensure container", goerr.V("container", dst.Container))
	}

	if err := repo.PutBlob(ctx, dst, data, types.ContentTypeJSON); err != nil {
		return goerr.Wrap(err, "failed to upload blob", goerr.V("destination", dst.Path()))
	}

	logging.From(ctx).Info("Published blob",
		slog.String("destination", dst.Path()),
		slog.Int("size", len(data)),
	)

	return nil
}
