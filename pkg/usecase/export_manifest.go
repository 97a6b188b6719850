package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
)

// ExportManifest copies the manifest at input.ManifestURL to
// input.Destination without modification.
func (x *UseCase) ExportManifest(ctx context.Context, input *model.ExportInput) error {
	runID, ctx := logging.CtxRunID(ctx)
	logger := logging.From(ctx).With(slog.String("run_id", runID.String()))
	ctx = logging.With(ctx, logger)

	if err := input.Validate(); err != nil {
		return err
	}

	token, err := x.ResolveCredential(ctx)
	if err != nil {
		return err
	}

	raw, err := fetchManifestRaw(ctx, x.clients.HTTPClient(), token, input.ManifestURL)
	if err != nil {
		return err
	}

	if err := x.PublishBlob(ctx, input.Destination, raw); err != nil {
		return goerr.Wrap(err, "failed to export manifest",
			goerr.V("url", input.ManifestURL),
			goerr.V("destination", input.Destination.Path()),
		)
	}

	logger.Info("Exported manifest",
		slog.String("url", input.ManifestURL),
		slog.String("destination", input.Destination.Path()),
	)
	return nil
}
