package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
)

// SyncRepositories fetches the manifest and publishes a summary of every
// GitHub repository listed in it, followed by input.Supplemental. Entries are
// processed one by one in order.
//
// A reference that is not a GitHub repository URL, or whose repository can not
// be read, is skipped. Missing credential, a broken manifest or a failed upload
// aborts the run; the returned report then tells how far the run got.
func (x *UseCase) SyncRepositories(ctx context.Context, input *model.SyncInput) (*model.SyncReport, error) {
	runID, ctx := logging.CtxRunID(ctx)
	logger := logging.From(ctx).With(slog.String("run_id", runID.String()))
	ctx = logging.With(ctx, logger)

	report := &model.SyncReport{
		RunID:     runID,
		StartedAt: logging.CtxTime(ctx),
		State:     types.SyncStateResolvingCredential,
	}
	abort := func(err error) (*model.SyncReport, error) {
		report.State = types.SyncStateAborted
		report.FinishedAt = logging.CtxTime(ctx)
		logger.Warn("Sync aborted", slog.Any("report", report), slog.Any("error", err))
		return report, err
	}

	if err := input.Validate(); err != nil {
		return abort(err)
	}
	logger.Info("Start syncing repositories", slog.Any("input", input))

	token, err := x.ResolveCredential(ctx)
	if err != nil {
		return abort(err)
	}

	report.State = types.SyncStateFetchingManifest
	manifest, err := x.FetchManifest(ctx, token, input.ManifestURL)
	if err != nil {
		return abort(err)
	}

	refs := manifest.WithSupplemental(input.Supplemental)
	report.Total = len(refs)

	for i, ref := range refs {
		report.State = types.SyncStateParsingSlug
		slug, err := model.ParseRepositorySlug(ref.Source)
		if err != nil {
			report.Skipped++
			logger.Info("Skip reference",
				slog.Int("index", i),
				slog.String("source", ref.Source),
				slog.String("reason", skipReason(err)),
			)
			continue
		}

		report.State = types.SyncStateCollectingMetadata
		summary, err := x.CollectRepositorySummary(ctx, token, slug)
		if err != nil {
			report.Failed++
			logger.Warn("Failed to read repository, skip",
				slog.Int("index", i),
				slog.String("slug", slug.String()),
				slog.Any("error", err),
			)
			continue
		}

		data, err := summary.JSON()
		if err != nil {
			return abort(goerr.Wrap(err, "failed to encode summary", goerr.V("slug", slug.String())))
		}

		report.State = types.SyncStatePublishing
		dst := slug.Destination()
		if err := x.PublishBlob(ctx, dst, data); err != nil {
			return abort(goerr.Wrap(err, "failed to publish summary", goerr.V("slug", slug.String())))
		}
		report.Published = append(report.Published, dst)
	}

	report.State = types.SyncStateDone
	report.FinishedAt = logging.CtxTime(ctx)
	logger.Info("All done", slog.Any("report", report))

	return report, nil
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, types.ErrUnsupportedHost):
		return "not a github.com repository"
	case errors.Is(err, types.ErrInvalidSlug):
		return "owner or repo is missing"
	default:
		return err.Error()
	}
}
