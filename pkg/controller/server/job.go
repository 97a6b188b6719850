package server

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/utils/errutil"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
)

// runSyncJob executes a sync job in the provided context.
// This function is designed to be called from a background goroutine.
func runSyncJob(ctx context.Context, uc interfaces.UseCase, job *model.SyncJob) {
	logger := logging.From(ctx).With(slog.String("job", string(job.Name)))
	ctx = logging.With(ctx, logger)
	logger.Info("Starting sync job")

	report, err := uc.SyncRepositories(ctx, job.Input())
	if err != nil {
		errutil.HandleError(ctx, "sync job failed", err)
		return
	}
	logger.Info("Sync job completed", slog.Any("report", report))
}

// runExportJob executes an export job in the provided context.
func runExportJob(ctx context.Context, uc interfaces.UseCase, job *model.ExportJob) {
	logger := logging.From(ctx).With(slog.String("job", string(job.Name)))
	ctx = logging.With(ctx, logger)
	logger.Info("Starting export job")

	if err := uc.ExportManifest(ctx, job.Input()); err != nil {
		errutil.HandleError(ctx, "export job failed", err)
		return
	}
	logger.Info("Export job completed")
}
