package model

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/types"
)

type SyncInput struct {
	ManifestURL  string
	Supplemental []RepositoryReference
}

func (x *SyncInput) Validate() error {
	if x.ManifestURL == "" {
		return goerr.Wrap(types.ErrInvalidOption, "manifest URL is required")
	}
	return nil
}

func (x *SyncInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("manifest_url", x.ManifestURL),
		slog.Int("supplemental", len(x.Supplemental)),
	)
}

type ExportInput struct {
	ManifestURL string
	Destination BlobDestination
}

func (x *ExportInput) Validate() error {
	if x.ManifestURL == "" {
		return goerr.Wrap(types.ErrInvalidOption, "manifest URL is required")
	}
	if err := x.Destination.Validate(); err != nil {
		return goerr.Wrap(err, "export destination requires both container and blob",
			goerr.V("destination", x.Destination),
		)
	}
	return nil
}

// SyncReport describes how far a sync run went. A run that aborted still
// returns the report together with the error.
type SyncReport struct {
	RunID      types.RunID
	StartedAt  time.Time
	FinishedAt time.Time
	State      types.SyncState

	Total     int
	Skipped   int
	Failed    int
	Published []BlobDestination
}

func (x *SyncReport) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", x.RunID.String()),
		slog.String("state", string(x.State)),
		slog.Int("total", x.Total),
		slog.Int("skipped", x.Skipped),
		slog.Int("failed", x.Failed),
		slog.Int("published", len(x.Published)),
		slog.Duration("elapsed", x.FinishedAt.Sub(x.StartedAt)),
	)
}
