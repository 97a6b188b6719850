package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/repository/gcs"
	"github.com/m-mizutani/repocache/pkg/repository/memory"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Storage configures where summaries are published
type Storage struct {
	bucket     types.BucketName
	projectID  types.GoogleProjectID
	prefix     string
	publicRead bool
	endpoint   string
	dryRun     bool
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket name",
			Category:    "Storage",
			Destination: (*string)(&x.bucket),
			Sources:     cli.EnvVars("REPOCACHE_STORAGE_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "storage-project-id",
			Usage:       "Google Cloud project ID. The bucket is created if it does not exist and this is set",
			Category:    "Storage",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("REPOCACHE_STORAGE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "storage-prefix",
			Usage:       "Object name prefix",
			Category:    "Storage",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("REPOCACHE_STORAGE_PREFIX"),
		},
		&cli.BoolFlag{
			Name:        "storage-public-read",
			Usage:       "Make uploaded objects publicly readable",
			Category:    "Storage",
			Value:       true,
			Destination: &x.publicRead,
			Sources:     cli.EnvVars("REPOCACHE_STORAGE_PUBLIC_READ"),
		},
		&cli.StringFlag{
			Name:        "storage-endpoint",
			Usage:       "Cloud Storage endpoint, e.g. of an emulator. Authentication is disabled if set",
			Category:    "Storage",
			Destination: &x.endpoint,
			Sources:     cli.EnvVars("REPOCACHE_STORAGE_ENDPOINT"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Keep blobs in memory instead of uploading them",
			Category:    "Storage",
			Destination: &x.dryRun,
			Sources:     cli.EnvVars("REPOCACHE_DRY_RUN"),
		},
	}
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Bucket", x.bucket.String()),
		slog.String("ProjectID", x.projectID.String()),
		slog.String("Prefix", x.prefix),
		slog.Bool("PublicRead", x.publicRead),
		slog.String("Endpoint", x.endpoint),
		slog.Bool("DryRun", x.dryRun),
	)
}

// NewRepository builds the blob repository. The returned function releases it.
func (x Storage) NewRepository(ctx context.Context) (interfaces.BlobRepository, func(), error) {
	if x.dryRun {
		return memory.New(), func() {}, nil
	}
	if x.bucket == "" {
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "--storage-bucket is required unless --dry-run is set")
	}

	options := []gcs.Option{
		gcs.WithPrefix(x.prefix),
		gcs.WithPublicRead(x.publicRead),
	}
	if x.projectID != "" {
		options = append(options, gcs.WithProjectID(x.projectID))
	}

	var clientOptions []option.ClientOption
	if x.endpoint != "" {
		clientOptions = append(clientOptions,
			option.WithEndpoint(x.endpoint),
			option.WithoutAuthentication(),
		)
	}

	repo, err := gcs.New(ctx, x.bucket, options, clientOptions...)
	if err != nil {
		return nil, nil, err
	}

	return repo, func() {
		if err := repo.Close(); err != nil {
			logging.Default().Warn("failed to close storage client", slog.Any("error", err))
		}
	}, nil
}
