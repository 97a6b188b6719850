package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/utils/errutil"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func exportCommand() *cli.Command {
	var (
		cfg         pipelineConfig
		jobName     string
		manifestURL string
		container   string
		blob        string
	)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"ex"},
		Usage:   "Copy a manifest to storage as is",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "job",
				Aliases:     []string{"j"},
				Usage:       "Built-in export job name (see jobs command)",
				Sources:     cli.EnvVars("REPOCACHE_JOB"),
				Destination: &jobName,
			},
			&cli.StringFlag{
				Name:        "manifest-url",
				Aliases:     []string{"m"},
				Usage:       "Manifest URL. Overrides the manifest of --job",
				Sources:     cli.EnvVars("REPOCACHE_MANIFEST_URL"),
				Destination: &manifestURL,
			},
			&cli.StringFlag{
				Name:        "container",
				Usage:       "Destination container. Overrides the destination of --job",
				Destination: &container,
			},
			&cli.StringFlag{
				Name:        "blob",
				Usage:       "Destination blob name. Overrides the destination of --job",
				Destination: &blob,
			},
		}, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			input, err := buildExportInput(jobName, manifestURL, container, blob)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("starting export",
				slog.String("job", jobName),
				slog.String("manifest_url", input.ManifestURL),
				slog.String("destination", input.Destination.Path()),
				slog.Any("Storage", cfg.storage),
			)

			uc, closer, err := cfg.buildUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			if err := uc.ExportManifest(ctx, input); err != nil {
				errutil.HandleError(ctx, "export aborted", err)
				return errutil.Reported(err)
			}
			return nil
		},
	}
}

func buildExportInput(jobName, manifestURL, container, blob string) (*model.ExportInput, error) {
	input := &model.ExportInput{}

	if jobName != "" {
		job, err := model.LookupExportJob(jobName)
		if err != nil {
			return nil, err
		}
		input = job.Input()
	}

	if manifestURL != "" {
		input.ManifestURL = manifestURL
	}
	if container != "" || blob != "" {
		input.Destination = model.NewBlobDestination(container, blob)
	}

	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "either --job or --manifest-url with --container and --blob is required",
			goerr.V("cause", err.Error()),
		)
	}
	return input, nil
}
