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

func syncCommand() *cli.Command {
	var (
		cfg              pipelineConfig
		jobName          string
		manifestURL      string
		supplementalFile string
	)

	return &cli.Command{
		Name:    "sync",
		Aliases: []string{"sy"},
		Usage:   "Publish statistics of repositories listed in a manifest",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "job",
				Aliases:     []string{"j"},
				Usage:       "Built-in sync job name (see jobs command)",
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
				Name:        "supplemental-file",
				Usage:       "JSON or YAML file of additional repository references, processed after the manifest",
				Sources:     cli.EnvVars("REPOCACHE_SUPPLEMENTAL_FILE"),
				Destination: &supplementalFile,
			},
		}, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			input, err := buildSyncInput(jobName, manifestURL, supplementalFile)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("starting sync",
				slog.String("job", jobName),
				slog.Any("input", input),
				slog.Any("GitHub", cfg.github),
				slog.Any("SecretManager", cfg.secretManager),
				slog.Any("Storage", cfg.storage),
				slog.Any("Sentry", &cfg.sentry),
			)

			uc, closer, err := cfg.buildUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			if _, err := uc.SyncRepositories(ctx, input); err != nil {
				errutil.HandleError(ctx, "sync aborted", err)
				return errutil.Reported(err)
			}
			return nil
		},
	}
}

func buildSyncInput(jobName, manifestURL, supplementalFile string) (*model.SyncInput, error) {
	input := &model.SyncInput{}

	if jobName != "" {
		job, err := model.LookupSyncJob(jobName)
		if err != nil {
			return nil, err
		}
		input = job.Input()
	}

	if manifestURL != "" {
		input.ManifestURL = manifestURL
	}
	if input.ManifestURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "either --job or --manifest-url is required")
	}

	if supplementalFile != "" {
		refs, err := loadSupplementalFile(supplementalFile)
		if err != nil {
			return nil, err
		}
		merged := make([]model.RepositoryReference, 0, len(input.Supplemental)+len(refs))
		merged = append(merged, input.Supplemental...)
		input.Supplemental = append(merged, refs...)
	}

	return input, nil
}
