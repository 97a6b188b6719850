package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repocache/pkg/cli/config"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/infra"
	"github.com/m-mizutani/repocache/pkg/usecase"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// pipelineConfig is a set of configurations shared by commands running the pipeline
type pipelineConfig struct {
	github        config.GitHub
	secretManager config.SecretManager
	storage       config.Storage
	sentry        config.Sentry
}

func (x *pipelineConfig) Flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.secretManager.Flags(),
		x.storage.Flags(),
		x.sentry.Flags(),
	)
}

// buildUseCase wires clients from configuration. The returned function releases them.
func (x *pipelineConfig) buildUseCase(ctx context.Context) (*usecase.UseCase, func(), error) {
	if err := x.sentry.Configure(ctx); err != nil {
		return nil, nil, err
	}

	ghClient, err := x.github.NewClient()
	if err != nil {
		return nil, nil, err
	}
	infraOptions := []infra.Option{
		infra.WithGitHub(ghClient),
	}

	if app, err := x.github.NewApp(); err != nil {
		return nil, nil, err
	} else if app != nil {
		infraOptions = append(infraOptions, infra.WithGitHubApp(app))
	}

	if store, err := x.secretManager.NewClient(); err != nil {
		return nil, nil, err
	} else if store != nil {
		infraOptions = append(infraOptions, infra.WithSecretStore(store))
	}

	repo, closer, err := x.storage.NewRepository(ctx)
	if err != nil {
		return nil, nil, err
	}
	infraOptions = append(infraOptions, infra.WithBlobRepository(repo))

	uc := usecase.New(infra.New(infraOptions...),
		usecase.WithSecretID(x.secretManager.SecretID()),
		usecase.WithFallbackToken(x.github.Token()),
	)
	return uc, closer, nil
}

// loadSupplementalFile reads repository references from a local file having
// the same shape as a manifest. Files with .yaml or .yml extension are read as
// YAML, others as JSON.
func loadSupplementalFile(path string) ([]model.RepositoryReference, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read supplemental file", goerr.V("path", path))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var refs []model.RepositoryReference
		if err := yaml.Unmarshal(raw, &refs); err != nil {
			return nil, goerr.Wrap(types.ErrInvalidManifest, "failed to parse supplemental YAML file",
				goerr.V("path", path),
				goerr.V("cause", err.Error()),
			)
		}
		return refs, nil
	}

	manifest, err := model.ParseManifest(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse supplemental file", goerr.V("path", path))
	}
	return manifest.References, nil
}
