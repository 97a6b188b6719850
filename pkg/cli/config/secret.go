package config

import (
	"log/slog"

	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/infra/secret"
	"github.com/urfave/cli/v3"
)

// SecretManager configures Google Secret Manager as the primary token source
type SecretManager struct {
	projectID types.GoogleProjectID
	secretID  types.SecretID
	version   string
}

func (x *SecretManager) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "secret-project-id",
			Usage:       "Google Cloud project ID of Secret Manager. Secret Manager is not used if empty",
			Category:    "Secret Manager",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("REPOCACHE_SECRET_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "secret-id",
			Usage:       "Secret ID of the GitHub token",
			Category:    "Secret Manager",
			Value:       "GH-TOKEN",
			Destination: (*string)(&x.secretID),
			Sources:     cli.EnvVars("REPOCACHE_SECRET_ID"),
		},
		&cli.StringFlag{
			Name:        "secret-version",
			Usage:       "Version of the secret",
			Category:    "Secret Manager",
			Value:       "latest",
			Destination: &x.version,
			Sources:     cli.EnvVars("REPOCACHE_SECRET_VERSION"),
		},
	}
}

func (x SecretManager) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ProjectID", x.projectID.String()),
		slog.String("SecretID", x.secretID.String()),
		slog.String("Version", x.version),
	)
}

func (x SecretManager) SecretID() types.SecretID {
	return x.secretID
}

// NewClient returns nil without error if project ID is not set
func (x SecretManager) NewClient() (*secret.Client, error) {
	if x.projectID == "" {
		return nil, nil
	}
	return secret.New(x.projectID, x.version)
}
