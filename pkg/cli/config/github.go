package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/infra/ghapp"
	"github.com/m-mizutani/repocache/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds the GitHub API endpoint and the credentials used when the
// secret store does not provide a token.
type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	apiBaseURL string

	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token used if the secret store is not configured or fails",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPOCACHE_GITHUB_TOKEN", "GH_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Destination: &x.apiBaseURL,
			Sources:     cli.EnvVars("REPOCACHE_GITHUB_API_URL"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used if no token is available",
			Category:    "GitHub App",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("REPOCACHE_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("REPOCACHE_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("REPOCACHE_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("APIBaseURL", x.apiBaseURL),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallationID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}

// Token returns the configured token. It may be empty.
func (x GitHub) Token() types.GitHubToken {
	return x.token
}

// NewClient builds the GitHub API client
func (x GitHub) NewClient() (*github.Client, error) {
	if x.apiBaseURL == "" {
		return github.New(), nil
	}

	baseURL, err := github.ParseBaseURL(x.apiBaseURL)
	if err != nil {
		return nil, err
	}
	return github.New(github.WithBaseURL(baseURL)), nil
}

// NewApp builds the GitHub App client. It returns nil without error if no
// App setting is given.
func (x GitHub) NewApp() (*ghapp.Client, error) {
	if x.appID == 0 && x.installID == 0 && x.privateKey == "" {
		return nil, nil
	}

	client, err := ghapp.New(x.appID, x.installID, x.privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "GitHub App requires ID, installation ID and private key")
	}
	return client, nil
}
