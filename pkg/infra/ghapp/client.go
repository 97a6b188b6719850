package ghapp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
)

// Client issues installation access tokens of a GitHub App. It is the last
// credential source, used when neither the secret store nor a static token is
// available.
type Client struct {
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey
	transport http.RoundTripper
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client)

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:     appID,
		installID: installID,
		pem:       pem,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) buildTransport() (*ghinstallation.Transport, error) {
	itr, err := ghinstallation.New(x.transport, int64(x.appID), int64(x.installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github app transport",
			goerr.V("appID", x.appID),
			goerr.V("installID", x.installID),
		)
	}
	return itr, nil
}

// InstallationToken implements interfaces.GitHubApp.
func (x *Client) InstallationToken(ctx context.Context) (types.GitHubToken, error) {
	itr, err := x.buildTransport()
	if err != nil {
		return "", err
	}

	token, err := itr.Token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to issue installation token",
			goerr.V("appID", x.appID),
			goerr.V("installID", x.installID),
		)
	}

	logging.From(ctx).Info("Issued GitHub App installation token",
		slog.Any("appID", x.appID),
		slog.Any("installID", x.installID),
	)

	return types.GitHubToken(token), nil
}
