package secret

import (
	"context"
	"fmt"
	"log/slog"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
	"github.com/m-mizutani/repocache/pkg/utils/safe"
	"google.golang.org/api/option"
)

// Client reads secrets from Google Cloud Secret Manager. A gRPC client is
// opened per lookup because a run reads exactly one secret.
type Client struct {
	projectID types.GoogleProjectID
	version   string
	options   []option.ClientOption
}

var _ interfaces.SecretStore = (*Client)(nil)

func New(projectID types.GoogleProjectID, version string, options ...option.ClientOption) (*Client, error) {
	if projectID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "projectID is empty")
	}
	if version == "" {
		version = "latest"
	}

	return &Client{
		projectID: projectID,
		version:   version,
		options:   options,
	}, nil
}

// SecretVersionName returns the resource name of the secret version to access.
func (x *Client) SecretVersionName(id types.SecretID) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", x.projectID, id, x.version)
}

// GetSecret implements interfaces.SecretStore.
func (x *Client) GetSecret(ctx context.Context, id types.SecretID) (string, error) {
	client, err := secretmanager.NewClient(ctx, x.options...)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create secret manager client", goerr.V("projectID", x.projectID))
	}
	defer safe.Close(client)

	name := x.SecretVersionName(id)
	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to access secret version", goerr.V("name", name))
	}

	logging.From(ctx).Debug("Accessed secret version", slog.String("name", resp.GetName()))

	return string(resp.GetPayload().GetData()), nil
}
