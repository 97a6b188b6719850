package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/infra"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
	"github.com/m-mizutani/repocache/pkg/utils/safe"
)

// FetchManifest downloads a manifest and decodes the repository references in it.
func (x *UseCase) FetchManifest(ctx context.Context, token types.GitHubToken, manifestURL string) (*model.Manifest, error) {
	raw, err := fetchManifestRaw(ctx, x.clients.HTTPClient(), token, manifestURL)
	if err != nil {
		return nil, err
	}

	manifest, err := model.ParseManifest(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse manifest", goerr.V("url", manifestURL))
	}

	logging.From(ctx).Info("Fetched manifest",
		slog.String("url", manifestURL),
		slog.Int("references", len(manifest.References)),
	)

	return manifest, nil
}

func fetchManifestRaw(ctx context.Context, httpClient infra.HTTPClient, token types.GitHubToken, manifestURL string) ([]byte, error) {
	logging.From(ctx).Info("Getting list of repos", slog.String("url", manifestURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifestURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request for manifest", goerr.V("url", manifestURL))
	}
	req.Header.Set("Authorization", "Bearer "+token.Reveal())
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download manifest", goerr.V("url", manifestURL))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, goerr.New("unexpected status code of manifest",
			goerr.V("url", manifestURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest", goerr.V("url", manifestURL))
	}

	if !json.Valid(raw) {
		return nil, goerr.Wrap(types.ErrInvalidManifest, "manifest is not JSON",
			goerr.V("url", manifestURL),
			goerr.V("size", len(raw)),
		)
	}

	return raw, nil
}
