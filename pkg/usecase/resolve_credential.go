package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
)

// ResolveCredential returns a GitHub token. The secret store is preferred, then
// the fallback token, then a GitHub App installation token. A failing source is
// logged and skipped. If no source yields a token, types.ErrNoCredential is
// returned and the caller must not proceed.
func (x *UseCase) ResolveCredential(ctx context.Context) (types.GitHubToken, error) {
	logger := logging.From(ctx)

	if store := x.clients.SecretStore(); store != nil {
		value, err := store.GetSecret(ctx, x.secretID)
		switch {
		case err != nil:
			logger.Warn("Failed to fetch secret, skip using secret store",
				slog.String("secret_id", x.secretID.String()),
				slog.Any("error", err),
			)
		case strings.TrimSpace(value) == "":
			logger.Warn("Secret is empty, skip using secret store",
				slog.String("secret_id", x.secretID.String()),
			)
		default:
			logger.Debug("Resolved GitHub token from secret store", slog.String("secret_id", x.secretID.String()))
			return types.GitHubToken(strings.TrimSpace(value)), nil
		}
	}

	if x.fallbackToken != "" {
		logger.Debug("Resolved GitHub token from configuration")
		return x.fallbackToken, nil
	}

	if app := x.clients.GitHubApp(); app != nil {
		token, err := app.InstallationToken(ctx)
		if err != nil {
			logger.Warn("Failed to issue GitHub App installation token", slog.Any("error", err))
		} else if token != "" {
			return token, nil
		}
	}

	return "", goerr.Wrap(types.ErrNoCredential, "No GitHub token found. Required to fetch manifest and repository metadata",
		goerr.V("secret_store", x.clients.SecretStore() != nil),
		goerr.V("github_app", x.clients.GitHubApp() != nil),
	)
}
