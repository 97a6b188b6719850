package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
)

// CollectRepositorySummary queries repository statistics and the head commit
// of the default branch. An error is returned only if the repository itself
// cannot be read. If the branch lookup fails, the summary has no UpdatedOn.
func (x *UseCase) CollectRepositorySummary(ctx context.Context, token types.GitHubToken, slug model.RepositorySlug) (*model.RepositorySummary, error) {
	logger := logging.From(ctx).With(slog.String("slug", slug.String()))

	logger.Debug("Read info from repo")
	repo, err := x.clients.GitHub().GetRepository(ctx, token, slug)
	if err != nil {
		return nil, err
	}

	if repo.DefaultBranch == "" {
		logger.Warn("Repository has no default branch, skip reading branch")
		return model.NewRepositorySummary(repo, nil), nil
	}

	branch, err := x.clients.GitHub().GetBranch(ctx, token, slug, types.BranchName(repo.DefaultBranch))
	if err != nil {
		logger.Warn("Failed to read default branch, summary has no update time",
			slog.String("branch", repo.DefaultBranch),
			slog.Any("error", err),
		)
		branch = nil
	}

	return model.NewRepositorySummary(repo, branch), nil
}
