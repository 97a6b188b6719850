package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub GitHubApp SecretStore

import (
	"context"

	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
)

// GitHub queries repository metadata with a bearer token.
type GitHub interface {
	GetRepository(ctx context.Context, token types.GitHubToken, slug model.RepositorySlug) (*model.GitHubRepository, error)
	GetBranch(ctx context.Context, token types.GitHubToken, slug model.RepositorySlug, branch types.BranchName) (*model.GitHubBranch, error)
}

// GitHubApp issues an installation access token.
type GitHubApp interface {
	InstallationToken(ctx context.Context) (types.GitHubToken, error)
}

// SecretStore returns a named secret value.
type SecretStore interface {
	GetSecret(ctx context.Context, id types.SecretID) (string, error)
}
