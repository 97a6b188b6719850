package model

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/types"
)

const (
	gitHubScheme = "https"
	gitHubHost   = "github.com"
)

// RepositorySlug identifies a hosted repository by owner and name.
type RepositorySlug struct {
	Owner types.GitHubOwner
	Repo  types.GitHubRepoName
}

func (x RepositorySlug) String() string {
	return string(x.Owner) + "/" + string(x.Repo)
}

// Destination returns the storage location of the summary of the repository.
func (x RepositorySlug) Destination() BlobDestination {
	return NewBlobDestination(string(x.Owner), string(x.Repo))
}

// ParseRepositorySlug extracts owner and repo from a repository URL such as
// https://github.com/owner/repo. Only the first two path segments are used, so
// URLs pointing into a tree or a branch yield the same slug. It returns
// types.ErrUnsupportedHost for URLs of other hosts and types.ErrInvalidSlug if
// owner or repo is missing. Both errors mean the reference should be skipped.
func ParseRepositorySlug(source string) (RepositorySlug, error) {
	u, err := url.Parse(strings.TrimSpace(source))
	if err != nil {
		return RepositorySlug{}, goerr.Wrap(types.ErrUnsupportedHost, "failed to parse repository URL",
			goerr.V("source", source),
			goerr.V("cause", err.Error()),
		)
	}

	// Host names are case-insensitive, so https://GitHub.com/foo/bar is accepted as well
	if u.Scheme != gitHubScheme || !strings.EqualFold(u.Host, gitHubHost) {
		return RepositorySlug{}, goerr.Wrap(types.ErrUnsupportedHost, "not a GitHub repository URL",
			goerr.V("source", source),
		)
	}

	parts := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return RepositorySlug{}, goerr.Wrap(types.ErrInvalidSlug, "owner or repo is missing",
			goerr.V("source", source),
		)
	}

	repo := strings.TrimSuffix(parts[1], ".git")
	if repo == "" {
		return RepositorySlug{}, goerr.Wrap(types.ErrInvalidSlug, "repo is empty", goerr.V("source", source))
	}

	return RepositorySlug{
		Owner: types.GitHubOwner(parts[0]),
		Repo:  types.GitHubRepoName(repo),
	}, nil
}
