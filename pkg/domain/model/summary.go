package model

import (
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// GitHubRepository is the part of the repository API response used to build a summary.
type GitHubRepository struct {
	Owner           string
	Name            string
	DefaultBranch   string
	StargazersCount int
	ForksCount      int
	WatchersCount   int
	OpenIssuesCount int
}

// GitHubBranch is the part of the branch API response used to build a summary.
type GitHubBranch struct {
	Name string
	// CommittedAt is the author date of the head commit. Zero if unknown.
	CommittedAt time.Time
}

// RepositorySummary is the cached per-repository statistics record.
type RepositorySummary struct {
	Stars     int        `json:"stars"`
	Forks     int        `json:"forks"`
	Watchers  int        `json:"watchers"`
	Issues    int        `json:"issues"`
	UpdatedOn *time.Time `json:"updatedOn,omitempty"`
}

// NewRepositorySummary builds a summary. branch may be nil when the branch lookup failed.
func NewRepositorySummary(repo *GitHubRepository, branch *GitHubBranch) *RepositorySummary {
	summary := &RepositorySummary{
		Stars:    repo.StargazersCount,
		Forks:    repo.ForksCount,
		Watchers: repo.WatchersCount,
		Issues:   repo.OpenIssuesCount,
	}

	if branch != nil && !branch.CommittedAt.IsZero() {
		updatedOn := branch.CommittedAt.UTC()
		summary.UpdatedOn = &updatedOn
	}

	return summary
}

func (x *RepositorySummary) JSON() ([]byte, error) {
	raw, err := json.Marshal(x)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal repository summary")
	}
	return raw, nil
}
