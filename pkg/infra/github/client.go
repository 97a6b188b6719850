package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
	"golang.org/x/oauth2"
)

// Client queries the GitHub REST API. A go-github client is built per call
// because the token is resolved per run.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient sets the base HTTP client wrapped by the OAuth2 transport
func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// WithBaseURL replaces https://api.github.com/, for GitHub Enterprise or tests
func WithBaseURL(baseURL *url.URL) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func New(options ...Option) *Client {
	client := &Client{
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// ParseBaseURL parses an API endpoint and appends a trailing slash that go-github requires.
func ParseBaseURL(v string) (*url.URL, error) {
	if !strings.HasSuffix(v, "/") {
		v += "/"
	}
	u, err := url.Parse(v)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL",
			goerr.V("url", v),
			goerr.V("cause", err.Error()),
		)
	}
	return u, nil
}

func (x *Client) buildGithubClient(ctx context.Context, token types.GitHubToken) *github.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.Reveal()})
	httpClient := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, x.httpClient), ts)

	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

// GetRepository implements interfaces.GitHub.
// https://docs.github.com/en/rest/repos/repos#get-a-repository
func (x *Client) GetRepository(ctx context.Context, token types.GitHubToken, slug model.RepositorySlug) (*model.GitHubRepository, error) {
	client := x.buildGithubClient(ctx, token)

	repo, resp, err := client.Repositories.Get(ctx, string(slug.Owner), string(slug.Repo))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("slug", slug.String()),
			goerr.V("status", statusCode(resp)),
		)
	}

	logging.From(ctx).Debug("GetRepository response",
		slog.String("slug", slug.String()),
		slog.String("default_branch", repo.GetDefaultBranch()),
		slog.Int("stars", repo.GetStargazersCount()),
	)

	return &model.GitHubRepository{
		Owner:           repo.GetOwner().GetLogin(),
		Name:            repo.GetName(),
		DefaultBranch:   repo.GetDefaultBranch(),
		StargazersCount: repo.GetStargazersCount(),
		ForksCount:      repo.GetForksCount(),
		WatchersCount:   repo.GetWatchersCount(),
		OpenIssuesCount: repo.GetOpenIssuesCount(),
	}, nil
}

// GetBranch implements interfaces.GitHub.
// https://docs.github.com/en/rest/branches/branches#get-a-branch
func (x *Client) GetBranch(ctx context.Context, token types.GitHubToken, slug model.RepositorySlug, branch types.BranchName) (*model.GitHubBranch, error) {
	client := x.buildGithubClient(ctx, token)

	b, resp, err := client.Repositories.GetBranch(ctx, string(slug.Owner), string(slug.Repo), string(branch), true)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get branch",
			goerr.V("slug", slug.String()),
			goerr.V("branch", branch),
			goerr.V("status", statusCode(resp)),
		)
	}

	result := &model.GitHubBranch{
		Name: b.GetName(),
	}
	if date := b.GetCommit().GetCommit().GetAuthor().GetDate(); !date.Time.IsZero() {
		result.CommittedAt = date.Time
	}

	return result, nil
}

func statusCode(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
