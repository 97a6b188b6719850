package usecase_test

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/repocache/pkg/domain/mock"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/infra"
	"github.com/m-mizutani/repocache/pkg/repository/memory"
	"github.com/m-mizutani/repocache/pkg/usecase"
	"github.com/m-mizutani/repocache/pkg/utils/testutil"
)

const (
	testManifestURL = "https://example.com/templates.json"
	testToken       = types.GitHubToken("ghp_test_token")
)

var testCommitDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// testEnv bundles mocks commonly used by usecase tests
type testEnv struct {
	gh       *mock.GitHubMock
	store    *memory.BlobRepository
	manifest string
	requests []*http.Request
}

func newTestEnv(manifest string) *testEnv {
	return &testEnv{
		gh: &mock.GitHubMock{
			GetRepositoryFunc: func(ctx context.Context, token types.GitHubToken, slug model.RepositorySlug) (*model.GitHubRepository, error) {
				return &model.GitHubRepository{
					Owner:           string(slug.Owner),
					Name:            string(slug.Repo),
					DefaultBranch:   "main",
					StargazersCount: 5,
					ForksCount:      2,
					WatchersCount:   5,
					OpenIssuesCount: 1,
				}, nil
			},
			GetBranchFunc: func(ctx context.Context, token types.GitHubToken, slug model.RepositorySlug, branch types.BranchName) (*model.GitHubBranch, error) {
				return &model.GitHubBranch{Name: string(branch), CommittedAt: testCommitDate}, nil
			},
		},
		store:    memory.New(),
		manifest: manifest,
	}
}

func (x *testEnv) httpClient() testutil.HTTPClientFunc {
	return func(req *http.Request) (*http.Response, error) {
		x.requests = append(x.requests, req)
		return testutil.NewResponse(http.StatusOK, x.manifest), nil
	}
}

func (x *testEnv) useCase(options ...usecase.Option) *usecase.UseCase {
	clients := infra.New(
		infra.WithGitHub(x.gh),
		infra.WithHTTPClient(x.httpClient()),
		infra.WithBlobRepository(x.store),
	)
	return usecase.New(clients, append([]usecase.Option{usecase.WithFallbackToken(testToken)}, options...)...)
}
