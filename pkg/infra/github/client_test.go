package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/infra/github"
	"github.com/m-mizutani/repocache/pkg/utils/testutil"
)

func newTestClient(t *testing.T, handler http.Handler) *github.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	baseURL := gt.R1(github.ParseBaseURL(srv.URL)).NoError(t)
	return github.New(github.WithBaseURL(baseURL), github.WithHTTPClient(srv.Client()))
}

func TestGetRepository(t *testing.T) {
	slug := model.RepositorySlug{Owner: "foo", Repo: "bar"}

	t.Run("decode repository statistics", func(t *testing.T) {
		var authHeader string
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/foo/bar", func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"name": "bar",
				"owner": {"login": "foo"},
				"stargazers_count": 5,
				"forks_count": 2,
				"watchers_count": 5,
				"open_issues_count": 1,
				"default_branch": "main"
			}`))
		})

		client := newTestClient(t, mux)
		repo := gt.R1(client.GetRepository(context.Background(), types.GitHubToken("test-token"), slug)).NoError(t)

		gt.V(t, authHeader).Equal("Bearer test-token")
		gt.V(t, repo.Owner).Equal("foo")
		gt.V(t, repo.Name).Equal("bar")
		gt.V(t, repo.DefaultBranch).Equal("main")
		gt.V(t, repo.StargazersCount).Equal(5)
		gt.V(t, repo.ForksCount).Equal(2)
		gt.V(t, repo.WatchersCount).Equal(5)
		gt.V(t, repo.OpenIssuesCount).Equal(1)
	})

	t.Run("not found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/foo/bar", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		})

		client := newTestClient(t, mux)
		repo, err := client.GetRepository(context.Background(), types.GitHubToken("test-token"), slug)
		gt.Error(t, err)
		gt.V(t, repo).Equal(nil)
	})
}

func TestGetBranch(t *testing.T) {
	slug := model.RepositorySlug{Owner: "foo", Repo: "bar"}

	t.Run("decode head commit date", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/foo/bar/branches/main", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"name": "main",
				"commit": {
					"sha": "abc123",
					"commit": {
						"author": {"name": "octocat", "date": "2024-01-01T00:00:00Z"}
					}
				}
			}`))
		})

		client := newTestClient(t, mux)
		branch := gt.R1(client.GetBranch(context.Background(), types.GitHubToken("test-token"), slug, "main")).NoError(t)
		gt.V(t, branch.Name).Equal("main")
		gt.True(t, branch.CommittedAt.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("follow renamed branch", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/foo/bar/branches/master", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/repos/foo/bar/branches/main", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/repos/foo/bar/branches/main", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"name": "main",
				"commit": {
					"sha": "abc123",
					"commit": {
						"author": {"name": "octocat", "date": "2024-03-01T12:00:00Z"}
					}
				}
			}`))
		})

		client := newTestClient(t, mux)
		branch := gt.R1(client.GetBranch(context.Background(), types.GitHubToken("test-token"), slug, "master")).NoError(t)
		gt.V(t, branch.Name).Equal("main")
		gt.True(t, branch.CommittedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("missing commit date", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/foo/bar/branches/main", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name":"main","commit":{"sha":"abc123"}}`))
		})

		client := newTestClient(t, mux)
		branch := gt.R1(client.GetBranch(context.Background(), types.GitHubToken("test-token"), slug, "main")).NoError(t)
		gt.True(t, branch.CommittedAt.IsZero())
	})

	t.Run("server error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/foo/bar/branches/main", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		client := newTestClient(t, mux)
		_, err := client.GetBranch(context.Background(), types.GitHubToken("test-token"), slug, "main")
		gt.Error(t, err)
	})
}

func TestParseBaseURL(t *testing.T) {
	u := gt.R1(github.ParseBaseURL("https://ghe.example.com/api/v3")).NoError(t)
	gt.V(t, u.String()).Equal("https://ghe.example.com/api/v3/")
}

func TestGetRepository_Integration(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")

	client := github.New()
	slug := model.RepositorySlug{Owner: "google", Repo: "go-github"}

	repo, err := client.GetRepository(context.Background(), types.GitHubToken(token), slug)
	gt.NoError(t, err)
	gt.V(t, repo.DefaultBranch).NotEqual("")

	branch, err := client.GetBranch(context.Background(), types.GitHubToken(token), slug, types.BranchName(repo.DefaultBranch))
	gt.NoError(t, err)
	gt.False(t, branch.CommittedAt.IsZero())
}
