package infra

import (
	"net/http"

	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/infra/github"
)

type Clients struct {
	github         interfaces.GitHub
	githubApp      interfaces.GitHubApp
	secretStore    interfaces.SecretStore
	httpClient     HTTPClient
	blobRepository interfaces.BlobRepository
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		github:     github.New(),
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) SecretStore() interfaces.SecretStore {
	return x.secretStore
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) BlobRepository() interfaces.BlobRepository {
	return x.blobRepository
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithSecretStore(store interfaces.SecretStore) Option {
	return func(x *Clients) {
		x.secretStore = store
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithBlobRepository(repo interfaces.BlobRepository) Option {
	return func(x *Clients) {
		x.blobRepository = repo
	}
}
