package usecase

import (
	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/infra"
)

// DefaultSecretID is the name of the secret holding the GitHub token
const DefaultSecretID types.SecretID = "GH-TOKEN"

type UseCase struct {
	clients       *infra.Clients
	secretID      types.SecretID
	fallbackToken types.GitHubToken
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithSecretID sets the secret looked up in the secret store
func WithSecretID(id types.SecretID) Option {
	return func(x *UseCase) {
		x.secretID = id
	}
}

// WithFallbackToken sets the token used when the secret store is not configured or fails
func WithFallbackToken(token types.GitHubToken) Option {
	return func(x *UseCase) {
		x.fallbackToken = token
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:  clients,
		secretID: DefaultSecretID,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
