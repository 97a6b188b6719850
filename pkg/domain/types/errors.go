package types

import "errors"

var (
	ErrInvalidOption     = errors.New("invalid option")
	ErrInvalidGitHubData = errors.New("invalid GitHub data")

	// ErrNoCredential means neither the secret store nor the fallback sources yielded a token
	ErrNoCredential = errors.New("no GitHub credential available")

	// ErrUnsupportedHost and ErrInvalidSlug mark references that are skipped, not failed
	ErrUnsupportedHost = errors.New("unsupported repository host")
	ErrInvalidSlug     = errors.New("invalid repository slug")

	ErrInvalidManifest = errors.New("invalid manifest")
	ErrUnknownJob      = errors.New("unknown job")
)
