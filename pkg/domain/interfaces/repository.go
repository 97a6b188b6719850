package interfaces

import (
	"context"

	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
)

//go:generate moq -out ../mock/blob_repository_mock.go -pkg mock . BlobRepository

// BlobRepository stores JSON documents in containers of an object storage.
type BlobRepository interface {
	// EnsureContainer creates the container with public read access for blobs if it does not exist
	EnsureContainer(ctx context.Context, container types.ContainerName) error

	// PutBlob overwrites the blob at dst
	PutBlob(ctx context.Context, dst model.BlobDestination, data []byte, contentType string) error

	// GetBlob returns repository.ErrNotFound if the blob does not exist
	GetBlob(ctx context.Context, dst model.BlobDestination) ([]byte, error)
}
