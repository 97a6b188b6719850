package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/repository"
)

type blob struct {
	data        []byte
	contentType string
}

type container struct {
	blobs map[types.BlobName]*blob
}

// BlobRepository keeps blobs in process memory. It backs tests and the
// --dry-run mode of the CLI.
type BlobRepository struct {
	mu         sync.RWMutex
	containers map[types.ContainerName]*container
}

var _ interfaces.BlobRepository = (*BlobRepository)(nil)

// New creates a new in-memory repository
func New() *BlobRepository {
	return &BlobRepository{
		containers: make(map[types.ContainerName]*container),
	}
}

func (x *BlobRepository) EnsureContainer(ctx context.Context, name types.ContainerName) error {
	if name == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "container name is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.containers[name]; !ok {
		x.containers[name] = &container{blobs: make(map[types.BlobName]*blob)}
	}
	return nil
}

func (x *BlobRepository) PutBlob(ctx context.Context, dst model.BlobDestination, data []byte, contentType string) error {
	if err := dst.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid destination", goerr.V("destination", dst))
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	c, ok := x.containers[dst.Container]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "container does not exist", goerr.V("container", dst.Container))
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	c.blobs[dst.Blob] = &blob{data: copied, contentType: contentType}
	return nil
}

func (x *BlobRepository) GetBlob(ctx context.Context, dst model.BlobDestination) ([]byte, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	c, ok := x.containers[dst.Container]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "container does not exist", goerr.V("container", dst.Container))
	}
	b, ok := c.blobs[dst.Blob]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "blob does not exist", goerr.V("destination", dst))
	}

	copied := make([]byte, len(b.data))
	copy(copied, b.data)
	return copied, nil
}

// ContentType returns content type of a stored blob, or empty string if not found.
func (x *BlobRepository) ContentType(dst model.BlobDestination) string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if c, ok := x.containers[dst.Container]; ok {
		if b, ok := c.blobs[dst.Blob]; ok {
			return b.contentType
		}
	}
	return ""
}

// Destinations returns all stored blob destinations.
func (x *BlobRepository) Destinations() []model.BlobDestination {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var dsts []model.BlobDestination
	for cname, c := range x.containers {
		for bname := range c.blobs {
			dsts = append(dsts, model.BlobDestination{Container: cname, Blob: bname})
		}
	}
	return dsts
}
