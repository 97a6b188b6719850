package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/repository"
)

// TestAll runs all test cases for BlobRepository
// This is the main entry point for testing any BlobRepository implementation
func TestAll(t *testing.T, repo interfaces.BlobRepository) {
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("EnsureContainerIsIdempotent", func(t *testing.T) {
		TestEnsureContainerIsIdempotent(t, repo)
	})
	t.Run("NotFound", func(t *testing.T) {
		TestNotFound(t, repo)
	})
}

func newDestination() model.BlobDestination {
	return model.NewBlobDestination(
		fmt.Sprintf("owner-%s", uuid.New().String()[:8]),
		fmt.Sprintf("repo-%s", uuid.New().String()[:8]),
	)
}

// TestPutAndGet stores a blob and reads it back
func TestPutAndGet(t *testing.T, repo interfaces.BlobRepository) {
	ctx := context.Background()
	dst := newDestination()

	gt.NoError(t, repo.EnsureContainer(ctx, dst.Container))

	data := []byte(`{"stars":5,"forks":2,"watchers":5,"issues":1}`)
	gt.NoError(t, repo.PutBlob(ctx, dst, data, "application/json"))

	got := gt.R1(repo.GetBlob(ctx, dst)).NoError(t)
	gt.V(t, string(got)).Equal(string(data))
}

// TestOverwrite checks last-write-wins
func TestOverwrite(t *testing.T, repo interfaces.BlobRepository) {
	ctx := context.Background()
	dst := newDestination()

	gt.NoError(t, repo.EnsureContainer(ctx, dst.Container))
	gt.NoError(t, repo.PutBlob(ctx, dst, []byte(`{"stars":1}`), "application/json"))
	gt.NoError(t, repo.PutBlob(ctx, dst, []byte(`{"stars":2}`), "application/json"))

	got := gt.R1(repo.GetBlob(ctx, dst)).NoError(t)
	gt.V(t, string(got)).Equal(`{"stars":2}`)
}

// TestEnsureContainerIsIdempotent keeps existing blobs when the container is ensured again
func TestEnsureContainerIsIdempotent(t *testing.T, repo interfaces.BlobRepository) {
	ctx := context.Background()
	dst := newDestination()

	gt.NoError(t, repo.EnsureContainer(ctx, dst.Container))
	gt.NoError(t, repo.PutBlob(ctx, dst, []byte(`{"stars":3}`), "application/json"))
	gt.NoError(t, repo.EnsureContainer(ctx, dst.Container))

	got := gt.R1(repo.GetBlob(ctx, dst)).NoError(t)
	gt.V(t, string(got)).Equal(`{"stars":3}`)
}

// TestNotFound reads a blob that was never written
func TestNotFound(t *testing.T, repo interfaces.BlobRepository) {
	ctx := context.Background()
	dst := newDestination()

	gt.NoError(t, repo.EnsureContainer(ctx, dst.Container))

	_, err := repo.GetBlob(ctx, dst)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}
