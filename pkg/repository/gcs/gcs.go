package gcs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/repository"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
	"github.com/m-mizutani/repocache/pkg/utils/safe"
	"google.golang.org/api/option"
)

// publicReadACL grants allUsers read access to a single object
const publicReadACL = "publicRead"

// BlobRepository stores blobs as objects of one Cloud Storage bucket. A
// container is an object name prefix, so <bucket>/<container>/<blob> is the
// public URL path of a blob.
type BlobRepository struct {
	client     *storage.Client
	bucket     types.BucketName
	projectID  types.GoogleProjectID
	prefix     string
	publicRead bool
}

var _ interfaces.BlobRepository = (*BlobRepository)(nil)

type Option func(*BlobRepository)

// WithProjectID enables bucket creation when the bucket does not exist
func WithProjectID(projectID types.GoogleProjectID) Option {
	return func(x *BlobRepository) {
		x.projectID = projectID
	}
}

// WithPrefix puts all containers under the prefix
func WithPrefix(prefix string) Option {
	return func(x *BlobRepository) {
		x.prefix = prefix
	}
}

// WithPublicRead controls the predefined ACL of uploaded objects. It must be
// disabled for buckets with uniform bucket-level access.
func WithPublicRead(enabled bool) Option {
	return func(x *BlobRepository) {
		x.publicRead = enabled
	}
}

// New creates a new Cloud Storage based repository
func New(ctx context.Context, bucket types.BucketName, options []Option, clientOptions ...option.ClientOption) (*BlobRepository, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket name is empty")
	}

	client, err := storage.NewClient(ctx, clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.V("bucket", bucket))
	}

	repo := &BlobRepository{
		client:     client,
		bucket:     bucket,
		publicRead: true,
	}
	for _, opt := range options {
		opt(repo)
	}

	return repo, nil
}

// Close releases the underlying client
func (x *BlobRepository) Close() error {
	return x.client.Close()
}

// ObjectName returns the object name of a blob destination
func (x *BlobRepository) ObjectName(dst model.BlobDestination) string {
	return path.Join(x.prefix, dst.Container.String(), dst.Blob.String())
}

// EnsureContainer implements interfaces.BlobRepository. Containers are object
// name prefixes and need no creation, but the bucket itself is created if it
// does not exist and a project ID is configured.
func (x *BlobRepository) EnsureContainer(ctx context.Context, container types.ContainerName) error {
	if container == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "container name is empty")
	}

	bkt := x.client.Bucket(x.bucket.String())
	if _, err := bkt.Attrs(ctx); err != nil {
		if !errors.Is(err, storage.ErrBucketNotExist) {
			return goerr.Wrap(err, "failed to get bucket attributes", goerr.V("bucket", x.bucket))
		}
		if x.projectID == "" {
			return goerr.Wrap(repository.ErrNotFound, "bucket does not exist and project ID is not set to create it",
				goerr.V("bucket", x.bucket),
			)
		}

		attrs := &storage.BucketAttrs{}
		if x.publicRead {
			attrs.PredefinedDefaultObjectACL = publicReadACL
		}
		if err := bkt.Create(ctx, x.projectID.String(), attrs); err != nil {
			return goerr.Wrap(err, "failed to create bucket",
				goerr.V("bucket", x.bucket),
				goerr.V("projectID", x.projectID),
			)
		}

		logging.From(ctx).Info("Created bucket",
			slog.String("bucket", x.bucket.String()),
			slog.String("container", container.String()),
		)
	}

	return nil
}

// PutBlob implements interfaces.BlobRepository.
func (x *BlobRepository) PutBlob(ctx context.Context, dst model.BlobDestination, data []byte, contentType string) error {
	if err := dst.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid destination", goerr.V("destination", dst))
	}

	name := x.ObjectName(dst)
	w := x.client.Bucket(x.bucket.String()).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if x.publicRead {
		w.PredefinedACL = publicReadACL
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}
	// the upload is only committed on Close
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to upload object", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}

	return nil
}

// GetBlob implements interfaces.BlobRepository.
func (x *BlobRepository) GetBlob(ctx context.Context, dst model.BlobDestination) ([]byte, error) {
	name := x.ObjectName(dst)
	r, err := x.client.Bucket(x.bucket.String()).Object(name).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(repository.ErrNotFound, "object does not exist",
				goerr.V("bucket", x.bucket),
				goerr.V("object", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to open object", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}
	defer safe.Close(r)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read object", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}
	return data, nil
}
