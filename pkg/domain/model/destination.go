package model

import (
	"strings"

	"github.com/m-mizutani/repocache/pkg/domain/types"
)

// BlobDestination is a storage location. Both keys are always lower-cased so
// that Owner/Repo and owner/repo resolve to the same object.
type BlobDestination struct {
	Container types.ContainerName
	Blob      types.BlobName
}

func NewBlobDestination(container, blob string) BlobDestination {
	return BlobDestination{
		Container: types.ContainerName(strings.ToLower(container)),
		Blob:      types.BlobName(strings.ToLower(blob)),
	}
}

// Path returns "<container>/<blob>"
func (x BlobDestination) Path() string {
	return string(x.Container) + "/" + string(x.Blob)
}

func (x BlobDestination) Validate() error {
	if x.Container == "" || x.Blob == "" {
		return types.ErrInvalidOption
	}
	return nil
}
