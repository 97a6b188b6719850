package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/types"
)

// RepositoryReference is one entry of a manifest. Only Source is consumed.
type RepositoryReference struct {
	Source string `json:"source" yaml:"source"`
}

// Manifest is a fetched list of repository references. Raw keeps the document
// as received so that it can be exported without modification.
type Manifest struct {
	Raw        []byte
	References []RepositoryReference
}

// ParseManifest decodes a JSON array of repository references.
func ParseManifest(raw []byte) (*Manifest, error) {
	var refs []RepositoryReference
	if err := json.Unmarshal(raw, &refs); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidManifest, "manifest is not a JSON array of references",
			goerr.V("cause", err.Error()),
			goerr.V("size", len(raw)),
		)
	}

	return &Manifest{
		Raw:        raw,
		References: refs,
	}, nil
}

// WithSupplemental returns references of the manifest followed by supplemental ones.
// The receiver is not modified.
func (x *Manifest) WithSupplemental(supplemental []RepositoryReference) []RepositoryReference {
	merged := make([]RepositoryReference, 0, len(x.References)+len(supplemental))
	merged = append(merged, x.References...)
	merged = append(merged, supplemental...)
	return merged
}
