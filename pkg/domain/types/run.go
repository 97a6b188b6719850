package types

import "github.com/google/uuid"

type RunID string

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string { return string(x) }

type SyncState string

const (
	SyncStateResolvingCredential SyncState = "resolving_credential"
	SyncStateFetchingManifest    SyncState = "fetching_manifest"
	SyncStateParsingSlug         SyncState = "parsing_slug"
	SyncStateCollectingMetadata  SyncState = "collecting_metadata"
	SyncStatePublishing          SyncState = "publishing"
	SyncStateDone                SyncState = "done"
	SyncStateAborted             SyncState = "aborted"
)
