package model

import (
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repocache/pkg/domain/types"
)

type JobName string

const (
	JobAwesomeAzd  JobName = "awesome-azd"
	JobAIApps      JobName = "ai-apps"
	JobAITemplates JobName = "ai-templates"
)

const (
	awesomeAzdManifestURL = "https://raw.githubusercontent.com/Azure/awesome-azd/main/website/static/templates.json"
	aiAppsManifestURL     = "https://raw.githubusercontent.com/Azure/ai-apps/main/website/static/templates.json"
)

// SyncJob is a scheduled sync of every repository listed in a manifest.
type SyncJob struct {
	Name         JobName
	Schedule     string
	ManifestURL  string
	Supplemental []RepositoryReference
}

func (x *SyncJob) Input() *SyncInput {
	return &SyncInput{
		ManifestURL:  x.ManifestURL,
		Supplemental: x.Supplemental,
	}
}

// ExportJob is a scheduled copy of a manifest to a fixed destination.
type ExportJob struct {
	Name        JobName
	Schedule    string
	ManifestURL string
	Destination BlobDestination
}

func (x *ExportJob) Input() *ExportInput {
	return &ExportInput{
		ManifestURL: x.ManifestURL,
		Destination: x.Destination,
	}
}

// SyncJobs is the catalogue of built-in sync jobs. Schedules are six-field cron expressions (with seconds).
var SyncJobs = map[JobName]*SyncJob{
	JobAwesomeAzd: {
		Name:        JobAwesomeAzd,
		Schedule:    "0 33 3 * * *",
		ManifestURL: awesomeAzdManifestURL,
		// Tracked for the ai-apps gallery but not listed in awesome-azd
		Supplemental: []RepositoryReference{
			{Source: "https://github.com/Azure-Samples/assistant-data-openai-python-promptflow"},
			{Source: "https://github.com/Azure-Samples/summarization-openai-csharp-prompty"},
			{Source: "https://github.com/Azure-Samples/azure-openai-chat-frontend"},
			{Source: "https://github.com/azure-samples/openai-plugin-fastapi"},
			{Source: "https://github.com/azure-samples/contoso-chat-csharp-prompty"},
			{Source: "https://github.com/azure-samples/llama-index-python"},
			{Source: "https://github.com/azure-samples/llama-index-javascript"},
			{Source: "https://github.com/cwaddingham/canopy/tree/create-azd-template"},
			{Source: "https://github.com/azure-samples/azure-openai-assistant-javascript"},
		},
	},
	JobAIApps: {
		Name:        JobAIApps,
		Schedule:    "0 44 4 * * *",
		ManifestURL: aiAppsManifestURL,
	},
}

// ExportJobs is the catalogue of built-in export jobs.
var ExportJobs = map[JobName]*ExportJob{
	JobAITemplates: {
		Name:        JobAITemplates,
		Schedule:    "0 44 4 * * *",
		ManifestURL: aiAppsManifestURL,
		Destination: NewBlobDestination("ai-templates", "templates.json"),
	},
}

func LookupSyncJob(name string) (*SyncJob, error) {
	job, ok := SyncJobs[JobName(name)]
	if !ok {
		return nil, goerr.Wrap(types.ErrUnknownJob, "sync job is not defined", goerr.V("name", name))
	}
	return job, nil
}

func LookupExportJob(name string) (*ExportJob, error) {
	job, ok := ExportJobs[JobName(name)]
	if !ok {
		return nil, goerr.Wrap(types.ErrUnknownJob, "export job is not defined", goerr.V("name", name))
	}
	return job, nil
}

// SyncJobNames returns names of sync jobs in lexical order.
func SyncJobNames() []JobName {
	return sortedKeys(SyncJobs)
}

// ExportJobNames returns names of export jobs in lexical order.
func ExportJobNames() []JobName {
	return sortedKeys(ExportJobs)
}

func sortedKeys[T any](m map[JobName]T) []JobName {
	names := make([]JobName, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
