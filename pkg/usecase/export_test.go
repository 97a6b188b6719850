package usecase

// Export unexported functions for testing
var (
	FetchManifestRawForTest = fetchManifestRaw
	SkipReasonForTest       = skipReason
)
