package cli

// Export unexported functions for testing
var (
	BuildSyncInputForTest   = buildSyncInput
	BuildExportInputForTest = buildExportInput
	PrintJobsForTest        = printJobs
)
