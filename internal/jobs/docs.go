// Package jobs provides scheduled background tasks for the yard system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the booking flow cannot do inline.
//
// # Available Jobs
//
// 1. ManifestPollJob - Sweeps unparsed manifests through the extraction
// service every five minutes.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(processManifestsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Extraction failures are per-document: the sweep logs them and leaves
// the documents unparsed for the next run. A failing sweep never stops
// the schedule.
package jobs
