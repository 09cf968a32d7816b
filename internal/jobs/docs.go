// Package jobs provides scheduled background tasks for the laundry tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. TagReconciliationJob - Runs every minute to return NFC tags to the pool
// when an order completed but its tag release step failed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconciliationJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation job logs failures and retries on the next tick; a tag
// that could not be released stays bound until a later run succeeds.
package jobs
