// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the driver registry.
//
// # Available Jobs
//
// 1. DriverMovementJob - Runs every second to walk available drivers one random step
// 2. FleetReportJob - Runs every 30 seconds to log fleet size and availability
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(registry, relocateHandler, movementEnabled, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Movement job treats collisions and off-grid steps as expected outcomes of
//   the random walk and logs them at debug level only
// - All other job errors indicate system issues and are logged as errors
// - Failed job starts will stop any already running jobs
package jobs
