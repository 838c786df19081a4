// Package jobs provides scheduled background tasks for the delivery-note
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - Runs every minute and logs delivery notes whose
// target delivery date has passed while the note is still undelivered and
// not cancelled. The job only reads; acting on overdue notes is an operator
// decision.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overdueOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
