// Package jobs provides scheduled background tasks for the repair shop.
//
// Jobs run on github.com/robfig/cron/v3 with second-resolution specs.
//
// # Available Jobs
//
// 1. DocumentRetryJob - renders again the printable documents of orders whose
// last render failed or was dropped because the worker queue was full.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dispatcher, cfg.DocumentRetrySchedule, log)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs", logger.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A round that fails is logged and the orders stay pending for the next tick.
// An invalid schedule makes StartAll fail.
package jobs
