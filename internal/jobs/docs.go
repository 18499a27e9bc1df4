// Package jobs provides scheduled background tasks for the courier ledger.
//
// Jobs are cron based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are started and stopped together through JobManager:
//
//	retention := jobs.NewLocationRetentionJob(&purgeHandler, index, location.Retention, logger)
//	manager := jobs.NewJobManager(retention)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Available Jobs
//
// LocationRetentionJob runs hourly. It deletes location records older than the
// retention window (7 days by default) and prunes couriers whose last fix is
// older than that from the Redis nearby index.
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. A failed start stops
// the jobs that were already running.
package jobs
