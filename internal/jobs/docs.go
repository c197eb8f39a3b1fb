// Package jobs provides scheduled background tasks for the workload service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field, so schedules take six
// fields, e.g. "0 */5 * * * *".
//
// # Available Jobs
//
// ModuleLoadReconcileJob recomputes the load of every order and the aggregate of every module
// from the order table. Modules whose stored aggregate differed are logged at warn level with
// the stored and the recomputed value. The schedule comes from LOAD_RECONCILE_SCHEDULE.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, cfg.ReconcileSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatalf("failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
package jobs
