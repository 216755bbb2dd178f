// Package jobs runs the administrative batches of the backend on
// robfig/cron schedules (six fields, seconds first).
//
// OverduePaymentsJob scans hourly by default for pending or processing
// payments past their due date. Each one is logged and announced as a
// payment.overdue event; a publish failure is logged and the scan goes on.
//
// SessionPruneJob drops expired admin sessions every five minutes by default.
//
// JobManager starts both and stops them together:
//
//	manager := jobs.NewJobManager(overdue, pruner, publisher, jobs.Schedules{}, logger)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// Each job's Run performs a single pass. The cron entry calls it and tests
// call it directly.
package jobs
