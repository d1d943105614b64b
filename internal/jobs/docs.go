// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with seconds.
//
// # Available Jobs
//
// 1. BranchReportJob - Publishes each branch's per-status order counts for
// the current UTC day to the branch's live feed (REPORT_SCHEDULE, every five
// minutes by default)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	reportJob := jobs.NewBranchReportJob(summaries, hub, cfg.ReportSchedule, logger)
//	jobManager := jobs.NewJobManager(reportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		return fmt.Errorf("start jobs: %w", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick tries again. Failed job starts
// stop any already running jobs.
package jobs
