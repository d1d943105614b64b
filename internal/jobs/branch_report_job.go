package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report every five minutes.
const DefaultReportSchedule = "0 */5 * * * *"

// BranchSummarySource computes the summaries of every branch with orders.
type BranchSummarySource interface {
	Handle(ctx context.Context, query queries.ListBranchSummariesQuery) ([]*queries.BranchSummary, error)
}

// BranchReportJob publishes today's per-status counts to every branch room.
type BranchReportJob struct {
	source    BranchSummarySource
	publisher ports.EventPublisher
	schedule  string
	cron      *cron.Cron
	now       func() time.Time
	logger    *slog.Logger
}

// NewBranchReportJob creates the job. An empty schedule falls back to
// DefaultReportSchedule; schedules use the six-field cron format.
func NewBranchReportJob(
	source BranchSummarySource,
	publisher ports.EventPublisher,
	schedule string,
	logger *slog.Logger,
) *BranchReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &BranchReportJob{
		source:    source,
		publisher: publisher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		now:       time.Now,
		logger:    logger.With("component", "branch_report_job"),
	}
}

// Start schedules the job.
func (j *BranchReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(context.Background()); err != nil {
			j.logger.Error("Branch report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Branch report job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *BranchReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Branch report job stopped")
}

// Run reports the current UTC day once.
func (j *BranchReportJob) Run(ctx context.Context) error {
	from := j.now().UTC().Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	query, err := queries.NewListBranchSummariesQuery(from, to)
	if err != nil {
		return err
	}

	summaries, err := j.source.Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, summary := range summaries {
		j.publisher.Publish(summary.BranchID, ports.EventBranchSummary, summaryEvent(summary))
	}
	j.logger.Debug("Branch report published", "branches", len(summaries))
	return nil
}

func summaryEvent(s *queries.BranchSummary) ports.BranchSummaryEvent {
	counts := make(map[string]int, len(s.Counts))
	for status, count := range s.Counts {
		counts[status.String()] = count
	}
	return ports.BranchSummaryEvent{
		BranchID:       s.BranchID.String(),
		Counts:         counts,
		Active:         s.Active,
		Total:          s.Total,
		CompletedSales: s.CompletedSales.String(),
		From:           s.From.Format(time.RFC3339),
		To:             s.To.Format(time.RFC3339),
		GeneratedAt:    s.GeneratedAt.Format(time.RFC3339),
	}
}
