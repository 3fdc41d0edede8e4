package jobs

import (
	"context"

	"repairshop/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// DefaultDocumentRetrySchedule runs the retry once a minute, at second zero.
const DefaultDocumentRetrySchedule = "0 * * * * *"

// DocumentRetrier renders again every order document whose last render failed.
type DocumentRetrier interface {
	RetryPending(ctx context.Context) (int, error)
}

// DocumentRetryJob re-renders order documents left pending by failed or
// dropped renders.
type DocumentRetryJob struct {
	retrier  DocumentRetrier
	schedule string
	cron     *cron.Cron
	logger   logger.Logger
}

// NewDocumentRetryJob schedules retrier with a six-field cron spec. An empty
// schedule means DefaultDocumentRetrySchedule.
func NewDocumentRetryJob(retrier DocumentRetrier, schedule string, log logger.Logger) *DocumentRetryJob {
	if schedule == "" {
		schedule = DefaultDocumentRetrySchedule
	}
	return &DocumentRetryJob{
		retrier:  retrier,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   log.With(logger.String("component", "document_retry_job")),
	}
}

// Start registers the schedule and starts the cron runner. A bad spec is
// returned and nothing runs.
func (j *DocumentRetryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Document retry job started", logger.String("schedule", j.schedule))
	return nil
}

// Run performs one retry round. Start calls it on every tick.
func (j *DocumentRetryJob) Run() {
	rendered, err := j.retrier.RetryPending(context.Background())
	if err != nil {
		j.logger.Error("Document retry job failed", logger.Int("rendered", rendered), logger.Error(err))
		return
	}
	if rendered > 0 {
		j.logger.Info("Pending documents rendered", logger.Int("rendered", rendered))
	}
}

// Stop stops scheduling and waits for a running round to finish.
func (j *DocumentRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Document retry job stopped")
}
