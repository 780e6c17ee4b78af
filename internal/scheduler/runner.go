package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/services"
)

// Runner runs named jobs on cron specs (six fields, seconds first).
type Runner struct {
	cron    *cron.Cron
	logger  *zap.Logger
	baseCtx context.Context
}

func New(logger *zap.Logger, baseCtx context.Context) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Runner{
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

// Add registers job under spec. A panicking job is logged and does not stop the runner.
func (r *Runner) Add(spec, name string, job func(context.Context)) (cron.EntryID, error) {
	return r.cron.AddFunc(spec, func() {
		started := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("cron job panicked", zap.String("job", name), zap.Any("panic", rec))
			}
		}()
		job(r.baseCtx)
		r.logger.Info("cron job finished", zap.String("job", name), zap.Duration("took", time.Since(started)))
	})
}

// AddIngestion schedules a refresh of the default ticker universe.
func (r *Runner) AddIngestion(spec string, ingestion services.IngestionService) (cron.EntryID, error) {
	return r.Add(spec, "ingest-default", func(ctx context.Context) {
		summary := models.SummarizeOutcomes(ingestion.IngestDefault(ctx))
		r.logger.Info("scheduled ingestion done",
			zap.String("status", summary.Status),
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("failed", summary.Failed))
	})
}

func (r *Runner) Start() {
	r.logger.Info("cron started", zap.Int("jobs", len(r.cron.Entries())))
	r.cron.Start()
}

// Stop waits for running jobs to return.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("cron stopped")
}
