package jobs

import (
	"context"
	"log/slog"

	"laundrytrack/internal/core/application/usecases/commands"
	"laundrytrack/internal/core/domain/services"
	"laundrytrack/internal/metrics"

	"github.com/robfig/cron/v3"
)

// TagReconciliationJob repairs the second half of the completion operation.
// Completion commits the status change first and releases the NFC tag second;
// when the release step fails, the tag stays bound to a completed order and
// the pool slowly drains. This job scans completed orders that still carry a
// tag and returns those tags to the pool.
//
// A tag is only released when no active order holds it: a tag that was
// properly released and then acquired by a new order must not be stolen back.
type TagReconciliationJob struct {
	uowFactory commands.OrderUoWFactory
	tagPool    *services.TagPool
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTagReconciliationJob creates a job that reconciles the tag pool with the
// order store.
func NewTagReconciliationJob(
	uowFactory commands.OrderUoWFactory,
	tagPool *services.TagPool,
	logger *slog.Logger,
) *TagReconciliationJob {
	return &TagReconciliationJob{
		uowFactory: uowFactory,
		tagPool:    tagPool,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "tag_reconciliation_job"),
	}
}

// Start begins the reconciliation job, runs once per minute.
func (j *TagReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Tag reconciliation run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tag reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *TagReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tag reconciliation job stopped")
}

// Run performs a single reconciliation pass.
func (j *TagReconciliationJob) Run(ctx context.Context) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	active, err := orderRepo.GetAllWithTag(ctx)
	if err != nil {
		return err
	}
	inUse := make(map[string]struct{}, len(active))
	for _, o := range active {
		if tag := o.Tag(); tag != nil {
			inUse[tag.String()] = struct{}{}
		}
	}

	completed, err := orderRepo.GetAllCompletedWithTag(ctx)
	if err != nil {
		return err
	}

	for _, o := range completed {
		tag := o.Tag()
		if tag == nil {
			continue
		}
		if _, taken := inUse[tag.String()]; taken {
			continue
		}
		if j.tagPool.IsAvailable(*tag) {
			continue
		}

		if releaseErr := j.tagPool.Release(*tag); releaseErr != nil {
			j.logger.ErrorContext(ctx, "Failed to release stranded tag",
				"order_id", o.ID().String(),
				"tag", tag.String(),
				"error", releaseErr)
			continue
		}

		metrics.TagsReleasedTotal.Inc()
		j.logger.InfoContext(ctx, "Released stranded tag",
			"order_id", o.ID().String(),
			"tag", tag.String())
	}

	metrics.TagPoolAvailable.Set(float64(j.tagPool.AvailableCount()))
	return nil
}
