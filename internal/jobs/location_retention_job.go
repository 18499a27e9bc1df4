package jobs

import (
	"context"
	"log/slog"
	"time"

	"courierledger/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RetentionSchedule runs at the top of every hour.
const RetentionSchedule = "0 0 * * * *"

type LocationPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredLocationsCommand) (int64, error)
}

// IndexPruner drops couriers whose last fix is older than cutoff from the
// nearby index.
type IndexPruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// LocationRetentionJob deletes location records older than the retention and
// prunes the nearby index to the same horizon.
type LocationRetentionJob struct {
	purger    LocationPurger
	pruner    IndexPruner
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLocationRetentionJob creates the job. pruner may be nil when no index is
// configured.
func NewLocationRetentionJob(
	purger LocationPurger,
	pruner IndexPruner,
	retention time.Duration,
	logger *slog.Logger,
) *LocationRetentionJob {
	return &LocationRetentionJob{
		purger:    purger,
		pruner:    pruner,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "location_retention_job"),
	}
}

func (j *LocationRetentionJob) Start() error {
	if _, err := j.cron.AddFunc(RetentionSchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Location retention job started", "schedule", RetentionSchedule, "retention", j.retention.String())
	return nil
}

// Stop waits for a running purge to finish.
func (j *LocationRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Location retention job stopped")
}

// Run performs one purge pass. Failures are logged and retried on the next tick.
func (j *LocationRetentionJob) Run(ctx context.Context) {
	cmd, err := commands.NewPurgeExpiredLocationsCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid retention", "error", err)
		return
	}

	purged, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Location purge failed", "error", err)
	} else if purged > 0 {
		j.logger.InfoContext(ctx, "Expired location records purged", "count", purged)
	}

	if j.pruner == nil {
		return
	}
	pruned, err := j.pruner.PruneBefore(ctx, time.Now().Add(-j.retention))
	if err != nil {
		j.logger.ErrorContext(ctx, "Nearby index prune failed", "error", err)
		return
	}
	if pruned > 0 {
		j.logger.InfoContext(ctx, "Stale couriers pruned from nearby index", "count", pruned)
	}
}
