package service

import (
	"context"
	"fmt"
	"time"

	"app-builder-backend/internal/logger"
	"app-builder-backend/internal/metrics"
	"app-builder-backend/internal/repository"

	"github.com/robfig/cron/v3"
)

const staleBuildMessage = "build timed out"

// BuildReaper moves projects stuck in building to error. A build process that
// died mid-run leaves such a project behind.
type BuildReaper struct {
	repo   repository.ProjectRepositoryInterface
	maxAge time.Duration
	cron   *cron.Cron
	now    func() time.Time
}

// NewBuildReaper creates a reaper failing builds older than maxAge
func NewBuildReaper(repo repository.ProjectRepositoryInterface, maxAge time.Duration) *BuildReaper {
	return &BuildReaper{
		repo:   repo,
		maxAge: maxAge,
		cron:   cron.New(),
		now:    time.Now,
	}
}

// Start schedules Sweep with a cron spec such as "@every 1m"
func (r *BuildReaper) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, func() {
		if _, err := r.Sweep(context.Background()); err != nil {
			logger.New().WithError(err).Error("Stale build sweep failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid reaper schedule %q: %w", schedule, err)
	}
	r.cron.Start()
	return nil
}

// Stop halts scheduling; the returned context is done once a running sweep finishes
func (r *BuildReaper) Stop() context.Context {
	return r.cron.Stop()
}

// Sweep fails every build that started before now minus maxAge
func (r *BuildReaper) Sweep(ctx context.Context) (int64, error) {
	cutoff := r.now().Add(-r.maxAge)
	n, err := r.repo.FailStaleBuilds(ctx, cutoff, staleBuildMessage)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.StaleBuildsReapedTotal.Add(float64(n))
		logger.WithContext(ctx).WithField("cutoff", cutoff).Warnf("Marked %d stale builds as failed", n)
	}
	return n, nil
}
