package tasks

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/health"
	"github.com/reelpick/reelpick/internal/scheduler"
)

// CatalogHealthTask periodically tests the catalog API.
type CatalogHealthTask struct {
	checker *health.CatalogChecker
	logger  zerolog.Logger
}

// NewCatalogHealthTask creates a new catalog health check task.
func NewCatalogHealthTask(checker *health.CatalogChecker, logger zerolog.Logger) *CatalogHealthTask {
	return &CatalogHealthTask{
		checker: checker,
		logger:  logger.With().Str("task", "catalog-health").Logger(),
	}
}

// Run executes the catalog health check.
func (t *CatalogHealthTask) Run(ctx context.Context) error {
	if err := t.checker.Check(ctx); err != nil {
		t.logger.Warn().Err(err).Msg("Catalog health check failed")
		return err
	}
	return nil
}

// RegisterCatalogHealthTask registers the catalog health check with the scheduler.
// The first check runs at startup with retries, so the task does not run on start.
func RegisterCatalogHealthTask(
	sched *scheduler.Scheduler,
	checker *health.CatalogChecker,
	cfg *config.SchedulerConfig,
	logger zerolog.Logger,
) error {
	task := NewCatalogHealthTask(checker, logger)

	return sched.RegisterTask(scheduler.TaskConfig{
		ID:          "catalog-health",
		Name:        "Catalog Health Check",
		Description: "Verifies the TMDB API key and connectivity",
		Cron:        cfg.HealthCron,
		Func:        task.Run,
	})
}
