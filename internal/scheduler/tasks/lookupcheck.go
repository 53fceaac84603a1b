package tasks

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/health"
	"github.com/reelpick/reelpick/internal/scheduler"
)

// LookupCheckTask verifies that the genre list and poster wall can be loaded.
type LookupCheckTask struct {
	checker *health.LookupChecker
	logger  zerolog.Logger
}

// NewLookupCheckTask creates a new lookup check task.
func NewLookupCheckTask(checker *health.LookupChecker, logger zerolog.Logger) *LookupCheckTask {
	return &LookupCheckTask{
		checker: checker,
		logger:  logger.With().Str("task", "lookup-check").Logger(),
	}
}

// Run executes the check.
func (t *LookupCheckTask) Run(ctx context.Context) error {
	if err := t.checker.Check(ctx); err != nil {
		t.logger.Warn().Err(err).Msg("Lookup check failed, index page will render without them")
		return err
	}
	return nil
}

// RegisterLookupCheckTask registers the lookup check with the scheduler.
func RegisterLookupCheckTask(
	sched *scheduler.Scheduler,
	checker *health.LookupChecker,
	cfg *config.SchedulerConfig,
	logger zerolog.Logger,
) error {
	task := NewLookupCheckTask(checker, logger)

	return sched.RegisterTask(scheduler.TaskConfig{
		ID:          "lookup-check",
		Name:        "Lookup Check",
		Description: "Loads the genre list and popular-movie posters",
		Cron:        cfg.LookupCheckCron,
		RunOnStart:  true,
		Func:        task.Run,
	})
}
