package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/health"
	"github.com/reelpick/reelpick/internal/scheduler"
)

type stubCatalog struct{ err error }

func (p stubCatalog) IsConfigured() bool { return true }
func (p stubCatalog) Test(ctx context.Context) error { return p.err }

type lookups struct{ err error }

func (l lookups) CheckLookups(ctx context.Context) error { return l.err }

func TestRegisterTasks(t *testing.T) {
	sched, err := scheduler.New(zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sched.Stop() })

	healthSvc := health.NewService(zerolog.Nop())
	cfg := config.Default().Scheduler

	require.NoError(t, RegisterCatalogHealthTask(sched, health.NewCatalogChecker(healthSvc, stubCatalog{}, zerolog.Nop()), &cfg, zerolog.Nop()))
	require.NoError(t, RegisterLookupCheckTask(sched, health.NewLookupChecker(healthSvc, lookups{}), &cfg, zerolog.Nop()))

	tasks := sched.ListTasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "catalog-health", tasks[0].ID)
	assert.Equal(t, cfg.HealthCron, tasks[0].Cron)
	assert.Equal(t, "lookup-check", tasks[1].ID)
}

func TestCatalogHealthTask_Run(t *testing.T) {
	healthSvc := health.NewService(zerolog.Nop())
	task := NewCatalogHealthTask(health.NewCatalogChecker(healthSvc, stubCatalog{err: errors.New("401")}, zerolog.Nop()), zerolog.Nop())

	require.Error(t, task.Run(context.Background()))
	assert.False(t, healthSvc.IsHealthy(health.CategoryCatalog, health.ItemCatalogAPI))
}

func TestLookupCheckTask_Run(t *testing.T) {
	healthSvc := health.NewService(zerolog.Nop())
	task := NewLookupCheckTask(health.NewLookupChecker(healthSvc, lookups{}), zerolog.Nop())

	require.NoError(t, task.Run(context.Background()))
	assert.True(t, healthSvc.IsHealthy(health.CategoryLookups, health.ItemLookups))
}
