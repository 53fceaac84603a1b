package scheduler

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskRunning   = errors.New("task is already running")
	ErrDuplicateTask = errors.New("task already registered")
	ErrNotStarted    = errors.New("scheduler not started")
)

// TaskFunc is the function signature for scheduled tasks.
type TaskFunc func(ctx context.Context) error

// TaskConfig contains configuration for a scheduled task.
type TaskConfig struct {
	ID          string
	Name        string
	Description string
	Cron        string // standard 5-field cron expression
	Func        TaskFunc
	RunOnStart  bool
}

// TaskInfo contains information about a scheduled task for API responses.
type TaskInfo struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Cron         string     `json:"cron"`
	LastRun      *time.Time `json:"lastRun,omitempty"`
	LastDuration string     `json:"lastDuration,omitempty"`
	LastError    string     `json:"lastError,omitempty"`
	NextRun      *time.Time `json:"nextRun,omitempty"`
	Running      bool       `json:"running"`
}

type taskEntry struct {
	config       TaskConfig
	job          gocron.Job
	lastRun      *time.Time
	lastDuration time.Duration
	lastErr      error
	running      bool
}

// Scheduler manages background scheduled tasks.
type Scheduler struct {
	gocron gocron.Scheduler
	logger zerolog.Logger

	mu    sync.RWMutex
	tasks map[string]*taskEntry
	ctx   context.Context
	wg    sync.WaitGroup
}

// New creates a new scheduler.
func New(logger zerolog.Logger) (*Scheduler, error) {
	gs, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Scheduler{
		gocron: gs,
		logger: logger.With().Str("component", "scheduler").Logger(),
		tasks:  make(map[string]*taskEntry),
	}, nil
}

// RegisterTask registers a new scheduled task.
func (s *Scheduler) RegisterTask(config TaskConfig) error {
	if config.Func == nil {
		return fmt.Errorf("task %q has no function", config.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[config.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTask, config.ID)
	}

	job, err := s.gocron.NewJob(
		gocron.CronJob(config.Cron, false),
		gocron.NewTask(func() { s.runScheduled(config.ID) }),
		gocron.WithName(config.Name),
		gocron.WithTags(config.ID),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create job for task %q: %w", config.ID, err)
	}

	s.tasks[config.ID] = &taskEntry{
		config: config,
		job:    job,
	}

	s.logger.Info().
		Str("id", config.ID).
		Str("name", config.Name).
		Str("cron", config.Cron).
		Bool("runOnStart", config.RunOnStart).
		Msg("Registered task")

	return nil
}

// runScheduled is the gocron entry point. A run still in progress from
// RunNow causes the scheduled tick to be skipped.
func (s *Scheduler) runScheduled(taskID string) {
	entry, ctx, err := s.claim(taskID)
	if err != nil {
		s.logger.Debug().Err(err).Str("id", taskID).Msg("Skipping scheduled run")
		return
	}
	s.execute(ctx, entry)
}

// claim marks a task as running and returns the context it should run with.
func (s *Scheduler) claim(taskID string) (*taskEntry, context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx == nil {
		return nil, nil, ErrNotStarted
	}
	entry, exists := s.tasks[taskID]
	if !exists {
		return nil, nil, fmt.Errorf("%w: %q", ErrTaskNotFound, taskID)
	}
	if entry.running {
		return nil, nil, fmt.Errorf("%w: %q", ErrTaskRunning, taskID)
	}
	entry.running = true
	return entry, s.ctx, nil
}

// execute runs a claimed task and records its outcome.
func (s *Scheduler) execute(ctx context.Context, entry *taskEntry) {
	log := s.logger.With().
		Str("id", entry.config.ID).
		Str("name", entry.config.Name).
		Logger()

	startTime := time.Now()
	log.Info().Msg("Starting task")

	err := entry.config.Func(ctx)
	duration := time.Since(startTime)

	s.mu.Lock()
	entry.running = false
	entry.lastRun = &startTime
	entry.lastDuration = duration
	entry.lastErr = err
	s.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Dur("duration", duration).Msg("Task failed")
		return
	}
	log.Info().Dur("duration", duration).Msg("Task completed")
}

// Start starts the scheduler and runs any tasks configured with RunOnStart.
// Tasks receive ctx, so cancelling it aborts in-flight runs.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.ctx != nil {
		s.mu.Unlock()
		return errors.New("scheduler already started")
	}
	s.ctx = ctx
	count := len(s.tasks)
	startup := make([]string, 0)
	for id, entry := range s.tasks {
		if entry.config.RunOnStart {
			startup = append(startup, id)
		}
	}
	s.mu.Unlock()

	s.logger.Info().Int("tasks", count).Msg("Starting scheduler")
	s.gocron.Start()

	slices.Sort(startup)
	for _, taskID := range startup {
		if err := s.RunNow(taskID); err != nil {
			s.logger.Warn().Err(err).Str("id", taskID).Msg("Startup run skipped")
		}
	}

	return nil
}

// Stop stops the scheduler and waits for manually triggered runs to finish.
func (s *Scheduler) Stop() error {
	s.logger.Info().Msg("Stopping scheduler")
	err := s.gocron.Shutdown()
	s.wg.Wait()
	return err
}

// RunNow triggers a task to run immediately in the background.
func (s *Scheduler) RunNow(taskID string) error {
	entry, ctx, err := s.claim(taskID)
	if err != nil {
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.execute(ctx, entry)
	}()
	return nil
}

// ListTasks returns information about all registered tasks, ordered by ID.
func (s *Scheduler) ListTasks() []TaskInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]TaskInfo, 0, len(s.tasks))
	for _, entry := range s.tasks {
		tasks = append(tasks, entry.info())
	}
	slices.SortFunc(tasks, func(a, b TaskInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return tasks
}

// GetTask returns information about a specific task.
func (s *Scheduler) GetTask(taskID string) (*TaskInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.tasks[taskID]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, taskID)
	}
	info := entry.info()
	return &info, nil
}

// info must be called with the scheduler lock held.
func (e *taskEntry) info() TaskInfo {
	info := TaskInfo{
		ID:          e.config.ID,
		Name:        e.config.Name,
		Description: e.config.Description,
		Cron:        e.config.Cron,
		LastRun:     e.lastRun,
		Running:     e.running,
	}
	if e.lastRun != nil {
		info.LastDuration = e.lastDuration.Round(time.Millisecond).String()
	}
	if e.lastErr != nil {
		info.LastError = e.lastErr.Error()
	}
	if nextRun, err := e.job.NextRun(); err == nil && !nextRun.IsZero() {
		info.NextRun = &nextRun
	}
	return info
}
