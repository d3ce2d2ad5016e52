package background

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"trustcart/internal/models"
	"trustcart/internal/services"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const (
	metricsJobName  = "dashboard-refresh"
	snapshotJobName = "workbook-snapshot"
	maxParallel     = 5
)

// Intervals configures how often the built-in jobs run. A zero interval
// disables the job.
type Intervals struct {
	MetricsRefresh time.Duration
	Snapshot       time.Duration
}

// JobScheduler runs the periodic per-workspace jobs.
type JobScheduler struct {
	scheduler  gocron.Scheduler
	workspaces services.WorkspaceService
	pricingSvc services.PricingService
	transfer   services.TransferService
	storage    services.StorageService
	logger     *zap.Logger
	jobs       map[string]gocron.Job
	mu         sync.RWMutex
}

// NewJobScheduler creates a new job scheduler. The snapshot job is only
// registered when object storage is enabled.
func NewJobScheduler(workspaces services.WorkspaceService, pricingSvc services.PricingService,
	transfer services.TransferService, storage services.StorageService,
	logger *zap.Logger, intervals Intervals) (*JobScheduler, error) {

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	js := &JobScheduler{
		scheduler:  scheduler,
		workspaces: workspaces,
		pricingSvc: pricingSvc,
		transfer:   transfer,
		storage:    storage,
		logger:     logger,
		jobs:       make(map[string]gocron.Job),
	}
	js.registerJobs(intervals)
	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	js.logger.Info("starting background job scheduler", zap.Int("jobs", len(js.jobs)))
	js.scheduler.Start()
}

// Stop waits for running jobs and stops the scheduler.
func (js *JobScheduler) Stop() error {
	js.logger.Info("stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs(intervals Intervals) {
	if intervals.MetricsRefresh > 0 {
		if err := js.AddJob(metricsJobName, intervals.MetricsRefresh, js.refreshDashboards, context.Background()); err != nil {
			js.logger.Error("failed to create dashboard refresh job", zap.Error(err))
		}
	}
	if intervals.Snapshot > 0 && js.storage != nil && js.storage.Enabled() {
		if err := js.AddJob(snapshotJobName, intervals.Snapshot, js.uploadSnapshots, context.Background()); err != nil {
			js.logger.Error("failed to create snapshot job", zap.Error(err))
		}
	}
}

// refreshDashboards recomputes and caches the dashboard of every workspace.
func (js *JobScheduler) refreshDashboards(ctx context.Context) error {
	return js.forEachWorkspace(ctx, metricsJobName, func(ctx context.Context, workspaceID string) error {
		_, err := js.pricingSvc.RefreshDashboard(ctx, workspaceID)
		return err
	})
}

// uploadSnapshots stores the current workbook of every workspace.
func (js *JobScheduler) uploadSnapshots(ctx context.Context) error {
	return js.forEachWorkspace(ctx, snapshotJobName, func(ctx context.Context, workspaceID string) error {
		_, err := js.transfer.UploadSnapshot(ctx, workspaceID)
		if errors.Is(err, models.ErrStorageDisabled) {
			return nil
		}
		return err
	})
}

// forEachWorkspace runs fn for every workspace with bounded concurrency.
// Failures are logged per workspace and do not stop the run.
func (js *JobScheduler) forEachWorkspace(ctx context.Context, job string, fn func(context.Context, string) error) error {
	workspaceIDs, err := js.workspaces.ListWorkspaces(ctx)
	if err != nil {
		js.logger.Error("failed to list workspaces", zap.String("job", job), zap.Error(err))
		return err
	}

	semaphore := make(chan struct{}, maxParallel)
	var wg sync.WaitGroup
	var failed int
	var failedMu sync.Mutex

	for _, workspaceID := range workspaceIDs {
		wg.Add(1)
		go func(workspaceID string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := fn(ctx, workspaceID); err != nil {
				js.logger.Warn("workspace job failed",
					zap.String("job", job),
					zap.String("workspace_id", workspaceID),
					zap.Error(err))
				failedMu.Lock()
				failed++
				failedMu.Unlock()
			}
		}(workspaceID)
	}
	wg.Wait()

	js.logger.Info("workspace job completed",
		zap.String("job", job),
		zap.Int("workspaces", len(workspaceIDs)),
		zap.Int("failed", failed))
	return nil
}

// AddJob adds a job that runs fn every interval. A run still in progress
// delays the next one instead of overlapping it.
func (js *JobScheduler) AddJob(name string, interval time.Duration, taskFn interface{}, params ...interface{}) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if _, exists := js.jobs[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}
	job, err := js.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(taskFn, params...),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	js.jobs[name] = job
	js.logger.Info("registered job", zap.String("job", name), zap.Duration("interval", interval))
	return nil
}

// GetJobStatus returns the names of the scheduled jobs. It is reported by the
// health endpoint.
func (js *JobScheduler) GetJobStatus() map[string]interface{} {
	js.mu.RLock()
	defer js.mu.RUnlock()

	names := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		names = append(names, name)
	}
	sort.Strings(names)

	return map[string]interface{}{
		"total_jobs": len(js.jobs),
		"jobs":       names,
	}
}
