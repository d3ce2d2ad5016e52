package background

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"trustcart/internal/caching"
	"trustcart/internal/models"
	"trustcart/internal/repositories"
	"trustcart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStorage struct {
	enabled bool
	fail    string
	mu      sync.Mutex
	objects map[string][]byte
}

func (s *recordingStorage) Upload(_ context.Context, objectName string, data []byte, _ string) error {
	if s.fail != "" && objectName == services.SnapshotObjectName(s.fail) {
		return errors.New("upload refused")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	s.objects[objectName] = data
	return nil
}

func (s *recordingStorage) PresignedURL(context.Context, string, time.Duration) (string, error) {
	return "", nil
}

func (s *recordingStorage) EnsureBucketExists(context.Context) error { return nil }

func (s *recordingStorage) Enabled() bool { return s.enabled }

type fixture struct {
	cache     caching.CacheService
	storage   *recordingStorage
	scheduler *JobScheduler
}

func newFixture(t *testing.T, storageEnabled bool, intervals Intervals) *fixture {
	t.Helper()
	ctx := context.Background()
	cache := caching.NewMemoryCacheService()
	workspaces := services.NewWorkspaceService(repositories.NewMemoryStateRepo(), cache, nil, models.DefaultPricingConfig())
	categorySvc := services.NewCategoryService(cache, nil)
	storage := &recordingStorage{enabled: storageEnabled}
	pricingSvc := services.NewPricingService(workspaces, cache, nil)
	transfer := services.NewTransferService(workspaces, categorySvc, storage, cache, nil)

	for _, id := range []string{"ws-a", "ws-b"} {
		_, err := workspaces.UpdateProducts(ctx, id, func(p []models.Product) ([]models.Product, error) { return p, nil })
		require.NoError(t, err)
	}

	js, err := NewJobScheduler(workspaces, pricingSvc, transfer, storage, nil, intervals)
	require.NoError(t, err)
	js.Start()
	t.Cleanup(func() { _ = js.Stop() })
	return &fixture{cache: cache, storage: storage, scheduler: js}
}

func TestJobScheduler_RegistersConfiguredJobs(t *testing.T) {
	f := newFixture(t, true, Intervals{MetricsRefresh: time.Minute, Snapshot: time.Hour})

	status := f.scheduler.GetJobStatus()

	assert.Equal(t, 2, status["total_jobs"])
	assert.Equal(t, []string{metricsJobName, snapshotJobName}, status["jobs"])
}

func TestJobScheduler_SkipsSnapshotsWithoutStorage(t *testing.T) {
	f := newFixture(t, false, Intervals{MetricsRefresh: time.Minute, Snapshot: time.Hour})

	assert.Equal(t, []string{metricsJobName}, f.scheduler.GetJobStatus()["jobs"])
}

func TestJobScheduler_RefreshDashboards(t *testing.T) {
	f := newFixture(t, false, Intervals{})
	ctx := context.Background()

	require.NoError(t, f.scheduler.refreshDashboards(ctx))

	for _, id := range []string{"ws-a", "ws-b"} {
		dashboard, err := f.cache.GetDashboard(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, dashboard, id)
	}
}

func TestJobScheduler_UploadSnapshotsContinuesPastFailures(t *testing.T) {
	f := newFixture(t, true, Intervals{})
	f.storage.fail = "ws-a"

	require.NoError(t, f.scheduler.uploadSnapshots(context.Background()))

	assert.NotContains(t, f.storage.objects, services.SnapshotObjectName("ws-a"))
	assert.Contains(t, f.storage.objects, services.SnapshotObjectName("ws-b"))
}

func TestJobScheduler_AddJobRejectsDuplicateName(t *testing.T) {
	f := newFixture(t, false, Intervals{MetricsRefresh: time.Minute})

	require.NoError(t, f.scheduler.AddJob("noop", time.Hour, func() {}))
	assert.Error(t, f.scheduler.AddJob(metricsJobName, time.Hour, func() {}))
	assert.Equal(t, 2, f.scheduler.GetJobStatus()["total_jobs"])
}
