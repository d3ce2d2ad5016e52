package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"trustcart/internal/caching"
	"trustcart/internal/categories"
	"trustcart/internal/jobs"
	"trustcart/internal/models"

	"go.uber.org/zap"
)

const (
	analysisTTL       = 10 * time.Minute
	snapshotURLExpiry = 15 * time.Minute
)

// SnapshotObjectName is where the latest workbook of a workspace is stored.
func SnapshotObjectName(workspaceID string) string {
	return fmt.Sprintf("snapshots/%s/latest.xlsx", workspaceID)
}

// TransferService moves product data in and out of files.
type TransferService interface {
	// Import parses the file, prices every valid row that has no selling
	// price and adds the valid rows to the workspace. Row errors do not block
	// the other rows; a header-level or file-level failure imports nothing.
	// Diagnostics are returned as data; the error is only set when the
	// workspace could not be updated.
	Import(ctx context.Context, workspaceID, filename string, r io.Reader, mode models.ImportMode) (models.ProcessingResult, error)
	Analysis(ctx context.Context, workspaceID string) (*models.AnalysisReport, error)
	ExportCSV(ctx context.Context, workspaceID string) (productsCSV, bundlesCSV []byte, err error)
	ExportXLSX(ctx context.Context, workspaceID string) ([]byte, error)
	ExportPriceList(ctx context.Context, workspaceID string) ([]byte, error)
	Template() []byte

	UploadSnapshot(ctx context.Context, workspaceID string) (string, error)
	SnapshotURL(ctx context.Context, workspaceID string) (string, error)
}

type transferService struct {
	workspaces  WorkspaceService
	categorySvc CategoryService
	storage     StorageService
	cacheSvc    caching.CacheService
	logger      *zap.Logger
	now         func() time.Time
}

func NewTransferService(workspaces WorkspaceService, categorySvc CategoryService, storage StorageService, cacheSvc caching.CacheService, logger *zap.Logger) TransferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &transferService{
		workspaces:  workspaces,
		categorySvc: categorySvc,
		storage:     storage,
		cacheSvc:    cacheSvc,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *transferService) processor(ctx context.Context) *jobs.Processor {
	detect := func(name string) string {
		category, err := s.categorySvc.Detect(ctx, name)
		if err != nil {
			return categories.Detect(name)
		}
		return category
	}
	return jobs.NewProcessor(s.logger, jobs.WithClock(s.now), jobs.WithCategoryDetector(detect))
}

func (s *transferService) Import(ctx context.Context, workspaceID, filename string, r io.Reader, mode models.ImportMode) (models.ProcessingResult, error) {
	result := s.processor(ctx).Import(filename, r)
	if len(result.Data) == 0 {
		return result, nil
	}

	_, err := s.workspaces.UpdateProducts(ctx, workspaceID, func(products []models.Product) ([]models.Product, error) {
		cfg, err := s.workspaces.Config(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		result.Data = jobs.RecalculateFormulas(result.Data, cfg, s.now(), false)
		if mode == models.ImportModeReplace {
			return models.CloneProducts(result.Data), nil
		}
		return append(products, result.Data...), nil
	})
	if err != nil {
		return result, err
	}
	s.logger.Info("products imported",
		zap.String("workspace_id", workspaceID),
		zap.String("mode", string(mode)),
		zap.Int("count", len(result.Data)))
	return result, nil
}

func (s *transferService) Analysis(ctx context.Context, workspaceID string) (*models.AnalysisReport, error) {
	cached, err := s.cacheSvc.GetAnalysis(ctx, workspaceID)
	if err != nil {
		s.logger.Warn("analysis cache read failed", zap.String("workspace_id", workspaceID), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	state, err := s.workspaces.State(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	report := jobs.GenerateAnalysis(state.Products, state.Config)
	if err := s.cacheSvc.SetAnalysis(ctx, workspaceID, &report, analysisTTL); err != nil {
		s.logger.Warn("analysis cache write failed", zap.String("workspace_id", workspaceID), zap.Error(err))
	}
	return &report, nil
}

func (s *transferService) ExportCSV(ctx context.Context, workspaceID string) ([]byte, []byte, error) {
	state, err := s.workspaces.State(ctx, workspaceID)
	if err != nil {
		return nil, nil, err
	}
	return jobs.ExportCSV(state.Products, state.Bundles, state.Config, s.now())
}

func (s *transferService) ExportXLSX(ctx context.Context, workspaceID string) ([]byte, error) {
	state, err := s.workspaces.State(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return jobs.ExportXLSX(state.Products, state.Bundles, state.Config, s.now())
}

func (s *transferService) ExportPriceList(ctx context.Context, workspaceID string) ([]byte, error) {
	state, err := s.workspaces.State(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return jobs.ExportPriceListPDF(state.Products, state.Config, s.now())
}

func (s *transferService) Template() []byte {
	return jobs.SampleCSV()
}

func (s *transferService) UploadSnapshot(ctx context.Context, workspaceID string) (string, error) {
	if !s.storage.Enabled() {
		return "", models.ErrStorageDisabled
	}
	data, err := s.ExportXLSX(ctx, workspaceID)
	if err != nil {
		return "", err
	}
	name := SnapshotObjectName(workspaceID)
	if err := s.storage.Upload(ctx, name, data, XLSXContentType); err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}
	return name, nil
}

func (s *transferService) SnapshotURL(ctx context.Context, workspaceID string) (string, error) {
	return s.storage.PresignedURL(ctx, SnapshotObjectName(workspaceID), snapshotURLExpiry)
}
