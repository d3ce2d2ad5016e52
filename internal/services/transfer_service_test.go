package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"trustcart/internal/caching"
	"trustcart/internal/models"
	"trustcart/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TransferServiceTestSuite struct {
	suite.Suite
	workspaces WorkspaceService
	cache      caching.CacheService
	storage    *MockStorageService
	service    TransferService
	ctx        context.Context
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.workspaces, suite.cache = newTestWorkspaces()
	suite.storage = new(MockStorageService)
	svc := NewTransferService(suite.workspaces, NewCategoryService(suite.cache, nil), suite.storage, suite.cache, nil).(*transferService)
	svc.now = fixedClock
	suite.service = svc
	suite.ctx = context.Background()

	_, err := suite.workspaces.UpdateProducts(suite.ctx, "ws", func([]models.Product) ([]models.Product, error) {
		return []models.Product{pricedProduct("1", "Phone", "Electronics", 1000, 1400)}, nil
	})
	suite.Require().NoError(err)
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

func (suite *TransferServiceTestSuite) TestImportAppends() {
	result, err := suite.service.Import(suite.ctx, "ws", "products.csv",
		strings.NewReader("Name,Cost,Category,Qty\nRice,100,Food & Beverages,3\n"), models.ImportModeAppend)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.Success)
	products, _ := suite.workspaces.Products(suite.ctx, "ws")
	require.Len(suite.T(), products, 2)
	assert.Equal(suite.T(), "Phone", products[0].Name)
	assert.Equal(suite.T(), "Rice", products[1].Name)
}

func (suite *TransferServiceTestSuite) TestImportReplaces() {
	_, err := suite.service.Import(suite.ctx, "ws", "products.csv",
		strings.NewReader("Name,Cost,Category,Qty\nRice,100,Food & Beverages,3\nTea,50,Food & Beverages,1\n"), models.ImportModeReplace)

	require.NoError(suite.T(), err)
	products, _ := suite.workspaces.Products(suite.ctx, "ws")
	require.Len(suite.T(), products, 2)
	assert.Equal(suite.T(), "Rice", products[0].Name)
}

func (suite *TransferServiceTestSuite) TestImportDetectsMissingCategory() {
	result, err := suite.service.Import(suite.ctx, "ws", "products.csv",
		strings.NewReader("Name,Cost,Category,Qty\niPhone 15,1000,,1\n"), models.ImportModeAppend)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Data, 1)
	assert.NotEqual(suite.T(), models.UncategorizedCategory, result.Data[0].Category)
}

func (suite *TransferServiceTestSuite) TestFailedImportLeavesWorkspaceUntouched() {
	result, err := suite.service.Import(suite.ctx, "ws", "products.pdf", strings.NewReader("Name,Cost\nA,1\n"), models.ImportModeReplace)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Success)
	products, _ := suite.workspaces.Products(suite.ctx, "ws")
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "Phone", products[0].Name)
}

func (suite *TransferServiceTestSuite) TestAnalysisIsCachedUntilProductsChange() {
	first, err := suite.service.Analysis(suite.ctx, "ws")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), first.CategoryDistribution, 1)
	assert.Equal(suite.T(), 1, first.CategoryDistribution[0].Count)

	_, err = suite.workspaces.UpdateProducts(suite.ctx, "ws", func(p []models.Product) ([]models.Product, error) {
		return append(p, pricedProduct("2", "Case", "Electronics", 100, 200)), nil
	})
	require.NoError(suite.T(), err)

	second, err := suite.service.Analysis(suite.ctx, "ws")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), second.CategoryDistribution, 1)
	assert.Equal(suite.T(), 2, second.CategoryDistribution[0].Count)
}

func (suite *TransferServiceTestSuite) TestExports() {
	productsCSV, bundlesCSV, err := suite.service.ExportCSV(suite.ctx, "ws")
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), string(productsCSV), "Phone")
	assert.NotEmpty(suite.T(), bundlesCSV)

	workbook, err := suite.service.ExportXLSX(suite.ctx, "ws")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), bytes.HasPrefix(workbook, []byte("PK")))

	pdf, err := suite.service.ExportPriceList(suite.ctx, "ws")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), bytes.HasPrefix(pdf, []byte("%PDF")))

	assert.NotEmpty(suite.T(), suite.service.Template())
}

func (suite *TransferServiceTestSuite) TestUploadSnapshot() {
	suite.storage.On("Enabled").Return(true)
	suite.storage.On("Upload", suite.ctx, "snapshots/ws/latest.xlsx", mock.AnythingOfType("[]uint8"), XLSXContentType).Return(nil)

	name, err := suite.service.UploadSnapshot(suite.ctx, "ws")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "snapshots/ws/latest.xlsx", name)
	suite.storage.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestUploadSnapshotFailure() {
	suite.storage.On("Enabled").Return(true)
	suite.storage.On("Upload", suite.ctx, "snapshots/ws/latest.xlsx", mock.Anything, XLSXContentType).Return(errors.New("bucket gone"))

	_, err := suite.service.UploadSnapshot(suite.ctx, "ws")

	assert.ErrorContains(suite.T(), err, "failed to upload snapshot")
}

func (suite *TransferServiceTestSuite) TestUploadSnapshotWithoutStorage() {
	suite.storage.On("Enabled").Return(false)

	_, err := suite.service.UploadSnapshot(suite.ctx, "ws")

	assert.ErrorIs(suite.T(), err, models.ErrStorageDisabled)
	suite.storage.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestSnapshotURL() {
	suite.storage.On("PresignedURL", suite.ctx, "snapshots/ws/latest.xlsx", 15*time.Minute).Return("https://minio/snap", nil)

	url, err := suite.service.SnapshotURL(suite.ctx, "ws")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://minio/snap", url)
}

func (suite *TransferServiceTestSuite) TestImportPricesCostOnlyRows() {
	result, err := suite.service.Import(suite.ctx, "ws", "tvs.csv",
		strings.NewReader("Name,Cost,Category\nTV A,1000,Electronics\nTV B,1200,Electronics\nTV C,1500,Electronics\n"), models.ImportModeReplace)
	require.NoError(suite.T(), err)
	require.True(suite.T(), result.Success)

	cfg := models.DefaultPricingConfig()
	products, err := suite.workspaces.Products(suite.ctx, "ws")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 3)
	for _, p := range products {
		require.NotNil(suite.T(), p.SellingPrice, p.Name)
		assert.Equal(suite.T(), pricing.CalculatePrice(p.CostPrice, cfg).SellingPrice, *p.SellingPrice)
	}
	assert.Equal(suite.T(), products[0].ManualSellingPrice(), result.Data[0].ManualSellingPrice())

	suggestions, err := NewBundleService(suite.workspaces, nil).Suggestions(suite.ctx, "ws")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), suggestions, 1)
	assert.Equal(suite.T(), "Electronics", suggestions[0].Category)
}

func (suite *TransferServiceTestSuite) TestImportKeepsValidRowsBesideRowErrors() {
	result, err := suite.service.Import(suite.ctx, "ws", "mixed.csv",
		strings.NewReader("Name,Cost\nGood,100\n,50\n"), models.ImportModeAppend)
	require.NoError(suite.T(), err)

	assert.False(suite.T(), result.Success)
	assert.Equal(suite.T(), 1, result.Stats.ValidRows)
	products, _ := suite.workspaces.Products(suite.ctx, "ws")
	require.Len(suite.T(), products, 2)
	assert.Equal(suite.T(), "Good", products[1].Name)
}

func (suite *TransferServiceTestSuite) TestHeaderErrorImportsNothing() {
	result, err := suite.service.Import(suite.ctx, "ws", "bad.csv",
		strings.NewReader("Category,Quantity\nFood,1\n"), models.ImportModeReplace)
	require.NoError(suite.T(), err)

	assert.False(suite.T(), result.Success)
	products, _ := suite.workspaces.Products(suite.ctx, "ws")
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "Phone", products[0].Name)
}
