package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"trustcart/internal/models"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	selectStateQuery = regexp.QuoteMeta(`SELECT payload FROM workspace_state WHERE workspace_id = $1 AND kind = $2`)
	upsertStateQuery = regexp.QuoteMeta(`INSERT INTO workspace_state (workspace_id, kind, payload, updated_at)`)
)

type StateRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    StateRepository
	context context.Context
}

func (suite *StateRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewStateRepo(mock)
	suite.context = context.Background()
}

func (suite *StateRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestStateRepoTestSuite(t *testing.T) {
	suite.Run(t, new(StateRepoTestSuite))
}

func (suite *StateRepoTestSuite) TestLoadProducts_Success() {
	payload := []byte(`[{"id":"1","name":"Phone","category":"Electronics","costPrice":1000,"sellingPrice":1400,"quantity":2,"isActive":true}]`)
	suite.mock.ExpectQuery(selectStateQuery).
		WithArgs("ws-1", "products").
		WillReturnRows(pgxmock.NewRows([]string{"payload"}).AddRow(payload))

	products, err := suite.repo.LoadProducts(suite.context, "ws-1")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "Phone", products[0].Name)
	assert.Equal(suite.T(), 1400.0, products[0].ManualSellingPrice())
	assert.Nil(suite.T(), products[0].MarketPrice)
}

func (suite *StateRepoTestSuite) TestLoadProducts_NotFound() {
	suite.mock.ExpectQuery(selectStateQuery).
		WithArgs("ws-1", "products").
		WillReturnError(pgx.ErrNoRows)

	_, err := suite.repo.LoadProducts(suite.context, "ws-1")

	assert.ErrorIs(suite.T(), err, models.ErrStateNotFound)
}

func (suite *StateRepoTestSuite) TestLoadConfig_DatabaseError() {
	suite.mock.ExpectQuery(selectStateQuery).
		WithArgs("ws-1", "config").
		WillReturnError(errors.New("connection reset"))

	_, err := suite.repo.LoadConfig(suite.context, "ws-1")

	require.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, models.ErrStateNotFound)
	assert.Contains(suite.T(), err.Error(), "failed to load config")
}

func (suite *StateRepoTestSuite) TestLoadConfig_CorruptPayload() {
	suite.mock.ExpectQuery(selectStateQuery).
		WithArgs("ws-1", "config").
		WillReturnRows(pgxmock.NewRows([]string{"payload"}).AddRow([]byte(`{not json`)))

	_, err := suite.repo.LoadConfig(suite.context, "ws-1")

	assert.ErrorContains(suite.T(), err, "failed to decode config")
}

func (suite *StateRepoTestSuite) TestSaveConfig_Upserts() {
	suite.mock.ExpectExec(upsertStateQuery).
		WithArgs("ws-1", "config", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.SaveConfig(suite.context, "ws-1", models.DefaultPricingConfig())

	assert.NoError(suite.T(), err)
}

func (suite *StateRepoTestSuite) TestSaveBundles_NilIsStoredAsEmpty() {
	suite.mock.ExpectExec(upsertStateQuery).
		WithArgs("ws-1", "bundles", []byte(`[]`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.SaveBundles(suite.context, "ws-1", nil)

	assert.NoError(suite.T(), err)
}

func (suite *StateRepoTestSuite) TestSaveProducts_DatabaseError() {
	suite.mock.ExpectExec(upsertStateQuery).
		WithArgs("ws-1", "products", pgxmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	err := suite.repo.SaveProducts(suite.context, "ws-1", models.DefaultProducts(fixedNow))

	assert.ErrorContains(suite.T(), err, "failed to save products")
}

func (suite *StateRepoTestSuite) TestListWorkspaces() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT workspace_id FROM workspace_state ORDER BY workspace_id`)).
		WillReturnRows(pgxmock.NewRows([]string{"workspace_id"}).AddRow("a").AddRow("b"))

	ids, err := suite.repo.ListWorkspaces(suite.context)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"a", "b"}, ids)
}
