package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"staffhub/internal/apperrors"
	"staffhub/internal/models"
)

type TenantRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    TenantRepository
	context context.Context
	now     time.Time
}

func (suite *TenantRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewTenantRepo(mock)
	suite.context = context.Background()
	suite.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *TenantRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestTenantRepoTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepoTestSuite))
}

func (suite *TenantRepoTestSuite) TestGet_Success() {
	id := "tenant-1"

	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at FROM tenants WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(id, "Acme", suite.now, suite.now))

	tenant, err := suite.repo.Get(suite.context, GetTenantQuery{ID: &id})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, tenant.ID)
	assert.Equal(suite.T(), "Acme", tenant.Name)
	assert.Equal(suite.T(), suite.now, tenant.CreatedAt)
}

func (suite *TenantRepoTestSuite) TestGet_NotFoundReturnsNil() {
	id := "missing"

	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at FROM tenants WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	tenant, err := suite.repo.Get(suite.context, GetTenantQuery{ID: &id})
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), tenant)
}

func (suite *TenantRepoTestSuite) TestGet_NilIDMatchesNothing() {
	tenant, err := suite.repo.Get(suite.context, GetTenantQuery{})
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), tenant)
}

func (suite *TenantRepoTestSuite) TestGet_DriverError() {
	id := "tenant-1"

	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at FROM tenants WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(errors.New("connection refused"))

	tenant, err := suite.repo.Get(suite.context, GetTenantQuery{ID: &id})
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), tenant)
	assert.Equal(suite.T(), apperrors.CategoryInternal, apperrors.CategoryOf(err))
}

func (suite *TenantRepoTestSuite) TestList_NoPaging() {
	rows := pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
		AddRow("t2", "Newer", suite.now.Add(time.Hour), suite.now.Add(time.Hour)).
		AddRow("t1", "Older", suite.now, suite.now)

	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at FROM tenants ORDER BY created_at DESC`).
		WillReturnRows(rows)

	tenants, err := suite.repo.List(suite.context, ListTenantQuery{})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), tenants, 2)
	assert.Equal(suite.T(), "Newer", tenants[0].Name)
	assert.Equal(suite.T(), "Older", tenants[1].Name)
}

func (suite *TenantRepoTestSuite) TestList_WithLimitAndOffset() {
	limit, offset := uint64(5), uint64(10)

	rows := pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
		AddRow("t11", "Page Two", suite.now, suite.now)

	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at FROM tenants ORDER BY created_at DESC LIMIT 5 OFFSET 10`).
		WillReturnRows(rows)

	tenants, err := suite.repo.List(suite.context, ListTenantQuery{Limit: &limit, Offset: &offset})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), tenants, 1)
	assert.Equal(suite.T(), "Page Two", tenants[0].Name)
}

func (suite *TenantRepoTestSuite) TestList_Empty() {
	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at FROM tenants ORDER BY created_at DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))

	tenants, err := suite.repo.List(suite.context, ListTenantQuery{})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), tenants)
}

func (suite *TenantRepoTestSuite) TestCount_IgnoresPaging() {
	limit := uint64(5)

	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tenants`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))

	count, err := suite.repo.Count(suite.context, ListTenantQuery{Limit: &limit})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint64(42), count)
}

func (suite *TenantRepoTestSuite) TestCreate_Success() {
	tenant := models.NewTenant("Acme", suite.now)

	suite.mock.ExpectExec(`INSERT INTO tenants \(id,name,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4\)`).
		WithArgs(tenant.ID, tenant.Name, tenant.CreatedAt, tenant.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, tenant)
	assert.NoError(suite.T(), err)
}

func (suite *TenantRepoTestSuite) TestCreate_DriverError() {
	tenant := models.NewTenant("Acme", suite.now)

	suite.mock.ExpectExec(`INSERT INTO tenants \(id,name,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4\)`).
		WithArgs(tenant.ID, tenant.Name, tenant.CreatedAt, tenant.UpdatedAt).
		WillReturnError(errors.New("unique violation"))

	err := suite.repo.Create(suite.context, tenant)
	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.CategoryInternal, apperrors.CategoryOf(err))
}

func (suite *TenantRepoTestSuite) TestUpdate_Success() {
	tenant := models.NewTenant("Renamed", suite.now)

	suite.mock.ExpectExec(`UPDATE tenants SET name = \$1, updated_at = \$2 WHERE id = \$3`).
		WithArgs(tenant.Name, tenant.UpdatedAt, tenant.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, tenant)
	assert.NoError(suite.T(), err)
}

func (suite *TenantRepoTestSuite) TestUpdate_ZeroRowsIsNotAnError() {
	tenant := models.NewTenant("Ghost", suite.now)

	suite.mock.ExpectExec(`UPDATE tenants SET name = \$1, updated_at = \$2 WHERE id = \$3`).
		WithArgs(tenant.Name, tenant.UpdatedAt, tenant.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.Update(suite.context, tenant)
	assert.NoError(suite.T(), err)
}

func (suite *TenantRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectExec(`DELETE FROM tenants WHERE id = \$1`).
		WithArgs("tenant-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, "tenant-1")
	assert.NoError(suite.T(), err)
}

func (suite *TenantRepoTestSuite) TestDelete_AbsentIDStillSucceeds() {
	suite.mock.ExpectExec(`DELETE FROM tenants WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := suite.repo.Delete(suite.context, "missing")
	assert.NoError(suite.T(), err)
}
