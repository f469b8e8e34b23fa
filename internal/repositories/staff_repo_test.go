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

const staffSelect = `SELECT id, tenant_id, role, auth_uid, display_name, image_path, email, created_at, updated_at FROM staffs`

type StaffRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    StaffRepository
	context context.Context
	now     time.Time
}

func (suite *StaffRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewStaffRepo(mock)
	suite.context = context.Background()
	suite.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *StaffRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestStaffRepoTestSuite(t *testing.T) {
	suite.Run(t, new(StaffRepoTestSuite))
}

func (suite *StaffRepoTestSuite) staffRow(id, tenantID, role string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "tenant_id", "role", "auth_uid", "display_name", "image_path", "email", "created_at", "updated_at"}).
		AddRow(id, tenantID, role, "uid-"+id, "Staff "+id, "images/"+id+".png", id+"@example.com", suite.now, suite.now)
}

func (suite *StaffRepoTestSuite) TestGet_ByID() {
	id := "staff-1"

	suite.mock.ExpectQuery(staffSelect+` WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(suite.staffRow(id, "tenant-1", "admin"))

	staff, err := suite.repo.Get(suite.context, GetStaffQuery{ID: &id})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, staff.ID)
	assert.Equal(suite.T(), models.RoleAdmin, staff.Role)
	assert.Nil(suite.T(), staff.Tenant)
}

func (suite *StaffRepoTestSuite) TestGet_ByAuthUID() {
	authUID := "firebase-uid-1"

	suite.mock.ExpectQuery(staffSelect+` WHERE auth_uid = \$1`).
		WithArgs(authUID).
		WillReturnRows(suite.staffRow("staff-1", "tenant-1", "normal"))

	staff, err := suite.repo.Get(suite.context, GetStaffQuery{AuthUID: &authUID})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleNormal, staff.Role)
}

func (suite *StaffRepoTestSuite) TestGet_ByIDAndAuthUID() {
	id := "staff-1"
	authUID := "firebase-uid-1"

	suite.mock.ExpectQuery(staffSelect+` WHERE id = \$1 AND auth_uid = \$2`).
		WithArgs(id, authUID).
		WillReturnRows(suite.staffRow(id, "tenant-1", "normal"))

	staff, err := suite.repo.Get(suite.context, GetStaffQuery{ID: &id, AuthUID: &authUID})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, staff.ID)
}

func (suite *StaffRepoTestSuite) TestGet_NoCriteriaMatchesNothing() {
	staff, err := suite.repo.Get(suite.context, GetStaffQuery{})
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), staff)
}

func (suite *StaffRepoTestSuite) TestGet_NotFoundReturnsNil() {
	id := "missing"

	suite.mock.ExpectQuery(staffSelect+` WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	staff, err := suite.repo.Get(suite.context, GetStaffQuery{ID: &id})
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), staff)
}

func (suite *StaffRepoTestSuite) TestGet_UnknownRoleIsLenient() {
	id := "staff-1"

	suite.mock.ExpectQuery(staffSelect+` WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(suite.staffRow(id, "tenant-1", "superuser"))

	staff, err := suite.repo.Get(suite.context, GetStaffQuery{ID: &id})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleUnknown, staff.Role)
}

func (suite *StaffRepoTestSuite) TestGet_WithTenantLoadsSnapshot() {
	id := "staff-1"

	suite.mock.ExpectQuery(staffSelect+` WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(suite.staffRow(id, "tenant-1", "normal"))
	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at FROM tenants WHERE id = \$1`).
		WithArgs("tenant-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow("tenant-1", "Acme", suite.now, suite.now))

	staff, err := suite.repo.Get(suite.context, GetStaffQuery{ID: &id, WithTenant: true})
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), staff.Tenant)
	assert.Equal(suite.T(), "Acme", staff.Tenant.Name)
}

func (suite *StaffRepoTestSuite) TestGet_WithTenantMissingSnapshotIsNotAnError() {
	id := "staff-1"

	suite.mock.ExpectQuery(staffSelect+` WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(suite.staffRow(id, "tenant-1", "normal"))
	suite.mock.ExpectQuery(`SELECT id, name, created_at, updated_at FROM tenants WHERE id = \$1`).
		WithArgs("tenant-1").
		WillReturnError(pgx.ErrNoRows)

	staff, err := suite.repo.Get(suite.context, GetStaffQuery{ID: &id, WithTenant: true})
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), staff.Tenant)
}

func (suite *StaffRepoTestSuite) TestList_AllStaffs() {
	rows := pgxmock.NewRows([]string{"id", "tenant_id", "role", "auth_uid", "display_name", "image_path", "email", "created_at", "updated_at"}).
		AddRow("s2", "tenant-1", "admin", "uid-2", "Newer", "", "", suite.now.Add(time.Hour), suite.now.Add(time.Hour)).
		AddRow("s1", "tenant-2", "normal", "uid-1", "Older", "", "", suite.now, suite.now)

	suite.mock.ExpectQuery(staffSelect + ` ORDER BY created_at DESC`).
		WillReturnRows(rows)

	staffs, err := suite.repo.List(suite.context, ListStaffQuery{})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), staffs, 2)
	assert.Equal(suite.T(), "Newer", staffs[0].DisplayName)
}

func (suite *StaffRepoTestSuite) TestList_FilteredByTenant() {
	tenantID := "tenant-1"

	rows := pgxmock.NewRows([]string{"id", "tenant_id", "role", "auth_uid", "display_name", "image_path", "email", "created_at", "updated_at"}).
		AddRow("s1", tenantID, "normal", "uid-1", "Taro", "", "", suite.now, suite.now)

	suite.mock.ExpectQuery(staffSelect+` WHERE tenant_id = \$1 ORDER BY created_at DESC`).
		WithArgs(tenantID).
		WillReturnRows(rows)

	staffs, err := suite.repo.List(suite.context, ListStaffQuery{TenantID: &tenantID})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), staffs, 1)
	assert.Equal(suite.T(), tenantID, staffs[0].TenantID)
}

func (suite *StaffRepoTestSuite) TestList_WithPaging() {
	limit, offset := uint64(2), uint64(4)

	suite.mock.ExpectQuery(staffSelect+` ORDER BY created_at DESC LIMIT 2 OFFSET 4`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "tenant_id", "role", "auth_uid", "display_name", "image_path", "email", "created_at", "updated_at"}))

	staffs, err := suite.repo.List(suite.context, ListStaffQuery{Limit: &limit, Offset: &offset})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), staffs)
}

func (suite *StaffRepoTestSuite) TestCount_FilteredByTenant() {
	tenantID := "tenant-1"

	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM staffs WHERE tenant_id = \$1`).
		WithArgs(tenantID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := suite.repo.Count(suite.context, ListStaffQuery{TenantID: &tenantID})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint64(3), count)
}

func (suite *StaffRepoTestSuite) TestCount_IgnoresPaging() {
	limit := uint64(1)

	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM staffs`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(17)))

	count, err := suite.repo.Count(suite.context, ListStaffQuery{Limit: &limit})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint64(17), count)
}

func (suite *StaffRepoTestSuite) TestCreate_Success() {
	staff := models.NewStaff("tenant-1", models.RoleNormal, "uid-1", "Taro", "images/taro.png", "taro@example.com", suite.now)

	suite.mock.ExpectExec(`INSERT INTO staffs \(id,tenant_id,role,auth_uid,display_name,image_path,email,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9\)`).
		WithArgs(staff.ID, staff.TenantID, "normal", staff.AuthUID,
			staff.DisplayName, staff.ImagePath, staff.Email,
			staff.CreatedAt, staff.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, staff)
	assert.NoError(suite.T(), err)
}

func (suite *StaffRepoTestSuite) TestCreate_RoleStoredAsText() {
	staff := models.NewStaff("tenant-1", models.RoleUnknown, "uid-1", "Taro", "", "", suite.now)

	suite.mock.ExpectExec(`INSERT INTO staffs \(id,tenant_id,role,auth_uid,display_name,image_path,email,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9\)`).
		WithArgs(staff.ID, staff.TenantID, "unknown", staff.AuthUID,
			staff.DisplayName, staff.ImagePath, staff.Email,
			staff.CreatedAt, staff.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, staff)
	assert.NoError(suite.T(), err)
}

func (suite *StaffRepoTestSuite) TestUpdate_Success() {
	staff := models.NewStaff("tenant-1", models.RoleAdmin, "uid-1", "Hanako", "images/hanako.png", "hanako@example.com", suite.now)

	suite.mock.ExpectExec(`UPDATE staffs SET role = \$1, display_name = \$2, image_path = \$3, email = \$4, updated_at = \$5 WHERE id = \$6`).
		WithArgs("admin", staff.DisplayName, staff.ImagePath, staff.Email, staff.UpdatedAt, staff.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, staff)
	assert.NoError(suite.T(), err)
}

func (suite *StaffRepoTestSuite) TestUpdate_DriverError() {
	staff := models.NewStaff("tenant-1", models.RoleNormal, "uid-1", "Taro", "", "", suite.now)

	suite.mock.ExpectExec(`UPDATE staffs SET role = \$1, display_name = \$2, image_path = \$3, email = \$4, updated_at = \$5 WHERE id = \$6`).
		WithArgs("normal", staff.DisplayName, staff.ImagePath, staff.Email, staff.UpdatedAt, staff.ID).
		WillReturnError(errors.New("connection reset"))

	err := suite.repo.Update(suite.context, staff)
	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.CategoryInternal, apperrors.CategoryOf(err))
}

func (suite *StaffRepoTestSuite) TestDelete_Idempotent() {
	suite.mock.ExpectExec(`DELETE FROM staffs WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := suite.repo.Delete(suite.context, "missing")
	assert.NoError(suite.T(), err)
}
