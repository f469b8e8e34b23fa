package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"staffhub/internal/apperrors"
	"staffhub/internal/models"
)

// GetStaffQuery selects a single staff member by id, by auth uid, or by
// both (AND semantics). WithTenant additionally loads the owning tenant
// snapshot onto the result.
type GetStaffQuery struct {
	ID         *string
	AuthUID    *string
	WithTenant bool
}

// ListStaffQuery filters and pages a staff listing.
type ListStaffQuery struct {
	TenantID *string
	Limit    *uint64
	Offset   *uint64
}

// StaffRepository is the persistence seam for staff members. Same contract
// as TenantRepository: absence is (nil, nil), no existence checks, delete
// is idempotent.
type StaffRepository interface {
	Get(ctx context.Context, query GetStaffQuery) (*models.Staff, error)
	List(ctx context.Context, query ListStaffQuery) ([]*models.Staff, error)
	Count(ctx context.Context, query ListStaffQuery) (uint64, error)
	Create(ctx context.Context, staff *models.Staff) error
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id string) error
}

type staffRepo struct {
	db Database
}

func NewStaffRepo(db Database) StaffRepository {
	return &staffRepo{db: db}
}

func scanStaff(row pgx.Row) (*models.Staff, error) {
	staff := &models.Staff{}
	var role string
	err := row.Scan(&staff.ID, &staff.TenantID, &role, &staff.AuthUID,
		&staff.DisplayName, &staff.ImagePath, &staff.Email,
		&staff.CreatedAt, &staff.UpdatedAt)
	if err != nil {
		return nil, err
	}
	staff.Role = models.ParseStaffRole(role)
	return staff, nil
}

func (r *staffRepo) Get(ctx context.Context, query GetStaffQuery) (*models.Staff, error) {
	if query.ID == nil && query.AuthUID == nil {
		return nil, nil
	}

	builder := psql.
		Select("id", "tenant_id", "role", "auth_uid", "display_name", "image_path", "email", "created_at", "updated_at").
		From("staffs")
	if query.ID != nil {
		builder = builder.Where(sq.Eq{"id": *query.ID})
	}
	if query.AuthUID != nil {
		builder = builder.Where(sq.Eq{"auth_uid": *query.AuthUID})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperrors.Internal("E100001", err.Error())
	}

	staff, err := scanStaff(r.db.QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Internal("E100001", err.Error())
	}

	if query.WithTenant {
		if err := r.attachTenant(ctx, staff); err != nil {
			return nil, err
		}
	}
	return staff, nil
}

func (r *staffRepo) attachTenant(ctx context.Context, staff *models.Staff) error {
	sqlStr, args, err := psql.
		Select("id", "name", "created_at", "updated_at").
		From("tenants").
		Where(sq.Eq{"id": staff.TenantID}).
		ToSql()
	if err != nil {
		return apperrors.Internal("E100001", err.Error())
	}

	tenant := &models.Tenant{}
	err = r.db.QueryRow(ctx, sqlStr, args...).
		Scan(&tenant.ID, &tenant.Name, &tenant.CreatedAt, &tenant.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// The foreign key makes this unreachable in practice; leave the
		// snapshot unloaded rather than fail the staff read.
		return nil
	}
	if err != nil {
		return apperrors.Internal("E100001", err.Error())
	}
	staff.SetTenant(tenant)
	return nil
}

func (r *staffRepo) List(ctx context.Context, query ListStaffQuery) ([]*models.Staff, error) {
	builder := psql.
		Select("id", "tenant_id", "role", "auth_uid", "display_name", "image_path", "email", "created_at", "updated_at").
		From("staffs")
	if query.TenantID != nil {
		builder = builder.Where(sq.Eq{"tenant_id": *query.TenantID})
	}
	builder = builder.OrderBy("created_at DESC")
	if query.Limit != nil {
		builder = builder.Limit(*query.Limit)
	}
	if query.Offset != nil {
		builder = builder.Offset(*query.Offset)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperrors.Internal("E100001", err.Error())
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperrors.Internal("E100001", err.Error())
	}
	defer rows.Close()

	var staffs []*models.Staff
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, apperrors.Internal("E100001", err.Error())
		}
		staffs = append(staffs, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Internal("E100001", err.Error())
	}
	return staffs, nil
}

func (r *staffRepo) Count(ctx context.Context, query ListStaffQuery) (uint64, error) {
	builder := psql.Select("COUNT(*)").From("staffs")
	if query.TenantID != nil {
		builder = builder.Where(sq.Eq{"tenant_id": *query.TenantID})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return 0, apperrors.Internal("E100001", err.Error())
	}

	var count int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, apperrors.Internal("E100001", err.Error())
	}
	return uint64(count), nil
}

func (r *staffRepo) Create(ctx context.Context, staff *models.Staff) error {
	sqlStr, args, err := psql.
		Insert("staffs").
		Columns("id", "tenant_id", "role", "auth_uid", "display_name", "image_path", "email", "created_at", "updated_at").
		Values(staff.ID, staff.TenantID, staff.Role.String(), staff.AuthUID,
			staff.DisplayName, staff.ImagePath, staff.Email,
			staff.CreatedAt, staff.UpdatedAt).
		ToSql()
	if err != nil {
		return apperrors.Internal("E100001", err.Error())
	}

	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return apperrors.Internal("E100001", err.Error())
	}
	return nil
}

func (r *staffRepo) Update(ctx context.Context, staff *models.Staff) error {
	sqlStr, args, err := psql.
		Update("staffs").
		Set("role", staff.Role.String()).
		Set("display_name", staff.DisplayName).
		Set("image_path", staff.ImagePath).
		Set("email", staff.Email).
		Set("updated_at", staff.UpdatedAt).
		Where(sq.Eq{"id": staff.ID}).
		ToSql()
	if err != nil {
		return apperrors.Internal("E100001", err.Error())
	}

	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return apperrors.Internal("E100001", err.Error())
	}
	return nil
}

func (r *staffRepo) Delete(ctx context.Context, id string) error {
	sqlStr, args, err := psql.Delete("staffs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return apperrors.Internal("E100001", err.Error())
	}

	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return apperrors.Internal("E100001", err.Error())
	}
	return nil
}
