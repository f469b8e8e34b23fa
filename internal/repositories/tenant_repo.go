package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"staffhub/internal/apperrors"
	"staffhub/internal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// GetTenantQuery selects a single tenant. A nil ID matches nothing.
type GetTenantQuery struct {
	ID *string
}

// ListTenantQuery filters and pages a tenant listing. Nil limit/offset mean
// unbounded from the start.
type ListTenantQuery struct {
	Limit  *uint64
	Offset *uint64
}

// TenantRepository is the persistence seam for tenants. It carries no
// business rules: Get reports absence as (nil, nil), Update does not check
// existence, and Delete is idempotent.
type TenantRepository interface {
	Get(ctx context.Context, query GetTenantQuery) (*models.Tenant, error)
	List(ctx context.Context, query ListTenantQuery) ([]*models.Tenant, error)
	Count(ctx context.Context, query ListTenantQuery) (uint64, error)
	Create(ctx context.Context, tenant *models.Tenant) error
	Update(ctx context.Context, tenant *models.Tenant) error
	Delete(ctx context.Context, id string) error
}

type tenantRepo struct {
	db Database
}

func NewTenantRepo(db Database) TenantRepository {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) Get(ctx context.Context, query GetTenantQuery) (*models.Tenant, error) {
	if query.ID == nil {
		return nil, nil
	}

	sqlStr, args, err := psql.
		Select("id", "name", "created_at", "updated_at").
		From("tenants").
		Where(sq.Eq{"id": *query.ID}).
		ToSql()
	if err != nil {
		return nil, apperrors.Internal("E100001", err.Error())
	}

	tenant := &models.Tenant{}
	err = r.db.QueryRow(ctx, sqlStr, args...).
		Scan(&tenant.ID, &tenant.Name, &tenant.CreatedAt, &tenant.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Internal("E100001", err.Error())
	}
	return tenant, nil
}

func (r *tenantRepo) List(ctx context.Context, query ListTenantQuery) ([]*models.Tenant, error) {
	builder := psql.
		Select("id", "name", "created_at", "updated_at").
		From("tenants").
		OrderBy("created_at DESC")
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

	var tenants []*models.Tenant
	for rows.Next() {
		tenant := &models.Tenant{}
		if err := rows.Scan(&tenant.ID, &tenant.Name, &tenant.CreatedAt, &tenant.UpdatedAt); err != nil {
			return nil, apperrors.Internal("E100001", err.Error())
		}
		tenants = append(tenants, tenant)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Internal("E100001", err.Error())
	}
	return tenants, nil
}

func (r *tenantRepo) Count(ctx context.Context, _ ListTenantQuery) (uint64, error) {
	sqlStr, args, err := psql.Select("COUNT(*)").From("tenants").ToSql()
	if err != nil {
		return 0, apperrors.Internal("E100001", err.Error())
	}

	var count int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, apperrors.Internal("E100001", err.Error())
	}
	return uint64(count), nil
}

func (r *tenantRepo) Create(ctx context.Context, tenant *models.Tenant) error {
	sqlStr, args, err := psql.
		Insert("tenants").
		Columns("id", "name", "created_at", "updated_at").
		Values(tenant.ID, tenant.Name, tenant.CreatedAt, tenant.UpdatedAt).
		ToSql()
	if err != nil {
		return apperrors.Internal("E100001", err.Error())
	}

	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return apperrors.Internal("E100001", err.Error())
	}
	return nil
}

func (r *tenantRepo) Update(ctx context.Context, tenant *models.Tenant) error {
	sqlStr, args, err := psql.
		Update("tenants").
		Set("name", tenant.Name).
		Set("updated_at", tenant.UpdatedAt).
		Where(sq.Eq{"id": tenant.ID}).
		ToSql()
	if err != nil {
		return apperrors.Internal("E100001", err.Error())
	}

	// Zero rows affected is not an error here; existence checks belong to
	// the service layer.
	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return apperrors.Internal("E100001", err.Error())
	}
	return nil
}

func (r *tenantRepo) Delete(ctx context.Context, id string) error {
	sqlStr, args, err := psql.Delete("tenants").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return apperrors.Internal("E100001", err.Error())
	}

	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return apperrors.Internal("E100001", err.Error())
	}
	return nil
}
