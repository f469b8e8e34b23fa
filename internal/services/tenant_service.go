package services

import (
	"context"
	"time"

	"staffhub/internal/apperrors"
	"staffhub/internal/models"
	"staffhub/internal/repositories"
)

// TenantService orchestrates tenant use cases. Business rules (existence
// checks, merge semantics, timestamping) live here and nowhere else.
type TenantService interface {
	Get(ctx context.Context, input *GetTenantInput) (*models.Tenant, error)
	List(ctx context.Context, input *ListTenantsInput) (*ListTenantsOutput, error)
	Create(ctx context.Context, input *CreateTenantInput) (*models.Tenant, error)
	Update(ctx context.Context, input *UpdateTenantInput) (*models.Tenant, error)
	Delete(ctx context.Context, input *DeleteTenantInput) error
}

type GetTenantInput struct {
	ID string
}

type ListTenantsInput struct {
	Limit  *uint64
	Offset *uint64
}

type ListTenantsOutput struct {
	Tenants    []*models.Tenant
	TotalCount uint64
}

type CreateTenantInput struct {
	Name string
}

type UpdateTenantInput struct {
	ID   string
	Name *string
}

type DeleteTenantInput struct {
	ID string
}

type tenantService struct {
	tenantRepo repositories.TenantRepository
}

func NewTenantService(tenantRepo repositories.TenantRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo}
}

// Get returns (nil, nil) when the tenant does not exist; the transport layer
// decides whether absence becomes a not-found wire status.
func (s *tenantService) Get(ctx context.Context, input *GetTenantInput) (*models.Tenant, error) {
	return s.tenantRepo.Get(ctx, repositories.GetTenantQuery{ID: &input.ID})
}

// List issues the data fetch and the count with the same filter so the
// reported total reflects the filter, not the page.
func (s *tenantService) List(ctx context.Context, input *ListTenantsInput) (*ListTenantsOutput, error) {
	query := repositories.ListTenantQuery{Limit: input.Limit, Offset: input.Offset}

	tenants, err := s.tenantRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	total, err := s.tenantRepo.Count(ctx, query)
	if err != nil {
		return nil, err
	}
	return &ListTenantsOutput{Tenants: tenants, TotalCount: total}, nil
}

// Create constructs the tenant in memory and returns that value, not a
// re-fetched row.
func (s *tenantService) Create(ctx context.Context, input *CreateTenantInput) (*models.Tenant, error) {
	tenant := models.NewTenant(input.Name, time.Now().UTC())
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// Update checks existence first (the repository deliberately does not),
// merges the optional fields, and always refreshes UpdatedAt.
func (s *tenantService) Update(ctx context.Context, input *UpdateTenantInput) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.Get(ctx, repositories.GetTenantQuery{ID: &input.ID})
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.ErrTenantNotFound()
	}

	tenant.Update(input.Name, time.Now().UTC())

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// Delete is an unconditional pass-through; deleting an absent id succeeds.
func (s *tenantService) Delete(ctx context.Context, input *DeleteTenantInput) error {
	return s.tenantRepo.Delete(ctx, input.ID)
}
