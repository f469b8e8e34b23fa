package rpc

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"staffhub/internal/apperrors"
	"staffhub/internal/models"
	"staffhub/internal/services"
	"staffhub/proto/tenantpb"
)

// TenantServer adapts the tenant service to the gRPC wire surface.
type TenantServer struct {
	tenantService services.TenantService
}

func NewTenantServer(tenantService services.TenantService) *TenantServer {
	return &TenantServer{tenantService: tenantService}
}

func toProtoTenant(t *models.Tenant) *tenantpb.Tenant {
	return &tenantpb.Tenant{
		Id:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// statusFromError picks the wire code from the domain error category.
func statusFromError(err error) error {
	return status.Error(apperrors.CategoryOf(err).GRPCCode(), err.Error())
}

func (s *TenantServer) GetTenant(ctx context.Context, req *tenantpb.GetTenantRequest) (*tenantpb.GetTenantResponse, error) {
	input := &services.GetTenantInput{ID: req.GetId()}

	tenant, err := s.tenantService.Get(ctx, input)
	if err != nil {
		return nil, statusFromError(err)
	}
	if tenant == nil {
		return nil, status.Error(codes.NotFound, "Tenant not found")
	}

	return &tenantpb.GetTenantResponse{Tenant: toProtoTenant(tenant)}, nil
}

func (s *TenantServer) ListTenants(ctx context.Context, req *tenantpb.ListTenantsRequest) (*tenantpb.ListTenantsResponse, error) {
	input := &services.ListTenantsInput{Limit: req.Limit, Offset: req.Offset}

	output, err := s.tenantService.List(ctx, input)
	if err != nil {
		return nil, statusFromError(err)
	}

	tenants := make([]*tenantpb.Tenant, 0, len(output.Tenants))
	for _, t := range output.Tenants {
		tenants = append(tenants, toProtoTenant(t))
	}
	return &tenantpb.ListTenantsResponse{
		Tenants:    tenants,
		TotalCount: output.TotalCount,
	}, nil
}

func (s *TenantServer) CreateTenant(ctx context.Context, req *tenantpb.CreateTenantRequest) (*tenantpb.CreateTenantResponse, error) {
	input := &services.CreateTenantInput{Name: req.GetName()}

	tenant, err := s.tenantService.Create(ctx, input)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &tenantpb.CreateTenantResponse{Tenant: toProtoTenant(tenant)}, nil
}

func (s *TenantServer) UpdateTenant(ctx context.Context, req *tenantpb.UpdateTenantRequest) (*tenantpb.UpdateTenantResponse, error) {
	input := &services.UpdateTenantInput{ID: req.GetId(), Name: req.Name}

	tenant, err := s.tenantService.Update(ctx, input)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &tenantpb.UpdateTenantResponse{Tenant: toProtoTenant(tenant)}, nil
}

func (s *TenantServer) DeleteTenant(ctx context.Context, req *tenantpb.DeleteTenantRequest) (*tenantpb.DeleteTenantResponse, error) {
	input := &services.DeleteTenantInput{ID: req.GetId()}

	if err := s.tenantService.Delete(ctx, input); err != nil {
		return nil, statusFromError(err)
	}

	return &tenantpb.DeleteTenantResponse{}, nil
}
