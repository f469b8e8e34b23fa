package rpc

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"staffhub/internal/models"
	"staffhub/internal/services"
	"staffhub/proto/staffpb"
	"staffhub/proto/tenantpb"
)

// StaffServer adapts the staff service to the gRPC wire surface.
type StaffServer struct {
	staffService services.StaffService
}

func NewStaffServer(staffService services.StaffService) *StaffServer {
	return &StaffServer{staffService: staffService}
}

func toProtoStaff(s *models.Staff) *staffpb.Staff {
	return &staffpb.Staff{
		Id:          s.ID,
		TenantId:    s.TenantID,
		Role:        s.Role.String(),
		AuthUid:     s.AuthUID,
		DisplayName: s.DisplayName,
		ImagePath:   s.ImagePath,
		Email:       s.Email,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339Nano),
		ImageUrl:    s.ImageURL,
	}
}

func (s *StaffServer) GetStaff(ctx context.Context, req *staffpb.GetStaffRequest) (*staffpb.GetStaffResponse, error) {
	input := &services.GetStaffInput{
		ID:         req.Id,
		AuthUID:    req.AuthUid,
		WithTenant: req.GetWithTenant(),
	}

	staff, err := s.staffService.Get(ctx, input)
	if err != nil {
		return nil, statusFromError(err)
	}
	if staff == nil {
		return nil, status.Error(codes.NotFound, "Staff not found")
	}

	resp := &staffpb.GetStaffResponse{Staff: toProtoStaff(staff)}
	if staff.Tenant != nil {
		resp.Tenant = &tenantpb.Tenant{
			Id:        staff.Tenant.ID,
			Name:      staff.Tenant.Name,
			CreatedAt: staff.Tenant.CreatedAt.Format(time.RFC3339Nano),
			UpdatedAt: staff.Tenant.UpdatedAt.Format(time.RFC3339Nano),
		}
	}
	return resp, nil
}

func (s *StaffServer) ListStaffs(ctx context.Context, req *staffpb.ListStaffsRequest) (*staffpb.ListStaffsResponse, error) {
	input := &services.ListStaffsInput{
		TenantID: req.TenantId,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}

	output, err := s.staffService.List(ctx, input)
	if err != nil {
		return nil, statusFromError(err)
	}

	staffs := make([]*staffpb.Staff, 0, len(output.Staffs))
	for _, st := range output.Staffs {
		staffs = append(staffs, toProtoStaff(st))
	}
	return &staffpb.ListStaffsResponse{
		Staffs:     staffs,
		TotalCount: output.TotalCount,
	}, nil
}

func (s *StaffServer) CreateStaff(ctx context.Context, req *staffpb.CreateStaffRequest) (*staffpb.CreateStaffResponse, error) {
	input := &services.CreateStaffInput{
		TenantID:    req.GetTenantId(),
		Role:        models.ParseStaffRole(req.GetRole()),
		AuthUID:     req.GetAuthUid(),
		DisplayName: req.GetDisplayName(),
		ImagePath:   req.GetImagePath(),
		Email:       req.GetEmail(),
	}

	staff, err := s.staffService.Create(ctx, input)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &staffpb.CreateStaffResponse{Staff: toProtoStaff(staff)}, nil
}

func (s *StaffServer) UpdateStaff(ctx context.Context, req *staffpb.UpdateStaffRequest) (*staffpb.UpdateStaffResponse, error) {
	input := &services.UpdateStaffInput{
		ID:          req.GetId(),
		DisplayName: req.DisplayName,
		ImagePath:   req.ImagePath,
		Email:       req.Email,
	}
	if req.Role != nil {
		role := models.ParseStaffRole(*req.Role)
		input.Role = &role
	}

	staff, err := s.staffService.Update(ctx, input)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &staffpb.UpdateStaffResponse{Staff: toProtoStaff(staff)}, nil
}

func (s *StaffServer) DeleteStaff(ctx context.Context, req *staffpb.DeleteStaffRequest) (*staffpb.DeleteStaffResponse, error) {
	input := &services.DeleteStaffInput{ID: req.GetId()}

	if err := s.staffService.Delete(ctx, input); err != nil {
		return nil, statusFromError(err)
	}

	return &staffpb.DeleteStaffResponse{}, nil
}
