package services

import (
	"context"
	"time"

	"staffhub/internal/apperrors"
	"staffhub/internal/models"
	"staffhub/internal/repositories"
)

// StaffService orchestrates staff use cases.
type StaffService interface {
	Get(ctx context.Context, input *GetStaffInput) (*models.Staff, error)
	List(ctx context.Context, input *ListStaffsInput) (*ListStaffsOutput, error)
	Create(ctx context.Context, input *CreateStaffInput) (*models.Staff, error)
	Update(ctx context.Context, input *UpdateStaffInput) (*models.Staff, error)
	Delete(ctx context.Context, input *DeleteStaffInput) error
}

type GetStaffInput struct {
	ID         *string
	AuthUID    *string
	WithTenant bool
}

type ListStaffsInput struct {
	TenantID *string
	Limit    *uint64
	Offset   *uint64
}

type ListStaffsOutput struct {
	Staffs     []*models.Staff
	TotalCount uint64
}

type CreateStaffInput struct {
	TenantID    string
	Role        models.StaffRole
	AuthUID     string
	DisplayName string
	ImagePath   string
	Email       string
}

type UpdateStaffInput struct {
	ID          string
	Role        *models.StaffRole
	DisplayName *string
	ImagePath   *string
	Email       *string
}

type DeleteStaffInput struct {
	ID string
}

type staffService struct {
	staffRepo repositories.StaffRepository
}

func NewStaffService(staffRepo repositories.StaffRepository) StaffService {
	return &staffService{staffRepo: staffRepo}
}

func (s *staffService) Get(ctx context.Context, input *GetStaffInput) (*models.Staff, error) {
	return s.staffRepo.Get(ctx, repositories.GetStaffQuery{
		ID:         input.ID,
		AuthUID:    input.AuthUID,
		WithTenant: input.WithTenant,
	})
}

func (s *staffService) List(ctx context.Context, input *ListStaffsInput) (*ListStaffsOutput, error) {
	query := repositories.ListStaffQuery{
		TenantID: input.TenantID,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}

	staffs, err := s.staffRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	total, err := s.staffRepo.Count(ctx, query)
	if err != nil {
		return nil, err
	}
	return &ListStaffsOutput{Staffs: staffs, TotalCount: total}, nil
}

func (s *staffService) Create(ctx context.Context, input *CreateStaffInput) (*models.Staff, error) {
	staff := models.NewStaff(input.TenantID, input.Role, input.AuthUID,
		input.DisplayName, input.ImagePath, input.Email, time.Now().UTC())
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Update performs the existence check, merges every optional field that is
// present, and always refreshes UpdatedAt even when nothing else changed.
func (s *staffService) Update(ctx context.Context, input *UpdateStaffInput) (*models.Staff, error) {
	staff, err := s.staffRepo.Get(ctx, repositories.GetStaffQuery{ID: &input.ID})
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperrors.ErrStaffNotFound()
	}

	if input.Role != nil {
		staff.Role = *input.Role
	}
	if input.DisplayName != nil {
		staff.DisplayName = *input.DisplayName
	}
	if input.ImagePath != nil {
		staff.ImagePath = *input.ImagePath
	}
	if input.Email != nil {
		staff.Email = *input.Email
	}
	staff.UpdatedAt = time.Now().UTC()

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *staffService) Delete(ctx context.Context, input *DeleteStaffInput) error {
	return s.staffRepo.Delete(ctx, input.ID)
}
