package models

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a member of a tenant's workforce. ImageURL and Tenant are derived
// at read time and never written back to storage; both default to "not
// loaded" (nil).
type Staff struct {
	ID          string    `json:"id" db:"id"`
	TenantID    string    `json:"tenant_id" db:"tenant_id"`
	Role        StaffRole `json:"role" db:"role"`
	AuthUID     string    `json:"auth_uid" db:"auth_uid"`
	DisplayName string    `json:"display_name" db:"display_name"`
	ImagePath   string    `json:"image_path" db:"image_path"`
	Email       string    `json:"email" db:"email"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	ImageURL *string `json:"image_url,omitempty" db:"-"`
	Tenant   *Tenant `json:"tenant,omitempty" db:"-"`
}

// NewStaff constructs a staff member with a fresh id. CreatedAt and UpdatedAt
// share the same instant.
func NewStaff(tenantID string, role StaffRole, authUID, displayName, imagePath, email string, now time.Time) *Staff {
	return &Staff{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Role:        role,
		AuthUID:     authUID,
		DisplayName: displayName,
		ImagePath:   imagePath,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *Staff) SetImageURL(url string) {
	s.ImageURL = &url
}

func (s *Staff) SetTenant(tenant *Tenant) {
	s.Tenant = tenant
}

func (s *Staff) IsAdmin() bool {
	return s.Role.IsAdmin()
}
