package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewStaff(t *testing.T) {
	now := time.Now().UTC()

	staff := NewStaff("tenant-1", RoleNormal, "auth-uid-1", "Taro", "images/taro.png", "taro@example.com", now)

	_, err := uuid.Parse(staff.ID)
	assert.NoError(t, err)
	assert.Equal(t, "tenant-1", staff.TenantID)
	assert.Equal(t, RoleNormal, staff.Role)
	assert.Equal(t, "auth-uid-1", staff.AuthUID)
	assert.Equal(t, "Taro", staff.DisplayName)
	assert.Equal(t, "images/taro.png", staff.ImagePath)
	assert.Equal(t, "taro@example.com", staff.Email)
	assert.Equal(t, now, staff.CreatedAt)
	assert.Equal(t, now, staff.UpdatedAt)
	assert.Nil(t, staff.ImageURL)
	assert.Nil(t, staff.Tenant)
}

func TestStaffSetImageURL(t *testing.T) {
	staff := NewStaff("tenant-1", RoleNormal, "uid", "Taro", "", "", time.Now().UTC())

	staff.SetImageURL("https://cdn.example.com/taro.png")

	assert.NotNil(t, staff.ImageURL)
	assert.Equal(t, "https://cdn.example.com/taro.png", *staff.ImageURL)
}

func TestStaffSetTenant(t *testing.T) {
	now := time.Now().UTC()
	tenant := NewTenant("Acme", now)
	staff := NewStaff(tenant.ID, RoleAdmin, "uid", "Taro", "", "", now)

	staff.SetTenant(tenant)

	assert.Equal(t, tenant, staff.Tenant)
}

func TestStaffIsAdmin(t *testing.T) {
	now := time.Now().UTC()

	admin := NewStaff("tenant-1", RoleAdmin, "uid-a", "Admin", "", "", now)
	normal := NewStaff("tenant-1", RoleNormal, "uid-n", "Normal", "", "", now)
	unknown := NewStaff("tenant-1", RoleUnknown, "uid-u", "Unknown", "", "", now)

	assert.True(t, admin.IsAdmin())
	assert.False(t, normal.IsAdmin())
	assert.False(t, unknown.IsAdmin())
}
