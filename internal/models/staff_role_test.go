package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStaffRole(t *testing.T) {
	assert.Equal(t, RoleNormal, ParseStaffRole("normal"))
	assert.Equal(t, RoleAdmin, ParseStaffRole("admin"))
}

func TestParseStaffRole_UnknownInput(t *testing.T) {
	// Parsing is total: anything unrecognized becomes RoleUnknown.
	for _, s := range []string{"", "unknown", "ADMIN", "superuser", "normal "} {
		assert.Equal(t, RoleUnknown, ParseStaffRole(s), "input %q", s)
	}
}

func TestStaffRoleString(t *testing.T) {
	assert.Equal(t, "normal", RoleNormal.String())
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "unknown", RoleUnknown.String())
	assert.Equal(t, "unknown", StaffRole(99).String())
}

func TestStaffRoleRoundTrip(t *testing.T) {
	for _, role := range []StaffRole{RoleUnknown, RoleNormal, RoleAdmin} {
		assert.Equal(t, role, ParseStaffRole(role.String()))
	}
}

func TestStaffRoleIsValid(t *testing.T) {
	assert.True(t, RoleNormal.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, RoleUnknown.IsValid())
}
