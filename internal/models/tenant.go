package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is an organization that staff members belong to.
type Tenant struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Tags      []TenantTag `json:"tags,omitempty"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// TenantTag labels a tenant with a category. Tags are owned by their tenant
// and are never stored or queried on their own.
type TenantTag struct {
	ID        string        `json:"id"`
	TagType   TenantTagType `json:"tag_type"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewTenant constructs a tenant with a fresh id. CreatedAt and UpdatedAt
// share the same instant.
func NewTenant(name string, now time.Time) *Tenant {
	return &Tenant{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update applies the optional name and advances UpdatedAt. A nil name leaves
// the current name untouched; UpdatedAt advances regardless.
func (t *Tenant) Update(name *string, now time.Time) {
	if name != nil {
		t.Name = *name
	}
	t.UpdatedAt = now
}

func (t *Tenant) AddTag(tag TenantTag) {
	t.Tags = append(t.Tags, tag)
}

// NewTenantTag constructs a tag with a fresh id and matching timestamps.
func NewTenantTag(tagType TenantTagType, now time.Time) TenantTag {
	return TenantTag{
		ID:        uuid.New().String(),
		TagType:   tagType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
