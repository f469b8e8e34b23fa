package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTenantTagType(t *testing.T) {
	assert.Equal(t, TagTypeEntertainment, ParseTenantTagType("entertainment"))
	assert.Equal(t, TagTypeEducation, ParseTenantTagType("education"))
	assert.Equal(t, TagTypeBusiness, ParseTenantTagType("business"))
	assert.Equal(t, TagTypeOther, ParseTenantTagType("other"))
}

func TestParseTenantTagType_UnknownInput(t *testing.T) {
	for _, s := range []string{"", "unknown", "Education", "sports"} {
		assert.Equal(t, TagTypeUnknown, ParseTenantTagType(s), "input %q", s)
	}
}

func TestTenantTagTypeString(t *testing.T) {
	assert.Equal(t, "entertainment", TagTypeEntertainment.String())
	assert.Equal(t, "education", TagTypeEducation.String())
	assert.Equal(t, "business", TagTypeBusiness.String())
	assert.Equal(t, "other", TagTypeOther.String())
	assert.Equal(t, "unknown", TagTypeUnknown.String())
	assert.Equal(t, "unknown", TenantTagType(42).String())
}

func TestTenantTagTypeRoundTrip(t *testing.T) {
	types := []TenantTagType{
		TagTypeUnknown,
		TagTypeEntertainment,
		TagTypeEducation,
		TagTypeBusiness,
		TagTypeOther,
	}
	for _, tagType := range types {
		assert.Equal(t, tagType, ParseTenantTagType(tagType.String()))
	}
}

func TestTenantTagTypeIsValid(t *testing.T) {
	assert.True(t, TagTypeEntertainment.IsValid())
	assert.True(t, TagTypeOther.IsValid())
	assert.False(t, TagTypeUnknown.IsValid())
}
