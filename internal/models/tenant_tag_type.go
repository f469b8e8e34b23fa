package models

// TenantTagType categorizes a tenant tag.
type TenantTagType int

const (
	TagTypeUnknown TenantTagType = iota
	TagTypeEntertainment
	TagTypeEducation
	TagTypeBusiness
	TagTypeOther
)

// ParseTenantTagType maps a string to a tag type. Unrecognized input maps to
// TagTypeUnknown; parsing never fails.
func ParseTenantTagType(s string) TenantTagType {
	switch s {
	case "entertainment":
		return TagTypeEntertainment
	case "education":
		return TagTypeEducation
	case "business":
		return TagTypeBusiness
	case "other":
		return TagTypeOther
	default:
		return TagTypeUnknown
	}
}

func (t TenantTagType) String() string {
	switch t {
	case TagTypeEntertainment:
		return "entertainment"
	case TagTypeEducation:
		return "education"
	case TagTypeBusiness:
		return "business"
	case TagTypeOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsValid reports whether the tag type is a concrete variant.
func (t TenantTagType) IsValid() bool {
	return t != TagTypeUnknown
}
