package validator

import (
	"strconv"

	"github.com/google/uuid"
)

// UUIDValidator checks uuid.UUID values, optionally restricting the variant
// and version. Strings are not UUIDs, even if they parse as one.
type UUIDValidator struct {
	variant  *uuid.Variant // as given by the caller
	checkVar *uuid.Variant // variant enforced at check time
	version  *uuid.Version
	required bool
}

// UUID builds a validator for UUID values. Specifying a version implies the
// RFC 4122 variant; combining a version with any other variant is an error.
//
// Accepted options: Variant, Version, Required.
func UUID(opts ...Option) (*UUIDValidator, error) {
	p, err := newParams("uuid", paramVariant|paramVersion, opts)
	if err != nil {
		return nil, err
	}

	v := &UUIDValidator{required: p.required}
	if p.has(paramVariant) {
		switch p.variant {
		case uuid.Reserved, uuid.RFC4122, uuid.Microsoft, uuid.Future:
		default:
			return nil, constraintErrorf("unknown variant %s", p.variant)
		}
		variant := p.variant
		v.variant, v.checkVar = &variant, &variant
	}

	if p.has(paramVersion) {
		switch p.version {
		case 1, 3, 4, 5:
		default:
			return nil, constraintErrorf("unknown UUID version: %d", p.version)
		}
		if v.checkVar == nil {
			rfc := uuid.RFC4122
			v.checkVar = &rfc
		}
		if *v.checkVar != uuid.RFC4122 {
			return nil, constraintErrorf("version is specified, but variant is %s", *v.checkVar)
		}
		version := uuid.Version(p.version)
		v.version = &version
	}
	return v, nil
}

// MustUUID is like UUID but panics on invalid options.
func MustUUID(opts ...Option) *UUIDValidator {
	return must(UUID(opts...))
}

func (v *UUIDValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	u, ok := value.(uuid.UUID)
	if !ok {
		return typeMismatch("uuid", value)
	}

	if v.checkVar != nil && u.Variant() != *v.checkVar {
		return constraintErrorf("expected %s variant, but uuid variant is %s", *v.checkVar, u.Variant())
	}
	if v.version != nil && u.Version() != *v.version {
		return constraintErrorf("expected UUID%d, but received UUID%d", *v.version, u.Version())
	}
	return nil
}

func (v *UUIDValidator) Describe() string {
	d := describe("uuid")
	if v.variant != nil {
		d.add("variant", "uuid."+v.variant.String())
	}
	if v.version != nil {
		d.add("version", strconv.Itoa(int(*v.version)))
	}
	return d.required(v.required).String()
}

func (v *UUIDValidator) String() string { return v.Describe() }
