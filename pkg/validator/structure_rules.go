package validator

import (
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// StructureOfValidator checks string keyed records against a per-field
// schema.
type StructureOfValidator struct {
	schema     map[string]Validator
	fields     []string // schema keys, sorted
	hasSchema  bool
	allowExtra bool
	required   bool
}

// StructureOf builds a validator for records. The schema, a
// map[string]Validator, is copied; later changes to the caller's map have no
// effect. A nil map means no schema. Every declared field must be present.
// Undeclared fields are rejected unless AllowExtra is set.
//
// Accepted options: Schema, AllowExtra, Required.
func StructureOf(opts ...Option) (*StructureOfValidator, error) {
	p, err := newParams("structure_of", paramSchema|paramAllowExtra, opts)
	if err != nil {
		return nil, err
	}

	v := &StructureOfValidator{allowExtra: p.allowExtra, required: p.required}
	if p.schema != nil {
		schema, ok := p.schema.(map[string]Validator)
		if !ok {
			return nil, shapeErrorf("schema must be a map[string]Validator, got %T", p.schema)
		}
		for name, field := range schema {
			if field == nil {
				return nil, shapeErrorf("schema field %q has no validator", name)
			}
		}
		if schema != nil {
			v.schema = maps.Clone(schema)
			v.fields = slices.Sorted(maps.Keys(v.schema))
			v.hasSchema = true
		}
	}
	return v, nil
}

// MustStructureOf is like StructureOf but panics on invalid options.
func MustStructureOf(opts ...Option) *StructureOfValidator {
	return must(StructureOf(opts...))
}

func (v *StructureOfValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	rv, ok := asRecord(value)
	if !ok {
		return typeMismatch("structure", value)
	}
	if !v.hasSchema {
		return nil
	}

	keyType := rv.Type().Key()
	for _, name := range v.fields {
		field := rv.MapIndex(reflect.ValueOf(name).Convert(keyType))
		if !field.IsValid() {
			return NewMissingKeyError("missing required key " + strconv.Quote(name))
		}
		if err := v.schema[name].Check(interfaceOf(field)); err != nil {
			return Contextualize(err, "invalid value for key "+strconv.Quote(name))
		}
	}

	if v.allowExtra {
		return nil
	}
	var unexpected []string
	for _, key := range sortedKeys(rv) {
		if _, declared := v.schema[key.String()]; !declared {
			unexpected = append(unexpected, strconv.Quote(key.String()))
		}
	}
	if len(unexpected) > 0 {
		return NewConstraintError("unexpected keys: " + strings.Join(unexpected, ", "))
	}
	return nil
}

func (v *StructureOfValidator) Describe() string {
	d := describe("structure_of")
	if v.hasSchema {
		fields := make([]string, 0, len(v.fields))
		for _, name := range v.fields {
			fields = append(fields, strconv.Quote(name)+": "+v.schema[name].Describe())
		}
		d.add("schema", "{"+strings.Join(fields, ", ")+"}")
	}
	if v.allowExtra {
		d.add("allow_extra", formatBool(true))
	}
	return d.required(v.required).String()
}

func (v *StructureOfValidator) String() string { return v.Describe() }

// TupleOfValidator checks fixed arity sequences, either against a positional
// schema or against a bare length.
type TupleOfValidator struct {
	schema   []Validator
	length   *int
	required bool
}

// TupleOf builds a validator for tuples. Schema, a []Validator, is copied; a
// nil slice means no schema.
// Schema and Length cannot be combined. An arity mismatch is a shape error.
//
// Accepted options: Schema, Length, Required.
func TupleOf(opts ...Option) (*TupleOfValidator, error) {
	p, err := newParams("tuple_of", paramSchema|paramLength, opts)
	if err != nil {
		return nil, err
	}

	v := &TupleOfValidator{required: p.required}
	if p.schema != nil {
		if p.has(paramLength) {
			return nil, NewShapeError("tuple_of() got both schema and length")
		}
		schema, ok := p.schema.([]Validator)
		if !ok {
			return nil, shapeErrorf("schema must be a []Validator, got %T", p.schema)
		}
		for i, item := range schema {
			if item == nil {
				return nil, shapeErrorf("schema position %d has no validator", i)
			}
		}
		if schema != nil {
			v.schema = append([]Validator{}, schema...)
		}
	}
	if p.has(paramLength) {
		if p.length < 0 {
			return nil, constraintErrorf("length must be non-negative, got %d", p.length)
		}
		n := p.length
		v.length = &n
	}
	return v, nil
}

// MustTupleOf is like TupleOf but panics on invalid options.
func MustTupleOf(opts ...Option) *TupleOfValidator {
	return must(TupleOf(opts...))
}

func (v *TupleOfValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	rv, ok := asSequence(value)
	if !ok {
		return typeMismatch("tuple", value)
	}

	switch {
	case v.schema != nil:
		if rv.Len() != len(v.schema) {
			return shapeErrorf("expected tuple of length %d, but value has length %d", len(v.schema), rv.Len())
		}
		for i, item := range v.schema {
			if err := item.Check(interfaceOf(rv.Index(i))); err != nil {
				return Contextualize(err, "invalid value at index "+strconv.Itoa(i))
			}
		}
	case v.length != nil:
		if rv.Len() != *v.length {
			return shapeErrorf("expected tuple of length %d, but value has length %d", *v.length, rv.Len())
		}
	}
	return nil
}

func (v *TupleOfValidator) Describe() string {
	d := describe("tuple_of")
	if v.schema != nil {
		items := make([]string, len(v.schema))
		for i, item := range v.schema {
			items[i] = item.Describe()
		}
		d.add("schema", "["+strings.Join(items, ", ")+"]")
	}
	if v.length != nil {
		d.add("length", strconv.Itoa(*v.length))
	}
	return d.required(v.required).String()
}

func (v *TupleOfValidator) String() string { return v.Describe() }
