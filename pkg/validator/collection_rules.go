package validator

import (
	"fmt"
	"strconv"
)

// ListOfValidator checks slices and arrays, optionally validating every item.
type ListOfValidator struct {
	item      Validator
	minLength *int
	maxLength *int
	required  bool
}

// ListOf builds a validator for lists. Sets and byte slices are not lists.
//
// Accepted options: ItemValidator, MinLength, MaxLength, Required.
func ListOf(opts ...Option) (*ListOfValidator, error) {
	p, err := newParams("list_of", paramItemValidator|paramMinLength|paramMaxLength, opts)
	if err != nil {
		return nil, err
	}
	if err := checkLengthBounds(p); err != nil {
		return nil, err
	}
	v := &ListOfValidator{item: p.itemValidator, required: p.required}
	v.minLength, v.maxLength = lengthBounds(p)
	return v, nil
}

// MustListOf is like ListOf but panics on invalid options.
func MustListOf(opts ...Option) *ListOfValidator {
	return must(ListOf(opts...))
}

func (v *ListOfValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	rv, ok := asSequence(value)
	if !ok {
		return typeMismatch("list", value)
	}
	if err := checkCount("list", rv.Len(), v.minLength, v.maxLength); err != nil {
		return err
	}
	if v.item == nil {
		return nil
	}
	for i := range rv.Len() {
		if err := v.item.Check(interfaceOf(rv.Index(i))); err != nil {
			return Contextualize(err, "invalid item at position "+strconv.Itoa(i))
		}
	}
	return nil
}

func (v *ListOfValidator) Describe() string {
	return describeCollection("list_of", v.item, v.minLength, v.maxLength, v.required)
}

func (v *ListOfValidator) String() string { return v.Describe() }

// SetOfValidator checks map[T]struct{} sets, optionally validating every
// member. Members carry no position, so item failures are returned without
// added context.
type SetOfValidator struct {
	item      Validator
	minLength *int
	maxLength *int
	required  bool
}

// SetOf builds a validator for sets. Lists are not sets.
//
// Accepted options: ItemValidator, MinLength, MaxLength, Required.
func SetOf(opts ...Option) (*SetOfValidator, error) {
	p, err := newParams("set_of", paramItemValidator|paramMinLength|paramMaxLength, opts)
	if err != nil {
		return nil, err
	}
	if err := checkLengthBounds(p); err != nil {
		return nil, err
	}
	v := &SetOfValidator{item: p.itemValidator, required: p.required}
	v.minLength, v.maxLength = lengthBounds(p)
	return v, nil
}

// MustSetOf is like SetOf but panics on invalid options.
func MustSetOf(opts ...Option) *SetOfValidator {
	return must(SetOf(opts...))
}

func (v *SetOfValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	rv, ok := asSet(value)
	if !ok {
		return typeMismatch("set", value)
	}
	if err := checkCount("set", rv.Len(), v.minLength, v.maxLength); err != nil {
		return err
	}
	if v.item == nil {
		return nil
	}
	for _, key := range sortedKeys(rv) {
		if err := v.item.Check(interfaceOf(key)); err != nil {
			return err
		}
	}
	return nil
}

func (v *SetOfValidator) Describe() string {
	return describeCollection("set_of", v.item, v.minLength, v.maxLength, v.required)
}

func (v *SetOfValidator) String() string { return v.Describe() }

func checkCount(kind string, n int, minLength, maxLength *int) error {
	if minLength != nil && n < *minLength {
		return constraintErrorf("expected at least %d items, but %s has %d", *minLength, kind, n)
	}
	if maxLength != nil && n > *maxLength {
		return constraintErrorf("expected at most %d items, but %s has %d", *maxLength, kind, n)
	}
	return nil
}

func describeCollection(name string, item Validator, minLength, maxLength *int, required bool) string {
	d := describe(name)
	if item != nil {
		d.add("item_validator", item.Describe())
	}
	if minLength != nil {
		d.add("min_length", strconv.Itoa(*minLength))
	}
	if maxLength != nil {
		d.add("max_length", strconv.Itoa(*maxLength))
	}
	return d.required(required).String()
}

// MappingOfValidator checks maps, optionally validating every key and value.
type MappingOfValidator struct {
	key      Validator
	value    Validator
	required bool
}

// MappingOf builds a validator for mappings. Sets are not mappings.
//
// Accepted options: KeyValidator, ValueValidator, Required.
func MappingOf(opts ...Option) (*MappingOfValidator, error) {
	p, err := newParams("mapping_of", paramKeyValidator|paramValueValidator, opts)
	if err != nil {
		return nil, err
	}
	return &MappingOfValidator{key: p.keyValidator, value: p.valueValidator, required: p.required}, nil
}

// MustMappingOf is like MappingOf but panics on invalid options.
func MustMappingOf(opts ...Option) *MappingOfValidator {
	return must(MappingOf(opts...))
}

func (v *MappingOfValidator) Check(value any) error {
	if value == nil {
		return missing(v.required)
	}
	rv, ok := asMapping(value)
	if !ok {
		return typeMismatch("mapping", value)
	}
	if v.key == nil && v.value == nil {
		return nil
	}
	for _, entry := range sortedEntries(rv) {
		k := interfaceOf(entry.key)
		if v.key != nil {
			if err := v.key.Check(k); err != nil {
				return Contextualize(err, "invalid key "+formatKey(k))
			}
		}
		if v.value != nil {
			if err := v.value.Check(interfaceOf(entry.value)); err != nil {
				return Contextualize(err, "invalid value for key "+formatKey(k))
			}
		}
	}
	return nil
}

func (v *MappingOfValidator) Describe() string {
	d := describe("mapping_of")
	if v.key != nil {
		d.add("key_validator", v.key.Describe())
	}
	if v.value != nil {
		d.add("value_validator", v.value.Describe())
	}
	return d.required(v.required).String()
}

func (v *MappingOfValidator) String() string { return v.Describe() }

var (
	_ Validator    = (*ListOfValidator)(nil)
	_ Validator    = (*SetOfValidator)(nil)
	_ Validator    = (*MappingOfValidator)(nil)
	_ fmt.Stringer = (*MappingOfValidator)(nil)
)
