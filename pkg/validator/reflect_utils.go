package validator

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// asSequence returns value as a slice or array. Byte slices and byte arrays
// (uuid.UUID among them) are not sequences.
func asSequence(value any) (reflect.Value, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return reflect.Value{}, false
		}
		return rv, true
	}
	return reflect.Value{}, false
}

// isSetType reports whether t is a map used as a set: map[T]struct{}.
func isSetType(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem().Kind() == reflect.Struct && t.Elem().NumField() == 0
}

func asSet(value any) (reflect.Value, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || !isSetType(rv.Type()) {
		return reflect.Value{}, false
	}
	return rv, true
}

func asMapping(value any) (reflect.Value, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || isSetType(rv.Type()) {
		return reflect.Value{}, false
	}
	return rv, true
}

// asRecord returns value as a mapping keyed by strings.
func asRecord(value any) (reflect.Value, bool) {
	rv, ok := asMapping(value)
	if !ok || rv.Type().Key().Kind() != reflect.String {
		return reflect.Value{}, false
	}
	return rv, true
}

// interfaceOf returns the value held by rv, unwrapping interface elements so
// that a nil element of a []any is reported as nil.
func interfaceOf(rv reflect.Value) any {
	if rv.Kind() == reflect.Interface && rv.IsNil() {
		return nil
	}
	return rv.Interface()
}

// sortedKeys returns the keys of a map in a deterministic order. Ordered
// kinds compare by value; anything else falls back to its %v rendering.
func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareKeys)
	return keys
}

type mapEntry struct {
	key, value reflect.Value
}

// sortedEntries is like sortedKeys but keeps each value with its key. A
// lookup by key cannot find entries whose key is NaN.
func sortedEntries(rv reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{key: iter.Key(), value: iter.Value()})
	}
	slices.SortFunc(entries, func(a, b mapEntry) int { return compareKeys(a.key, b.key) })
	return entries
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.IsValid() && b.IsValid() && a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.Bool:
			switch {
			case a.Bool() == b.Bool():
				return 0
			case b.Bool():
				return -1
			default:
				return 1
			}
		}
	}
	return cmp.Compare(keyString(a), keyString(b))
}

func keyString(rv reflect.Value) string {
	if !rv.IsValid() {
		return "<nil>"
	}
	return fmt.Sprintf("%T:%v", rv.Interface(), rv.Interface())
}
