// Package equality provides the value comparison utilities used for hook
// dependency gating. Shallow compares one level deep with identity semantics
// at the leaves; Deep is a fully recursive general-purpose comparison.
//
// Both functions accept arbitrary values and never panic: uncomparable or
// mismatched inputs simply compare as not equal.
package equality

import "reflect"

// Shallow reports whether a and b are equal one level deep.
//
// Identical values (per Is) are equal. Slices and arrays are equal when they
// have the same length and identical elements at each index. Maps are equal
// when they have the same keys and identical values per key. Everything else
// falls back to Is.
func Shallow(a, b any) bool {
	if Is(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Kind() != vb.Kind() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice, reflect.Array:
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !Is(valueInterface(va.Index(i)), valueInterface(vb.Index(i))) {
				return false
			}
		}
		return true
	case reflect.Map:
		if va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() {
				return false
			}
			if !Is(valueInterface(iter.Value()), valueInterface(other)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Deep reports whether a and b are recursively equal. It is offered as a
// general utility; the reconciler itself only relies on Shallow.
func Deep(a, b any) bool {
	if Is(a, b) {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// Is reports identity between two values: equal comparable values of the same
// type, or the same underlying slice, map, func, or pointer. It never panics
// on uncomparable inputs.
func Is(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.Pointer() == vb.Pointer()
	}
	if va.Type().Comparable() {
		return a == b
	}
	return false
}

// valueInterface unwraps a reflect.Value to any, tolerating values obtained
// from unexported struct fields by reporting them as nil.
func valueInterface(v reflect.Value) any {
	if !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
