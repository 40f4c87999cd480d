package rop

import (
	"math"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Equal compares two payloads by value. Two nil-equivalent payloads are equal,
// NaN equals NaN and funcs compare by code pointer.
func Equal[T any](a, b T) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == vb.Kind() {
		switch va.Kind() {
		case reflect.Float32, reflect.Float64:
			if math.IsNaN(va.Float()) && math.IsNaN(vb.Float()) {
				return true
			}
		case reflect.Func:
			return va.Pointer() == vb.Pointer()
		}
	}
	return reflect.DeepEqual(a, b)
}

// GetErrors flattens an errors.Join tree one level deep.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
