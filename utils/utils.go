// Package utils implements various helper functions and generic slice
// utilities used across the library.
package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Min returns the minimum between to comparable values.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum between to comparable values.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// Abs returns the absolute value of a signed or floating point value.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	slices.Sort(keys)
	return
}

// GetDistincts returns the list of distinct elements in v.
func GetDistincts[V comparable](v []V) (vd []V) {
	m := map[V]bool{}
	for _, vi := range v {
		m[vi] = true
	}

	vd = make([]V, len(m))

	var i int
	for mi := range m {
		vd[i] = mi
		i++
	}

	return
}
