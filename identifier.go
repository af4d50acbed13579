// Package fixedid - identifier.go provides slice helpers that work across
// GUID, UUID and ID.

package fixedid

import "slices"

// Identifier is the contract shared by GUID, UUID and ID. It is a type
// constraint; use it to write code that is generic over identifier width.
type Identifier[T any] interface {
	comparable
	Compare(other T) int
	IsNil() bool
	Bytes() []byte
	Base64() string
	Hash() uint64
	Layout() Layout
}

// Sort sorts ids in ascending order.
func Sort[T Identifier[T]](ids []T) {
	slices.SortFunc(ids, func(a, b T) int { return a.Compare(b) })
}

// IsSorted reports whether ids is in ascending order.
func IsSorted[T Identifier[T]](ids []T) bool {
	return slices.IsSortedFunc(ids, func(a, b T) int { return a.Compare(b) })
}

// Min returns the smallest identifier, or false for an empty slice.
func Min[T Identifier[T]](ids []T) (T, bool) {
	var zero T
	if len(ids) == 0 {
		return zero, false
	}
	return slices.MinFunc(ids, func(a, b T) int { return a.Compare(b) }), true
}

// Max returns the largest identifier, or false for an empty slice.
func Max[T Identifier[T]](ids []T) (T, bool) {
	var zero T
	if len(ids) == 0 {
		return zero, false
	}
	return slices.MaxFunc(ids, func(a, b T) int { return a.Compare(b) }), true
}

// Dedupe sorts ids and removes duplicates in place, returning the shortened
// slice.
func Dedupe[T Identifier[T]](ids []T) []T {
	Sort(ids)
	return slices.Compact(ids)
}

// Compact removes nil identifiers, preserving order.
func Compact[T Identifier[T]](ids []T) []T {
	return slices.DeleteFunc(ids, func(id T) bool { return id.IsNil() })
}
