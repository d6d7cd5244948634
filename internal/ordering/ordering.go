// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ordering implements the position bookkeeping shared by every
// reorderable admin list: navigation items, menu entries, columns and links.
//
// Collections are value slices whose element pointers expose the 1-based
// position. All functions return a new slice and never mutate their input.
package ordering

import (
	"slices"
)

// Direction is the direction of a single-step move.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Up || d == Down
}

// Positioned is satisfied by pointers to collection elements.
type Positioned[T any] interface {
	*T
	GetPosition() int
	SetPosition(int)
}

// Sorted returns a copy of items ordered ascending by position.
// Elements with equal positions keep their relative order.
func Sorted[T any, P Positioned[T]](items []T) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return P(&a).GetPosition() - P(&b).GetPosition()
	})
	return out
}

// Renumber returns a copy of items, in their current slice order,
// with positions rewritten to 1..N.
func Renumber[T any, P Positioned[T]](items []T) []T {
	out := slices.Clone(items)
	for i := range out {
		P(&out[i]).SetPosition(i + 1)
	}
	return out
}

// Normalize sorts items by position and renumbers them to 1..N.
func Normalize[T any, P Positioned[T]](items []T) []T {
	return Renumber[T, P](Sorted[T, P](items))
}

// Move swaps the element at index (in position order) with its neighbour in
// the given direction and renumbers the collection. Moving the first element
// up, the last element down, or any out-of-range index is a no-op that
// returns the collection sorted by position.
func Move[T any, P Positioned[T]](items []T, index int, dir Direction) []T {
	out := Sorted[T, P](items)

	target := index
	switch dir {
	case Up:
		target = index - 1
	case Down:
		target = index + 1
	default:
		return out
	}

	if index < 0 || index >= len(out) || target < 0 || target >= len(out) {
		return out
	}

	out[index], out[target] = out[target], out[index]
	return Renumber[T, P](out)
}

// Append adds item at the end of the collection with position N+1.
func Append[T any, P Positioned[T]](items []T, item T) []T {
	out := Normalize[T, P](items)
	P(&item).SetPosition(len(out) + 1)
	return append(out, item)
}

// RemoveAt removes the element at index (in position order) and renumbers
// the remainder. An out-of-range index returns the normalized collection.
func RemoveAt[T any, P Positioned[T]](items []T, index int) []T {
	out := Sorted[T, P](items)
	if index < 0 || index >= len(out) {
		return Renumber[T, P](out)
	}
	out = slices.Delete(out, index, index+1)
	return Renumber[T, P](out)
}

// RemoveFunc removes every element for which del returns true and renumbers
// the remainder.
func RemoveFunc[T any, P Positioned[T]](items []T, del func(T) bool) []T {
	out := Sorted[T, P](items)
	out = slices.DeleteFunc(out, del)
	return Renumber[T, P](out)
}

// IndexFunc returns the index, in position order, of the first element
// satisfying match, or -1.
func IndexFunc[T any, P Positioned[T]](items []T, match func(T) bool) int {
	return slices.IndexFunc(Sorted[T, P](items), match)
}

// IsDense reports whether the positions of items are exactly {1, ..., N}.
func IsDense[T any, P Positioned[T]](items []T) bool {
	seen := make([]bool, len(items)+1)
	for i := range items {
		p := P(&items[i]).GetPosition()
		if p < 1 || p > len(items) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
