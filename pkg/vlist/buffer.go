// ABOUTME: Data buffer: ordered dataset with splice-style insert/delete and replace
// ABOUTME: Never aliases caller slices; out-of-range indexes clamp instead of failing

package vlist

import "slices"

type dataBuffer[T any] struct {
	items []T
}

func (b *dataBuffer[T]) len() int {
	return len(b.items)
}

// insert splices items at index and returns where they landed. An index
// outside [0, len] appends.
func (b *dataBuffer[T]) insert(items []T, index int) int {
	if index < 0 || index > len(b.items) {
		index = len(b.items)
	}
	b.items = slices.Insert(b.items, index, items...)
	return index
}

// remove deletes up to count items starting at index and returns them.
func (b *dataBuffer[T]) remove(index, count int) []T {
	if index < 0 || index >= len(b.items) || count <= 0 {
		return nil
	}
	end := min(index+count, len(b.items))
	removed := slices.Clone(b.items[index:end])
	b.items = slices.Delete(b.items, index, end)
	return removed
}

func (b *dataBuffer[T]) replace(items []T) {
	b.items = slices.Clone(items)
}

func (b *dataBuffer[T]) snapshot() []T {
	return slices.Clone(b.items)
}

func (b *dataBuffer[T]) clear() {
	b.items = nil
}
