// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// Storager is implemented by every allocator view over a StackStorage.
type Storager interface {
	Storage() *StackStorage
}

// Allocator is a typed view over a StackStorage it does not own.
//
// The arena is used as a single slot: Allocate places a block there only
// while the arena is empty and T consists of pointer words alone, and falls
// back to the Go heap otherwise.
// Deallocate routes by pointer provenance, so copies of an Allocator
// carry no state beyond the storage reference.
type Allocator[T any] struct {
	storage *StackStorage
}

// NewAllocator returns an allocator for T over s. A nil s yields an
// allocator that always uses the heap.
func NewAllocator[T any](s *StackStorage) Allocator[T] {
	return Allocator[T]{storage: s}
}

// Rebind returns a view of the same storage for element type U.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return Allocator[U]{storage: a.storage}
}

// Storage returns the referenced storage.
func (a Allocator[T]) Storage() *StackStorage { return a.storage }

// Equal reports whether other views the same storage, whatever its
// element type.
func (a Allocator[T]) Equal(other Storager) bool {
	return other != nil && a.storage == other.Storage()
}

// Allocate returns space for n values of T. n below one is treated as one.
// The block lives in the arena when the arena is empty, large enough and
// sufficiently aligned for T, and every word of T is a pointer; otherwise
// it comes from the heap.
func (a Allocator[T]) Allocate(n int) *T {
	if n < 1 {
		n = 1
	}
	if p := a.arena(n); p != nil {
		return (*T)(p)
	}
	if n == 1 {
		return new(T)
	}
	return &make([]T, n)[0]
}

func (a Allocator[T]) arena(n int) unsafe.Pointer {
	s := a.storage
	var zero T
	size, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	if s == nil || size == 0 || !s.IsEmpty() || s.baseAlign() < align {
		return nil
	}
	if !pointerShaped[T]() {
		return nil
	}
	if uintptr(n) > s.size/size {
		return nil
	}
	return s.Allocate(uintptr(n) * size)
}

// Deallocate releases a block obtained from Allocate with the same n.
// Arena blocks are popped and zeroed by the storage; heap blocks are left
// to the collector.
func (a Allocator[T]) Deallocate(p *T, n int) {
	if p == nil || a.storage == nil || !a.storage.Contains(unsafe.Pointer(p)) {
		return
	}
	if n < 1 {
		n = 1
	}
	var zero T
	a.storage.Deallocate(unsafe.Pointer(p), uintptr(n)*unsafe.Sizeof(zero))
}

// AllocateCopy reserves room in this allocator's storage for a copy of the
// value currently held by src. It returns nil when the copy has to be
// heap-allocated instead: src holds nothing, src is this same storage,
// or this storage is occupied, too small or more loosely aligned.
// src only holds pointer-shaped values, so the copy keeps that property.
func (a Allocator[T]) AllocateCopy(src *StackStorage) unsafe.Pointer {
	s := a.storage
	if s == nil || src == nil || s == src || src.IsEmpty() || !s.IsEmpty() {
		return nil
	}
	// Release rounds by s.align, so s must round at least as coarsely as src.
	if s.baseAlign() < src.baseAlign() || s.align < src.align {
		return nil
	}
	return s.Allocate(src.off)
}
