// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"unsafe"

	"github.com/pkg/errors"
)

const ptrSize = unsafe.Sizeof(unsafe.Pointer(nil))

// noCopy may be embedded into structs which must not be copied
// after first use. go vet's copylocks check reports violations.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// AlignUp rounds n up to the next multiple of align.
// align must be a power of two.
func AlignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// StackStorage is a fixed-capacity bump arena.
//
// Allocations advance a cursor by the alignment-rounded request size and
// must be released in exact reverse order. The backing memory is made of
// pointer-sized words so that references stored in placed values remain
// visible to the garbage collector. Every word is scanned as a pointer, so
// a value placed here must consist of pointer words only; Allocator
// enforces this and sends other types to the heap.
//
// A StackStorage must not be copied after first use.
type StackStorage struct {
	_     noCopy
	words []unsafe.Pointer
	first int // index of the word at base
	base  unsafe.Pointer
	size  uintptr
	align uintptr
	off   uintptr
}

// NewStackStorage creates an arena of size bytes whose allocations are
// aligned to align. Panics with ErrInvalidConfig if size is not positive
// or align is not a power of two.
func NewStackStorage(size, align int) *StackStorage {
	if size <= 0 {
		panic(errors.Wrapf(ErrInvalidConfig, "storage size %d", size))
	}
	if align <= 0 || align&(align-1) != 0 {
		panic(errors.Wrapf(ErrInvalidConfig, "storage alignment %d", align))
	}
	s := &StackStorage{size: uintptr(size), align: uintptr(align)}
	baseAlign := s.baseAlign()
	n := (s.size + baseAlign - ptrSize + ptrSize - 1) / ptrSize
	s.words = make([]unsafe.Pointer, n)
	start := unsafe.Pointer(&s.words[0])
	addr := uintptr(start)
	pad := AlignUp(addr, baseAlign) - addr
	s.first = int(pad / ptrSize)
	s.base = unsafe.Add(start, pad)
	return s
}

// baseAlign is the alignment of the first byte of the arena.
func (s *StackStorage) baseAlign() uintptr {
	return max(s.align, ptrSize)
}

// Size returns the capacity in bytes.
func (s *StackStorage) Size() int { return int(s.size) }

// Align returns the allocation alignment in bytes.
func (s *StackStorage) Align() int { return int(s.align) }

// Used returns the number of bytes currently allocated.
func (s *StackStorage) Used() int { return int(s.off) }

// IsEmpty reports whether nothing is allocated.
func (s *StackStorage) IsEmpty() bool { return s.off == 0 }

// CanAllocate reports whether Allocate(bytes) would succeed.
// Zero-byte requests are never served.
func (s *StackStorage) CanAllocate(bytes uintptr) bool {
	if bytes == 0 || bytes > s.size {
		return false
	}
	return s.off+AlignUp(bytes, s.align) <= s.size
}

// Allocate reserves AlignUp(bytes) bytes on top of the arena and returns
// the start of the region, or nil if the arena cannot serve the request.
func (s *StackStorage) Allocate(bytes uintptr) unsafe.Pointer {
	if !s.CanAllocate(bytes) {
		return nil
	}
	p := unsafe.Add(s.base, s.off)
	s.off += AlignUp(bytes, s.align)
	return p
}

// Deallocate releases and zeroes the most recent allocation. p and bytes
// must match that allocation; anything else panics with ErrLIFOViolation.
func (s *StackStorage) Deallocate(p unsafe.Pointer, bytes uintptr) {
	s.checkTop(p, bytes)
	n := AlignUp(bytes, s.align)
	s.zero(s.off-n, s.off)
	s.off -= n
}

// zero clears the arena bytes in [lo, hi). Whole words are cleared as
// pointers; a word shared with a neighbouring block cannot hold a pointer
// and is cleared bytewise.
func (s *StackStorage) zero(lo, hi uintptr) {
	wlo, whi := AlignUp(lo, ptrSize), hi&^(ptrSize-1)
	if wlo < whi {
		clear(s.words[s.first+int(wlo/ptrSize) : s.first+int(whi/ptrSize)])
	} else {
		wlo, whi = hi, hi
	}
	if wlo > lo {
		clear(unsafe.Slice((*byte)(unsafe.Add(s.base, lo)), wlo-lo))
	}
	if hi > whi {
		clear(unsafe.Slice((*byte)(unsafe.Add(s.base, whi)), hi-whi))
	}
}

// checkTop panics unless p is the start of the topmost bytes-sized block.
func (s *StackStorage) checkTop(p unsafe.Pointer, bytes uintptr) {
	n := AlignUp(bytes, s.align)
	if !s.Contains(p) || bytes == 0 || n > s.off || p != unsafe.Add(s.base, s.off-n) {
		panic(errors.Wrapf(ErrLIFOViolation,
			"release of %p (%d bytes) with %d of %d bytes in use", p, bytes, s.off, s.size))
	}
}

// Contains reports whether p points into the arena. A nil pointer is never
// contained.
func (s *StackStorage) Contains(p unsafe.Pointer) bool {
	if p == nil {
		return false
	}
	start := uintptr(s.base)
	addr := uintptr(p)
	return addr >= start && addr < start+s.size
}

// Reset drops every allocation and zeroes the arena.
func (s *StackStorage) Reset() {
	clear(s.words)
	s.off = 0
}
