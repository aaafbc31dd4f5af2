// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// Erased is the content-less handle type for a bound callable of signature
// func(A) R. A *Erased[A, R] always points at a concrete variant; only the
// trampolines recorded at bind time know which one.
type Erased[A, R any] struct{}

// variant is implemented by the pointer type of every bound-callable shape.
type variant[A, R any] interface {
	execute(a A) R
}

// executer invokes the variant behind h.
type executer[A, R any] func(h *Erased[A, R], a A) R

// constructor copy-constructs the variant behind from at the given address,
// or on the heap when at is nil, and returns the new handle.
type constructor[A, R any] func(at unsafe.Pointer, from *Erased[A, R]) *Erased[A, R]

// destructor destroys the variant behind h in place and releases its block.
type destructor[A, R any] func(alloc Allocator[Erased[A, R]], h *Erased[A, R])

// The trampolines below are named generic functions so that each variant
// type yields one function value, without method tables on the handle.

func executeVariant[V any, PV interface {
	*V
	variant[A, R]
}, A, R any](h *Erased[A, R], a A) R {
	return PV((*V)(unsafe.Pointer(h))).execute(a)
}

func constructVariant[V, A, R any](at unsafe.Pointer, from *Erased[A, R]) *Erased[A, R] {
	var dst *V
	if at != nil {
		dst = (*V)(at)
	} else {
		dst = new(V)
	}
	*dst = *(*V)(unsafe.Pointer(from))
	return (*Erased[A, R])(unsafe.Pointer(dst))
}

func destroyVariant[V, A, R any](alloc Allocator[Erased[A, R]], h *Erased[A, R]) {
	p := (*V)(unsafe.Pointer(h))
	var zero V
	*p = zero
	Rebind[V](alloc).Deallocate(p, 1)
}

// erase reinterprets a variant pointer as its handle.
func erase[V, A, R any](p *V) *Erased[A, R] {
	return (*Erased[A, R])(unsafe.Pointer(p))
}
