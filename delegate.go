// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Delegate holds at most one bound callable of signature func(A) R.
//
// The bound callable is placed in the delegate's own StackStorage when it
// fits and on the heap otherwise. Only an erased handle and the trampolines
// captured at bind time are kept, so the delegate never needs to know the
// concrete type again.
//
// The zero value is an unbound delegate using DefaultConfig. A Delegate must
// not be copied after first use; use CopyFrom, Clone or MoveFrom instead.
// A Delegate is not safe for concurrent use.
type Delegate[A, R any] struct {
	_           noCopy
	executer    executer[A, R]
	constructor constructor[A, R]
	destructor  destructor[A, R]
	handle      *Erased[A, R]
	kind        Kind
	config      Config
	storage     *StackStorage
	alloc       Allocator[Erased[A, R]]
	pooled      bool
}

// New returns an unbound delegate whose inline storage follows opts.
// Panics with ErrInvalidConfig if the resulting Config is invalid.
func New[A, R any](opts ...Option) *Delegate[A, R] {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	d := &Delegate[A, R]{config: cfg}
	d.ensureStorage()
	return d
}

// ensureStorage creates the inline storage on first use.
func (d *Delegate[A, R]) ensureStorage() {
	if d.storage != nil {
		return
	}
	if d.config == (Config{}) {
		d.config = DefaultConfig()
	}
	if d.config == DefaultConfig() {
		d.storage = AcquireStorage()
		d.pooled = true
	} else {
		d.storage = NewStackStorage(d.config.InlineCapacity, d.config.InlineAlign)
	}
	d.alloc = NewAllocator[Erased[A, R]](d.storage)
}

// bind places v and records its trampolines, replacing any previous binding.
func bind[V any, PV interface {
	*V
	variant[A, R]
}, A, R any](d *Delegate[A, R], kind Kind, v V) {
	d.Unbind()
	d.ensureStorage()
	p := Rebind[V](d.alloc).Allocate(1)
	*p = v
	d.handle = erase[V, A, R](p)
	d.executer = executeVariant[V, PV, A, R]
	d.constructor = constructVariant[V, A, R]
	d.destructor = destroyVariant[V, A, R]
	d.kind = kind
}

// IsBound reports whether a callable is bound.
func (d *Delegate[A, R]) IsBound() bool { return d.handle != nil }

// Kind reports the shape of the bound callable, or KindNone.
func (d *Delegate[A, R]) Kind() Kind { return d.kind }

// IsInline reports whether the bound callable lives in the delegate's own
// storage rather than on the heap.
func (d *Delegate[A, R]) IsInline() bool {
	return d.storage != nil && d.storage.Contains(unsafe.Pointer(d.handle))
}

// Storage returns the delegate's inline storage, or nil if none has been
// created yet.
func (d *Delegate[A, R]) Storage() *StackStorage { return d.storage }

// Execute calls the bound callable with a and the bound payload.
// Panics with ErrNotBound if nothing is bound.
func (d *Delegate[A, R]) Execute(a A) R {
	if d.handle == nil {
		panic(errors.WithStack(ErrNotBound))
	}
	return d.executer(d.handle, a)
}

// ExecuteIfBound calls the bound callable and returns (result, true),
// or (zero, false) if nothing is bound.
func (d *Delegate[A, R]) ExecuteIfBound(a A) (R, bool) {
	if d.handle == nil {
		var zero R
		return zero, false
	}
	return d.executer(d.handle, a), true
}

// Unbind destroys the bound callable and releases its storage.
// Unbinding an unbound delegate does nothing.
func (d *Delegate[A, R]) Unbind() {
	if d.handle == nil {
		return
	}
	h, destroy := d.handle, d.destructor
	d.clearBinding()
	destroy(d.alloc, h)
}

func (d *Delegate[A, R]) clearBinding() {
	d.executer = nil
	d.constructor = nil
	d.destructor = nil
	d.handle = nil
	d.kind = KindNone
}

func (d *Delegate[A, R]) adoptTrampolines(src *Delegate[A, R]) {
	d.executer = src.executer
	d.constructor = src.constructor
	d.destructor = src.destructor
	d.kind = src.kind
}

// CopyFrom replaces d's binding with an independent copy of src's.
// Payload is copied; receivers and function values are shared.
// Copying an unbound delegate leaves d unbound; copying d onto itself
// does nothing.
func (d *Delegate[A, R]) CopyFrom(src *Delegate[A, R]) {
	if d == src {
		return
	}
	d.Unbind()
	if !src.IsBound() {
		return
	}
	d.ensureStorage()
	var at unsafe.Pointer
	if src.IsInline() {
		at = d.alloc.AllocateCopy(src.storage)
	}
	d.handle = src.constructor(at, src.handle)
	d.adoptTrampolines(src)
}

// Clone returns a new delegate with d's storage configuration holding a
// copy of d's binding.
func (d *Delegate[A, R]) Clone() *Delegate[A, R] {
	c := &Delegate[A, R]{config: d.config}
	c.CopyFrom(d)
	return c
}

// MoveFrom transfers src's binding to d and leaves src unbound.
//
// A heap-backed callable changes owner without being copied. An inline
// callable cannot leave src's storage, so it is copy-constructed into d's
// storage and then destroyed in src.
func (d *Delegate[A, R]) MoveFrom(src *Delegate[A, R]) {
	if d == src {
		return
	}
	d.Unbind()
	if !src.IsBound() {
		return
	}
	if src.IsInline() {
		d.CopyFrom(src)
		src.Unbind()
		return
	}
	d.ensureStorage()
	d.handle = src.handle
	d.adoptTrampolines(src)
	src.clearBinding()
}

// Release unbinds d and hands pooled storage back for reuse. The delegate
// is left as a zero value with its configuration kept.
func (d *Delegate[A, R]) Release() {
	d.Unbind()
	if d.storage != nil && d.pooled {
		ReleaseStorage(d.storage)
	}
	d.storage = nil
	d.alloc = Allocator[Erased[A, R]]{}
	d.pooled = false
}
