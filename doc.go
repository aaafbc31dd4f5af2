// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package delegate provides a type-erased callable wrapper with
// small-buffer storage.
//
// A [Delegate] of signature func(A) R can be bound to a function, a closure,
// a callable value or a method, each with up to two trailing payload values
// captured at bind time. The bound callable is stored in the delegate's own
// [StackStorage] when it fits and is made of pointer words only (function
// values, pointers, maps, channels, interfaces), and on the heap otherwise;
// the caller never sees the concrete type.
//
// # Design Philosophy
//
//   - No method tables: each binding records plain function values
//     (trampolines) that execute, copy-construct and destroy the concrete
//     variant behind an erased handle
//   - One inline slot: the arena serves a single live allocation, so a
//     rebind always reuses the same bytes
//   - Explicit value semantics: Go copies structs bytewise, so copy and move
//     are methods and raw copies are flagged by go vet
//
// # Memory
//
//   - [StackStorage]: fixed-capacity, alignment-aware bump arena with LIFO release
//   - [Allocator]: typed view over a storage; arena when empty, large
//     enough and the type is pointer words only, heap otherwise, routed
//     back by pointer provenance
//   - [Rebind]: view the same storage for another element type
//   - [Allocator.AllocateCopy]: reserve room for copying another storage's value
//   - [AcquireStorage], [ReleaseStorage]: pooled default-sized storages
//
// # Binding
//
// Payload values are appended after the caller's argument in bind order:
// a delegate bound with BindStatic2(d, f, p1, p2) calls f(a, p1, p2).
//
//   - [BindStatic], [BindStatic1], [BindStatic2]: function values
//   - [BindLambda], [BindLambda1], [BindLambda2]: closures stored by value
//   - [BindFunctor]: any value implementing [Functor], stored by value
//   - [BindMethod], [BindMethod1], [BindMethod2]: pointer-receiver method
//     expressions on a mutable receiver
//   - [BindConstMethod], [BindConstMethod1], [BindConstMethod2]: value-receiver
//     method expressions; the receiver is read, never written
//
// # Invocation and Lifecycle
//
//   - [Delegate.Execute]: call the bound callable (panics with [ErrNotBound])
//   - [Delegate.ExecuteIfBound]: non-panicking variant
//   - [Delegate.Unbind]: destroy the callable and release its storage
//   - [Delegate.CopyFrom], [Delegate.Clone]: deep copy of the binding
//   - [Delegate.MoveFrom]: transfer; inline callables are re-homed by copy
//   - [Delegate.Release]: unbind and return pooled storage
//
// # Errors
//
// Capacity shortfalls are not errors: the callable moves to the heap.
// Misuse is a contract violation and panics with an error wrapping
// [ErrNotBound], [ErrLIFOViolation], [ErrNilCallable] or [ErrInvalidConfig].
//
// # Example
//
//	square := func(x int) int { return x * x }
//
//	var d delegate.Delegate[int, int]
//	delegate.BindStatic(&d, square)
//	_ = d.Execute(5) // 25
//
//	delegate.BindLambda1(&d, func(x int, k float64) int { return int(float64(x) * k) }, 2.0)
//	_ = d.Execute(5) // 10
//
//	d2 := d.Clone()
//	d.Unbind()
//	_ = d2.Execute(5) // 10
package delegate
