// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

// Kind identifies the shape of the callable bound to a Delegate.
type Kind uint8

const (
	// KindNone is reported by an unbound Delegate.
	KindNone Kind = iota
	// KindStatic is a plain function value.
	KindStatic
	// KindLambda is a closure stored by value.
	KindLambda
	// KindFunctor is a value with an Invoke method stored by value.
	KindFunctor
	// KindMethod is a pointer-receiver method on a mutable receiver.
	KindMethod
	// KindConstMethod is a value-receiver method on a read-only receiver.
	KindConstMethod
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindStatic:
		return "static"
	case KindLambda:
		return "lambda"
	case KindFunctor:
		return "functor"
	case KindMethod:
		return "method"
	case KindConstMethod:
		return "const method"
	default:
		return "unknown"
	}
}

// Functor is a callable value. Functors are bound by value, so their size
// decides whether they fit a Delegate's inline storage.
type Functor[A, R any] interface {
	Invoke(a A) R
}

// Bound-function variants. Payload follows the caller argument.

type staticFunc[A, R any] struct {
	fn func(A) R
}

func (v *staticFunc[A, R]) execute(a A) R { return v.fn(a) }

type staticFunc1[A, R, P1 any] struct {
	fn func(A, P1) R
	p1 P1
}

func (v *staticFunc1[A, R, P1]) execute(a A) R { return v.fn(a, v.p1) }

type staticFunc2[A, R, P1, P2 any] struct {
	fn func(A, P1, P2) R
	p1 P1
	p2 P2
}

func (v *staticFunc2[A, R, P1, P2]) execute(a A) R { return v.fn(a, v.p1, v.p2) }

// Bound-closure variants.

type lambdaFunc[A, R any, L ~func(A) R] struct {
	l L
}

func (v *lambdaFunc[A, R, L]) execute(a A) R { return v.l(a) }

type lambdaFunc1[A, R, P1 any, L ~func(A, P1) R] struct {
	l  L
	p1 P1
}

func (v *lambdaFunc1[A, R, P1, L]) execute(a A) R { return v.l(a, v.p1) }

type lambdaFunc2[A, R, P1, P2 any, L ~func(A, P1, P2) R] struct {
	l  L
	p1 P1
	p2 P2
}

func (v *lambdaFunc2[A, R, P1, P2, L]) execute(a A) R { return v.l(a, v.p1, v.p2) }

type functorFunc[A, R any, F Functor[A, R]] struct {
	f F
}

func (v *functorFunc[A, R, F]) execute(a A) R { return v.f.Invoke(a) }

// Bound-method variants. The receiver is referenced, never owned.

type methodFunc[T, A, R any] struct {
	method func(*T, A) R
	recv   *T
}

func (v *methodFunc[T, A, R]) execute(a A) R { return v.method(v.recv, a) }

type methodFunc1[T, A, R, P1 any] struct {
	method func(*T, A, P1) R
	recv   *T
	p1     P1
}

func (v *methodFunc1[T, A, R, P1]) execute(a A) R { return v.method(v.recv, a, v.p1) }

type methodFunc2[T, A, R, P1, P2 any] struct {
	method func(*T, A, P1, P2) R
	recv   *T
	p1     P1
	p2     P2
}

func (v *methodFunc2[T, A, R, P1, P2]) execute(a A) R {
	return v.method(v.recv, a, v.p1, v.p2)
}

// Const-method variants call a value-receiver method on a copy of *recv,
// so the receiver is never written through.

type constMethodFunc[T, A, R any] struct {
	method func(T, A) R
	recv   *T
}

func (v *constMethodFunc[T, A, R]) execute(a A) R { return v.method(*v.recv, a) }

type constMethodFunc1[T, A, R, P1 any] struct {
	method func(T, A, P1) R
	recv   *T
	p1     P1
}

func (v *constMethodFunc1[T, A, R, P1]) execute(a A) R {
	return v.method(*v.recv, a, v.p1)
}

type constMethodFunc2[T, A, R, P1, P2 any] struct {
	method func(T, A, P1, P2) R
	recv   *T
	p1     P1
	p2     P2
}

func (v *constMethodFunc2[T, A, R, P1, P2]) execute(a A) R {
	return v.method(*v.recv, a, v.p1, v.p2)
}
