// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "github.com/pkg/errors"

// Binders replace whatever d currently holds. Payload values are copied at
// bind time and passed after the caller's argument on every call, in the
// order given. Binding a nil function, functor or receiver panics with
// ErrNilCallable.

func nilCallable(what string) {
	panic(errors.Wrap(ErrNilCallable, what))
}

// BindStatic binds the function fn.
func BindStatic[A, R any](d *Delegate[A, R], fn func(A) R) {
	if fn == nil {
		nilCallable("static function")
	}
	bind[staticFunc[A, R], *staticFunc[A, R]](d, KindStatic, staticFunc[A, R]{fn: fn})
}

// BindStatic1 binds fn with one payload value: Execute(a) calls fn(a, p1).
func BindStatic1[A, R, P1 any](d *Delegate[A, R], fn func(A, P1) R, p1 P1) {
	if fn == nil {
		nilCallable("static function")
	}
	bind[staticFunc1[A, R, P1], *staticFunc1[A, R, P1]](d, KindStatic,
		staticFunc1[A, R, P1]{fn: fn, p1: p1})
}

// BindStatic2 binds fn with two payload values: Execute(a) calls fn(a, p1, p2).
func BindStatic2[A, R, P1, P2 any](d *Delegate[A, R], fn func(A, P1, P2) R, p1 P1, p2 P2) {
	if fn == nil {
		nilCallable("static function")
	}
	bind[staticFunc2[A, R, P1, P2], *staticFunc2[A, R, P1, P2]](d, KindStatic,
		staticFunc2[A, R, P1, P2]{fn: fn, p1: p1, p2: p2})
}

// BindLambda binds the closure l by value.
func BindLambda[A, R any, L ~func(A) R](d *Delegate[A, R], l L) {
	if (func(A) R)(l) == nil {
		nilCallable("lambda")
	}
	bind[lambdaFunc[A, R, L], *lambdaFunc[A, R, L]](d, KindLambda, lambdaFunc[A, R, L]{l: l})
}

// BindLambda1 binds the closure l with one payload value.
func BindLambda1[A, R, P1 any, L ~func(A, P1) R](d *Delegate[A, R], l L, p1 P1) {
	if (func(A, P1) R)(l) == nil {
		nilCallable("lambda")
	}
	bind[lambdaFunc1[A, R, P1, L], *lambdaFunc1[A, R, P1, L]](d, KindLambda,
		lambdaFunc1[A, R, P1, L]{l: l, p1: p1})
}

// BindLambda2 binds the closure l with two payload values.
func BindLambda2[A, R, P1, P2 any, L ~func(A, P1, P2) R](d *Delegate[A, R], l L, p1 P1, p2 P2) {
	if (func(A, P1, P2) R)(l) == nil {
		nilCallable("lambda")
	}
	bind[lambdaFunc2[A, R, P1, P2, L], *lambdaFunc2[A, R, P1, P2, L]](d, KindLambda,
		lambdaFunc2[A, R, P1, P2, L]{l: l, p1: p1, p2: p2})
}

// BindFunctor binds the callable value f by value. Large functors spill to
// the heap.
func BindFunctor[A, R any, F Functor[A, R]](d *Delegate[A, R], f F) {
	if any(f) == nil {
		nilCallable("functor")
	}
	bind[functorFunc[A, R, F], *functorFunc[A, R, F]](d, KindFunctor, functorFunc[A, R, F]{f: f})
}

// BindMethod binds a pointer-receiver method expression to recv, e.g.
// BindMethod(d, (*Actor).Move, actor).
func BindMethod[T, A, R any](d *Delegate[A, R], method func(*T, A) R, recv *T) {
	if method == nil || recv == nil {
		nilCallable("method")
	}
	bind[methodFunc[T, A, R], *methodFunc[T, A, R]](d, KindMethod,
		methodFunc[T, A, R]{method: method, recv: recv})
}

// BindMethod1 binds a method with one payload value.
func BindMethod1[T, A, R, P1 any](d *Delegate[A, R], method func(*T, A, P1) R, recv *T, p1 P1) {
	if method == nil || recv == nil {
		nilCallable("method")
	}
	bind[methodFunc1[T, A, R, P1], *methodFunc1[T, A, R, P1]](d, KindMethod,
		methodFunc1[T, A, R, P1]{method: method, recv: recv, p1: p1})
}

// BindMethod2 binds a method with two payload values.
func BindMethod2[T, A, R, P1, P2 any](d *Delegate[A, R], method func(*T, A, P1, P2) R, recv *T, p1 P1, p2 P2) {
	if method == nil || recv == nil {
		nilCallable("method")
	}
	bind[methodFunc2[T, A, R, P1, P2], *methodFunc2[T, A, R, P1, P2]](d, KindMethod,
		methodFunc2[T, A, R, P1, P2]{method: method, recv: recv, p1: p1, p2: p2})
}

// BindConstMethod binds a value-receiver method expression to recv, e.g.
// BindConstMethod(d, Actor.Name, actor). Each call sees the receiver's
// current state but cannot modify it.
func BindConstMethod[T, A, R any](d *Delegate[A, R], method func(T, A) R, recv *T) {
	if method == nil || recv == nil {
		nilCallable("const method")
	}
	bind[constMethodFunc[T, A, R], *constMethodFunc[T, A, R]](d, KindConstMethod,
		constMethodFunc[T, A, R]{method: method, recv: recv})
}

// BindConstMethod1 binds a value-receiver method with one payload value.
func BindConstMethod1[T, A, R, P1 any](d *Delegate[A, R], method func(T, A, P1) R, recv *T, p1 P1) {
	if method == nil || recv == nil {
		nilCallable("const method")
	}
	bind[constMethodFunc1[T, A, R, P1], *constMethodFunc1[T, A, R, P1]](d, KindConstMethod,
		constMethodFunc1[T, A, R, P1]{method: method, recv: recv, p1: p1})
}

// BindConstMethod2 binds a value-receiver method with two payload values.
func BindConstMethod2[T, A, R, P1, P2 any](d *Delegate[A, R], method func(T, A, P1, P2) R, recv *T, p1 P1, p2 P2) {
	if method == nil || recv == nil {
		nilCallable("const method")
	}
	bind[constMethodFunc2[T, A, R, P1, P2], *constMethodFunc2[T, A, R, P1, P2]](d, KindConstMethod,
		constMethodFunc2[T, A, R, P1, P2]{method: method, recv: recv, p1: p1, p2: p2})
}
