// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate_test

import (
	"fmt"
	"testing"

	"code.hybscloud.com/delegate"
)

func square(x int) int { return x * x }

func negate(x int) int { return -x }

func scale(x int, k float64) int { return int(float64(x) * k) }

func affine(x int, k float64, b int) int { return int(float64(x)*k) + b }

func scaleBy(x int, k *float64) int { return int(float64(x) * *k) }

func ratio(k float64) *float64 { return &k }

type counter struct {
	n int
}

func (c *counter) Add(x int) int { c.n += x; return c.n }

func (c *counter) AddScaled(x, k int) int { c.n += x * k; return c.n }

func (c *counter) AddAffine(x, k, b int) int { c.n += x*k + b; return c.n }

func (c counter) Peek(x int) int { return c.n + x }

func (c counter) PeekScaled(x, k int) int { return c.n + x*k }

func (c counter) PeekAffine(x, k, b int) int { return c.n + x*k + b }

// adder is a small functor that fits inline storage.
type adder struct {
	k *int
}

func (a adder) Invoke(x int) int { return x + *a.k }

// table is a functor too large for the default inline storage.
type table struct {
	weights [16]int
}

func (t table) Invoke(x int) int {
	sum := 0
	for _, w := range t.weights {
		sum += w * x
	}
	return sum
}

func TestZeroValueIsUnbound(t *testing.T) {
	var d delegate.Delegate[int, int]
	if d.IsBound() {
		t.Fatal("zero delegate is bound")
	}
	if d.Kind() != delegate.KindNone {
		t.Fatalf("Kind() = %v, want none", d.Kind())
	}
	if _, ok := d.ExecuteIfBound(1); ok {
		t.Fatal("ExecuteIfBound succeeded on unbound delegate")
	}
}

func TestExecuteUnboundPanics(t *testing.T) {
	var d delegate.Delegate[int, int]
	expectPanic(t, delegate.ErrNotBound, func() { _ = d.Execute(1) })
}

func TestBindStatic(t *testing.T) {
	var d delegate.Delegate[int, int]
	delegate.BindStatic(&d, square)
	if !d.IsBound() || d.Kind() != delegate.KindStatic {
		t.Fatalf("IsBound=%v Kind=%v", d.IsBound(), d.Kind())
	}
	for x := -10; x <= 10; x++ {
		if got := d.Execute(x); got != square(x) {
			t.Fatalf("Execute(%d) = %d, want %d", x, got, square(x))
		}
	}
	got, ok := d.ExecuteIfBound(7)
	if !ok || got != 49 {
		t.Fatalf("ExecuteIfBound(7) = %d, %v", got, ok)
	}
}

func TestBindStaticPayload(t *testing.T) {
	var d delegate.Delegate[int, int]
	delegate.BindStatic1(&d, scale, 2.5)
	if got := d.Execute(4); got != scale(4, 2.5) {
		t.Fatalf("Execute(4) = %d, want %d", got, scale(4, 2.5))
	}
	delegate.BindStatic2(&d, affine, 2.0, 3)
	if got := d.Execute(4); got != affine(4, 2.0, 3) {
		t.Fatalf("Execute(4) = %d, want %d", got, affine(4, 2.0, 3))
	}
}

func TestBindLambda(t *testing.T) {
	var d delegate.Delegate[int, int]
	offset := 100
	delegate.BindLambda(&d, func(x int) int { return x + offset })
	if d.Kind() != delegate.KindLambda {
		t.Fatalf("Kind() = %v, want lambda", d.Kind())
	}
	if got := d.Execute(1); got != 101 {
		t.Fatalf("Execute(1) = %d, want 101", got)
	}
	offset = 200
	if got := d.Execute(1); got != 201 {
		t.Fatalf("closure state not shared: Execute(1) = %d, want 201", got)
	}

	delegate.BindLambda1(&d, func(x int, k float64) int { return int(float64(x) * k) }, 2.0)
	if got := d.Execute(5); got != 10 {
		t.Fatalf("Execute(5) = %d, want 10", got)
	}
	delegate.BindLambda2(&d, func(x int, s string, n int) int { return x + len(s)*n }, "abc", 2)
	if got := d.Execute(1); got != 7 {
		t.Fatalf("Execute(1) = %d, want 7", got)
	}
}

type intOp func(int) int

func TestBindLambdaNamedFuncType(t *testing.T) {
	var d delegate.Delegate[int, int]
	delegate.BindLambda(&d, intOp(negate))
	if got := d.Execute(3); got != -3 {
		t.Fatalf("Execute(3) = %d, want -3", got)
	}
}

func TestBindFunctor(t *testing.T) {
	var d delegate.Delegate[int, int]
	k := 3
	delegate.BindFunctor(&d, adder{k: &k})
	if d.Kind() != delegate.KindFunctor {
		t.Fatalf("Kind() = %v, want functor", d.Kind())
	}
	if got := d.Execute(4); got != 7 {
		t.Fatalf("Execute(4) = %d, want 7", got)
	}
	if !d.IsInline() {
		t.Fatal("small functor not inline")
	}

	var tb table
	for i := range tb.weights {
		tb.weights[i] = i
	}
	delegate.BindFunctor(&d, tb)
	if d.IsInline() {
		t.Fatal("large functor placed inline")
	}
	if got := d.Execute(2); got != tb.Invoke(2) {
		t.Fatalf("Execute(2) = %d, want %d", got, tb.Invoke(2))
	}
}

func TestBindMethod(t *testing.T) {
	var d delegate.Delegate[int, int]
	c := &counter{}
	delegate.BindMethod(&d, (*counter).Add, c)
	if d.Kind() != delegate.KindMethod {
		t.Fatalf("Kind() = %v, want method", d.Kind())
	}
	d.Execute(2)
	d.Execute(3)
	if c.n != 5 {
		t.Fatalf("receiver n = %d, want 5", c.n)
	}

	delegate.BindMethod1(&d, (*counter).AddScaled, c, 10)
	if got := d.Execute(1); got != 15 {
		t.Fatalf("Execute(1) = %d, want 15", got)
	}
	delegate.BindMethod2(&d, (*counter).AddAffine, c, 2, 1)
	if got := d.Execute(1); got != 18 {
		t.Fatalf("Execute(1) = %d, want 18", got)
	}
}

func TestBindConstMethod(t *testing.T) {
	var d delegate.Delegate[int, int]
	c := &counter{n: 10}
	delegate.BindConstMethod(&d, counter.Peek, c)
	if d.Kind() != delegate.KindConstMethod {
		t.Fatalf("Kind() = %v, want const method", d.Kind())
	}
	if got := d.Execute(1); got != 11 {
		t.Fatalf("Execute(1) = %d, want 11", got)
	}
	c.n = 20
	if got := d.Execute(1); got != 21 {
		t.Fatalf("receiver changes not observed: Execute(1) = %d, want 21", got)
	}
	delegate.BindConstMethod1(&d, counter.PeekScaled, c, 3)
	if got := d.Execute(2); got != 26 {
		t.Fatalf("Execute(2) = %d, want 26", got)
	}
	delegate.BindConstMethod2(&d, counter.PeekAffine, c, 3, 4)
	if got := d.Execute(2); got != 30 {
		t.Fatalf("Execute(2) = %d, want 30", got)
	}
	if c.n != 20 {
		t.Fatalf("const method modified receiver: n = %d", c.n)
	}
}

func TestPayloadOrder(t *testing.T) {
	var d delegate.Delegate[string, string]
	join := func(a, p1, p2 string) string { return a + "," + p1 + "," + p2 }
	delegate.BindStatic2(&d, join, "p1", "p2")
	if got := d.Execute("a"); got != "a,p1,p2" {
		t.Fatalf("static: got %q, want a,p1,p2", got)
	}
	delegate.BindLambda2(&d, join, "p1", "p2")
	if got := d.Execute("a"); got != "a,p1,p2" {
		t.Fatalf("lambda: got %q, want a,p1,p2", got)
	}

	type rec struct{ prefix string }
	r := &rec{prefix: ">"}
	m := func(r *rec, a, p1, p2 string) string { return r.prefix + a + p1 + p2 }
	delegate.BindMethod2(&d, m, r, "1", "2")
	if got := d.Execute("0"); got != ">012" {
		t.Fatalf("method: got %q, want >012", got)
	}
}

func TestBindNilCallablePanics(t *testing.T) {
	var d delegate.Delegate[int, int]
	expectPanic(t, delegate.ErrNilCallable, func() { delegate.BindStatic(&d, nil) })
	expectPanic(t, delegate.ErrNilCallable, func() { delegate.BindLambda(&d, intOp(nil)) })
	expectPanic(t, delegate.ErrNilCallable, func() { delegate.BindMethod(&d, (*counter).Add, nil) })
	expectPanic(t, delegate.ErrNilCallable, func() { delegate.BindConstMethod(&d, counter.Peek, nil) })
	var f delegate.Functor[int, int]
	expectPanic(t, delegate.ErrNilCallable, func() { delegate.BindFunctor(&d, f) })
	if d.IsBound() {
		t.Fatal("failed bind left delegate bound")
	}
}

func TestInlineAndHeapRouting(t *testing.T) {
	d := delegate.New[int, int]()
	delegate.BindStatic1(d, scaleBy, ratio(2))
	if !d.IsInline() {
		t.Fatal("16-byte binding not inline in 32-byte storage")
	}

	c := &counter{}
	delegate.BindMethod2(d, (*counter).AddAffine, c, 2, 1)
	if d.IsInline() {
		t.Fatal("binding with scalar payload placed inline")
	}
	if !d.Storage().IsEmpty() {
		t.Fatal("heap binding consumed storage")
	}
	delegate.BindConstMethod(d, counter.Peek, c)
	if !d.IsInline() {
		t.Fatal("method and receiver not inline")
	}

	small := delegate.New[int, int](delegate.WithCapacity(8))
	delegate.BindStatic1(small, scaleBy, ratio(2))
	if small.IsInline() {
		t.Fatal("16-byte binding inline in 8-byte storage")
	}
	if !small.Storage().IsEmpty() {
		t.Fatal("heap binding consumed storage")
	}
	if got := small.Execute(3); got != 6 {
		t.Fatalf("Execute(3) = %d, want 6", got)
	}
}

func TestRebindReusesSlot(t *testing.T) {
	var d delegate.Delegate[int, int]
	delegate.BindStatic(&d, square)
	first := d.Storage().Used()
	if first == 0 {
		t.Fatal("inline binding used no storage")
	}
	d.Unbind()
	if d.Storage().Used() != 0 {
		t.Fatalf("Used() = %d after Unbind, want 0", d.Storage().Used())
	}
	delegate.BindLambda(&d, func(x int) int { return x + 1 })
	if d.Storage().Used() != first {
		t.Fatalf("Used() = %d after rebind, want %d", d.Storage().Used(), first)
	}

	// An implicit unbind happens on every bind.
	delegate.BindStatic(&d, negate)
	if d.Storage().Used() != first {
		t.Fatalf("Used() = %d after direct rebind, want %d", d.Storage().Used(), first)
	}
	if got := d.Execute(4); got != -4 {
		t.Fatalf("Execute(4) = %d, want -4", got)
	}
}

func TestUnbindIdempotent(t *testing.T) {
	var d delegate.Delegate[int, int]
	d.Unbind()
	delegate.BindStatic(&d, square)
	d.Unbind()
	d.Unbind()
	if d.IsBound() {
		t.Fatal("delegate bound after Unbind")
	}
	if _, ok := d.ExecuteIfBound(2); ok {
		t.Fatal("ExecuteIfBound succeeded after Unbind")
	}
}

func TestCopyIndependence(t *testing.T) {
	var d delegate.Delegate[int, int]
	delegate.BindLambda1(&d, scaleBy, ratio(3))
	c := d.Clone()
	if !c.IsBound() || !c.IsInline() {
		t.Fatalf("clone bound=%v inline=%v", c.IsBound(), c.IsInline())
	}
	if c.Storage() == d.Storage() {
		t.Fatal("clone shares storage with its source")
	}

	delegate.BindLambda1(&d, scaleBy, ratio(10))
	if got := c.Execute(2); got != 6 {
		t.Fatalf("clone changed after source rebind: %d, want 6", got)
	}
	d.Unbind()
	if got := c.Execute(2); got != 6 {
		t.Fatalf("clone changed after source unbind: %d, want 6", got)
	}
	if c.Kind() != delegate.KindLambda {
		t.Fatalf("clone Kind() = %v, want lambda", c.Kind())
	}
}

func TestCopyHeapBinding(t *testing.T) {
	var d delegate.Delegate[int, int]
	var tb table
	tb.weights[0] = 7
	delegate.BindFunctor(&d, tb)
	c := d.Clone()
	d.Unbind()
	if c.IsInline() {
		t.Fatal("copy of a heap binding placed inline")
	}
	if got := c.Execute(3); got != 21 {
		t.Fatalf("Execute(3) = %d, want 21", got)
	}
}

func TestCopyFrom(t *testing.T) {
	var src, dst delegate.Delegate[int, int]
	delegate.BindStatic(&dst, negate)
	delegate.BindStatic(&src, square)

	dst.CopyFrom(&src)
	if got := dst.Execute(3); got != 9 {
		t.Fatalf("Execute(3) = %d, want 9", got)
	}

	src.Unbind()
	dst.CopyFrom(&src)
	if dst.IsBound() {
		t.Fatal("copying an unbound delegate left destination bound")
	}

	delegate.BindStatic(&src, square)
	src.CopyFrom(&src)
	if got := src.Execute(4); got != 16 {
		t.Fatalf("self copy broke delegate: Execute(4) = %d", got)
	}
}

func TestCopyIntoSmallerStorage(t *testing.T) {
	src := delegate.New[int, int]()
	delegate.BindStatic1(src, scaleBy, ratio(2))
	if !src.IsInline() {
		t.Fatal("source binding not inline")
	}
	dst := delegate.New[int, int](delegate.WithCapacity(8))
	dst.CopyFrom(src)
	if dst.IsInline() {
		t.Fatal("copy placed in storage too small for it")
	}
	if got := dst.Execute(4); got != 8 {
		t.Fatalf("Execute(4) = %d, want 8", got)
	}
}

func TestMoveInline(t *testing.T) {
	var src, dst delegate.Delegate[int, int]
	delegate.BindStatic1(&src, scaleBy, ratio(2))
	dst.MoveFrom(&src)
	if src.IsBound() {
		t.Fatal("source still bound after move")
	}
	if !src.Storage().IsEmpty() {
		t.Fatal("source storage not released after move")
	}
	if !dst.IsInline() {
		t.Fatal("moved inline binding not re-homed in destination storage")
	}
	if got := dst.Execute(5); got != 10 {
		t.Fatalf("Execute(5) = %d, want 10", got)
	}
}

func TestMoveHeap(t *testing.T) {
	var src, dst delegate.Delegate[int, int]
	var tb table
	tb.weights[1] = 2
	delegate.BindFunctor(&src, tb)
	dst.MoveFrom(&src)
	if src.IsBound() {
		t.Fatal("source still bound after move")
	}
	if dst.IsInline() {
		t.Fatal("heap binding became inline")
	}
	if got := dst.Execute(5); got != 10 {
		t.Fatalf("Execute(5) = %d, want 10", got)
	}
	dst.Unbind()
	if dst.IsBound() {
		t.Fatal("moved binding survived Unbind")
	}
}

func TestMoveSelfAndUnbound(t *testing.T) {
	var d, empty delegate.Delegate[int, int]
	delegate.BindStatic(&d, square)
	d.MoveFrom(&d)
	if got := d.Execute(3); got != 9 {
		t.Fatalf("self move broke delegate: Execute(3) = %d", got)
	}
	d.MoveFrom(&empty)
	if d.IsBound() {
		t.Fatal("moving from unbound left destination bound")
	}
}

func TestRelease(t *testing.T) {
	var d delegate.Delegate[int, int]
	delegate.BindStatic(&d, square)
	d.Release()
	if d.IsBound() || d.Storage() != nil {
		t.Fatal("Release left state behind")
	}
	delegate.BindStatic(&d, negate)
	if got := d.Execute(2); got != -2 {
		t.Fatalf("Execute(2) = %d after reuse, want -2", got)
	}
	if !d.IsInline() {
		t.Fatal("released delegate lost inline storage on rebind")
	}
}

func TestNewInvalidConfigPanics(t *testing.T) {
	expectPanic(t, delegate.ErrInvalidConfig, func() {
		_ = delegate.New[int, int](delegate.WithAlign(6))
	})
	expectPanic(t, delegate.ErrInvalidConfig, func() {
		_ = delegate.New[int, int](delegate.WithCapacity(0))
	})
}

func TestKindString(t *testing.T) {
	kinds := map[delegate.Kind]string{
		delegate.KindNone:        "none",
		delegate.KindStatic:      "static",
		delegate.KindLambda:      "lambda",
		delegate.KindFunctor:     "functor",
		delegate.KindMethod:      "method",
		delegate.KindConstMethod: "const method",
		delegate.Kind(99):        "unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

// TestEndToEnd follows the canonical bind, rebind, copy, unbind scenario.
func TestEndToEnd(t *testing.T) {
	var d delegate.Delegate[int, int]
	delegate.BindStatic(&d, square)
	if got := d.Execute(5); got != 25 {
		t.Fatalf("Execute(5) = %d, want 25", got)
	}
	delegate.BindLambda1(&d, func(x int, k float64) int { return int(float64(x) * k) }, 2.0)
	if got := d.Execute(5); got != 10 {
		t.Fatalf("Execute(5) = %d, want 10", got)
	}
	d2 := d.Clone()
	d.Unbind()
	if got := d2.Execute(5); got != 10 {
		t.Fatalf("copy Execute(5) = %d, want 10", got)
	}
}

func TestStructArguments(t *testing.T) {
	type point struct{ x, y int }
	var d delegate.Delegate[point, string]
	delegate.BindStatic1(&d, func(p point, sep string) string {
		return fmt.Sprintf("%d%s%d", p.x, sep, p.y)
	}, ":")
	if got := d.Execute(point{1, 2}); got != "1:2" {
		t.Fatalf("Execute = %q, want 1:2", got)
	}
	var none delegate.Delegate[struct{}, int]
	delegate.BindStatic(&none, func(struct{}) int { return 42 })
	if got := none.Execute(struct{}{}); got != 42 {
		t.Fatalf("Execute = %d, want 42", got)
	}
}
