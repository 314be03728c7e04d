// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

// Combinators for composing steps.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// intermediate terminal-step allocations.

// Bind composes a step with a function producing the next step.
//
// Driving the bound step drives m with a continuation that, upon receiving
// m's result, builds the next step and drives it with the outer
// continuation:
//
//	Bind(m, f).Drive(k) == m.Drive(func(a A) { f(a).Drive(k) })
//
// This composition law holds for all m, f and k. Binding is associative:
// left- and right-nested chains produce the same sequence of side effects
// and deliver the same final value.
//
// f runs on whatever goroutine m's continuation is invoked from.
func Bind[A, B any](m Step[A], f func(A) Step[B]) Step[B] {
	return Func[B](func(k Continuation[B]) {
		m.Drive(func(a A) {
			f(a).Drive(k)
		})
	})
}

// Map applies a pure function to the result of a step.
//
// Allocation note: Map is equivalent to Bind(m, compose(Return, f)) but
// skips the intermediate terminal step, making it the preferred choice when
// the transformation is pure (starts no asynchronous work).
func Map[A, B any](m Step[A], f func(A) B) Step[B] {
	return Func[B](func(k Continuation[B]) {
		m.Drive(func(a A) {
			k(f(a))
		})
	})
}

// Then sequences two steps, discarding the first result.
// This is more efficient than Bind when the second step
// does not depend on the first result.
func Then[A, B any](m Step[A], n Step[B]) Step[B] {
	return Func[B](func(k Continuation[B]) {
		m.Drive(func(A) {
			n.Drive(k)
		})
	})
}
