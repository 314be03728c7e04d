// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

// Loop builds a bounded chain of n activations of unit.
//
// Each activation drives unit with the value threaded from the previous
// activation (seed for the first) and binds the result into the next
// activation. When the count is exhausted the chain completes with the last
// produced value via a terminal step, so driving the loop invokes the final
// continuation exactly once, after exactly n units of work. n <= 0 completes
// immediately with seed, on the calling goroutine.
//
// The count is the loop's termination guarantee: there is deliberately no
// unbounded variant. A chain that must run until an external condition
// should thread a cancellable provider through its units instead.
func Loop[A any](n int, unit func(A) Step[A], seed A) Step[A] {
	if n <= 0 {
		return Return(seed)
	}
	return Func[A](func(k Continuation[A]) {
		Bind(unit(seed), func(a A) Step[A] {
			return Loop(n-1, unit, a)
		}).Drive(k)
	})
}
