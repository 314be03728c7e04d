// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

// Continuation represents "the rest of the computation": a procedure that
// receives an eventually-produced value of type A.
//
// Continuations are fire-and-forget. An asynchronous step invokes its
// continuation from whatever goroutine the underlying operation completes
// on, so no value can flow back through the invocation. Use [Await] to
// bridge a chain's final value back into call-return style.
//
// A continuation must outlive the operation that will invoke it; closures
// capture by value, which satisfies this as long as the captured state does.
type Continuation[A any] func(A)

// Step is a unit of asynchronous work. Instead of returning its result, a
// step delivers it by invoking the supplied continuation, possibly from a
// different goroutine than the caller of Drive.
//
// Drive is invoked at most once per step instance. A step must invoke k
// exactly once per activation, and only after any wrapped asynchronous side
// effect has completed. Steps are immutable once constructed; construction
// is synchronous and performs no I/O.
type Step[A any] interface {
	Drive(k Continuation[A])
}

// Func adapts a CPS function to a [Step]. This is the primitive constructor
// for steps that need direct access to the continuation.
type Func[A any] func(k Continuation[A])

// Drive invokes the underlying function with k.
func (f Func[A]) Drive(k Continuation[A]) { f(k) }

// terminal is the chain base case: a step wrapping an already-available value.
type terminal[A any] struct {
	value A
}

// Drive invokes k with the stored value, synchronously, on the calling
// goroutine, with no side effects beyond invoking k.
func (t terminal[A]) Drive(k Continuation[A]) { k(t.value) }

// Return lifts a pure value into a terminal step.
// Driving the resulting step immediately passes the value to its
// continuation. Used to end a chain or to inject a fixed value mid-chain.
func Return[A any](v A) Step[A] {
	return terminal[A]{value: v}
}
