// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chain composes asynchronous, callback-driven steps into chains
// without blocking, and terminates such chains deterministically.
//
// The core type [Step] is a unit of work that delivers its result by
// invoking a [Continuation] rather than returning it. Chains are built
// synchronously from steps and combinators, then driven exactly once by
// supplying a final continuation.
//
// # Core Operations
//
// Minimal operations:
//
//   - [Return]: Lift a pure value into a terminal step
//   - [Bind]: Compose a step with a function producing the next step
//
// Derived operations:
//
//   - [Map]: Apply a pure function to a step's result
//   - [Then]: Sequence two steps, discarding the first result
//
// Driving:
//
//   - [Drive]: Start a chain with a guarded final continuation
//   - [Await]: Drive and block for the final value
//   - [AwaitContext]: Drive and wait with a context bound
//
// # Composition Law
//
// Bind satisfies, for all steps m, functions f and continuations k:
//
//	Bind(m, f).Drive(k) == m.Drive(func(a) { f(a).Drive(k) })
//
// and is associative: left- and right-nested chains produce the same
// observable effects and the same final value.
//
// # Exactly-Once Contract
//
// A continuation is invoked exactly once per step activation, and only
// after the step's asynchronous side effect has completed. [Affine] and
// [Once] enforce the contract structurally: resuming twice panics, and
// [Drive] guards every final continuation this way.
//
// # Error Channel
//
// Failures travel through chains as values, not panics:
//
//   - [Result]: Tagged success-or-failure carrying a plain error
//   - [Ok], [Err], [OkStep], [ErrStep]: Constructors
//   - [BindResult]: Bind with short-circuiting — on failure the
//     continuation-step function is never evaluated and the failure is
//     forwarded unchanged
//   - [MapResult]: Map over the success value
//   - [Match]: Pattern matching
//
// # Bounded Loops
//
// [Loop] chains exactly n activations of an asynchronous unit, threading
// the produced value from one activation to the next, and completes with
// the final value. There is no unbounded variant; termination is part of
// the construction.
//
// # Goroutine Model
//
// Scheduling is cooperative and callback-driven; no scheduler is mandated.
// A step backed by an asynchronous provider completes on the provider's
// goroutine, and everything downstream of it — bound functions and the
// final continuation — runs there too. No two activations of one step
// instance may occur concurrently (steps are single-use). Steps share no
// state beyond what their continuations capture; protecting shared
// resources referenced from continuations is the integrator's concern.
//
// The exec package provides the asynchronous provider boundary: submitters
// backed by goroutines, timers and worker pools, a deterministic
// synchronous fake for tests, and the Call adapter that turns a submitted
// operation into a cancellable, exactly-once Step.
//
// # Example
//
//	double := chain.Bind(chain.Return(5), func(x int) chain.Step[int] {
//		return chain.Return(x * 2)
//	})
//	chain.Await(double) // 10
package chain
