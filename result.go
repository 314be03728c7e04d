// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

// Result is the error channel for asynchronous steps: a tagged
// success-or-failure value delivered to a continuation.
//
// Errors must not escape a step by panicking out of asynchronous context
// (unsafe across goroutine boundaries); instead an operation's failure
// travels through the chain as a Result. Result carries a plain error so
// callers keep their error ecosystem (wrapping, errors.Is) intact.
type Result[A any] struct {
	value A
	err   error
}

// Ok creates a success Result.
func Ok[A any](v A) Result[A] {
	return Result[A]{value: v}
}

// Err creates a failure Result. A nil err produces a success Result with
// the zero value.
func Err[A any](err error) Result[A] {
	return Result[A]{err: err}
}

// IsErr reports whether the Result is a failure.
func (r Result[A]) IsErr() bool { return r.err != nil }

// Value returns the success value, or the zero value for a failure.
func (r Result[A]) Value() A { return r.value }

// Error returns the failure, or nil for a success.
func (r Result[A]) Error() error { return r.err }

// Unpack returns the value and error in Go's conventional order.
func (r Result[A]) Unpack() (A, error) { return r.value, r.err }

// Match calls onErr for a failure or onOk for a success.
func Match[A, T any](r Result[A], onErr func(error) T, onOk func(A) T) T {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// OkStep lifts a success value into a terminal step.
func OkStep[A any](v A) Step[Result[A]] {
	return Return(Ok(v))
}

// ErrStep lifts a failure into a terminal step.
func ErrStep[A any](err error) Step[Result[A]] {
	return Return(Err[A](err))
}

// BindResult composes fallible steps with short-circuiting.
//
// On a success it behaves as Bind, passing the value to f. On a failure it
// never evaluates f and forwards the failure to the outer continuation
// unchanged, so one failed step aborts the rest of the chain while still
// invoking the final continuation exactly once.
func BindResult[A, B any](m Step[Result[A]], f func(A) Step[Result[B]]) Step[Result[B]] {
	return Bind(m, func(r Result[A]) Step[Result[B]] {
		if r.err != nil {
			return Return(Err[B](r.err))
		}
		return f(r.value)
	})
}

// MapResult applies a pure function to the success value, forwarding
// failures unchanged.
func MapResult[A, B any](m Step[Result[A]], f func(A) B) Step[Result[B]] {
	return Map(m, func(r Result[A]) Result[B] {
		if r.err != nil {
			return Err[B](r.err)
		}
		return Ok(f(r.value))
	})
}
