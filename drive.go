// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import (
	"context"
)

// Drive starts a chain with the supplied final continuation.
//
// The continuation is wrapped in an [Affine] guard, so a step anywhere in
// the chain that completes twice panics at the second completion instead of
// re-entering k. Drive returns as soon as the chain's first asynchronous
// step has been issued; k runs later, on whatever goroutine the last step
// completes on.
func Drive[A any](s Step[A], k Continuation[A]) {
	once := Once(k)
	s.Drive(func(a A) {
		once.Resume(a)
	})
}

// Await drives the chain and blocks until the final continuation fires,
// returning the final value. It bridges callback style back into
// call-return style at the top of a chain.
//
// Await inherits the chain's liveness: a step whose underlying operation
// never completes blocks Await forever. Use [AwaitContext] to bound the wait.
func Await[A any](s Step[A]) A {
	ch := make(chan A, 1)
	Drive(s, func(a A) {
		ch <- a
	})
	return <-ch
}

// AwaitContext drives the chain and waits for the final value or for ctx.
//
// On cancellation it returns ctx's error and stops waiting; the chain itself
// is not interrupted — in-flight work still completes against the buffered
// delivery channel and is then dropped. Issue cancellable steps with a
// provider that observes the same ctx to stop the work as well.
func AwaitContext[A any](ctx context.Context, s Step[A]) (A, error) {
	ch := make(chan A, 1)
	Drive(s, func(a A) {
		ch <- a
	})
	select {
	case a := <-ch:
		return a, nil
	case <-ctx.Done():
		var zero A
		return zero, ctx.Err()
	}
}
