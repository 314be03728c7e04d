// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

// Resource safety for fallible chains.
// These provide the minimal interface for bracketed resource handling
// around asynchronous steps (open a handle asynchronously, use it, close it).

// Bracket sequences acquire → use → release, guaranteeing that release runs
// whether use succeeds or fails. The use outcome is forwarded to the outer
// continuation after release completes.
//
// If acquire itself fails, nothing was acquired: release is not run and the
// acquisition failure is forwarded.
func Bracket[R, A any](
	acquire Step[Result[R]],
	release func(R) Step[struct{}],
	use func(R) Step[Result[A]],
) Step[Result[A]] {
	return BindResult(acquire, func(resource R) Step[Result[A]] {
		return Bind(use(resource), func(r Result[A]) Step[Result[A]] {
			// Always release, then forward the use outcome unchanged.
			return Then(release(resource), Return(r))
		})
	})
}

// OnError runs cleanup only when body fails, then forwards the failure
// unchanged. Successful outcomes skip cleanup entirely.
func OnError[A any](
	body Step[Result[A]],
	cleanup func(error) Step[struct{}],
) Step[Result[A]] {
	return Bind(body, func(r Result[A]) Step[Result[A]] {
		if r.IsErr() {
			return Then(cleanup(r.Error()), Return(r))
		}
		return Return(r)
	})
}
