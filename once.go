// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain

import (
	"sync/atomic"
)

// Affine wraps a continuation with one-shot enforcement.
// The continuation can be resumed at most once; subsequent attempts
// to resume will panic (Resume) or return false (TryResume).
//
// The exactly-once contract is the chain's central invariant. Affine makes
// violating it a structural error rather than a discipline error: a step
// implementation that invokes its continuation twice panics at the second
// invocation instead of silently re-entering downstream code.
type Affine[A any] struct {
	used   atomic.Uintptr
	resume Continuation[A]
}

// Once creates an affine continuation from a regular continuation.
// The returned Affine can be resumed at most once.
func Once[A any](k Continuation[A]) *Affine[A] {
	return &Affine[A]{resume: k}
}

// Resume invokes the continuation with the given value.
// Panics if the continuation has already been used.
func (a *Affine[A]) Resume(v A) {
	if a.used.Add(1) != 1 {
		panic("chain: continuation resumed twice")
	}
	a.resume(v)
}

// TryResume attempts to invoke the continuation.
// Returns true on success, or false if already used.
func (a *Affine[A]) TryResume(v A) bool {
	if a.used.Add(1) != 1 {
		return false
	}
	a.resume(v)
	return true
}

// Discard marks the continuation as used without invoking it.
// Useful for explicitly dropping a continuation that must never fire,
// such as after a cancellation observed before work was issued.
func (a *Affine[A]) Discard() {
	a.used.Store(1)
}

// Used reports whether the continuation has been resumed or discarded.
func (a *Affine[A]) Used() bool {
	return a.used.Load() != 0
}
