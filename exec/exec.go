// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package exec provides the asynchronous provider boundary for chains.
//
// A [Submitter] schedules fire-and-forget tasks: detached goroutines
// ([Go]), delayed timers ([Timer]), a bounded worker pool ([Pool]), or a
// deterministic single-goroutine fake for tests ([Sync]). [Call] turns an
// operation submitted to any of them into a chain.Step with pre-issue
// cancellation and structural exactly-once delivery, so the chain core
// never depends on how its asynchronous work is actually scheduled.
package exec

import (
	"context"

	"github.com/cockroachdb/errors"

	"code.hybscloud.com/chain"
)

// ErrClosed is reported by submitters that no longer accept tasks.
var ErrClosed = errors.New("exec: submitter closed")

// Submitter schedules a task for asynchronous execution.
//
// Submit returns once the task has been accepted; the task itself runs
// later, on a goroutine owned by the submitter, and receives a context
// derived from the one passed to Submit. A non-nil error means the task was
// rejected and will never run.
type Submitter interface {
	Submit(ctx context.Context, task func(context.Context)) error
}

// Call wraps an asynchronous operation into a chain step.
//
// Driving the step submits op to sub and returns immediately; the
// continuation is invoked later, from the submitter's goroutine, with
// Ok(value) or Err(error). The continuation is guarded by chain.Once, so a
// misbehaving operation cannot complete the step twice.
//
// Cancellation: if ctx is already cancelled when the step is driven, the
// operation is never issued and the continuation is discarded — it will
// never be invoked, and anything awaiting the chain must bound its wait
// (chain.AwaitContext). Once issued, cancellation is the operation's
// concern: op receives ctx and should return ctx.Err() when it observes
// cancellation, which the step delivers as a failure so the chain can
// short-circuit.
//
// A submit rejection (for example a pool that has shut down) is delivered
// as a failure rather than a discard: rejection is an observable outcome,
// not a request to stop.
func Call[A any](sub Submitter, ctx context.Context, op func(context.Context) (A, error)) chain.Step[chain.Result[A]] {
	return chain.Func[chain.Result[A]](func(k chain.Continuation[chain.Result[A]]) {
		once := chain.Once(k)
		if err := ctx.Err(); err != nil {
			once.Discard()
			return
		}
		err := sub.Submit(ctx, func(ctx context.Context) {
			v, err := op(ctx)
			if err != nil {
				once.Resume(chain.Err[A](err))
				return
			}
			once.Resume(chain.Ok(v))
		})
		if err != nil {
			once.Resume(chain.Err[A](errors.Wrap(err, "exec: submit")))
		}
	})
}
