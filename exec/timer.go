// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package exec

import (
	"context"
	"time"
)

// Timer runs each task after a fixed delay, simulating a slow external
// operation with a real asynchronous completion.
//
// The delay is cancellable: if ctx is cancelled before the delay elapses,
// the task still runs — immediately, with the cancelled context — so the
// operation can observe ctx.Err() and the chain completes with a failure
// instead of stalling.
type Timer struct {
	delay time.Duration
}

// NewTimer creates a delayed submitter. A non-positive delay runs tasks on
// a goroutine without waiting.
func NewTimer(delay time.Duration) *Timer {
	return &Timer{delay: delay}
}

// Submit schedules task to run on a timer goroutine after the delay.
// It never rejects.
func (t *Timer) Submit(ctx context.Context, task func(context.Context)) error {
	if t.delay <= 0 {
		go task(ctx)
		return nil
	}
	go func() {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
		task(ctx)
	}()
	return nil
}
