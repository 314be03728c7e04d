// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package exec

import (
	"context"
)

// Sync is a deterministic, single-goroutine submitter for tests.
//
// Tasks run synchronously in FIFO submission order on the goroutine that
// triggered them. The queue is drained iteratively: a task submitted while
// another is running is appended and executed after it returns, not nested
// inside it, so deeply chained synchronous steps use constant stack instead
// of recursing once per step.
//
// Sync is not safe for concurrent use; it exists to make chain behavior
// observable without goroutine interleaving.
type Sync struct {
	queue   []func(context.Context)
	ctxs    []context.Context
	running bool
}

// NewSync creates a synchronous submitter.
func NewSync() *Sync {
	return &Sync{}
}

// Submit appends the task and, if no drain loop is active, drains the queue
// until empty. It never rejects.
func (s *Sync) Submit(ctx context.Context, task func(context.Context)) error {
	s.queue = append(s.queue, task)
	s.ctxs = append(s.ctxs, ctx)
	if s.running {
		return nil
	}
	s.running = true
	defer func() { s.running = false }()
	for len(s.queue) > 0 {
		t, tctx := s.queue[0], s.ctxs[0]
		s.queue, s.ctxs = s.queue[1:], s.ctxs[1:]
		t(tctx)
	}
	return nil
}
