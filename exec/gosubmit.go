// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package exec

import (
	"context"

	"go.uber.org/zap"
)

// Go runs each task on a detached goroutine.
//
// This is the simplest provider: unbounded concurrency, no queue, no
// shutdown. Tasks outlive the submitting call and are not tracked; use
// [Pool] when draining on shutdown matters.
type Go struct {
	logger *zap.SugaredLogger
}

// NewGo creates a detached-goroutine submitter.
// A nil logger disables logging.
func NewGo(logger *zap.SugaredLogger) *Go {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Go{logger: logger}
}

// Submit starts task on a new goroutine. It never rejects.
func (g *Go) Submit(ctx context.Context, task func(context.Context)) error {
	g.logger.Debugw("task detached")
	go task(ctx)
	return nil
}
