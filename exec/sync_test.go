// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package exec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/chain"
	"code.hybscloud.com/chain/exec"
)

func TestSyncRunsInline(t *testing.T) {
	s := exec.NewSync()
	ran := false
	require.NoError(t, s.Submit(context.Background(), func(context.Context) {
		ran = true
	}))
	assert.True(t, ran, "task did not run before Submit returned")
}

// A task submitted from within a running task executes after the current
// task returns, not nested inside it.
func TestSyncDefersNestedSubmits(t *testing.T) {
	s := exec.NewSync()
	var order []string

	require.NoError(t, s.Submit(context.Background(), func(ctx context.Context) {
		order = append(order, "outer-start")
		_ = s.Submit(ctx, func(context.Context) {
			order = append(order, "inner")
		})
		order = append(order, "outer-end")
	}))

	assert.Equal(t, []string{"outer-start", "outer-end", "inner"}, order)
}

func TestSyncFIFO(t *testing.T) {
	s := exec.NewSync()
	var order []int

	require.NoError(t, s.Submit(context.Background(), func(ctx context.Context) {
		for i := range 5 {
			_ = s.Submit(ctx, func(context.Context) {
				order = append(order, i)
			})
		}
	}))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

// Deep chains over Sync drain iteratively: a loop of many synchronous
// asynchronous units completes without nesting one stack frame per unit.
func TestSyncDeepLoop(t *testing.T) {
	s := exec.NewSync()
	ctx := context.Background()

	const n = 100000
	unit := func(r chain.Result[int]) chain.Step[chain.Result[int]] {
		if r.IsErr() {
			return chain.ErrStep[int](r.Error())
		}
		return exec.Call(s, ctx, func(context.Context) (int, error) {
			return r.Value() + 1, nil
		})
	}

	var final chain.Result[int]
	calls := 0
	chain.Loop(n, unit, chain.Ok(0)).Drive(func(r chain.Result[int]) {
		calls++
		final = r
	})

	require.Equal(t, 1, calls)
	v, err := final.Unpack()
	require.NoError(t, err)
	assert.Equal(t, n, v)
}
