// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"code.hybscloud.com/chain"
)

func TestTerminalDriveAllocations(t *testing.T) {
	step := chain.Return(42)
	k := chain.Continuation[int](func(int) {})
	allocs := testing.AllocsPerRun(100, func() {
		step.Drive(k)
	})
	if allocs > 0 {
		t.Errorf("terminal Drive allocs = %v; want 0", allocs)
	}
}

func TestFuncDriveAllocations(t *testing.T) {
	step := chain.Func[int](func(k chain.Continuation[int]) { k(1) })
	k := chain.Continuation[int](func(int) {})
	allocs := testing.AllocsPerRun(100, func() {
		step.Drive(k)
	})
	if allocs > 0 {
		t.Errorf("Func Drive allocs = %v; want 0", allocs)
	}
}
