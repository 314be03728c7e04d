// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chain_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/chain"
)

func TestOnceResume(t *testing.T) {
	got := 0
	aff := chain.Once(func(x int) { got = x })

	aff.Resume(42)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}

	// After resume, TryResume must fail
	if aff.TryResume(0) {
		t.Fatal("expected TryResume to fail after Resume")
	}
}

func TestOncePanicOnReuse(t *testing.T) {
	aff := chain.Once(func(int) {})

	aff.Resume(10)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on second Resume")
		}
		if s, ok := r.(string); !ok || s != "chain: continuation resumed twice" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	aff.Resume(20)
}

func TestOnceTryResume(t *testing.T) {
	got := 0
	aff := chain.Once(func(x int) { got = x * 2 })

	if !aff.TryResume(10) {
		t.Fatal("expected first TryResume to succeed")
	}
	if got != 20 {
		t.Fatalf("got %d, want 20", got)
	}

	// Second try should fail without panic and without invoking
	if aff.TryResume(50) {
		t.Fatal("expected second TryResume to fail")
	}
	if got != 20 {
		t.Fatalf("got %d, want 20 after failed TryResume", got)
	}
}

func TestOnceDiscard(t *testing.T) {
	calls := 0
	aff := chain.Once(func(int) { calls++ })

	aff.Discard()

	if aff.TryResume(42) {
		t.Fatal("expected TryResume to fail after Discard")
	}
	if calls != 0 {
		t.Fatalf("continuation invoked %d times after Discard, want 0", calls)
	}
}

func TestOnceDiscardThenPanic(t *testing.T) {
	aff := chain.Once(func(int) {})
	aff.Discard()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic after Discard")
		}
	}()

	aff.Resume(42)
}

func TestOnceUsed(t *testing.T) {
	aff := chain.Once(func(int) {})
	if aff.Used() {
		t.Fatal("fresh affine continuation reports used")
	}
	aff.Resume(1)
	if !aff.Used() {
		t.Fatal("resumed affine continuation reports unused")
	}

	aff = chain.Once(func(int) {})
	aff.Discard()
	if !aff.Used() {
		t.Fatal("discarded affine continuation reports unused")
	}
}

func TestOnceConcurrentResume(t *testing.T) {
	invocations := make(chan int, 100)
	aff := chain.Once(func(x int) { invocations <- x })

	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			aff.TryResume(1)
		}()
	}

	wg.Wait()
	close(invocations)

	count := 0
	for range invocations {
		count++
	}
	if count != 1 {
		t.Fatalf("continuation invoked %d times under contention, want 1", count)
	}
}
