// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command chainloop drives a bounded continuation chain against a worker
// pool: each iteration submits one simulated asynchronous unit of work and
// feeds its output to the next, then the final continuation fires once with
// the terminal marker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code.hybscloud.com/chain"
	"code.hybscloud.com/chain/exec"
)

var rootCmd = &cobra.Command{
	Use:   "chainloop",
	Short: "Run a bounded asynchronous continuation chain",
	Long: `chainloop builds a chain of n asynchronous steps, drives it with a
single final continuation, and waits for the terminal marker.

Each step is submitted to a worker pool and completes on a pool goroutine
after a simulated delay; the value produced by one step is threaded into
the next. Interrupting the run cancels the remaining steps and the chain
completes with the cancellation error instead of stalling.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	iterations, _ := cmd.Flags().GetInt("iterations")
	delay, _ := cmd.Flags().GetDuration("delay")
	workers, _ := cmd.Flags().GetInt("workers")
	jsonOut, _ := cmd.Flags().GetBool("json")

	logger, err := buildLogger(jsonOut)
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cfg := exec.DefaultPoolConfig()
	cfg.Workers = workers
	pool := exec.NewPool(cfg, log)
	if err := pool.Start(); err != nil {
		return err
	}
	defer pool.Shutdown()

	iteration := 0
	unit := func(r chain.Result[string]) chain.Step[chain.Result[string]] {
		if r.IsErr() {
			return chain.ErrStep[string](r.Error())
		}
		iteration++
		i := iteration
		return exec.Call(pool, ctx, func(ctx context.Context) (string, error) {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			log.Infow("async unit completed", "iteration", i, "previous", r.Value())
			return fmt.Sprintf("data from async %d", i), nil
		})
	}

	log.Infow("driving chain", "iterations", iterations, "delay", delay, "workers", cfg.Workers)
	final, err := chain.AwaitContext(ctx, chain.Loop(iterations, unit, chain.Ok("seed")))
	if err != nil {
		return err
	}
	v, err := final.Unpack()
	if err != nil {
		return err
	}
	log.Infow("chain completed", "final", v)
	fmt.Println("Done!")
	return nil
}

func buildLogger(jsonOut bool) (*zap.Logger, error) {
	if jsonOut {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	rootCmd.Flags().IntP("iterations", "n", 4, "number of asynchronous units to chain")
	rootCmd.Flags().Duration("delay", 500*time.Millisecond, "simulated latency per unit")
	rootCmd.Flags().Int("workers", 1, "worker pool size")
	rootCmd.Flags().Bool("json", false, "structured JSON log output")
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
