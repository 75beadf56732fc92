// Copyright 2024 Aerospike, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package s3bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aerospike/s3bench-go/internal/logging"
	"github.com/aerospike/s3bench-go/models"
	"github.com/google/uuid"
)

// DefaultNumIters is the number of timed iterations when not overridden.
const DefaultNumIters = 10

// ErrInvalidIterations is returned when the iteration count is not positive.
var ErrInvalidIterations = errors.New("invalid iterations")

// Doer executes one invocation of a benchmark operation.
type Doer interface {
	Do(ctx context.Context, op Operation) error
}

// Runner drives the timed loop of a benchmark run. Iterations are strictly
// sequential, each invocation completes before the next begins.
type Runner struct {
	client Doer
	op     Operation
	output io.Writer
	logger *slog.Logger
	id     string
	iters  int
	warmup int
}

// RunnerOpt is a functional option that allows configuring the [Runner].
type RunnerOpt func(*Runner)

// WithIterations sets the number of timed iterations.
func WithIterations(n int) RunnerOpt {
	return func(r *Runner) {
		r.iters = n
	}
}

// WithWarmup sets the number of untimed iterations executed before the
// measured loop. Warmup results are printed but excluded from statistics.
func WithWarmup(n int) RunnerOpt {
	return func(r *Runner) {
		r.warmup = n
	}
}

// WithProgressOutput sets the destination for per iteration progress lines.
func WithProgressOutput(w io.Writer) RunnerOpt {
	return func(r *Runner) {
		r.output = w
	}
}

// WithRunnerLogger sets the logger for the [Runner].
func WithRunnerLogger(logger *slog.Logger) RunnerOpt {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a new runner for op. Arguments are validated here,
// before any storage call is made.
//
// options:
//   - [WithIterations] to set the number of timed iterations.
//   - [WithWarmup] to set the number of untimed warmup iterations.
//   - [WithProgressOutput] to redirect progress lines away from stdout.
//   - [WithRunnerLogger] to set a logger that the runner will log to.
func NewRunner(client Doer, op Operation, opts ...RunnerOpt) (*Runner, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}

	r := &Runner{
		client: client,
		op:     op,
		output: os.Stdout,
		logger: slog.Default(),
		id:     uuid.NewString(),
		iters:  DefaultNumIters,
	}

	for _, opt := range opts {
		opt(r)
	}

	if _, err := ParseOperation(string(op)); err != nil {
		return nil, err
	}

	if r.iters < 1 {
		return nil, fmt.Errorf("%w: %d, must be positive", ErrInvalidIterations, r.iters)
	}

	if r.warmup < 0 {
		return nil, fmt.Errorf("warmup must be non-negative, got %d", r.warmup)
	}

	r.logger = logging.WithRun(r.logger, r.id)

	return r, nil
}

// Run executes the benchmark and returns the latency statistics.
// The first storage error aborts the run: the error is returned and no
// statistics are produced.
func (r *Runner) Run(ctx context.Context) (*models.Stats, error) {
	r.logger.Info("starting benchmark",
		slog.String("operation", string(r.op)),
		slog.Int("iterations", r.iters),
		slog.Int("warmup", r.warmup),
	)

	fmt.Fprintf(r.output, "Starting benchmark: %s\n", r.op)

	for i := 0; i < r.warmup; i++ {
		elapsed, err := r.measure(ctx)
		if err != nil {
			return nil, fmt.Errorf("warmup %d failed: %w", i, err)
		}

		fmt.Fprintf(r.output, "Warmup %d: %.6fs\n", i, elapsed.Seconds())
	}

	samples := make([]time.Duration, 0, r.iters)

	for i := 0; i < r.iters; i++ {
		elapsed, err := r.measure(ctx)
		if err != nil {
			return nil, fmt.Errorf("iteration %d failed: %w", i, err)
		}

		fmt.Fprintf(r.output, "Iteration %d: %.6fs\n", i, elapsed.Seconds())

		samples = append(samples, elapsed)
	}

	stats := models.CalculateStats(samples)

	r.logger.Info("benchmark finished",
		slog.Duration("min", stats.Min),
		slog.Duration("mean", stats.Mean),
		slog.Duration("max", stats.Max),
		slog.Duration("stddev", stats.StdDev),
	)

	return stats, nil
}

// measure times one invocation. time.Now carries a monotonic reading, so
// the elapsed value is immune to wall clock adjustments.
func (r *Runner) measure(ctx context.Context) (time.Duration, error) {
	start := time.Now()

	if err := r.client.Do(ctx, r.op); err != nil {
		return 0, err
	}

	return time.Since(start), nil
}
