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

package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aerospike/s3bench-go"
	"github.com/aerospike/s3bench-go/cmd/internal/config"
	"github.com/aerospike/s3bench-go/cmd/internal/logging"
	"github.com/aws/smithy-go"
)

const idBenchmark = "s3bench-cli"

// Service represents a struct that encapsulates the components of one
// benchmark run: the storage client, the runner and reporting.
type Service struct {
	runner *s3bench.Runner
	config *s3bench.Config
	op     s3bench.Operation

	isLogJSON bool

	logger *slog.Logger
}

// NewService initializes and returns a new Service instance, configuring
// all necessary components for a benchmark run. Arguments are validated
// before the config file is read, and the config before any client exists.
func NewService(
	ctx context.Context,
	params *config.BenchmarkParams,
	logger *slog.Logger,
) (*Service, error) {
	// Validations.
	op, err := s3bench.ParseOperation(params.Benchmark.Operation)
	if err != nil {
		return nil, err
	}

	if err := params.Benchmark.Validate(); err != nil {
		return nil, err
	}

	// Initializations.
	cfg, err := config.Load(params.Benchmark.ConfigFile)
	if err != nil {
		return nil, err
	}

	logger.Info("initializing benchmark client", slog.String("id", idBenchmark))

	client, err := s3bench.NewClient(ctx, cfg,
		s3bench.WithLogger(logger),
		s3bench.WithID(idBenchmark),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create benchmark client: %w", err)
	}

	runner, err := s3bench.NewRunner(client, op,
		s3bench.WithIterations(params.Benchmark.NumIters),
		s3bench.WithWarmup(params.Benchmark.Warmup),
		s3bench.WithRunnerLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		runner:    runner,
		config:    cfg,
		op:        op,
		isLogJSON: params.App.LogJSON,
		logger:    logger,
	}, nil
}

// Run executes the benchmark. On success the report is printed; on failure
// the error is returned and no report is produced.
func (s *Service) Run(ctx context.Context) error {
	stats, err := s.runner.Run(ctx)
	if err != nil {
		// Surface the diagnostic the storage client provides before
		// the error terminates the run.
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			s.logger.Error("storage call failed",
				slog.String("code", apiErr.ErrorCode()),
				slog.String("message", apiErr.ErrorMessage()),
			)
		}

		return err
	}

	logging.ReportBenchmark(s.op, s.config, stats, s.isLogJSON, s.logger)

	return nil
}
