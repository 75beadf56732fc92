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

package logging

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aerospike/s3bench-go"
	bModels "github.com/aerospike/s3bench-go/models"
)

const headerBenchmarkReport = "Benchmark report"

// ReportBenchmark prints the benchmark report.
// if isJSON is true, it prints the report in JSON format, but logger must be passed
func ReportBenchmark(
	op s3bench.Operation, cfg *s3bench.Config, stats *bModels.Stats, isJSON bool, logger *slog.Logger,
) {
	if isJSON {
		logBenchmarkReport(op, cfg, stats, logger)
		return
	}

	printBenchmarkReport(op, cfg, stats)
}

func printBenchmarkReport(op s3bench.Operation, cfg *s3bench.Config, stats *bModels.Stats) {
	fmt.Println(headerBenchmarkReport)
	fmt.Println(strings.Repeat("-", len(headerBenchmarkReport)))

	printMetric("Operation", op)
	printMetric("Bucket", cfg.Bucket)
	printMetric("Prefix", cfg.Prefix)

	fmt.Println()

	printMetric("Min", seconds(stats.Min))
	printMetric("Mean", seconds(stats.Mean))
	printMetric("Max", seconds(stats.Max))
	printMetric("Standard Deviation", seconds(stats.StdDev))
}

func logBenchmarkReport(op s3bench.Operation, cfg *s3bench.Config, stats *bModels.Stats, logger *slog.Logger) {
	logger.Info("benchmark report",
		slog.String("operation", string(op)),
		slog.String("bucket", cfg.Bucket),
		slog.String("prefix", cfg.Prefix),
		slog.Duration("min", stats.Min),
		slog.Duration("mean", stats.Mean),
		slog.Duration("max", stats.Max),
		slog.Duration("stddev", stats.StdDev),
	)
}

// seconds renders a duration the way the progress lines do, seconds with
// an "s" suffix.
func seconds(d time.Duration) string {
	return fmt.Sprintf("%.6fs", d.Seconds())
}

func printMetric(key string, value any) {
	fmt.Printf("%s%v\n", indent(key), value)
}

func indent(key string) string {
	return fmt.Sprintf("%s:%s", key, strings.Repeat(" ", 21-len(key)))
}
