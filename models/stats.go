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

package models

import (
	"math"
	"time"
)

// Stats holds the latency distribution of a completed benchmark run.
type Stats struct {
	// Min is the fastest observed iteration.
	Min time.Duration
	// Mean is the arithmetic mean over all iterations.
	Mean time.Duration
	// Max is the slowest observed iteration.
	Max time.Duration
	// StdDev is the population standard deviation over all iterations.
	StdDev time.Duration
}

// CalculateStats computes min, mean, max and population standard deviation
// over samples. Returns nil if samples is empty.
func CalculateStats(samples []time.Duration) *Stats {
	if len(samples) == 0 {
		return nil
	}

	minVal, maxVal := samples[0], samples[0]

	var sum time.Duration

	for _, s := range samples {
		if s < minVal {
			minVal = s
		}

		if s > maxVal {
			maxVal = s
		}

		sum += s
	}

	mean := float64(sum) / float64(len(samples))

	var sqDiff float64

	for _, s := range samples {
		d := float64(s) - mean
		sqDiff += d * d
	}

	// Population deviation: the run is the whole population, so the
	// variance is divided by N, not N-1.
	stdDev := math.Sqrt(sqDiff / float64(len(samples)))

	return &Stats{
		Min:    minVal,
		Mean:   time.Duration(mean),
		Max:    maxVal,
		StdDev: time.Duration(stdDev),
	}
}
