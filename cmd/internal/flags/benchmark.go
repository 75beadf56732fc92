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

package flags

import (
	"github.com/aerospike/s3bench-go/cmd/internal/models"
	"github.com/spf13/pflag"
)

type Benchmark struct {
	models.Benchmark
}

func NewBenchmark() *Benchmark {
	return &Benchmark{}
}

func (f *Benchmark) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.IntVar(&f.NumIters, "num_iters",
		10,
		"Number of timed iterations to run.\n"+
			"Default: 10.")
	flagSet.IntVar(&f.Warmup, "warmup",
		0,
		"Number of untimed warmup iterations to run before measuring.\n"+
			"Default: 0.")

	return flagSet
}

func (f *Benchmark) GetBenchmark() *models.Benchmark {
	return &f.Benchmark
}
