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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBenchmark_NewFlagSet(t *testing.T) {
	t.Parallel()

	benchmark := NewBenchmark()

	flagSet := benchmark.NewFlagSet()

	args := []string{
		"--num_iters", "25",
		"--warmup", "3",
	}

	err := flagSet.Parse(args)
	assert.NoError(t, err)

	result := benchmark.GetBenchmark()

	assert.Equal(t, 25, result.NumIters, "The num_iters flag should be parsed correctly")
	assert.Equal(t, 3, result.Warmup, "The warmup flag should be parsed correctly")
}

func TestBenchmark_NewFlagSet_DefaultValues(t *testing.T) {
	t.Parallel()

	benchmark := NewBenchmark()

	flagSet := benchmark.NewFlagSet()

	err := flagSet.Parse([]string{})
	assert.NoError(t, err)

	result := benchmark.GetBenchmark()

	assert.Equal(t, 10, result.NumIters, "The default num_iters should be 10")
	assert.Equal(t, 0, result.Warmup, "The default warmup should be 0")
}
