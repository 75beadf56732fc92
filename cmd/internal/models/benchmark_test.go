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
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testConfigFile = "config.yaml"
	testOperation  = "list_all"
)

func TestValidateBenchmark(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		benchmark   *Benchmark
		wantErr     bool
		expectedErr string
	}{
		{
			name:      "Nil benchmark",
			benchmark: nil,
			wantErr:   false,
		},
		{
			name: "Valid benchmark",
			benchmark: &Benchmark{
				ConfigFile: testConfigFile,
				Operation:  testOperation,
				NumIters:   10,
			},
			wantErr: false,
		},
		{
			name: "Valid benchmark with warmup",
			benchmark: &Benchmark{
				ConfigFile: testConfigFile,
				Operation:  testOperation,
				NumIters:   1,
				Warmup:     2,
			},
			wantErr: false,
		},
		{
			name: "Missing config file",
			benchmark: &Benchmark{
				Operation: testOperation,
				NumIters:  10,
			},
			wantErr:     true,
			expectedErr: "config file is required",
		},
		{
			name: "Zero iterations",
			benchmark: &Benchmark{
				ConfigFile: testConfigFile,
				Operation:  testOperation,
				NumIters:   0,
			},
			wantErr:     true,
			expectedErr: "number of iterations must be positive, got 0",
		},
		{
			name: "Negative iterations",
			benchmark: &Benchmark{
				ConfigFile: testConfigFile,
				Operation:  testOperation,
				NumIters:   -5,
			},
			wantErr:     true,
			expectedErr: "number of iterations must be positive, got -5",
		},
		{
			name: "Negative warmup",
			benchmark: &Benchmark{
				ConfigFile: testConfigFile,
				Operation:  testOperation,
				NumIters:   10,
				Warmup:     -1,
			},
			wantErr:     true,
			expectedErr: "warmup must be non-negative, got -1",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.benchmark.Validate()
			if tt.wantErr {
				assert.Error(t, err, "Expected error but got none")
				assert.Equal(t, tt.expectedErr, err.Error())
			} else {
				assert.NoError(t, err, "Expected no error but got one")
			}
		})
	}
}
