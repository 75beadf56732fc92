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

import "fmt"

// Benchmark contains flags that will be mapped to runner options.
type Benchmark struct {
	ConfigFile string
	Operation  string
	NumIters   int
	Warmup     int
}

func (b *Benchmark) Validate() error {
	if b == nil {
		return nil
	}

	if b.ConfigFile == "" {
		return fmt.Errorf("config file is required")
	}

	if b.NumIters < 1 {
		return fmt.Errorf("number of iterations must be positive, got %d", b.NumIters)
	}

	if b.Warmup < 0 {
		return fmt.Errorf("warmup must be non-negative, got %d", b.Warmup)
	}

	return nil
}
