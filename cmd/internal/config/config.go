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

package config

import (
	"fmt"
	"os"

	"github.com/aerospike/s3bench-go"
	"gopkg.in/yaml.v3"
)

// Load reads the benchmark target configuration from a YAML file.
// Unknown keys and mismatched types surface as decode errors, a missing
// bucket as a validation error. The region default is applied here, so
// everything downstream sees a fully resolved config.
func Load(filename string) (*s3bench.Config, error) {
	var cfg s3bench.Config
	if err := decodeFromFile(filename, &cfg); err != nil {
		return nil, err
	}

	if cfg.Region == "" {
		cfg.Region = s3bench.DefaultRegion
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}

	return &cfg, nil
}

// decodeFromFile decode yaml to params.
func decodeFromFile(filename string, params any) error {
	if filename == "" {
		return fmt.Errorf("config path is empty")
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", filename, err)
	}
	defer file.Close()

	yamlDec := yaml.NewDecoder(file)
	yamlDec.KnownFields(true)

	if err := yamlDec.Decode(params); err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", filename, err)
	}

	return nil
}
