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
	"errors"
	"fmt"
)

// DefaultRegion is used when the configuration does not name a region.
const DefaultRegion = "us-east-1"

// ErrMissingRequiredField is returned by Config.Validate when a mandatory
// configuration field is empty.
var ErrMissingRequiredField = errors.New("missing required field")

// Config describes the storage target of a benchmark run. The command line
// tool decodes it from a YAML file; after validation it is read only.
type Config struct {
	// Bucket is the name of the bucket to operate on. Required.
	Bucket string `yaml:"bucket"`
	// Region is the AWS region of the bucket.
	// Empty means DefaultRegion.
	Region string `yaml:"region"`
	// Prefix restricts operations to keys under this prefix.
	// Empty addresses the whole bucket.
	Prefix string `yaml:"prefix"`
	// Endpoint is an alternative S3 compatible endpoint, e.g. a MinIO
	// server. Empty means the default AWS endpoint resolution.
	Endpoint string `yaml:"endpoint"`
	// Profile is the name of a shared credentials profile to load.
	Profile string `yaml:"profile"`
	// AccessKeyID and SecretAccessKey configure static credentials.
	// Both must be set together; when empty the default AWS credential
	// chain is used.
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// Validate checks that mandatory fields are set.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	if c.Bucket == "" {
		return fmt.Errorf("%w: bucket", ErrMissingRequiredField)
	}

	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return fmt.Errorf("access_key_id and secret_access_key must be set together")
	}

	return nil
}
