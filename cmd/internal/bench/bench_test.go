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
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aerospike/s3bench-go"
	"github.com/aerospike/s3bench-go/cmd/internal/config"
	"github.com/aerospike/s3bench-go/cmd/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `bucket: test-bucket
endpoint: http://localhost:9000
access_key_id: minioadmin
secret_access_key: minioadmin
`
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestNewService(t *testing.T) {
	t.Parallel()

	params := &config.BenchmarkParams{
		App: &models.App{},
		Benchmark: &models.Benchmark{
			ConfigFile: writeTestConfig(t),
			Operation:  "list_all",
			NumIters:   3,
			Warmup:     1,
		},
	}

	service, err := NewService(context.Background(), params, testLogger())
	require.NoError(t, err)
	require.NotNil(t, service)

	assert.Equal(t, s3bench.OperationListAll, service.op)
	assert.Equal(t, "test-bucket", service.config.Bucket)
	assert.Equal(t, s3bench.DefaultRegion, service.config.Region)
	assert.NotNil(t, service.runner)
}

func TestNewServiceUnknownOperationSkipsConfig(t *testing.T) {
	t.Parallel()

	// The config path does not exist: an unknown operation must be
	// rejected before the file is ever touched.
	params := &config.BenchmarkParams{
		App: &models.App{},
		Benchmark: &models.Benchmark{
			ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"),
			Operation:  "delete_all",
			NumIters:   3,
		},
	}

	service, err := NewService(context.Background(), params, testLogger())
	require.Error(t, err)
	require.Nil(t, service)

	assert.ErrorIs(t, err, s3bench.ErrUnknownOperation)
	assert.NotContains(t, err.Error(), "config file")
}

func TestNewServiceInvalidIterations(t *testing.T) {
	t.Parallel()

	params := &config.BenchmarkParams{
		App: &models.App{},
		Benchmark: &models.Benchmark{
			ConfigFile: writeTestConfig(t),
			Operation:  "list_all",
			NumIters:   0,
		},
	}

	service, err := NewService(context.Background(), params, testLogger())
	require.Error(t, err)
	require.Nil(t, service)

	assert.ErrorContains(t, err, "number of iterations must be positive")
}

func TestNewServiceMissingConfigFile(t *testing.T) {
	t.Parallel()

	params := &config.BenchmarkParams{
		App: &models.App{},
		Benchmark: &models.Benchmark{
			ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"),
			Operation:  "list_all",
			NumIters:   3,
		},
	}

	service, err := NewService(context.Background(), params, testLogger())
	require.Error(t, err)
	require.Nil(t, service)

	assert.ErrorContains(t, err, "failed to open config file")
}

func TestNewServiceInvalidConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("region: us-east-1\n"), 0o600)
	require.NoError(t, err)

	params := &config.BenchmarkParams{
		App: &models.App{},
		Benchmark: &models.Benchmark{
			ConfigFile: path,
			Operation:  "list_all",
			NumIters:   3,
		},
	}

	service, err := NewService(context.Background(), params, testLogger())
	require.Error(t, err)
	require.Nil(t, service)

	assert.ErrorIs(t, err, s3bench.ErrMissingRequiredField)
}
