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
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/aerospike/s3bench-go/internal/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client is the main entry point for the s3bench package.
// It binds benchmark operations to one storage target and provides the Do
// method the runner measures.
// Example usage:
//
//	cfg := &s3bench.Config{Bucket: "test-bucket", Endpoint: "http://localhost:9000"}
//
//	client, err := s3bench.NewClient(ctx, cfg, s3bench.WithID("id"))
//	if err != nil {
//		// handle error
//	}
//
//	runner, err := s3bench.NewRunner(client, s3bench.OperationListAll)
//	if err != nil {
//		// handle error
//	}
//
//	stats, err := runner.Run(ctx)
type Client struct {
	// storage is the listing slice of the S3 API, so tests can substitute
	// the client.
	storage s3.ListObjectsV2APIClient
	config  *Config
	logger  *slog.Logger
	id      string
}

// ClientOpt is a functional option that allows configuring the [Client].
type ClientOpt func(*Client)

// WithID sets the ID for the [Client].
// This ID is used for logging purposes.
func WithID(id string) ClientOpt {
	return func(c *Client) {
		c.id = id
	}
}

// WithLogger sets the logger for the [Client].
func WithLogger(logger *slog.Logger) ClientOpt {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new benchmark client for the target described by cfg.
// Credentials resolve through the default AWS chain, narrowed by
// cfg.Profile or static keys when set. SDK retries are disabled so one
// invocation maps to exactly one round of requests, and no probe is sent at
// construction: an unreachable endpoint or a missing bucket surfaces on the
// first operation call.
//
// options:
//   - [WithID] to set an identifier for the client.
//   - [WithLogger] to set a logger that this client will log to.
func NewClient(ctx context.Context, cfg *Config, opts ...ClientOpt) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := &Client{
		config: cfg,
		logger: slog.Default(),
		// #nosec G404
		id: strconv.Itoa(rand.Intn(1000)),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.logger = client.logger.WithGroup("s3bench")
	client.logger = logging.WithClient(client.logger, client.id)

	storage, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client.storage = storage

	client.logger.Debug("created client",
		slog.String("bucket", cfg.Bucket),
		slog.String("region", cfg.region()),
		slog.String("endpoint", cfg.Endpoint),
	)

	return client, nil
}

func newS3Client(ctx context.Context, cfg *Config) (*s3.Client, error) {
	cfgOpts := make([]func(*config.LoadOptions) error, 0)

	// One measured invocation must cost exactly one round of requests.
	cfgOpts = append(cfgOpts,
		config.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	)

	cfgOpts = append(cfgOpts, config.WithRegion(cfg.region()))

	if cfg.Profile != "" {
		cfgOpts = append(cfgOpts, config.WithSharedConfigProfile(cfg.Profile))
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		cfgOpts = append(cfgOpts, config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID: cfg.AccessKeyID, SecretAccessKey: cfg.SecretAccessKey,
			},
		}))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
		}

		o.UsePathStyle = true
	})

	return s3Client, nil
}

// region resolves the effective region of the target.
func (c *Config) region() string {
	if c.Region == "" {
		return DefaultRegion
	}

	return c.Region
}
