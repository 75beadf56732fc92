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
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Operation names a storage call pattern the benchmark can measure.
type Operation string

// OperationListAll enumerates every object under the configured bucket and
// prefix in one recursive listing.
const OperationListAll Operation = "list_all"

// ErrUnknownOperation is returned when an operation name does not match any
// supported operation.
var ErrUnknownOperation = errors.New("unknown operation")

// Operations returns the names of all supported operations in sorted order.
func Operations() []string {
	return []string{string(OperationListAll)}
}

// ParseOperation maps a command line argument onto an Operation.
func ParseOperation(name string) (Operation, error) {
	switch Operation(name) {
	case OperationListAll:
		return OperationListAll, nil
	default:
		return "", fmt.Errorf("%w: %q, must be one of: %s",
			ErrUnknownOperation, name, strings.Join(Operations(), ", "))
	}
}

// Do executes a single invocation of op against the configured target.
// Storage errors are returned as is, without retries.
func (c *Client) Do(ctx context.Context, op Operation) error {
	switch op {
	case OperationListAll:
		return c.listAll(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

// listAll walks the listing page by page, following continuation tokens
// until the server reports no more results. Keys are counted and discarded,
// so the measured cost is the listing itself.
func (c *Client) listAll(ctx context.Context) error {
	var continuationToken *string

	var pages, keys int

	for {
		listResponse, err := c.storage.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            &c.config.Bucket,
			Prefix:            &c.config.Prefix,
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return fmt.Errorf("failed to list objects: %w", err)
		}

		pages++
		keys += len(listResponse.Contents)

		continuationToken = listResponse.NextContinuationToken
		if continuationToken == nil {
			break
		}
	}

	c.logger.Debug("listed objects",
		slog.Int("pages", pages),
		slog.Int("keys", keys),
	)

	return nil
}
