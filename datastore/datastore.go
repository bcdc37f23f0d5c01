/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/rekeystore/storagemodels"
)

// DynamoDBAPI is the subset of the DynamoDB client the repository consumes.
// The concrete *dynamodb.Client satisfies it; tests substitute a mock.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Repository exposes transactional batch writes and the cascading
// primary-key replacement over one default table, with per-operation
// cross-table support.
type Repository interface {
	// Get fetches a single item, returning nil without error when absent.
	Get(ctx context.Context, key storagemodels.PrimaryKey) (map[string]types.AttributeValue, error)

	// Mutate submits the operations as one atomic transaction. An empty
	// batch is rejected before any store interaction.
	Mutate(ctx context.Context, ops []storagemodels.WriteOperation) error

	// ReplacePrimaryKey atomically replaces the parent's key and repoints
	// every dependent's reference attribute in the same transaction.
	ReplacePrimaryKey(ctx context.Context, oldKey, newKey storagemodels.PrimaryKey,
		otherAttributes map[string]types.AttributeValue,
		cfg storagemodels.ReplaceKeyConfig) (*storagemodels.ReplaceKeyResult, error)

	// FindRelated returns all items whose reference attribute equals
	// partitionValue, via secondary index when available or a full scan
	// otherwise.
	FindRelated(ctx context.Context, partitionValue string,
		opts storagemodels.RelatedQueryOptions) ([]map[string]types.AttributeValue, error)

	// StreamRelated delivers related items incrementally over a channel.
	StreamRelated(ctx context.Context, partitionValue string,
		opts storagemodels.RelatedQueryOptions,
		streamOpts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult
}
