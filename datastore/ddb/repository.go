/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/rekeystore/datastore"
	"github.com/suparena/rekeystore/errors"
	"github.com/suparena/rekeystore/storagemodels"
)

// Config describes the table a Repository fronts.
type Config struct {
	// TableName is the default table for operations that do not name one.
	TableName string
	// PartitionKeyAttribute is the partition key attribute name.
	// Defaults to "PK".
	PartitionKeyAttribute string
	// SortKeyAttribute is the sort key attribute name. Defaults to "SK".
	SortKeyAttribute string
}

// Repository implements datastore.Repository on DynamoDB. It holds no
// mutable state beyond its configuration; every call is an independent unit
// of work and concurrent calls are not serialized against each other.
type Repository struct {
	client        datastore.DynamoDBAPI
	tableName     string
	partitionAttr string
	sortAttr      string
}

var _ datastore.Repository = (*Repository)(nil)

// NewRepository constructs a Repository over the given client.
func NewRepository(client datastore.DynamoDBAPI, cfg Config) (*Repository, error) {
	if cfg.TableName == "" {
		return nil, errors.NewValidationError("tableName", "must not be empty")
	}
	if cfg.PartitionKeyAttribute == "" {
		cfg.PartitionKeyAttribute = "PK"
	}
	if cfg.SortKeyAttribute == "" {
		cfg.SortKeyAttribute = "SK"
	}
	return &Repository{
		client:        client,
		tableName:     cfg.TableName,
		partitionAttr: cfg.PartitionKeyAttribute,
		sortAttr:      cfg.SortKeyAttribute,
	}, nil
}

// Get fetches a single item by primary key. Absent items return nil, nil.
func (r *Repository) Get(ctx context.Context, key storagemodels.PrimaryKey) (map[string]types.AttributeValue, error) {
	out, err := r.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &r.tableName,
		Key:       key.AttributeValues(r.partitionAttr, r.sortAttr),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return out.Item, nil
}

// Mutate submits the operations as one atomic transaction. Zero operations
// is a caller error surfaced before any store interaction.
func (r *Repository) Mutate(ctx context.Context, ops []storagemodels.WriteOperation) error {
	return r.executeTransaction(ctx, "mutate", ops, nil)
}

// ReplacePrimaryKey atomically replaces the parent's primary key and
// cascades the change to every item referencing it.
//
// The transaction contains the parent's own replacement (a Delete of the
// old record and a Put of otherAttributes merged over the new key) together
// with one Update per dependent repointing cfg.ReferenceAttribute to the
// new partition key. Either all of it commits or none of it does.
//
// When cfg.QueryRelatedItems is set, the repointed dependents are re-read
// after the commit. That read is best-effort visibility: a concurrent
// writer can alter state between commit and read, and its failure is
// carried on the result's RelatedItemsErr rather than failing the call,
// since the mutation has already committed.
func (r *Repository) ReplacePrimaryKey(ctx context.Context, oldKey, newKey storagemodels.PrimaryKey,
	otherAttributes map[string]types.AttributeValue,
	cfg storagemodels.ReplaceKeyConfig) (*storagemodels.ReplaceKeyResult, error) {

	if oldKey.PartitionKey == "" {
		return nil, errors.NewValidationError("oldKey.partitionKey", "must not be empty")
	}
	if newKey.PartitionKey == "" {
		return nil, errors.NewValidationError("newKey.partitionKey", "must not be empty")
	}
	if cfg.ReferenceAttribute == "" {
		return nil, errors.NewValidationError("referenceAttribute", "must not be empty")
	}

	cascadeOps, err := r.planCascade(ctx, oldKey, newKey, cfg)
	if err != nil {
		return nil, err
	}

	newItem := r.synthesizeEntity(newKey, otherAttributes)

	ops := make([]storagemodels.WriteOperation, 0, len(cascadeOps)+2)
	ops = append(ops,
		storagemodels.WriteOperation{
			Kind:      storagemodels.OperationDelete,
			TableName: r.tableName,
			Key:       oldKey.AttributeValues(r.partitionAttr, r.sortAttr),
		},
		storagemodels.WriteOperation{
			Kind:      storagemodels.OperationPut,
			TableName: r.tableName,
			Item:      newItem,
		},
	)
	ops = append(ops, cascadeOps...)

	metadata := map[string]string{
		"oldKey": oldKey.PartitionKey,
		"newKey": newKey.PartitionKey,
	}
	if err := r.executeTransaction(ctx, "replacePrimaryKey", ops, metadata); err != nil {
		return nil, err
	}

	result := &storagemodels.ReplaceKeyResult{Entity: newItem}

	if cfg.QueryRelatedItems {
		related, err := r.FindRelated(ctx, newKey.PartitionKey, storagemodels.RelatedQueryOptions{
			TableName:          cfg.TableName,
			ReferenceAttribute: cfg.ReferenceAttribute,
			PreferIndex:        cfg.IndexName != "",
			IndexName:          cfg.IndexName,
		})
		if err != nil {
			// The transaction has committed; a failed visibility read must
			// not be confused with a failed mutation.
			result.RelatedItemsErr = fmt.Errorf("post-commit related read failed: %w", err)
		} else {
			if related == nil {
				related = []map[string]types.AttributeValue{}
			}
			result.RelatedItems = related
		}
	}

	return result, nil
}

// synthesizeEntity merges the caller-supplied attributes over the new key's
// attributes. Key attributes win over conflicting entries so the stored
// record always matches the requested key.
func (r *Repository) synthesizeEntity(key storagemodels.PrimaryKey,
	otherAttributes map[string]types.AttributeValue) map[string]types.AttributeValue {

	item := make(map[string]types.AttributeValue, len(otherAttributes)+2)
	for k, v := range otherAttributes {
		item[k] = v
	}
	for k, v := range key.AttributeValues(r.partitionAttr, r.sortAttr) {
		item[k] = v
	}
	return item
}
