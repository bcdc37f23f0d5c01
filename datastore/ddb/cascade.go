/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/rekeystore/expressions"
	"github.com/suparena/rekeystore/storagemodels"
)

// planCascade discovers every item referencing oldKey's partition key and
// builds one update operation per dependent, repointing its reference
// attribute to newKey's partition key.
//
// Discovery always takes the scan path: the dependents' reference attribute
// is the field being filtered, and it is not what the parent's index is
// keyed on. The emitted operations follow the order the scan returned
// dependents in, which only matters for reproducibility; the batch commits
// all-or-nothing regardless.
func (r *Repository) planCascade(ctx context.Context, oldKey, newKey storagemodels.PrimaryKey,
	cfg storagemodels.ReplaceKeyConfig) ([]storagemodels.WriteOperation, error) {

	dependents, err := r.FindRelated(ctx, oldKey.PartitionKey, storagemodels.RelatedQueryOptions{
		TableName:          cfg.TableName,
		ReferenceAttribute: cfg.ReferenceAttribute,
	})
	if err != nil {
		return nil, err
	}

	ops := make([]storagemodels.WriteOperation, 0, len(dependents))
	for _, dep := range dependents {
		expr := expressions.BuildUpdateExpression([]expressions.NameValue{
			{
				Name:  cfg.ReferenceAttribute,
				Value: &types.AttributeValueMemberS{Value: newKey.PartitionKey},
			},
		})

		ops = append(ops, storagemodels.WriteOperation{
			Kind:                      storagemodels.OperationUpdate,
			TableName:                 cfg.TableName,
			Key:                       r.dependentKey(dep),
			UpdateExpression:          expr.Expression,
			ExpressionAttributeNames:  expr.Names,
			ExpressionAttributeValues: expr.Values,
		})
	}
	return ops, nil
}

// dependentKey extracts a dependent's own primary key from its attributes.
// A dependent stored without a sort key yields a partition-only key map;
// the sort attribute is never filled with a sentinel.
func (r *Repository) dependentKey(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	key := make(map[string]types.AttributeValue, 2)
	if pk, ok := item[r.partitionAttr]; ok {
		key[r.partitionAttr] = pk
	}
	if sk, ok := item[r.sortAttr]; ok {
		key[r.sortAttr] = sk
	}
	return key
}
