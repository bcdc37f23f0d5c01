/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/rekeystore/errors"
	"github.com/suparena/rekeystore/storagemodels"
)

// maxTransactionOperations is DynamoDB's TransactWriteItems limit. Batches
// above it are rejected before submission; the store would refuse them
// anyway, and failing fast keeps "no partial submit" trivially true.
const maxTransactionOperations = 100

// executeTransaction normalizes the batch onto the repository's default
// table and submits it as one atomic TransactWriteItems call. action names
// the public operation for error reporting; metadata is carried on any
// resulting DatabaseOperationError.
func (r *Repository) executeTransaction(ctx context.Context, action string,
	ops []storagemodels.WriteOperation, metadata map[string]string) error {

	if len(ops) == 0 {
		return errors.NewEmptyTransactionError(action)
	}
	if len(ops) > maxTransactionOperations {
		return errors.NewTransactionTooLargeError(len(ops), maxTransactionOperations)
	}

	normalized := storagemodels.NormalizeOperations(r.tableName, ops)

	items := make([]types.TransactWriteItem, 0, len(normalized))
	for i, op := range normalized {
		item, err := toTransactWriteItem(op)
		if err != nil {
			return errors.NewValidationError(fmt.Sprintf("operations[%d]", i), err.Error())
		}
		items = append(items, item)
	}

	_, err := r.client.TransactWriteItems(ctx, &sdk.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return errors.NewDatabaseOperationError(action, err, metadata)
	}
	return nil
}

// toTransactWriteItem converts a normalized operation into the SDK's
// transact item shape.
func toTransactWriteItem(op storagemodels.WriteOperation) (types.TransactWriteItem, error) {
	switch op.Kind {
	case storagemodels.OperationPut:
		if op.Item == nil {
			return types.TransactWriteItem{}, fmt.Errorf("put operation requires an item")
		}
		return types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(op.TableName),
				Item:                op.Item,
				ConditionExpression: op.ConditionExpression,
			},
		}, nil

	case storagemodels.OperationUpdate:
		if op.Key == nil {
			return types.TransactWriteItem{}, fmt.Errorf("update operation requires a key")
		}
		if op.UpdateExpression == "" {
			return types.TransactWriteItem{}, fmt.Errorf("update operation requires an update expression")
		}
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName:                 aws.String(op.TableName),
				Key:                       op.Key,
				UpdateExpression:          aws.String(op.UpdateExpression),
				ExpressionAttributeNames:  op.ExpressionAttributeNames,
				ExpressionAttributeValues: op.ExpressionAttributeValues,
				ConditionExpression:       op.ConditionExpression,
			},
		}, nil

	case storagemodels.OperationDelete:
		if op.Key == nil {
			return types.TransactWriteItem{}, fmt.Errorf("delete operation requires a key")
		}
		return types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:           aws.String(op.TableName),
				Key:                 op.Key,
				ConditionExpression: op.ConditionExpression,
			},
		}, nil

	default:
		return types.TransactWriteItem{}, fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}
