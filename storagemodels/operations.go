/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// OperationKind discriminates the members of a transactional batch.
type OperationKind string

const (
	OperationPut    OperationKind = "Put"
	OperationUpdate OperationKind = "Update"
	OperationDelete OperationKind = "Delete"
)

// WriteOperation is one Put, Update, or Delete within a transactional batch.
// TableName may be left empty; NormalizeOperations stamps the repository
// default onto such operations before submission. Key is required for
// Update and Delete, Item for Put.
type WriteOperation struct {
	Kind      OperationKind
	TableName string

	Key  map[string]types.AttributeValue
	Item map[string]types.AttributeValue

	UpdateExpression          string
	ExpressionAttributeNames  map[string]string
	ExpressionAttributeValues map[string]types.AttributeValue

	ConditionExpression *string
}

// NormalizeOperations returns a copy of ops in which every operation lacking
// a table name carries defaultTable. Operations that already name a table
// are left untouched, which is what allows a single batch to span tables.
// The input slice is not modified.
func NormalizeOperations(defaultTable string, ops []WriteOperation) []WriteOperation {
	normalized := make([]WriteOperation, len(ops))
	for i, op := range ops {
		if op.TableName == "" {
			op.TableName = defaultTable
		}
		normalized[i] = op
	}
	return normalized
}
