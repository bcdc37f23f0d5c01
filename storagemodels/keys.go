/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PrimaryKey uniquely identifies an item within a table. SortKey is nil for
// tables with a simple (partition-only) key schema.
type PrimaryKey struct {
	PartitionKey string
	SortKey      *string
}

// HasSortKey reports whether the key carries a sort component.
func (k PrimaryKey) HasSortKey() bool {
	return k.SortKey != nil
}

// AttributeValues renders the key as a DynamoDB key map using the given
// attribute names. The sort attribute is omitted entirely when the key has
// no sort component; no sentinel value is ever substituted.
func (k PrimaryKey) AttributeValues(partitionAttr, sortAttr string) map[string]types.AttributeValue {
	key := map[string]types.AttributeValue{
		partitionAttr: &types.AttributeValueMemberS{Value: k.PartitionKey},
	}
	if k.SortKey != nil {
		key[sortAttr] = &types.AttributeValueMemberS{Value: *k.SortKey}
	}
	return key
}
