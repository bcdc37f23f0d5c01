/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryParams defines parameters for a DynamoDB Query operation.
type QueryParams struct {
	// TableName is the DynamoDB table name.
	TableName string
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionAttributeNames maps name placeholders to attribute names.
	ExpressionAttributeNames map[string]string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit per query page.
	Limit *int32
	// ExclusiveStartKey for pagination
	ExclusiveStartKey map[string]types.AttributeValue
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	// If false, traversal is in descending order.
	ScanIndexForward *bool
}

// ScanParams defines parameters for a DynamoDB Scan operation. Scans are the
// fallback discovery path when no secondary index covers the filtered
// attribute; their cost grows with table size.
type ScanParams struct {
	// TableName is the DynamoDB table name.
	TableName string
	// FilterExpression restricts which items the scan returns.
	FilterExpression string
	// ExpressionAttributeNames maps name placeholders to attribute names.
	ExpressionAttributeNames map[string]string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// Limit defines an optional limit per scan page.
	Limit *int32
	// ExclusiveStartKey for pagination
	ExclusiveStartKey map[string]types.AttributeValue
}

// RelatedQueryOptions selects the discovery path for items referencing a
// partition value.
type RelatedQueryOptions struct {
	// TableName is the table holding the referencing items.
	TableName string
	// ReferenceAttribute is the attribute on referencing items whose value
	// equals the parent's partition key.
	ReferenceAttribute string
	// PreferIndex selects the secondary-index query path when IndexName is
	// also set. This is the bounded-cost path and should be used whenever an
	// index over ReferenceAttribute exists.
	PreferIndex bool
	// IndexName names the secondary index keyed on ReferenceAttribute.
	IndexName string
}

// UseIndex reports whether the index path applies.
func (o RelatedQueryOptions) UseIndex() bool {
	return o.PreferIndex && o.IndexName != ""
}
