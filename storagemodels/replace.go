/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ReplaceKeyConfig configures a cascading primary-key replacement.
type ReplaceKeyConfig struct {
	// TableName is the table holding the dependent items. Dependents may
	// live in a different table than the parent; operations built for them
	// are stamped with this name.
	TableName string

	// ReferenceAttribute is the attribute on dependents that holds the
	// parent's partition key, e.g. "ParentId" on a review item.
	ReferenceAttribute string

	// QueryRelatedItems requests a post-commit read of the repointed
	// dependents. The read happens after the transaction has committed and
	// is best-effort visibility only; a concurrent writer may alter state
	// between commit and read.
	QueryRelatedItems bool

	// IndexName, when set, lets the post-commit read use the secondary
	// index over ReferenceAttribute instead of a full scan. Cascade
	// planning itself always scans, since the dependents' reference
	// attribute is not the field being searched on the parent's index.
	IndexName string
}

// ReplaceKeyResult is the outcome of a committed primary-key replacement.
type ReplaceKeyResult struct {
	// Entity is the parent's new record: the caller-supplied attributes
	// merged over the new key. It is synthesized client-side, not re-read
	// from the store.
	Entity map[string]types.AttributeValue

	// RelatedItems holds the repointed dependents when
	// ReplaceKeyConfig.QueryRelatedItems was set and the post-commit read
	// succeeded. Nil otherwise.
	RelatedItems []map[string]types.AttributeValue

	// RelatedItemsErr reports a failed post-commit read. The transaction
	// itself committed; this error is deliberately distinct from a
	// transaction failure, which would have left all data untouched.
	RelatedItemsErr error
}
