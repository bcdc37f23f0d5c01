/*
Package ddb provides the DynamoDB implementation of the Repository interface.

The Repository supports:
  - Atomic multi-item batches via TransactWriteItems (all-or-nothing)
  - Cascading primary-key replacement: the parent's record is re-keyed and
    every item referencing it is repointed in the same transaction
  - Related-item discovery through a secondary index or a full-table scan
  - Incremental (channel-based) delivery of related items

Key Replacement:
A replacement deletes the parent's old record, writes the new one, and
updates each dependent's reference attribute, as one transaction:

	result, err := repo.ReplacePrimaryKey(ctx,
	    storagemodels.PrimaryKey{PartitionKey: "book-1"},
	    storagemodels.PrimaryKey{PartitionKey: "book-2"},
	    attrs,
	    storagemodels.ReplaceKeyConfig{
	        TableName:          "reviews",
	        ReferenceAttribute: "ParentId",
	        QueryRelatedItems:  true,
	    })

Either every write applies or none do; a failed replacement leaves parent
and dependents exactly as they were. The optional post-commit read of
dependents is visibility only and is reported separately when it fails.

Discovery cost:
Cascade planning scans the dependents' table, because the reference
attribute being filtered is not the indexed field. The scan cost grows with
table size; FindRelated takes the bounded secondary-index path whenever the
caller can name an index over the reference attribute.

For usage examples, see the package tests and the bookshelf demo server.
*/
package ddb
