/*
Package storagemodels defines the data structures used throughout rekeystore.

Key Types:

PrimaryKey:
Identifies an item within a table. The sort key is optional; keys without
one simply omit the attribute:

	key := storagemodels.PrimaryKey{PartitionKey: "book-1"}
	child := storagemodels.PrimaryKey{
	    PartitionKey: "book-1",
	    SortKey:      aws.String("review-7"),
	}

A PrimaryKey value is never mutated in place; replacing a key produces a new
value.

WriteOperation:
One Put, Update, or Delete inside a transactional batch:

	op := storagemodels.WriteOperation{
	    Kind:      storagemodels.OperationUpdate,
	    TableName: "reviews",
	    Key:       keyAttrs,
	    UpdateExpression: expr.Expression,
	    ExpressionAttributeNames:  expr.Names,
	    ExpressionAttributeValues: expr.Values,
	}

Operations without a TableName are stamped with the repository default by
NormalizeOperations, a pure pass over the batch.

ReplaceKeyConfig / ReplaceKeyResult:
Configuration and outcome of a cascading primary-key replacement. The
post-commit dependent read is best-effort visibility only; its failure is
carried on the result separately from a transaction failure, which would
have prevented any state change at all.

These types provide a consistent interface across storage implementations.
*/
package storagemodels
