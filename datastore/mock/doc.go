/*
Package mock provides an in-memory DynamoDB client double for testing.

Client implements datastore.DynamoDBAPI. It keeps items per table, applies
transactional writes atomically (all operations or, when a failure is
injected, none), evaluates the equality expressions the library generates
for scans and index queries, and counts calls per API so tests can assert
that an operation never reached the store:

	client := mock.NewClient().
	    WithItem("reviews", review1).
	    WithTransactError(&types.TransactionCanceledException{...})

	// ... exercise the repository ...

	if client.TransactCalls() != 0 {
	    t.Error("store must not be contacted")
	}

The expression evaluator understands the "#attrN = :valueN" equality shape
produced by the expressions package and "SET" assignment lists; it is not a
general DynamoDB expression engine.
*/
package mock
