/*
Package errors provides semantic error types for the rekeystore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound            = errors.New("entity not found")
	    ErrInvalidInput        = errors.New("invalid input")
	    ErrEmptyTransaction    = errors.New("transaction contains no operations")
	    ErrTransactionTooLarge = errors.New("transaction exceeds operation limit")
	    ErrStoreQuery          = errors.New("store query failed")
	    ErrDatabaseOperation   = errors.New("database operation failed")
	)

Usage:

	// Check error type
	err := repo.Mutate(ctx, nil)
	if errors.IsEmptyTransaction(err) {
	    // Caller supplied zero operations; nothing was sent to the store.
	}

	// Create typed errors
	err := errors.NewStoreQueryError("scan", "book-1", "", cause)
	err := errors.NewDatabaseOperationError("replacePrimaryKey", cause, map[string]string{
	    "oldKey": "book-1",
	    "newKey": "book-2",
	})

Classification of store failures is kept separate from wrapping: Classify is
a pure function that maps an underlying AWS SDK error to a taxonomy Kind and
performs no logging or other side effects. Boundary layers decide what to do
with the classification.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
