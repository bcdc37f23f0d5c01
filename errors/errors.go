/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyTransaction is returned when a transactional call carries zero operations
	ErrEmptyTransaction = errors.New("transaction contains no operations")

	// ErrTransactionTooLarge is returned when a batch exceeds the store's
	// per-transaction operation limit
	ErrTransactionTooLarge = errors.New("transaction exceeds operation limit")

	// ErrStoreQuery is returned when a query or scan against the store fails
	ErrStoreQuery = errors.New("store query failed")

	// ErrDatabaseOperation is returned when an atomic commit is rejected by the store
	ErrDatabaseOperation = errors.New("database operation failed")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// EmptyTransactionError represents a transactional call with no operations.
// It is surfaced before any store interaction takes place.
type EmptyTransactionError struct {
	Action string
}

func (e *EmptyTransactionError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s called with no operations", e.Action)
	}
	return "transaction contains no operations"
}

func (e *EmptyTransactionError) Is(target error) bool {
	return target == ErrEmptyTransaction
}

// TransactionTooLargeError represents a batch that exceeds the store's
// per-transaction operation limit. Like EmptyTransactionError it is raised
// before any store interaction, never after a partial submit.
type TransactionTooLargeError struct {
	Count int
	Limit int
}

func (e *TransactionTooLargeError) Error() string {
	return fmt.Sprintf("transaction has %d operations, store limit is %d", e.Count, e.Limit)
}

func (e *TransactionTooLargeError) Is(target error) bool {
	return target == ErrTransactionTooLarge
}

// StoreQueryError represents a failed query or scan against the store.
// It carries the operation name and the query parameters for diagnostics;
// the underlying cause is preserved for unwrapping.
type StoreQueryError struct {
	Operation      string
	PartitionValue string
	IndexName      string
	Cause          error
}

func (e *StoreQueryError) Error() string {
	if e.IndexName != "" {
		return fmt.Sprintf("%s for partition value %q on index %q failed: %v",
			e.Operation, e.PartitionValue, e.IndexName, e.Cause)
	}
	return fmt.Sprintf("%s for partition value %q failed: %v", e.Operation, e.PartitionValue, e.Cause)
}

func (e *StoreQueryError) Is(target error) bool {
	return target == ErrStoreQuery
}

func (e *StoreQueryError) Unwrap() error {
	return e.Cause
}

// DatabaseOperationError represents a rejected atomic commit. Action names
// the repository operation that submitted the batch ("mutate",
// "replacePrimaryKey"); Metadata carries caller-supplied context such as the
// old and new keys involved.
type DatabaseOperationError struct {
	Action   string
	Kind     Kind
	Metadata map[string]string
	Cause    error
}

func (e *DatabaseOperationError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Action, e.Kind, e.Cause)
}

func (e *DatabaseOperationError) Is(target error) bool {
	return target == ErrDatabaseOperation
}

func (e *DatabaseOperationError) Unwrap() error {
	return e.Cause
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewEmptyTransactionError creates a new EmptyTransactionError
func NewEmptyTransactionError(action string) error {
	return &EmptyTransactionError{Action: action}
}

// NewTransactionTooLargeError creates a new TransactionTooLargeError
func NewTransactionTooLargeError(count, limit int) error {
	return &TransactionTooLargeError{Count: count, Limit: limit}
}

// NewStoreQueryError creates a new StoreQueryError
func NewStoreQueryError(operation, partitionValue, indexName string, cause error) error {
	return &StoreQueryError{
		Operation:      operation,
		PartitionValue: partitionValue,
		IndexName:      indexName,
		Cause:          cause,
	}
}

// NewDatabaseOperationError creates a new DatabaseOperationError. The
// underlying cause is classified into a taxonomy Kind at construction time.
func NewDatabaseOperationError(action string, cause error, metadata map[string]string) error {
	return &DatabaseOperationError{
		Action:   action,
		Kind:     Classify(cause),
		Metadata: metadata,
		Cause:    cause,
	}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsEmptyTransaction checks if an error is an empty transaction error
func IsEmptyTransaction(err error) bool {
	return errors.Is(err, ErrEmptyTransaction)
}

// IsTransactionTooLarge checks if an error is a transaction size limit error
func IsTransactionTooLarge(err error) bool {
	return errors.Is(err, ErrTransactionTooLarge)
}

// IsStoreQueryError checks if an error is a store query error
func IsStoreQueryError(err error) bool {
	return errors.Is(err, ErrStoreQuery)
}

// IsDatabaseOperationError checks if an error is a database operation error
func IsDatabaseOperationError(err error) bool {
	return errors.Is(err, ErrDatabaseOperation)
}
