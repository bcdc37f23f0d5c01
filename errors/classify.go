/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// Kind classifies a store failure into a coarse taxonomy. The classification
// carries no behavior of its own; boundary layers map kinds to transport
// responses or log fields.
type Kind string

const (
	// KindConflict covers transaction cancellations caused by concurrent
	// writers (transaction conflicts, TransactionInProgress).
	KindConflict Kind = "conflict"

	// KindConditionFailed covers failed condition expressions.
	KindConditionFailed Kind = "condition_failed"

	// KindCapacity covers throughput and limit rejections.
	KindCapacity Kind = "capacity"

	// KindValidation covers malformed requests rejected by the store,
	// including oversized transaction batches.
	KindValidation Kind = "validation"

	// KindUnknown is everything else, including network failures.
	KindUnknown Kind = "unknown"
)

// Classify maps an underlying store error to a taxonomy Kind. It is a pure
// function: no logging, no wrapping, no retries.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		return classifyCancellation(canceled)
	}

	var conflict *types.TransactionConflictException
	if errors.As(err, &conflict) {
		return KindConflict
	}

	var inProgress *types.TransactionInProgressException
	if errors.As(err, &inProgress) {
		return KindConflict
	}

	var condFailed *types.ConditionalCheckFailedException
	if errors.As(err, &condFailed) {
		return KindConditionFailed
	}

	var throughput *types.ProvisionedThroughputExceededException
	if errors.As(err, &throughput) {
		return KindCapacity
	}

	var limit *types.LimitExceededException
	if errors.As(err, &limit) {
		return KindCapacity
	}

	var requestLimit *types.RequestLimitExceeded
	if errors.As(err, &requestLimit) {
		return KindCapacity
	}

	var api smithy.APIError
	if errors.As(err, &api) && api.ErrorCode() == "ValidationException" {
		return KindValidation
	}

	return KindUnknown
}

// classifyCancellation inspects the per-operation cancellation reasons of a
// canceled transaction. A single batch can be canceled for several reasons at
// once; the first recognized reason wins, with condition failures taking
// precedence over conflicts so that optimistic-locking callers see the right
// kind.
func classifyCancellation(ex *types.TransactionCanceledException) Kind {
	kind := KindConflict
	for _, reason := range ex.CancellationReasons {
		if reason.Code == nil {
			continue
		}
		switch *reason.Code {
		case "ConditionalCheckFailed":
			return KindConditionFailed
		case "TransactionConflict":
			kind = KindConflict
		case "ProvisionedThroughputExceeded", "ThrottlingError":
			kind = KindCapacity
		case "ValidationError", "ItemSizeTooLarge":
			kind = KindValidation
		}
	}
	return kind
}
