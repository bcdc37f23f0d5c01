/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

func TestClassifyNil(t *testing.T) {
	if kind := Classify(nil); kind != KindUnknown {
		t.Errorf("Expected unknown for nil, got %v", kind)
	}
}

func TestClassifyConditionalCheckFailed(t *testing.T) {
	err := &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}
	if kind := Classify(err); kind != KindConditionFailed {
		t.Errorf("Expected condition_failed, got %v", kind)
	}
}

func TestClassifyTransactionConflict(t *testing.T) {
	err := &types.TransactionConflictException{Message: aws.String("conflict")}
	if kind := Classify(err); kind != KindConflict {
		t.Errorf("Expected conflict, got %v", kind)
	}
}

func TestClassifyThroughputExceeded(t *testing.T) {
	err := &types.ProvisionedThroughputExceededException{Message: aws.String("slow down")}
	if kind := Classify(err); kind != KindCapacity {
		t.Errorf("Expected capacity, got %v", kind)
	}
}

func TestClassifyValidationException(t *testing.T) {
	err := &smithy.GenericAPIError{Code: "ValidationException", Message: "too many operations"}
	if kind := Classify(err); kind != KindValidation {
		t.Errorf("Expected validation, got %v", kind)
	}
}

func TestClassifyWrappedCause(t *testing.T) {
	cause := &types.TransactionConflictException{Message: aws.String("conflict")}
	wrapped := fmt.Errorf("commit failed: %w", cause)
	if kind := Classify(wrapped); kind != KindConflict {
		t.Errorf("Expected conflict through wrapping, got %v", kind)
	}
}

func TestClassifyCancellationReasons(t *testing.T) {
	tests := []struct {
		name    string
		reasons []types.CancellationReason
		want    Kind
	}{
		{
			name: "condition failure wins over conflict",
			reasons: []types.CancellationReason{
				{Code: aws.String("TransactionConflict")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
			want: KindConditionFailed,
		},
		{
			name: "throttling",
			reasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ThrottlingError")},
			},
			want: KindCapacity,
		},
		{
			name: "oversized item",
			reasons: []types.CancellationReason{
				{Code: aws.String("ItemSizeTooLarge")},
			},
			want: KindValidation,
		},
		{
			name:    "no reasons defaults to conflict",
			reasons: nil,
			want:    KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &types.TransactionCanceledException{
				Message:             aws.String("canceled"),
				CancellationReasons: tt.reasons,
			}
			if kind := Classify(err); kind != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, kind)
			}
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	if kind := Classify(fmt.Errorf("dial tcp: timeout")); kind != KindUnknown {
		t.Errorf("Expected unknown, got %v", kind)
	}
}
