/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestNormalizeOperationsStampsDefault(t *testing.T) {
	ops := []WriteOperation{
		{Kind: OperationPut},
		{Kind: OperationUpdate, TableName: "reviews"},
		{Kind: OperationDelete},
	}

	normalized := NormalizeOperations("books", ops)

	if normalized[0].TableName != "books" {
		t.Errorf("Operation 0 should get default table, got %q", normalized[0].TableName)
	}
	if normalized[1].TableName != "reviews" {
		t.Errorf("Operation 1 should keep its own table, got %q", normalized[1].TableName)
	}
	if normalized[2].TableName != "books" {
		t.Errorf("Operation 2 should get default table, got %q", normalized[2].TableName)
	}
}

func TestNormalizeOperationsDoesNotMutateInput(t *testing.T) {
	ops := []WriteOperation{{Kind: OperationPut}}

	NormalizeOperations("books", ops)

	if ops[0].TableName != "" {
		t.Errorf("Input slice was mutated: TableName = %q", ops[0].TableName)
	}
}

func TestNormalizeOperationsEmpty(t *testing.T) {
	normalized := NormalizeOperations("books", nil)
	if len(normalized) != 0 {
		t.Errorf("Expected empty result, got %d operations", len(normalized))
	}
}

func TestPrimaryKeyAttributeValues(t *testing.T) {
	full := PrimaryKey{PartitionKey: "book-1", SortKey: aws.String("review-7")}
	attrs := full.AttributeValues("PK", "SK")

	if len(attrs) != 2 {
		t.Fatalf("Expected 2 key attributes, got %d", len(attrs))
	}
	pk := attrs["PK"].(*types.AttributeValueMemberS)
	sk := attrs["SK"].(*types.AttributeValueMemberS)
	if pk.Value != "book-1" || sk.Value != "review-7" {
		t.Errorf("Key attributes wrong: PK=%q SK=%q", pk.Value, sk.Value)
	}
}

func TestPrimaryKeyWithoutSortKeyOmitsAttribute(t *testing.T) {
	simple := PrimaryKey{PartitionKey: "book-1"}
	attrs := simple.AttributeValues("PK", "SK")

	if len(attrs) != 1 {
		t.Fatalf("Sort attribute must be omitted, not substituted; got %d attributes", len(attrs))
	}
	if _, present := attrs["SK"]; present {
		t.Error("SK must not be present for a key without a sort component")
	}
}
