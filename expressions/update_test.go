/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package expressions

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestBuildUpdateExpressionSinglePair(t *testing.T) {
	expr := BuildUpdateExpression([]NameValue{
		{Name: "ParentId", Value: &types.AttributeValueMemberS{Value: "book-2"}},
	})

	if expr.Expression != "SET #attr0 = :value0" {
		t.Errorf("Expression = %q, want %q", expr.Expression, "SET #attr0 = :value0")
	}
	if expr.Names["#attr0"] != "ParentId" {
		t.Errorf("Names[#attr0] = %q, want ParentId", expr.Names["#attr0"])
	}
	s, ok := expr.Values[":value0"].(*types.AttributeValueMemberS)
	if !ok || s.Value != "book-2" {
		t.Errorf("Values[:value0] = %v, want S book-2", expr.Values[":value0"])
	}
}

func TestBuildUpdateExpressionPreservesInputOrder(t *testing.T) {
	expr := BuildUpdateExpression([]NameValue{
		{Name: "Title", Value: &types.AttributeValueMemberS{Value: "Dune"}},
		{Name: "Pages", Value: &types.AttributeValueMemberN{Value: "412"}},
		{Name: "InPrint", Value: &types.AttributeValueMemberBOOL{Value: true}},
	})

	want := "SET #attr0 = :value0, #attr1 = :value1, #attr2 = :value2"
	if expr.Expression != want {
		t.Errorf("Expression = %q, want %q", expr.Expression, want)
	}
	if expr.Names["#attr0"] != "Title" || expr.Names["#attr1"] != "Pages" || expr.Names["#attr2"] != "InPrint" {
		t.Errorf("Name mapping does not follow input order: %v", expr.Names)
	}
}

func TestBuildUpdateExpressionSharedValue(t *testing.T) {
	// The same literal value in two attributes must reuse one placeholder.
	shared := "2025-08-23T00:00:00Z"
	expr := BuildUpdateExpression([]NameValue{
		{Name: "CreatedAt", Value: &types.AttributeValueMemberS{Value: shared}},
		{Name: "UpdatedAt", Value: &types.AttributeValueMemberS{Value: shared}},
	})

	want := "SET #attr0 = :value0, #attr1 = :value0"
	if expr.Expression != want {
		t.Errorf("Expression = %q, want %q", expr.Expression, want)
	}
	if len(expr.Values) != 1 {
		t.Errorf("Expected a single value mapping, got %d", len(expr.Values))
	}
	if len(expr.Names) != 2 {
		t.Errorf("Expected two name mappings, got %d", len(expr.Names))
	}
}

func TestBuildUpdateExpressionDeterministic(t *testing.T) {
	pairs := []NameValue{
		{Name: "A", Value: &types.AttributeValueMemberN{Value: "1"}},
		{Name: "B", Value: &types.AttributeValueMemberN{Value: "2"}},
	}

	first := BuildUpdateExpression(pairs)
	second := BuildUpdateExpression(pairs)

	if first.Expression != second.Expression {
		t.Errorf("Same input produced %q and %q", first.Expression, second.Expression)
	}
}
