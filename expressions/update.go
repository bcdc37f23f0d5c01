/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package expressions

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// NameValue is one attribute assignment in an update expression. Pairs are
// ordered; callers that need deterministic output pass a slice rather than a
// map.
type NameValue struct {
	Name  string
	Value types.AttributeValue
}

// UpdateExpression is the immutable result of folding attribute pairs
// through a placeholder registry: the SET expression plus the two
// placeholder-to-literal mappings required by the store.
type UpdateExpression struct {
	Expression string
	Names      map[string]string
	Values     map[string]types.AttributeValue
}

// BuildUpdateExpression folds the given pairs, in order, into a SET update
// expression. Each pair emits "<namePlaceholder> = <valuePlaceholder>";
// clauses are joined with ", " and prefixed with "SET". A fresh registry is
// used per call, so placeholders are scoped to the returned expression and
// repeated names or structurally equal values within one call share a
// placeholder.
func BuildUpdateExpression(pairs []NameValue) UpdateExpression {
	reg := NewPlaceholderRegistry()
	clauses := make([]string, 0, len(pairs))
	for _, p := range pairs {
		clauses = append(clauses, reg.Key(p.Name)+" = "+reg.Value(p.Value))
	}
	names, values := reg.Snapshot()
	return UpdateExpression{
		Expression: "SET " + strings.Join(clauses, ", "),
		Names:      names,
		Values:     values,
	}
}
