/*
Package expressions builds DynamoDB update expressions with collision-free
symbolic placeholders.

DynamoDB reserves a large set of attribute names and restricts literal values
in expressions, so every attribute name and value is referenced through a
placeholder ("#attr0", ":value0") and resolved through the
ExpressionAttributeNames / ExpressionAttributeValues request parameters.

PlaceholderRegistry allocates those placeholders. Within one registry
instance, equal names and structurally equal values always resolve to the
same placeholder, and distinct ones never collide:

	reg := expressions.NewPlaceholderRegistry()
	n := reg.Key("ParentId")                                      // "#attr0"
	v := reg.Value(&types.AttributeValueMemberS{Value: "book-2"}) // ":value0"
	names, values := reg.Snapshot()

A registry instance is scoped to a single update-expression construction and
discarded afterwards; placeholders from different registries must never be
mixed in one expression.

BuildUpdateExpression is the usual entry point. It folds an ordered list of
name/value pairs into an immutable UpdateExpression record:

	expr := expressions.BuildUpdateExpression([]expressions.NameValue{
	    {Name: "ParentId", Value: &types.AttributeValueMemberS{Value: "book-2"}},
	})
	// expr.Expression == "SET #attr0 = :value0"
*/
package expressions
