/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package expressions

import (
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PlaceholderRegistry maps attribute names and values to unique symbolic
// placeholders for one update-expression construction. Names allocate
// "#attr0", "#attr1", … and values ":value0", ":value1", … in first-seen
// order; repeated inputs reuse their existing placeholder.
//
// The registry is plain bookkeeping with no store interaction. It is not
// safe for concurrent use; each expression construction owns its instance.
type PlaceholderRegistry struct {
	names       []string
	nameIndex   map[string]int
	values      []types.AttributeValue
	valueTokens []string
}

// NewPlaceholderRegistry returns an empty registry.
func NewPlaceholderRegistry() *PlaceholderRegistry {
	return &PlaceholderRegistry{
		nameIndex: make(map[string]int),
	}
}

// Key returns the placeholder for an attribute name, allocating the next
// sequential one on first sight.
func (r *PlaceholderRegistry) Key(name string) string {
	if i, ok := r.nameIndex[name]; ok {
		return namePlaceholder(i)
	}
	i := len(r.names)
	r.names = append(r.names, name)
	r.nameIndex[name] = i
	return namePlaceholder(i)
}

// Value returns the placeholder for an attribute value, allocating the next
// sequential one on first sight. Equality is structural over the
// AttributeValue, so two independently constructed but equal values share a
// placeholder while distinct values never do. The values slice is scanned
// linearly rather than hashed; expressions are small and a lookup bug here
// would silently corrupt updates.
func (r *PlaceholderRegistry) Value(v types.AttributeValue) string {
	for i, existing := range r.values {
		if reflect.DeepEqual(existing, v) {
			return valuePlaceholder(i)
		}
	}
	i := len(r.values)
	r.values = append(r.values, v)
	r.valueTokens = append(r.valueTokens, valuePlaceholder(i))
	return valuePlaceholder(i)
}

// Snapshot returns the placeholder-to-original mappings in the shape the
// store's ExpressionAttributeNames and ExpressionAttributeValues parameters
// expect. Snapshot does not mutate the registry and may be called repeatedly.
func (r *PlaceholderRegistry) Snapshot() (map[string]string, map[string]types.AttributeValue) {
	names := make(map[string]string, len(r.names))
	for i, n := range r.names {
		names[namePlaceholder(i)] = n
	}
	values := make(map[string]types.AttributeValue, len(r.values))
	for i, v := range r.values {
		values[valuePlaceholder(i)] = v
	}
	return names, values
}

func namePlaceholder(i int) string {
	return fmt.Sprintf("#attr%d", i)
}

func valuePlaceholder(i int) string {
	return fmt.Sprintf(":value%d", i)
}
