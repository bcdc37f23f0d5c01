/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// KeySchema describes the table layout of an entity type: where its primary
// key lives and how other items reference it.
type KeySchema struct {
	// TableName is the table the entity type is stored in.
	TableName string
	// PartitionKeyAttribute is the partition key attribute name (e.g. "PK").
	PartitionKeyAttribute string
	// SortKeyAttribute is the sort key attribute name (e.g. "SK"). Empty
	// for tables with a partition-only key schema.
	SortKeyAttribute string
	// ReferenceAttribute is the attribute other items use to point at this
	// entity's partition key (e.g. "ParentId"). Empty when nothing
	// references the type.
	ReferenceAttribute string
	// ReferenceIndexName is the secondary index keyed on
	// ReferenceAttribute, when one exists.
	ReferenceIndexName string
}

var (
	keySchemaRegistry = make(map[reflect.Type]KeySchema)
	mu                sync.RWMutex
)

// RegisterKeySchema associates a Go type T with its key schema.
func RegisterKeySchema[T any](schema KeySchema) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	keySchemaRegistry[t] = schema
}

// GetKeySchema retrieves the key schema for type T, if any.
func GetKeySchema[T any]() (KeySchema, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	s, ok := keySchemaRegistry[t]
	return s, ok
}
