/*
Package registry manages key-schema registration for rekeystore.

A KeySchema describes how a Go entity type is laid out in its DynamoDB
table: the partition and sort key attribute names, the attribute through
which other items reference it, and the secondary index (if any) that
covers that reference attribute.

	registry.RegisterKeySchema[Book](registry.KeySchema{
	    TableName:             "library",
	    PartitionKeyAttribute: "PK",
	    SortKeyAttribute:      "SK",
	    ReferenceAttribute:    "ParentId",
	    ReferenceIndexName:    "ParentIdIndex",
	})

	schema, ok := registry.GetKeySchema[Book]()

The registry is thread-safe and should be populated during initialization,
typically in init() functions or through code generated by the keyschema
processor (see the processor package).
*/
package registry
