/*
Package processor provides code generation functionality for rekeystore.

The processor reads OpenAPI specifications with vendor extensions and
generates Go code for automatic key-schema registration.

OpenAPI Extension:
The processor looks for the x-dynamodb-keyschema vendor extension:

	Book:
	  type: object
	  x-dynamodb-keyschema:
	    table: library
	    partitionKey: PK
	    sortKey: SK
	    referenceAttribute: ParentId
	    referenceIndex: ParentIdIndex
	  properties:
	    id:
	      type: string

Generated Code:
The processor generates registration code:

	func init() {
	    registry.RegisterKeySchema[Book](registry.KeySchema{
	        TableName:             "library",
	        PartitionKeyAttribute: "PK",
	        SortKeyAttribute:      "SK",
	        ReferenceAttribute:    "ParentId",
	        ReferenceIndexName:    "ParentIdIndex",
	    })
	}

This automation reduces boilerplate and ensures consistency between
the API specification and storage configuration.
*/
package processor
