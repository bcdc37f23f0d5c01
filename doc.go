/*
Package rekeystore provides a transactional data-access layer over DynamoDB
whose centerpiece is atomic primary-key replacement with referential
cascading.

DynamoDB cannot change an item's primary key in place, and it enforces no
referential integrity between items. Renaming an entity that other items
point at therefore requires deleting the old record, writing the new one,
and repointing every referencing item in one all-or-nothing transaction,
so that readers never observe a half-renamed graph. That protocol, together with the placeholder bookkeeping needed to
build safe update expressions for arbitrary attribute sets, is what this
library implements.

Basic Usage:

	client, _ := ddb.NewDynamoDBClient(accessKey, secretKey, region)
	repo, _ := ddb.NewRepository(client, ddb.Config{TableName: "library"})

	result, err := repo.ReplacePrimaryKey(ctx,
	    storagemodels.PrimaryKey{PartitionKey: "book-1"},
	    storagemodels.PrimaryKey{PartitionKey: "book-2"},
	    attrs,
	    storagemodels.ReplaceKeyConfig{
	        TableName:          "reviews",
	        ReferenceAttribute: "ParentId",
	        QueryRelatedItems:  true,
	    })

Multiple repositories can be managed through a RepositoryManager:

	manager := rekeystore.NewRepositoryManager()
	rekeystore.Register(manager, "library", repo)
	repo, _ := rekeystore.Get(manager, "library")

Key packages:
  - expressions: collision-free placeholder registry and update-expression builder
  - datastore/ddb: the DynamoDB repository implementation
  - datastore/mock: in-memory client double for tests
  - registry: key-schema registration per entity type
  - processor: code generation from OpenAPI x-dynamodb-keyschema extensions

For more information, see the documentation at https://github.com/suparena/rekeystore
*/
package rekeystore
