/*
Package datastore defines the core interfaces for rekeystore's data-access layer.

The main interface is Repository, which exposes transactional batch writes
and the cascading primary-key replacement:

	type Repository interface {
	    Get(ctx context.Context, key storagemodels.PrimaryKey) (map[string]types.AttributeValue, error)
	    Mutate(ctx context.Context, ops []storagemodels.WriteOperation) error
	    ReplacePrimaryKey(ctx context.Context, oldKey, newKey storagemodels.PrimaryKey,
	        otherAttributes map[string]types.AttributeValue,
	        cfg storagemodels.ReplaceKeyConfig) (*storagemodels.ReplaceKeyResult, error)
	    FindRelated(ctx context.Context, partitionValue string,
	        opts storagemodels.RelatedQueryOptions) ([]map[string]types.AttributeValue, error)
	    StreamRelated(ctx context.Context, partitionValue string,
	        opts storagemodels.RelatedQueryOptions,
	        streamOpts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult
	}

Implementations:
  - ddb: DynamoDB implementation built on TransactWriteItems
  - mock: in-memory client mock for testing

DynamoDBAPI narrows the AWS SDK client to the calls the ddb implementation
makes, which is what allows tests to substitute a mock without AWS
infrastructure.
*/
package datastore
