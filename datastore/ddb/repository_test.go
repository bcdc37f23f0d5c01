/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/rekeystore/datastore/mock"
	rkerrors "github.com/suparena/rekeystore/errors"
	"github.com/suparena/rekeystore/storagemodels"
)

func seedLibrary(client *mock.Client) {
	client.WithItem("library", bookItem("book-1")).
		WithItem("reviews", reviewItem("review-1", "book-1")).
		WithItem("reviews", reviewItem("review-2", "book-1"))
}

func parentOf(item map[string]types.AttributeValue) string {
	return item["ParentId"].(*types.AttributeValueMemberS).Value
}

func TestReplacePrimaryKeyRepointsAllDependents(t *testing.T) {
	client := mock.NewClient()
	seedLibrary(client)
	repo := newTestRepository(t, client)

	result, err := repo.ReplacePrimaryKey(context.Background(),
		storagemodels.PrimaryKey{PartitionKey: "book-1"},
		storagemodels.PrimaryKey{PartitionKey: "book-2"},
		map[string]types.AttributeValue{
			"Title": &types.AttributeValueMemberS{Value: "Dune"},
		},
		replaceConfig())

	require.NoError(t, err)
	require.NotNil(t, result)

	// Parent record re-keyed
	old, err := repo.Get(context.Background(), storagemodels.PrimaryKey{PartitionKey: "book-1"})
	require.NoError(t, err)
	assert.Nil(t, old, "old parent record must be gone")

	renamed, err := repo.Get(context.Background(), storagemodels.PrimaryKey{PartitionKey: "book-2"})
	require.NoError(t, err)
	require.NotNil(t, renamed)
	assert.Equal(t, "Dune", renamed["Title"].(*types.AttributeValueMemberS).Value)

	// Every dependent repointed: scanning for the new value finds both
	// reviews, scanning for the old value finds none.
	repointed, err := repo.FindRelated(context.Background(), "book-2", storagemodels.RelatedQueryOptions{
		TableName:          "reviews",
		ReferenceAttribute: "ParentId",
	})
	require.NoError(t, err)
	require.Len(t, repointed, 2)
	for _, item := range repointed {
		assert.Equal(t, "book-2", parentOf(item))
	}

	stale, err := repo.FindRelated(context.Background(), "book-1", storagemodels.RelatedQueryOptions{
		TableName:          "reviews",
		ReferenceAttribute: "ParentId",
	})
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestReplacePrimaryKeySynthesizesEntity(t *testing.T) {
	client := mock.NewClient()
	seedLibrary(client)
	repo := newTestRepository(t, client)

	result, err := repo.ReplacePrimaryKey(context.Background(),
		storagemodels.PrimaryKey{PartitionKey: "book-1"},
		storagemodels.PrimaryKey{PartitionKey: "book-2"},
		map[string]types.AttributeValue{
			"Title": &types.AttributeValueMemberS{Value: "Dune"},
			// A stale key attribute in the payload must not win over the new key
			"PK": &types.AttributeValueMemberS{Value: "book-1"},
		},
		replaceConfig())

	require.NoError(t, err)
	assert.Equal(t, "book-2", result.Entity["PK"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "Dune", result.Entity["Title"].(*types.AttributeValueMemberS).Value)
}

func TestReplacePrimaryKeyIsAtomic(t *testing.T) {
	cause := &types.TransactionCanceledException{
		Message: aws.String("canceled"),
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("TransactionConflict")},
		},
	}
	client := mock.NewClient().WithTransactError(cause)
	seedLibrary(client)
	repo := newTestRepository(t, client)

	_, err := repo.ReplacePrimaryKey(context.Background(),
		storagemodels.PrimaryKey{PartitionKey: "book-1"},
		storagemodels.PrimaryKey{PartitionKey: "book-2"},
		nil,
		replaceConfig())

	require.Error(t, err)
	assert.True(t, rkerrors.IsDatabaseOperationError(err))

	var dbErr *rkerrors.DatabaseOperationError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, "replacePrimaryKey", dbErr.Action)
	assert.Equal(t, "book-1", dbErr.Metadata["oldKey"])
	assert.Equal(t, "book-2", dbErr.Metadata["newKey"])

	// Full re-read: everything exactly as before the call.
	parent, err := repo.Get(context.Background(), storagemodels.PrimaryKey{PartitionKey: "book-1"})
	require.NoError(t, err)
	assert.NotNil(t, parent, "parent must be untouched after a failed transaction")

	dependents, err := repo.FindRelated(context.Background(), "book-1", storagemodels.RelatedQueryOptions{
		TableName:          "reviews",
		ReferenceAttribute: "ParentId",
	})
	require.NoError(t, err)
	assert.Len(t, dependents, 2, "dependents must be untouched after a failed transaction")
}

func TestReplacePrimaryKeyZeroDependents(t *testing.T) {
	client := mock.NewClient().WithItem("library", bookItem("book-1"))
	repo := newTestRepository(t, client)

	cfg := replaceConfig()
	cfg.QueryRelatedItems = true

	result, err := repo.ReplacePrimaryKey(context.Background(),
		storagemodels.PrimaryKey{PartitionKey: "book-1"},
		storagemodels.PrimaryKey{PartitionKey: "book-2"},
		nil,
		cfg)

	require.NoError(t, err)
	require.NotNil(t, result.RelatedItems, "related list is present (and empty) when requested")
	assert.Empty(t, result.RelatedItems)
	assert.NoError(t, result.RelatedItemsErr)
}

func TestReplacePrimaryKeyReturnsRelatedItemsWhenRequested(t *testing.T) {
	client := mock.NewClient()
	seedLibrary(client)
	repo := newTestRepository(t, client)

	cfg := replaceConfig()
	cfg.QueryRelatedItems = true

	result, err := repo.ReplacePrimaryKey(context.Background(),
		storagemodels.PrimaryKey{PartitionKey: "book-1"},
		storagemodels.PrimaryKey{PartitionKey: "book-2"},
		nil,
		cfg)

	require.NoError(t, err)
	require.Len(t, result.RelatedItems, 2)
	for _, item := range result.RelatedItems {
		assert.Equal(t, "book-2", parentOf(item))
	}
}

func TestReplacePrimaryKeySkipsRelatedReadByDefault(t *testing.T) {
	client := mock.NewClient()
	seedLibrary(client)
	repo := newTestRepository(t, client)

	scansBefore := client.ScanCalls()
	result, err := repo.ReplacePrimaryKey(context.Background(),
		storagemodels.PrimaryKey{PartitionKey: "book-1"},
		storagemodels.PrimaryKey{PartitionKey: "book-2"},
		nil,
		replaceConfig())

	require.NoError(t, err)
	assert.Nil(t, result.RelatedItems)
	assert.Equal(t, scansBefore+1, client.ScanCalls(), "only the planning scan, no post-commit read")
}

func TestReplacePrimaryKeyPostReadFailureIsDistinct(t *testing.T) {
	client := mock.NewClient()
	seedLibrary(client)
	repo := newTestRepository(t, client)

	cfg := replaceConfig()
	cfg.QueryRelatedItems = true
	// The post-commit read takes the index path when an index is named;
	// failing Query affects only that read, not the planning scan.
	cfg.IndexName = "ParentIdIndex"
	client.WithQueryError(fmt.Errorf("index offline"))

	result, err := repo.ReplacePrimaryKey(context.Background(),
		storagemodels.PrimaryKey{PartitionKey: "book-1"},
		storagemodels.PrimaryKey{PartitionKey: "book-2"},
		nil,
		cfg)

	require.NoError(t, err, "the mutation committed; a failed visibility read must not fail the call")
	require.Error(t, result.RelatedItemsErr)
	assert.True(t, rkerrors.IsStoreQueryError(result.RelatedItemsErr))
	assert.Nil(t, result.RelatedItems)

	// The commit really happened.
	renamed, err := repo.Get(context.Background(), storagemodels.PrimaryKey{PartitionKey: "book-2"})
	require.NoError(t, err)
	assert.NotNil(t, renamed)
}

func TestReplacePrimaryKeyValidatesInput(t *testing.T) {
	client := mock.NewClient()
	repo := newTestRepository(t, client)

	_, err := repo.ReplacePrimaryKey(context.Background(),
		storagemodels.PrimaryKey{},
		storagemodels.PrimaryKey{PartitionKey: "book-2"},
		nil,
		replaceConfig())
	assert.True(t, rkerrors.IsValidationError(err))

	_, err = repo.ReplacePrimaryKey(context.Background(),
		storagemodels.PrimaryKey{PartitionKey: "book-1"},
		storagemodels.PrimaryKey{},
		nil,
		replaceConfig())
	assert.True(t, rkerrors.IsValidationError(err))

	cfg := replaceConfig()
	cfg.ReferenceAttribute = ""
	_, err = repo.ReplacePrimaryKey(context.Background(),
		storagemodels.PrimaryKey{PartitionKey: "book-1"},
		storagemodels.PrimaryKey{PartitionKey: "book-2"},
		nil,
		cfg)
	assert.True(t, rkerrors.IsValidationError(err))

	assert.Equal(t, 0, client.StoreCalls())
}

func TestGetAbsentItemReturnsNil(t *testing.T) {
	client := mock.NewClient()
	repo := newTestRepository(t, client)

	item, err := repo.Get(context.Background(), storagemodels.PrimaryKey{PartitionKey: "missing"})
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestNewRepositoryRequiresTableName(t *testing.T) {
	_, err := NewRepository(mock.NewClient(), Config{})
	assert.True(t, rkerrors.IsValidationError(err))
}

func TestNewRepositoryDefaultsKeyAttributes(t *testing.T) {
	repo, err := NewRepository(mock.NewClient(), Config{TableName: "library"})
	require.NoError(t, err)
	assert.Equal(t, "PK", repo.partitionAttr)
	assert.Equal(t, "SK", repo.sortAttr)
}
