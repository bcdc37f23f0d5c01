/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/rekeystore/errors"
	"github.com/suparena/rekeystore/expressions"
	"github.com/suparena/rekeystore/storagemodels"
)

// FindRelated returns every item whose reference attribute equals
// partitionValue. With opts.PreferIndex and an index name it issues a
// bounded-cost Query against the secondary index; otherwise it falls back
// to a full-table Scan, whose cost grows with table size. Both paths
// paginate to completion and fully materialize their results; item order is
// whatever the store returned and callers must not depend on it matching
// between paths.
func (r *Repository) FindRelated(ctx context.Context, partitionValue string,
	opts storagemodels.RelatedQueryOptions) ([]map[string]types.AttributeValue, error) {

	if opts.TableName == "" {
		opts.TableName = r.tableName
	}
	if opts.UseIndex() {
		return r.findRelatedByIndex(ctx, partitionValue, opts)
	}
	return r.findRelatedByScan(ctx, partitionValue, opts)
}

func (r *Repository) findRelatedByIndex(ctx context.Context, partitionValue string,
	opts storagemodels.RelatedQueryOptions) ([]map[string]types.AttributeValue, error) {

	params, err := r.QueryRelated().
		WithTableName(opts.TableName).
		WithIndexName(opts.IndexName).
		WithReferenceAttribute(opts.ReferenceAttribute).
		WithPartitionValue(partitionValue).
		Build()
	if err != nil {
		return nil, err
	}

	var items []map[string]types.AttributeValue
	for {
		out, err := r.client.Query(ctx, &sdk.QueryInput{
			TableName:                 &params.TableName,
			IndexName:                 params.IndexName,
			KeyConditionExpression:    &params.KeyConditionExpression,
			ExpressionAttributeNames:  params.ExpressionAttributeNames,
			ExpressionAttributeValues: params.ExpressionAttributeValues,
			Limit:                     params.Limit,
			ExclusiveStartKey:         params.ExclusiveStartKey,
		})
		if err != nil {
			return nil, errors.NewStoreQueryError("query", partitionValue, opts.IndexName, err)
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		params.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *Repository) findRelatedByScan(ctx context.Context, partitionValue string,
	opts storagemodels.RelatedQueryOptions) ([]map[string]types.AttributeValue, error) {

	params := r.relatedScanParams(partitionValue, opts)

	var items []map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &sdk.ScanInput{
			TableName:                 &params.TableName,
			FilterExpression:          &params.FilterExpression,
			ExpressionAttributeNames:  params.ExpressionAttributeNames,
			ExpressionAttributeValues: params.ExpressionAttributeValues,
			Limit:                     params.Limit,
			ExclusiveStartKey:         params.ExclusiveStartKey,
		})
		if err != nil {
			return nil, errors.NewStoreQueryError("scan", partitionValue, "", err)
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		params.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// relatedScanParams builds the fallback scan over the reference attribute.
func (r *Repository) relatedScanParams(partitionValue string,
	opts storagemodels.RelatedQueryOptions) storagemodels.ScanParams {

	reg := expressions.NewPlaceholderRegistry()
	expr := reg.Key(opts.ReferenceAttribute) + " = " +
		reg.Value(&types.AttributeValueMemberS{Value: partitionValue})
	names, values := reg.Snapshot()

	return storagemodels.ScanParams{
		TableName:                 opts.TableName,
		FilterExpression:          expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
}

// RelatedQueryBuilder provides a fluent interface for building the
// secondary-index query over a reference attribute.
type RelatedQueryBuilder struct {
	repo           *Repository
	tableName      string
	indexName      string
	refAttribute   string
	partitionValue string
	limit          *int32
}

// QueryRelated creates a new related-item query builder.
func (r *Repository) QueryRelated() *RelatedQueryBuilder {
	return &RelatedQueryBuilder{
		repo:      r,
		tableName: r.tableName,
	}
}

// WithTableName overrides the repository's default table.
func (b *RelatedQueryBuilder) WithTableName(table string) *RelatedQueryBuilder {
	if table != "" {
		b.tableName = table
	}
	return b
}

// WithIndexName sets the secondary index to query.
func (b *RelatedQueryBuilder) WithIndexName(index string) *RelatedQueryBuilder {
	b.indexName = index
	return b
}

// WithReferenceAttribute sets the indexed reference attribute.
func (b *RelatedQueryBuilder) WithReferenceAttribute(attr string) *RelatedQueryBuilder {
	b.refAttribute = attr
	return b
}

// WithPartitionValue sets the value the reference attribute must equal.
func (b *RelatedQueryBuilder) WithPartitionValue(value string) *RelatedQueryBuilder {
	b.partitionValue = value
	return b
}

// WithLimit sets the per-page query limit.
func (b *RelatedQueryBuilder) WithLimit(limit int32) *RelatedQueryBuilder {
	b.limit = aws.Int32(limit)
	return b
}

// Build constructs the final query parameters.
func (b *RelatedQueryBuilder) Build() (*storagemodels.QueryParams, error) {
	if b.indexName == "" {
		return nil, errors.NewValidationError("indexName", "must not be empty")
	}
	if b.refAttribute == "" {
		return nil, errors.NewValidationError("referenceAttribute", "must not be empty")
	}
	if b.partitionValue == "" {
		return nil, errors.NewValidationError("partitionValue", "must not be empty")
	}

	reg := expressions.NewPlaceholderRegistry()
	keyCondition := reg.Key(b.refAttribute) + " = " +
		reg.Value(&types.AttributeValueMemberS{Value: b.partitionValue})
	names, values := reg.Snapshot()

	return &storagemodels.QueryParams{
		TableName:                 b.tableName,
		IndexName:                 aws.String(b.indexName),
		KeyConditionExpression:    keyCondition,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		Limit:                     b.limit,
	}, nil
}
