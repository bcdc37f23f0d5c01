/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"time"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/rekeystore/errors"
	"github.com/suparena/rekeystore/storagemodels"
)

// StreamRelated delivers related items incrementally over a channel instead
// of materializing them, for dependent sets too large to hold at once. The
// channel closes when all pages are exhausted, the context is canceled, or
// a store error occurs; errors arrive as the final StreamResult. Transient
// store errors are not retried, matching the library-wide policy.
func (r *Repository) StreamRelated(ctx context.Context, partitionValue string,
	opts storagemodels.RelatedQueryOptions,
	streamOpts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {

	options := storagemodels.DefaultStreamOptions()
	for _, opt := range streamOpts {
		opt(&options)
	}

	if opts.TableName == "" {
		opts.TableName = r.tableName
	}

	resultCh := make(chan storagemodels.StreamResult, options.BufferSize)
	go r.streamWorker(ctx, partitionValue, opts, options, resultCh)
	return resultCh
}

func (r *Repository) streamWorker(ctx context.Context, partitionValue string,
	opts storagemodels.RelatedQueryOptions, options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult) {

	defer close(resultCh)

	var itemIndex int64
	var pageNumber int
	startTime := time.Now()

	reportProgress := func(lastKey map[string]types.AttributeValue) {
		if options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.StreamProgress{
			ItemsProcessed: itemIndex,
			PagesProcessed: pageNumber,
			LastKey:        lastKey,
			StartTime:      startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
		}
		options.ProgressHandler(progress)
	}

	var exclusiveStartKey map[string]types.AttributeValue
	for {
		items, lastKey, err := r.fetchRelatedPage(ctx, partitionValue, opts, options.PageSize, exclusiveStartKey)
		if err != nil {
			resultCh <- storagemodels.StreamResult{Error: err}
			return
		}
		pageNumber++

		for _, item := range items {
			result := storagemodels.StreamResult{
				Item: item,
				Meta: storagemodels.StreamMeta{
					Index:      itemIndex,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			select {
			case resultCh <- result:
				itemIndex++
			case <-ctx.Done():
				return
			}
		}

		reportProgress(lastKey)

		if lastKey == nil {
			return
		}
		exclusiveStartKey = lastKey
	}
}

// fetchRelatedPage retrieves one page via the index query or the scan
// fallback, mirroring FindRelated's path selection.
func (r *Repository) fetchRelatedPage(ctx context.Context, partitionValue string,
	opts storagemodels.RelatedQueryOptions, pageSize int32,
	exclusiveStartKey map[string]types.AttributeValue,
) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {

	if opts.UseIndex() {
		params, err := r.QueryRelated().
			WithTableName(opts.TableName).
			WithIndexName(opts.IndexName).
			WithReferenceAttribute(opts.ReferenceAttribute).
			WithPartitionValue(partitionValue).
			WithLimit(pageSize).
			Build()
		if err != nil {
			return nil, nil, err
		}
		out, err := r.client.Query(ctx, &sdk.QueryInput{
			TableName:                 &params.TableName,
			IndexName:                 params.IndexName,
			KeyConditionExpression:    &params.KeyConditionExpression,
			ExpressionAttributeNames:  params.ExpressionAttributeNames,
			ExpressionAttributeValues: params.ExpressionAttributeValues,
			Limit:                     params.Limit,
			ExclusiveStartKey:         exclusiveStartKey,
		})
		if err != nil {
			return nil, nil, errors.NewStoreQueryError("query", partitionValue, opts.IndexName, err)
		}
		return out.Items, out.LastEvaluatedKey, nil
	}

	params := r.relatedScanParams(partitionValue, opts)
	out, err := r.client.Scan(ctx, &sdk.ScanInput{
		TableName:                 &params.TableName,
		FilterExpression:          &params.FilterExpression,
		ExpressionAttributeNames:  params.ExpressionAttributeNames,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		Limit:                     &pageSize,
		ExclusiveStartKey:         exclusiveStartKey,
	})
	if err != nil {
		return nil, nil, errors.NewStoreQueryError("scan", partitionValue, "", err)
	}
	return out.Items, out.LastEvaluatedKey, nil
}
