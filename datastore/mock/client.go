/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/rekeystore/datastore"
)

// Client is an in-memory implementation of datastore.DynamoDBAPI for
// testing. Items are stored per table and keyed by their PK/SK attributes.
type Client struct {
	mu sync.Mutex

	partitionAttr string
	sortAttr      string

	tables map[string]map[string]map[string]types.AttributeValue

	getErr      error
	queryErr    error
	scanErr     error
	transactErr error

	scanPageSize int

	getCalls      int
	queryCalls    int
	scanCalls     int
	transactCalls int
}

var _ datastore.DynamoDBAPI = (*Client)(nil)

// NewClient creates an empty mock client keyed on "PK"/"SK".
func NewClient() *Client {
	return &Client{
		partitionAttr: "PK",
		sortAttr:      "SK",
		tables:        make(map[string]map[string]map[string]types.AttributeValue),
	}
}

// WithKeyAttributes overrides the attribute names items are keyed by.
func (c *Client) WithKeyAttributes(partitionAttr, sortAttr string) *Client {
	c.partitionAttr = partitionAttr
	c.sortAttr = sortAttr
	return c
}

// WithItem seeds an item into a table.
func (c *Client) WithItem(table string, item map[string]types.AttributeValue) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(table, item)
	return c
}

// WithGetError makes GetItem fail.
func (c *Client) WithGetError(err error) *Client {
	c.getErr = err
	return c
}

// WithQueryError makes Query fail.
func (c *Client) WithQueryError(err error) *Client {
	c.queryErr = err
	return c
}

// WithScanError makes Scan fail.
func (c *Client) WithScanError(err error) *Client {
	c.scanErr = err
	return c
}

// WithTransactError makes TransactWriteItems fail without applying any
// operation, mirroring the store's all-or-nothing rejection.
func (c *Client) WithTransactError(err error) *Client {
	c.transactErr = err
	return c
}

// WithScanPageSize forces Scan to paginate with the given page size so tests
// can exercise multi-page materialization.
func (c *Client) WithScanPageSize(n int) *Client {
	c.scanPageSize = n
	return c
}

// Call counters

func (c *Client) GetCalls() int      { c.mu.Lock(); defer c.mu.Unlock(); return c.getCalls }
func (c *Client) QueryCalls() int    { c.mu.Lock(); defer c.mu.Unlock(); return c.queryCalls }
func (c *Client) ScanCalls() int     { c.mu.Lock(); defer c.mu.Unlock(); return c.scanCalls }
func (c *Client) TransactCalls() int { c.mu.Lock(); defer c.mu.Unlock(); return c.transactCalls }

// StoreCalls is the total number of store interactions of any kind.
func (c *Client) StoreCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getCalls + c.queryCalls + c.scanCalls + c.transactCalls
}

// Items returns a snapshot of a table's items in deterministic key order.
func (c *Client) Items(table string) []map[string]types.AttributeValue {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.tables[table]))
	for k := range c.tables[table] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, k := range keys {
		items = append(items, c.tables[table][k])
	}
	return items
}

// GetItem implements datastore.DynamoDBAPI.
func (c *Client) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getCalls++

	if c.getErr != nil {
		return nil, c.getErr
	}
	item := c.tables[*params.TableName][c.keyString(params.Key)]
	return &sdk.GetItemOutput{Item: item}, nil
}

// Query implements datastore.DynamoDBAPI. Only the single-equality key
// condition the library generates is evaluated.
func (c *Client) Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queryCalls++

	if c.queryErr != nil {
		return nil, c.queryErr
	}

	attr, want, err := resolveEquality(*params.KeyConditionExpression,
		params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}

	var items []map[string]types.AttributeValue
	for _, key := range c.sortedKeys(*params.TableName) {
		item := c.tables[*params.TableName][key]
		if reflect.DeepEqual(item[attr], want) {
			items = append(items, item)
		}
	}
	return &sdk.QueryOutput{Items: items}, nil
}

// Scan implements datastore.DynamoDBAPI, honoring the configured page size.
func (c *Client) Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scanCalls++

	if c.scanErr != nil {
		return nil, c.scanErr
	}

	attr, want, err := resolveEquality(*params.FilterExpression,
		params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}

	keys := c.sortedKeys(*params.TableName)

	start := 0
	if params.ExclusiveStartKey != nil {
		marker := c.keyString(params.ExclusiveStartKey)
		for i, k := range keys {
			if k == marker {
				start = i + 1
				break
			}
		}
	}

	end := len(keys)
	if c.scanPageSize > 0 && start+c.scanPageSize < end {
		end = start + c.scanPageSize
	}

	out := &sdk.ScanOutput{}
	for _, k := range keys[start:end] {
		item := c.tables[*params.TableName][k]
		if reflect.DeepEqual(item[attr], want) {
			out.Items = append(out.Items, item)
		}
	}
	if end < len(keys) {
		lastItem := c.tables[*params.TableName][keys[end-1]]
		out.LastEvaluatedKey = c.itemKey(lastItem)
	}
	return out, nil
}

// TransactWriteItems implements datastore.DynamoDBAPI. An injected error is
// returned before anything is applied; otherwise every operation applies.
func (c *Client) TransactWriteItems(ctx context.Context, params *sdk.TransactWriteItemsInput, optFns ...func(*sdk.Options)) (*sdk.TransactWriteItemsOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transactCalls++

	if c.transactErr != nil {
		return nil, c.transactErr
	}

	for _, item := range params.TransactItems {
		switch {
		case item.Put != nil:
			c.putLocked(*item.Put.TableName, item.Put.Item)
		case item.Delete != nil:
			delete(c.tables[*item.Delete.TableName], c.keyString(item.Delete.Key))
		case item.Update != nil:
			if err := c.applyUpdateLocked(item.Update); err != nil {
				return nil, err
			}
		}
	}
	return &sdk.TransactWriteItemsOutput{}, nil
}

func (c *Client) putLocked(table string, item map[string]types.AttributeValue) {
	if c.tables[table] == nil {
		c.tables[table] = make(map[string]map[string]types.AttributeValue)
	}
	c.tables[table][c.keyString(c.itemKey(item))] = item
}

func (c *Client) applyUpdateLocked(update *types.Update) error {
	table := c.tables[*update.TableName]
	item, ok := table[c.keyString(update.Key)]
	if !ok {
		// Real DynamoDB would upsert; the library only updates discovered
		// items, so a miss here is a test setup bug worth surfacing.
		return fmt.Errorf("mock: update target not found in table %q", *update.TableName)
	}

	assignments, err := parseSetExpression(*update.UpdateExpression,
		update.ExpressionAttributeNames, update.ExpressionAttributeValues)
	if err != nil {
		return err
	}
	for attr, value := range assignments {
		item[attr] = value
	}
	return nil
}

func (c *Client) itemKey(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	key := map[string]types.AttributeValue{}
	if v, ok := item[c.partitionAttr]; ok {
		key[c.partitionAttr] = v
	}
	if v, ok := item[c.sortAttr]; ok {
		key[c.sortAttr] = v
	}
	return key
}

func (c *Client) keyString(key map[string]types.AttributeValue) string {
	var pk, sk string
	if v, ok := key[c.partitionAttr].(*types.AttributeValueMemberS); ok {
		pk = v.Value
	}
	if v, ok := key[c.sortAttr].(*types.AttributeValueMemberS); ok {
		sk = v.Value
	}
	return pk + "\x00" + sk
}

func (c *Client) sortedKeys(table string) []string {
	keys := make([]string, 0, len(c.tables[table]))
	for k := range c.tables[table] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// resolveEquality evaluates a "#name = :value" expression against the
// placeholder maps, returning the literal attribute name and value.
func resolveEquality(expr string, names map[string]string,
	values map[string]types.AttributeValue) (string, types.AttributeValue, error) {

	parts := strings.Split(expr, " = ")
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("mock: unsupported expression %q", expr)
	}
	attr, ok := names[strings.TrimSpace(parts[0])]
	if !ok {
		return "", nil, fmt.Errorf("mock: unresolved name placeholder in %q", expr)
	}
	value, ok := values[strings.TrimSpace(parts[1])]
	if !ok {
		return "", nil, fmt.Errorf("mock: unresolved value placeholder in %q", expr)
	}
	return attr, value, nil
}

// parseSetExpression evaluates a "SET #a = :v, ..." expression into literal
// attribute assignments.
func parseSetExpression(expr string, names map[string]string,
	values map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {

	const prefix = "SET "
	if !strings.HasPrefix(expr, prefix) {
		return nil, fmt.Errorf("mock: unsupported update expression %q", expr)
	}

	assignments := make(map[string]types.AttributeValue)
	for _, clause := range strings.Split(strings.TrimPrefix(expr, prefix), ", ") {
		attr, value, err := resolveEquality(clause, names, values)
		if err != nil {
			return nil, err
		}
		assignments[attr] = value
	}
	return assignments, nil
}
