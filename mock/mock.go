/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a scripted DynamoDB client for testing
package mock

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Client is a scripted stand-in for *dynamodb.Client. Each operation
// delegates to an injected function when one is set and otherwise returns
// an empty success. Calls are counted per method, so tests can assert how
// many round trips an operation took.
type Client struct {
	mu    sync.Mutex
	calls map[string]int

	batchGetFunc   func(ctx context.Context, params *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error)
	batchWriteFunc func(ctx context.Context, params *dynamodb.BatchWriteItemInput) (*dynamodb.BatchWriteItemOutput, error)
	getItemFunc    func(ctx context.Context, params *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItemFunc    func(ctx context.Context, params *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItemFunc func(ctx context.Context, params *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItemFunc func(ctx context.Context, params *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	queryFunc      func(ctx context.Context, params *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scanFunc       func(ctx context.Context, params *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	txGetFunc      func(ctx context.Context, params *dynamodb.TransactGetItemsInput) (*dynamodb.TransactGetItemsOutput, error)
	txWriteFunc    func(ctx context.Context, params *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

// NewClient creates a new scripted client
func NewClient() *Client {
	return &Client{calls: make(map[string]int)}
}

// WithBatchGetFunc sets the BatchGetItem behavior
func (c *Client) WithBatchGetFunc(f func(ctx context.Context, params *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error)) *Client {
	c.batchGetFunc = f
	return c
}

// WithBatchWriteFunc sets the BatchWriteItem behavior
func (c *Client) WithBatchWriteFunc(f func(ctx context.Context, params *dynamodb.BatchWriteItemInput) (*dynamodb.BatchWriteItemOutput, error)) *Client {
	c.batchWriteFunc = f
	return c
}

// WithGetItemFunc sets the GetItem behavior
func (c *Client) WithGetItemFunc(f func(ctx context.Context, params *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)) *Client {
	c.getItemFunc = f
	return c
}

// WithPutItemFunc sets the PutItem behavior
func (c *Client) WithPutItemFunc(f func(ctx context.Context, params *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)) *Client {
	c.putItemFunc = f
	return c
}

// WithUpdateItemFunc sets the UpdateItem behavior
func (c *Client) WithUpdateItemFunc(f func(ctx context.Context, params *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)) *Client {
	c.updateItemFunc = f
	return c
}

// WithDeleteItemFunc sets the DeleteItem behavior
func (c *Client) WithDeleteItemFunc(f func(ctx context.Context, params *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)) *Client {
	c.deleteItemFunc = f
	return c
}

// WithQueryFunc sets the Query behavior
func (c *Client) WithQueryFunc(f func(ctx context.Context, params *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)) *Client {
	c.queryFunc = f
	return c
}

// WithScanFunc sets the Scan behavior
func (c *Client) WithScanFunc(f func(ctx context.Context, params *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)) *Client {
	c.scanFunc = f
	return c
}

// WithTransactGetFunc sets the TransactGetItems behavior
func (c *Client) WithTransactGetFunc(f func(ctx context.Context, params *dynamodb.TransactGetItemsInput) (*dynamodb.TransactGetItemsOutput, error)) *Client {
	c.txGetFunc = f
	return c
}

// WithTransactWriteFunc sets the TransactWriteItems behavior
func (c *Client) WithTransactWriteFunc(f func(ctx context.Context, params *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)) *Client {
	c.txWriteFunc = f
	return c
}

// Calls reports how many times the named method has been invoked
func (c *Client) Calls(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[method]
}

func (c *Client) record(method string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[method]++
}

// BatchGetItem invokes the scripted behavior or returns an empty response
func (c *Client) BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	c.record("BatchGetItem")
	if c.batchGetFunc != nil {
		return c.batchGetFunc(ctx, params)
	}
	return &dynamodb.BatchGetItemOutput{}, nil
}

// BatchWriteItem invokes the scripted behavior or returns an empty response
func (c *Client) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	c.record("BatchWriteItem")
	if c.batchWriteFunc != nil {
		return c.batchWriteFunc(ctx, params)
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

// GetItem invokes the scripted behavior or returns an empty response
func (c *Client) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	c.record("GetItem")
	if c.getItemFunc != nil {
		return c.getItemFunc(ctx, params)
	}
	return &dynamodb.GetItemOutput{}, nil
}

// PutItem invokes the scripted behavior or returns an empty response
func (c *Client) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	c.record("PutItem")
	if c.putItemFunc != nil {
		return c.putItemFunc(ctx, params)
	}
	return &dynamodb.PutItemOutput{}, nil
}

// UpdateItem invokes the scripted behavior or returns an empty response
func (c *Client) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	c.record("UpdateItem")
	if c.updateItemFunc != nil {
		return c.updateItemFunc(ctx, params)
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

// DeleteItem invokes the scripted behavior or returns an empty response
func (c *Client) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	c.record("DeleteItem")
	if c.deleteItemFunc != nil {
		return c.deleteItemFunc(ctx, params)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

// Query invokes the scripted behavior or returns an empty response
func (c *Client) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	c.record("Query")
	if c.queryFunc != nil {
		return c.queryFunc(ctx, params)
	}
	return &dynamodb.QueryOutput{}, nil
}

// Scan invokes the scripted behavior or returns an empty response
func (c *Client) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	c.record("Scan")
	if c.scanFunc != nil {
		return c.scanFunc(ctx, params)
	}
	return &dynamodb.ScanOutput{}, nil
}

// TransactGetItems invokes the scripted behavior or returns an empty response
func (c *Client) TransactGetItems(ctx context.Context, params *dynamodb.TransactGetItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactGetItemsOutput, error) {
	c.record("TransactGetItems")
	if c.txGetFunc != nil {
		return c.txGetFunc(ctx, params)
	}
	return &dynamodb.TransactGetItemsOutput{}, nil
}

// TransactWriteItems invokes the scripted behavior or returns an empty response
func (c *Client) TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	c.record("TransactWriteItems")
	if c.txWriteFunc != nil {
		return c.txWriteFunc(ctx, params)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
