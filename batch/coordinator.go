/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/singletable/errors"
	"github.com/suparena/singletable/registry"
)

// Facets is a logical key expressed as facet name to value.
type Facets = map[string]string

// Item is a complete logical item payload. Facet values for key composition
// are read from the item's own fields.
type Item = map[string]any

// Result is the envelope every bulk operation resolves with. Data holds the
// accumulated fetched items (reads only; write APIs do not echo successes),
// in no guaranteed order relative to the request. Unprocessed holds whatever
// the store never acknowledged, in the shape the caller supplied it.
type Result[T any] struct {
	Data          []map[string]types.AttributeValue
	Unprocessed   []T
	RetryAttempts int
}

// Coordinator runs bulk operations against one injected store client:
// resolving logical keys, chunking to the store's per-call limits,
// dispatching chunks concurrently, and resubmitting the unprocessed subset
// until done or the retry budget runs out. It holds no per-invocation state
// and is safe for concurrent use.
type Coordinator struct {
	client Client
	reg    *registry.Registry
}

// NewCoordinator wires a coordinator to a store client and a registry.
func NewCoordinator(client Client, reg *registry.Registry) *Coordinator {
	return &Coordinator{client: client, reg: reg}
}

// BatchGet fetches the items for the given logical keys under one access
// pattern. Partial fulfilment by the store is handled by the retry loop; a
// store rejection on any attempt fails the whole call and discards results
// accumulated by earlier attempts of this invocation.
func (c *Coordinator) BatchGet(ctx context.Context, entity, index string, keyList []Facets, opts *Options) (*Result[Facets], error) {
	if len(keyList) == 0 {
		return &Result[Facets]{}, nil
	}

	table, idx, err := c.lookup(entity, index)
	if err != nil {
		return nil, err
	}

	entries := make([]keyEntry, len(keyList))
	for i, facets := range keyList {
		ck, err := c.reg.ResolveKey(entity, index, facets)
		if err != nil {
			return nil, err
		}
		entries[i] = keyEntry{
			attrs:  ck.AttributeValues(),
			id:     entryID(ck.PartitionValue, ck.SortValue),
			source: facets,
		}
	}

	policy := newRetryPolicy(opts)
	policy.begin()
	agg := &getAggregator{}
	pending := entries

	for {
		outs, err := c.dispatchGets(ctx, table, chunk(pending, MaxBatchReadSize))
		if err != nil {
			return nil, err
		}

		byID := make(map[string]keyEntry, len(pending))
		for _, entry := range pending {
			byID[entry.id] = entry
		}
		var unprocessed []keyEntry
		for _, out := range outs {
			unprocessed = append(unprocessed, agg.merge(out, table, byID, idx)...)
		}

		if !policy.observe(len(unprocessed)) {
			result := &Result[Facets]{
				Data:          agg.data,
				RetryAttempts: policy.retryAttempts(),
			}
			for _, entry := range unprocessed {
				result.Unprocessed = append(result.Unprocessed, entry.source)
			}
			return result, nil
		}
		pending = unprocessed
	}
}

// BatchPut writes the given items. The named index supplies the primary key
// attributes; any other index registered for the entity whose facets are
// fully present on an item has its key attributes injected as well, so
// sparse secondary indexes populate naturally.
func (c *Coordinator) BatchPut(ctx context.Context, entity, index string, items []Item, opts *Options) (*Result[Item], error) {
	if len(items) == 0 {
		return &Result[Item]{}, nil
	}

	table, idx, err := c.lookup(entity, index)
	if err != nil {
		return nil, err
	}
	def, _ := c.reg.Entity(entity)

	entries := make([]writeEntry[Item], len(items))
	for i, item := range items {
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return nil, fmt.Errorf("marshal item %d: %w", i, err)
		}

		ck, err := c.reg.ResolveItemKey(entity, index, av)
		if err != nil {
			return nil, err
		}
		av[ck.PartitionAttr] = &types.AttributeValueMemberS{Value: ck.PartitionValue}
		av[ck.SortAttr] = &types.AttributeValueMemberS{Value: ck.SortValue}

		for name := range def.Indexes {
			if name == index {
				continue
			}
			other, err := c.reg.ResolveItemKey(entity, name, av)
			if err != nil {
				if errors.IsMissingFacet(err) {
					continue
				}
				return nil, err
			}
			av[other.PartitionAttr] = &types.AttributeValueMemberS{Value: other.PartitionValue}
			av[other.SortAttr] = &types.AttributeValueMemberS{Value: other.SortValue}
		}

		entries[i] = writeEntry[Item]{
			request: types.WriteRequest{PutRequest: &types.PutRequest{Item: av}},
			id:      entryID(ck.PartitionValue, ck.SortValue),
			source:  item,
		}
	}

	return runBatchWrite(ctx, c, table, idx, entries, opts)
}

// BatchDelete removes the items addressed by the given logical keys.
func (c *Coordinator) BatchDelete(ctx context.Context, entity, index string, keyList []Facets, opts *Options) (*Result[Facets], error) {
	if len(keyList) == 0 {
		return &Result[Facets]{}, nil
	}

	table, idx, err := c.lookup(entity, index)
	if err != nil {
		return nil, err
	}

	entries := make([]writeEntry[Facets], len(keyList))
	for i, facets := range keyList {
		ck, err := c.reg.ResolveKey(entity, index, facets)
		if err != nil {
			return nil, err
		}
		entries[i] = writeEntry[Facets]{
			request: types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: ck.AttributeValues()}},
			id:      entryID(ck.PartitionValue, ck.SortValue),
			source:  facets,
		}
	}

	return runBatchWrite(ctx, c, table, idx, entries, opts)
}

func (c *Coordinator) lookup(entity, index string) (string, registry.IndexDefinition, error) {
	idx, err := c.reg.Index(entity, index)
	if err != nil {
		return "", registry.IndexDefinition{}, err
	}
	table, err := c.reg.TableFor(entity)
	if err != nil {
		return "", registry.IndexDefinition{}, err
	}
	return table, idx, nil
}

// runBatchWrite drives the attempt loop shared by BatchPut and BatchDelete.
func runBatchWrite[T any](ctx context.Context, c *Coordinator, table string, idx registry.IndexDefinition, entries []writeEntry[T], opts *Options) (*Result[T], error) {
	policy := newRetryPolicy(opts)
	policy.begin()
	pending := entries

	for {
		parts := chunk(pending, MaxBatchWriteSize)
		chunks := make([][]types.WriteRequest, len(parts))
		for i, part := range parts {
			requests := make([]types.WriteRequest, len(part))
			for j, entry := range part {
				requests[j] = entry.request
			}
			chunks[i] = requests
		}

		outs, err := c.dispatchWrites(ctx, table, chunks)
		if err != nil {
			return nil, err
		}

		byID := make(map[string]writeEntry[T], len(pending))
		for _, entry := range pending {
			byID[entry.id] = entry
		}
		var unprocessed []writeEntry[T]
		for _, out := range outs {
			unprocessed = append(unprocessed, mergeWrite(out, table, byID, idx)...)
		}

		if !policy.observe(len(unprocessed)) {
			result := &Result[T]{RetryAttempts: policy.retryAttempts()}
			for _, entry := range unprocessed {
				result.Unprocessed = append(result.Unprocessed, entry.source)
			}
			return result, nil
		}
		pending = unprocessed
	}
}

// dispatchGets sends every chunk of one attempt, concurrently when there is
// more than one. A rejection from the store on any chunk fails the whole
// attempt; the first error wins.
func (c *Coordinator) dispatchGets(ctx context.Context, table string, chunks [][]keyEntry) ([]*dynamodb.BatchGetItemOutput, error) {
	if len(chunks) == 1 {
		out, err := c.sendGet(ctx, table, chunks[0])
		if err != nil {
			return nil, err
		}
		return []*dynamodb.BatchGetItemOutput{out}, nil
	}

	outs := make([]*dynamodb.BatchGetItemOutput, len(chunks))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, entries := range chunks {
		wg.Add(1)
		go func(i int, entries []keyEntry) {
			defer wg.Done()
			out, err := c.sendGet(ctx, table, entries)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			outs[i] = out
		}(i, entries)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return outs, nil
}

func (c *Coordinator) sendGet(ctx context.Context, table string, entries []keyEntry) (*dynamodb.BatchGetItemOutput, error) {
	keyMaps := make([]map[string]types.AttributeValue, len(entries))
	for i, entry := range entries {
		keyMaps[i] = entry.attrs
	}
	out, err := c.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
		RequestItems: map[string]types.KeysAndAttributes{
			table: {Keys: keyMaps},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("batch get %q: %w", table, err)
	}
	return out, nil
}

// dispatchWrites mirrors dispatchGets for BatchWriteItem chunks.
func (c *Coordinator) dispatchWrites(ctx context.Context, table string, chunks [][]types.WriteRequest) ([]*dynamodb.BatchWriteItemOutput, error) {
	if len(chunks) == 1 {
		out, err := c.sendWrite(ctx, table, chunks[0])
		if err != nil {
			return nil, err
		}
		return []*dynamodb.BatchWriteItemOutput{out}, nil
	}

	outs := make([]*dynamodb.BatchWriteItemOutput, len(chunks))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, requests := range chunks {
		wg.Add(1)
		go func(i int, requests []types.WriteRequest) {
			defer wg.Done()
			out, err := c.sendWrite(ctx, table, requests)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			outs[i] = out
		}(i, requests)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return outs, nil
}

func (c *Coordinator) sendWrite(ctx context.Context, table string, requests []types.WriteRequest) (*dynamodb.BatchWriteItemOutput, error) {
	out, err := c.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{
			table: requests,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("batch write %q: %w", table, err)
	}
	return out, nil
}
