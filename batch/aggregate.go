/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package batch

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/singletable/registry"
)

// keyEntry is one resolved logical key in flight: the physical key
// attributes sent to the store, a correlation id derived from the composed
// key values, and the caller's original facet map.
type keyEntry struct {
	attrs  map[string]types.AttributeValue
	id     string
	source Facets
}

// writeEntry is one resolved write request in flight, carrying the caller's
// original shape so unprocessed entries can be handed back untranslated.
type writeEntry[T any] struct {
	request types.WriteRequest
	id      string
	source  T
}

// entryID concatenates the partition and sort values behind a length prefix,
// so distinct (pk, sk) pairs never collide whatever bytes the values carry.
func entryID(pk, sk string) string {
	return strconv.Itoa(len(pk)) + "|" + pk + sk
}

// rawKeyID derives the correlation id from a raw key map echoed by the
// store. Returns "" when the expected string attributes are absent.
func rawKeyID(raw map[string]types.AttributeValue, idx registry.IndexDefinition) string {
	pk, ok := raw[idx.PartitionKey.Attribute].(*types.AttributeValueMemberS)
	if !ok {
		return ""
	}
	sk, ok := raw[idx.SortKey.Attribute].(*types.AttributeValueMemberS)
	if !ok {
		return ""
	}
	return entryID(pk.Value, sk.Value)
}

// writeRequestID derives the correlation id from an unprocessed write
// request echoed by the store.
func writeRequestID(wr types.WriteRequest, idx registry.IndexDefinition) string {
	switch {
	case wr.PutRequest != nil:
		return rawKeyID(wr.PutRequest.Item, idx)
	case wr.DeleteRequest != nil:
		return rawKeyID(wr.DeleteRequest.Key, idx)
	default:
		return ""
	}
}

// getAggregator merges BatchGetItem responses across attempts: fetched
// items accumulate, and keys the store reports as unprocessed are matched
// back to their in-flight entries for resubmission.
type getAggregator struct {
	data []map[string]types.AttributeValue
}

func (a *getAggregator) merge(out *dynamodb.BatchGetItemOutput, table string, byID map[string]keyEntry, idx registry.IndexDefinition) []keyEntry {
	a.data = append(a.data, out.Responses[table]...)

	ka, ok := out.UnprocessedKeys[table]
	if !ok {
		return nil
	}
	var unprocessed []keyEntry
	for _, raw := range ka.Keys {
		// The store only echoes keys this attempt sent, so every raw key
		// must correlate; one that does not was never ours to resubmit.
		if entry, found := byID[rawKeyID(raw, idx)]; found {
			unprocessed = append(unprocessed, entry)
		}
	}
	return unprocessed
}

// mergeWrite extracts the unprocessed subset of a BatchWriteItem response.
// The store's write API does not echo successes, so everything it does not
// report back is treated as processed.
func mergeWrite[T any](out *dynamodb.BatchWriteItemOutput, table string, byID map[string]writeEntry[T], idx registry.IndexDefinition) []writeEntry[T] {
	var unprocessed []writeEntry[T]
	for _, wr := range out.UnprocessedItems[table] {
		// Echoed requests always originate from this attempt; see merge.
		if entry, found := byID[writeRequestID(wr, idx)]; found {
			unprocessed = append(unprocessed, entry)
		}
	}
	return unprocessed
}
