/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package singletable

import (
	"context"

	"github.com/suparena/singletable/batch"
	"github.com/suparena/singletable/registry"
)

// Table binds a store client to a registry of access patterns and exposes
// the bulk operations. It holds no per-invocation state and is safe for
// concurrent use.
type Table struct {
	reg   *registry.Registry
	coord *batch.Coordinator
}

// New creates a Table over the given client and registry.
func New(client batch.Client, reg *registry.Registry) *Table {
	return &Table{
		reg:   reg,
		coord: batch.NewCoordinator(client, reg),
	}
}

// Registry exposes the access pattern registry, for key resolution outside
// the bulk operations.
func (t *Table) Registry() *registry.Registry {
	return t.reg
}

// BatchGet fetches the items addressed by the given logical keys under one
// access pattern.
func (t *Table) BatchGet(ctx context.Context, entity, index string, keys []batch.Facets, opts *batch.Options) (*batch.Result[batch.Facets], error) {
	return t.coord.BatchGet(ctx, entity, index, keys, opts)
}

// BatchPut writes the given items, composing and injecting key attributes
// from each item's own fields.
func (t *Table) BatchPut(ctx context.Context, entity, index string, items []batch.Item, opts *batch.Options) (*batch.Result[batch.Item], error) {
	return t.coord.BatchPut(ctx, entity, index, items, opts)
}

// BatchDelete removes the items addressed by the given logical keys.
func (t *Table) BatchDelete(ctx context.Context, entity, index string, keys []batch.Facets, opts *batch.Options) (*batch.Result[batch.Facets], error) {
	return t.coord.BatchDelete(ctx, entity, index, keys, opts)
}
