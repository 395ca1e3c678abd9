/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/singletable/errors"
	"github.com/suparena/singletable/keys"
)

// KeyDefinition names a physical key attribute and the template that
// produces its value, e.g. {Attribute: "PK", Template: "ORDER#{tenantID}"}.
type KeyDefinition struct {
	Attribute string
	Template  string
}

// IndexDefinition declares one access pattern: which facets form the
// partition and sort key parts. Facet order is fixed by the templates and
// never reordered after registration.
type IndexDefinition struct {
	Name         string
	PartitionKey KeyDefinition
	SortKey      KeyDefinition
}

// EntityDefinition declares an entity, its physical table, and its access
// patterns keyed by index name.
type EntityDefinition struct {
	Name    string
	Table   string
	Indexes map[string]IndexDefinition
}

// CompositeKey is the pair of physical key values produced for one index.
type CompositeKey struct {
	PartitionAttr  string
	PartitionValue string
	SortAttr       string
	SortValue      string
}

// AttributeValues returns the key in the attribute map form DynamoDB
// requests expect.
func (k CompositeKey) AttributeValues() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		k.PartitionAttr: &types.AttributeValueMemberS{Value: k.PartitionValue},
		k.SortAttr:      &types.AttributeValueMemberS{Value: k.SortValue},
	}
}

// indexComposers caches the compiled templates for one index.
type indexComposers struct {
	def       IndexDefinition
	partition *keys.Composer
	sort      *keys.Composer
}

type entityEntry struct {
	def      EntityDefinition
	composed map[string]*indexComposers
}

// Registry holds immutable entity and index definitions. Registration
// happens once per entity during setup; lookups are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]*entityEntry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		entities: make(map[string]*entityEntry),
	}
}

// RegisterEntity validates the definition, compiles every key template, and
// stores the entity. Registering the same entity name twice is an error; a
// registered definition is never mutated afterward.
func (r *Registry) RegisterEntity(def EntityDefinition) error {
	if def.Name == "" {
		return errors.NewValidationError("name", "must not be empty")
	}
	if def.Table == "" {
		return errors.NewValidationError("table", "must not be empty")
	}
	if len(def.Indexes) == 0 {
		return errors.NewValidationError("indexes", "entity "+def.Name+" declares no indexes")
	}

	entry := &entityEntry{
		def:      def,
		composed: make(map[string]*indexComposers, len(def.Indexes)),
	}
	for name, idx := range def.Indexes {
		pc, err := keys.ParseTemplate(idx.PartitionKey.Template)
		if err != nil {
			return fmt.Errorf("entity %q index %q partition key: %w", def.Name, name, err)
		}
		sc, err := keys.ParseTemplate(idx.SortKey.Template)
		if err != nil {
			return fmt.Errorf("entity %q index %q sort key: %w", def.Name, name, err)
		}
		if idx.PartitionKey.Attribute == "" || idx.SortKey.Attribute == "" {
			return errors.NewValidationError("attribute",
				"entity "+def.Name+" index "+name+" is missing a key attribute name")
		}
		entry.composed[name] = &indexComposers{def: idx, partition: pc, sort: sc}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entities[def.Name]; exists {
		return fmt.Errorf("entity %q already registered", def.Name)
	}
	r.entities[def.Name] = entry
	return nil
}

// Entity returns the registered definition for an entity name.
func (r *Registry) Entity(name string) (EntityDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entities[name]
	if !ok {
		return EntityDefinition{}, false
	}
	return entry.def, true
}

// TableFor returns the physical table an entity is stored in.
func (r *Registry) TableFor(entity string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entities[entity]
	if !ok {
		return "", errors.NewUnknownIndexError(entity, "")
	}
	return entry.def.Table, nil
}

// Index returns the registered definition for one access pattern.
func (r *Registry) Index(entity, index string) (IndexDefinition, error) {
	ic, err := r.index(entity, index)
	if err != nil {
		return IndexDefinition{}, err
	}
	return ic.def, nil
}

func (r *Registry) index(entity, index string) (*indexComposers, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entities[entity]
	if !ok {
		return nil, errors.NewUnknownIndexError(entity, index)
	}
	ic, ok := entry.composed[index]
	if !ok {
		return nil, errors.NewUnknownIndexError(entity, index)
	}
	return ic, nil
}

// ResolveKey builds the CompositeKey for one logical key under the named
// access pattern. Fails with an unknown index error when the (entity, index)
// pair is unregistered, and with a missing facet error when the facet values
// do not cover the templates.
func (r *Registry) ResolveKey(entity, index string, facets map[string]string) (CompositeKey, error) {
	ic, err := r.index(entity, index)
	if err != nil {
		return CompositeKey{}, err
	}

	pk, err := ic.partition.Compose(facets)
	if err != nil {
		return CompositeKey{}, err
	}
	sk, err := ic.sort.Compose(facets)
	if err != nil {
		return CompositeKey{}, err
	}

	return CompositeKey{
		PartitionAttr:  ic.def.PartitionKey.Attribute,
		PartitionValue: pk,
		SortAttr:       ic.def.SortKey.Attribute,
		SortValue:      sk,
	}, nil
}

// ResolveItemKey is ResolveKey for a marshaled item: facet values are read
// from the item's own attributes.
func (r *Registry) ResolveItemKey(entity, index string, item map[string]types.AttributeValue) (CompositeKey, error) {
	return r.ResolveKey(entity, index, FacetValues(item))
}

// ParseKey decodes the physical key attributes of a stored item back into
// the logical facet values of the named access pattern. Partition and sort
// facets are merged into one map.
func (r *Registry) ParseKey(entity, index string, key map[string]types.AttributeValue) (map[string]string, error) {
	ic, err := r.index(entity, index)
	if err != nil {
		return nil, err
	}

	pkAttr, ok := key[ic.def.PartitionKey.Attribute].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.NewMalformedKeyError("", ic.partition.Template(),
			"missing string attribute "+ic.def.PartitionKey.Attribute)
	}
	skAttr, ok := key[ic.def.SortKey.Attribute].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.NewMalformedKeyError("", ic.sort.Template(),
			"missing string attribute "+ic.def.SortKey.Attribute)
	}

	facets, err := ic.partition.Parse(pkAttr.Value)
	if err != nil {
		return nil, err
	}
	sortFacets, err := ic.sort.Parse(skAttr.Value)
	if err != nil {
		return nil, err
	}
	for name, value := range sortFacets {
		facets[name] = value
	}
	return facets, nil
}

// FacetValues extracts string facet values from a marshaled item. Scalar
// attribute types are stringified; everything else is skipped, since only
// scalars can participate in key composition.
func FacetValues(item map[string]types.AttributeValue) map[string]string {
	facets := make(map[string]string, len(item))
	for name, av := range item {
		switch tv := av.(type) {
		case *types.AttributeValueMemberS:
			facets[name] = tv.Value
		case *types.AttributeValueMemberN:
			facets[name] = tv.Value
		case *types.AttributeValueMemberBOOL:
			facets[name] = fmt.Sprintf("%v", tv.Value)
		}
	}
	return facets
}
