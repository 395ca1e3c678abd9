/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/singletable/errors"
	"github.com/suparena/singletable/registry"
)

// File is a declarative set of entity definitions.
type File struct {
	Entities []Entity `yaml:"entities"`
}

// Entity declares one entity, its table, and its access patterns.
type Entity struct {
	Name    string           `yaml:"name"`
	Table   string           `yaml:"table"`
	Indexes map[string]Index `yaml:"indexes"`
}

// Index declares the key pair of one access pattern.
type Index struct {
	Partition Key `yaml:"partition"`
	Sort      Key `yaml:"sort"`
}

// Key names a physical attribute and its composition template.
type Key struct {
	Attribute string `yaml:"attribute"`
	Template  string `yaml:"template"`
}

// Parse decodes a schema document and checks it for structural
// completeness. Template syntax is validated later, at registration.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses a schema document from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(data)
}

func (f *File) validate() error {
	if len(f.Entities) == 0 {
		return errors.NewValidationError("entities", "schema declares no entities")
	}
	seen := make(map[string]bool, len(f.Entities))
	for _, e := range f.Entities {
		if e.Name == "" {
			return errors.NewValidationError("name", "entity without a name")
		}
		if seen[e.Name] {
			return errors.NewValidationError("name", fmt.Sprintf("entity %q declared twice", e.Name))
		}
		seen[e.Name] = true
		if e.Table == "" {
			return errors.NewValidationError("table", fmt.Sprintf("entity %q has no table", e.Name))
		}
		if len(e.Indexes) == 0 {
			return errors.NewValidationError("indexes", fmt.Sprintf("entity %q has no indexes", e.Name))
		}
		for name, idx := range e.Indexes {
			for _, key := range []struct {
				part string
				key  Key
			}{{"partition", idx.Partition}, {"sort", idx.Sort}} {
				if key.key.Attribute == "" {
					return errors.NewValidationError("attribute", fmt.Sprintf("entity %q index %q: %s key has no attribute", e.Name, name, key.part))
				}
				if key.key.Template == "" {
					return errors.NewValidationError("template", fmt.Sprintf("entity %q index %q: %s key has no template", e.Name, name, key.part))
				}
			}
		}
	}
	return nil
}

// Apply registers every declared entity. Registration compiles the key
// templates, so malformed templates surface here.
func (f *File) Apply(reg *registry.Registry) error {
	for _, e := range f.Entities {
		def := registry.EntityDefinition{
			Name:    e.Name,
			Table:   e.Table,
			Indexes: make(map[string]registry.IndexDefinition, len(e.Indexes)),
		}
		for name, idx := range e.Indexes {
			def.Indexes[name] = registry.IndexDefinition{
				Name: name,
				PartitionKey: registry.KeyDefinition{
					Attribute: idx.Partition.Attribute,
					Template:  idx.Partition.Template,
				},
				SortKey: registry.KeyDefinition{
					Attribute: idx.Sort.Attribute,
					Template:  idx.Sort.Template,
				},
			}
		}
		if err := reg.RegisterEntity(def); err != nil {
			return fmt.Errorf("register %q: %w", e.Name, err)
		}
	}
	return nil
}
