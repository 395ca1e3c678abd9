/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/singletable/errors"
)

func orderEntity() EntityDefinition {
	return EntityDefinition{
		Name:  "order",
		Table: "app-table",
		Indexes: map[string]IndexDefinition{
			"primary": {
				Name:         "primary",
				PartitionKey: KeyDefinition{Attribute: "PK", Template: "TENANT#{tenantID}"},
				SortKey:      KeyDefinition{Attribute: "SK", Template: "ORDER#{orderID}"},
			},
			"gsi1": {
				Name:         "gsi1",
				PartitionKey: KeyDefinition{Attribute: "GSI1PK", Template: "STATUS#{status}"},
				SortKey:      KeyDefinition{Attribute: "GSI1SK", Template: "ORDER#{orderID}"},
			},
		},
	}
}

func TestRegisterAndResolve(t *testing.T) {
	reg := New()
	if err := reg.RegisterEntity(orderEntity()); err != nil {
		t.Fatalf("RegisterEntity failed: %v", err)
	}

	key, err := reg.ResolveKey("order", "primary", map[string]string{
		"tenantID": "acme",
		"orderID":  "o-1001",
	})
	if err != nil {
		t.Fatalf("ResolveKey failed: %v", err)
	}
	if key.PartitionAttr != "PK" || key.PartitionValue != "TENANT#acme" {
		t.Errorf("partition key = %s=%s", key.PartitionAttr, key.PartitionValue)
	}
	if key.SortAttr != "SK" || key.SortValue != "ORDER#o-1001" {
		t.Errorf("sort key = %s=%s", key.SortAttr, key.SortValue)
	}

	av := key.AttributeValues()
	if s, ok := av["PK"].(*types.AttributeValueMemberS); !ok || s.Value != "TENANT#acme" {
		t.Errorf("AttributeValues PK = %v", av["PK"])
	}
	if s, ok := av["SK"].(*types.AttributeValueMemberS); !ok || s.Value != "ORDER#o-1001" {
		t.Errorf("AttributeValues SK = %v", av["SK"])
	}
}

func TestResolveUnknownIndex(t *testing.T) {
	reg := New()
	if err := reg.RegisterEntity(orderEntity()); err != nil {
		t.Fatal(err)
	}

	_, err := reg.ResolveKey("order", "gsi9", map[string]string{"tenantID": "acme"})
	if !errors.IsUnknownIndex(err) {
		t.Errorf("expected unknown index error, got %v", err)
	}

	_, err = reg.ResolveKey("invoice", "primary", map[string]string{"tenantID": "acme"})
	if !errors.IsUnknownIndex(err) {
		t.Errorf("expected unknown index error for unregistered entity, got %v", err)
	}
}

func TestResolveMissingFacet(t *testing.T) {
	reg := New()
	if err := reg.RegisterEntity(orderEntity()); err != nil {
		t.Fatal(err)
	}

	_, err := reg.ResolveKey("order", "primary", map[string]string{"tenantID": "acme"})
	if !errors.IsMissingFacet(err) {
		t.Errorf("expected missing facet error, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EntityDefinition)
	}{
		{"empty name", func(d *EntityDefinition) { d.Name = "" }},
		{"empty table", func(d *EntityDefinition) { d.Table = "" }},
		{"no indexes", func(d *EntityDefinition) { d.Indexes = nil }},
		{"bad template", func(d *EntityDefinition) {
			idx := d.Indexes["primary"]
			idx.PartitionKey.Template = "TENANT#{tenantID"
			d.Indexes["primary"] = idx
		}},
		{"missing attribute", func(d *EntityDefinition) {
			idx := d.Indexes["primary"]
			idx.SortKey.Attribute = ""
			d.Indexes["primary"] = idx
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := orderEntity()
			tt.mutate(&def)
			if err := New().RegisterEntity(def); err == nil {
				t.Error("expected registration to fail")
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := New()
	if err := reg.RegisterEntity(orderEntity()); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterEntity(orderEntity()); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	reg := New()
	if err := reg.RegisterEntity(orderEntity()); err != nil {
		t.Fatal(err)
	}

	facets := map[string]string{"tenantID": "a#b", "orderID": "o-1001"}
	key, err := reg.ResolveKey("order", "primary", facets)
	if err != nil {
		t.Fatal(err)
	}

	back, err := reg.ParseKey("order", "primary", key.AttributeValues())
	if err != nil {
		t.Fatalf("ParseKey failed: %v", err)
	}
	for name, want := range facets {
		if back[name] != want {
			t.Errorf("facet %s = %q, want %q", name, back[name], want)
		}
	}
}

func TestParseKeyMalformed(t *testing.T) {
	reg := New()
	if err := reg.RegisterEntity(orderEntity()); err != nil {
		t.Fatal(err)
	}

	// Wrong attribute type for PK.
	_, err := reg.ParseKey("order", "primary", map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberN{Value: "42"},
		"SK": &types.AttributeValueMemberS{Value: "ORDER#o-1"},
	})
	if !errors.IsMalformedKey(err) {
		t.Errorf("expected malformed key error, got %v", err)
	}

	// Key composed under a different template shape.
	_, err = reg.ParseKey("order", "primary", map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "USER#acme"},
		"SK": &types.AttributeValueMemberS{Value: "ORDER#o-1"},
	})
	if !errors.IsMalformedKey(err) {
		t.Errorf("expected malformed key error, got %v", err)
	}
}

func TestResolveItemKey(t *testing.T) {
	reg := New()
	if err := reg.RegisterEntity(orderEntity()); err != nil {
		t.Fatal(err)
	}

	item := map[string]types.AttributeValue{
		"tenantID": &types.AttributeValueMemberS{Value: "acme"},
		"orderID":  &types.AttributeValueMemberS{Value: "o-1001"},
		"total":    &types.AttributeValueMemberN{Value: "99.5"},
		"open":     &types.AttributeValueMemberBOOL{Value: true},
	}

	key, err := reg.ResolveItemKey("order", "primary", item)
	if err != nil {
		t.Fatalf("ResolveItemKey failed: %v", err)
	}
	if key.PartitionValue != "TENANT#acme" || key.SortValue != "ORDER#o-1001" {
		t.Errorf("key = %+v", key)
	}
}

func TestFacetValuesStringification(t *testing.T) {
	facets := FacetValues(map[string]types.AttributeValue{
		"s":    &types.AttributeValueMemberS{Value: "abc"},
		"n":    &types.AttributeValueMemberN{Value: "42"},
		"b":    &types.AttributeValueMemberBOOL{Value: true},
		"list": &types.AttributeValueMemberL{Value: nil},
	})

	if facets["s"] != "abc" || facets["n"] != "42" || facets["b"] != "true" {
		t.Errorf("FacetValues = %v", facets)
	}
	if _, ok := facets["list"]; ok {
		t.Error("non-scalar attributes should be skipped")
	}
}
