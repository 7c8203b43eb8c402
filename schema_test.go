// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"testing"

	"gopkg.in/yaml.v3"
)

// testSchema parses one inline schema fragment and fails the test on error.
func testSchema(t *testing.T, src string) *Schema {
	t.Helper()

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(src), &node); err != nil {
		t.Fatalf("unmarshal fragment: %v", err)
	}

	return schemaFromNode(&node)
}

func TestSchemaFromNodeScalars(t *testing.T) {
	t.Parallel()

	schema := testSchema(t, `type: String
format: Date-Time
title: Created at
description: Creation timestamp.
nullable: true
deprecated: true
`)
	if schema.Type != "string" {
		t.Fatalf("type = %q, want %q", schema.Type, "string")
	}

	if schema.Format != "date-time" {
		t.Fatalf("format = %q, want %q", schema.Format, "date-time")
	}

	if schema.Title != "Created at" || schema.Description != "Creation timestamp." {
		t.Fatalf("title/description = %q / %q", schema.Title, schema.Description)
	}

	if !schema.Nullable || !schema.Deprecated {
		t.Fatalf("nullable = %v, deprecated = %v, want both true", schema.Nullable, schema.Deprecated)
	}
}

func TestSchemaNullableForms(t *testing.T) {
	t.Parallel()

	if !testSchema(t, "x-nullable: true").Nullable {
		t.Fatal("x-nullable: true not recognized")
	}

	if testSchema(t, "nullable: false").Nullable {
		t.Fatal("nullable: false reported as nullable")
	}
}

func TestSchemaPropertyOrder(t *testing.T) {
	t.Parallel()

	schema := testSchema(t, `type: object
properties:
  zebra:
    type: string
  alpha:
    type: integer
  middle:
    type: boolean
required: [alpha]
`)
	want := []string{"zebra", "alpha", "middle"}
	if len(schema.PropertyOrder) != len(want) {
		t.Fatalf("property order = %v, want %v", schema.PropertyOrder, want)
	}

	for index, name := range want {
		if schema.PropertyOrder[index] != name {
			t.Fatalf("property order = %v, want %v", schema.PropertyOrder, want)
		}
	}

	if len(schema.Required) != 1 || schema.Required[0] != "alpha" {
		t.Fatalf("required = %v, want [alpha]", schema.Required)
	}
}

func TestSchemaEnumLiterals(t *testing.T) {
	t.Parallel()

	schema := testSchema(t, `enum: [active, 7, 2.5, true, null]`)
	if len(schema.Enum) != 5 {
		t.Fatalf("enum length = %d, want 5", len(schema.Enum))
	}

	if schema.Enum[0] != "active" {
		t.Fatalf("enum[0] = %v, want active", schema.Enum[0])
	}

	if schema.Enum[4] != nil {
		t.Fatalf("enum[4] = %v, want nil", schema.Enum[4])
	}
}

func TestSchemaAdditionalProperties(t *testing.T) {
	t.Parallel()

	typed := testSchema(t, `type: object
additionalProperties:
  type: string
`)
	if typed.AdditionalProps == nil || typed.AdditionalProps.Type != "string" {
		t.Fatalf("typed additionalProperties = %v", typed.AdditionalProps)
	}

	if typed.AdditionalAny {
		t.Fatal("typed additionalProperties reported as bare true")
	}

	open := testSchema(t, `type: object
additionalProperties: true
`)
	if open.AdditionalProps != nil || !open.AdditionalAny {
		t.Fatalf("open additionalProperties = %v / %v", open.AdditionalProps, open.AdditionalAny)
	}

	closed := testSchema(t, `type: object
additionalProperties: false
`)
	if closed.AdditionalProps != nil || closed.AdditionalAny {
		t.Fatalf("closed additionalProperties = %v / %v", closed.AdditionalProps, closed.AdditionalAny)
	}
}

func TestSchemaDiscriminatorForms(t *testing.T) {
	t.Parallel()

	mapped := testSchema(t, `discriminator:
  propertyName: petType
  mapping:
    dog: '#/components/schemas/Dog'
    cat: '#/components/schemas/Cat'
`)
	if mapped.Discriminator == nil || mapped.Discriminator.PropertyName != "petType" {
		t.Fatalf("mapped discriminator = %v", mapped.Discriminator)
	}

	order := mapped.Discriminator.MappingOrder
	if len(order) != 2 || order[0] != "dog" || order[1] != "cat" {
		t.Fatalf("mapping order = %v, want [dog cat]", order)
	}

	bare := testSchema(t, `discriminator: petType`)
	if bare.Discriminator == nil || bare.Discriminator.PropertyName != "petType" {
		t.Fatalf("bare discriminator = %v", bare.Discriminator)
	}

	if testSchema(t, `discriminator: ""`).Discriminator != nil {
		t.Fatal("empty discriminator not dropped")
	}
}

func TestSchemaPredicates(t *testing.T) {
	t.Parallel()

	if !testSchema(t, "enum: [a]").IsEnum() {
		t.Fatal("IsEnum missed declared literals")
	}

	union := testSchema(t, `anyOf:
  - type: string
  - type: integer
`)
	if !union.IsUnion() || len(union.UnionVariants()) != 2 {
		t.Fatalf("anyOf union = %v / %d variants", union.IsUnion(), len(union.UnionVariants()))
	}

	both := testSchema(t, `oneOf:
  - type: string
anyOf:
  - type: string
  - type: integer
`)
	if len(both.UnionVariants()) != 1 {
		t.Fatalf("oneOf should win over anyOf, got %d variants", len(both.UnionVariants()))
	}

	if !testSchema(t, "allOf:\n  - type: object").IsComposite() {
		t.Fatal("IsComposite missed allOf")
	}
}

func TestSchemaYieldsRecord(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
		want bool
	}{
		{"composite", "allOf:\n  - type: object", true},
		{"properties", "properties:\n  id:\n    type: string", true},
		{"plain object", "type: object", true},
		{"map object", "type: object\nadditionalProperties:\n  type: string", false},
		{"open object", "type: object\nadditionalProperties: true", false},
		{"primitive", "type: string", false},
		{"bare fragment", "description: nothing here", false},
	}

	for _, test := range cases {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := testSchema(t, test.src).yieldsRecord(); got != test.want {
				t.Fatalf("yieldsRecord = %v, want %v", got, test.want)
			}
		})
	}
}

func TestSchemaAliasNodes(t *testing.T) {
	t.Parallel()

	doc := testDocument(t, `components:
  schemas:
    Name: &str
      type: string
    Alias: *str
`)
	alias, ok := doc.Lookup("Alias")
	if !ok || alias.Type != "string" {
		t.Fatalf("aliased schema = %v, %v", alias, ok)
	}
}
