// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import "testing"

// composeYAML exercises allOf merging across references and local shapes.
const composeYAML = `components:
  schemas:
    Base:
      type: object
      description: Base thing.
      properties:
        id:
          type: string
      required: [id]
    Mixin:
      type: object
      properties:
        note:
          type: string
        id:
          type: integer
    Combined:
      allOf:
        - $ref: '#/components/schemas/Base'
        - $ref: '#/components/schemas/Mixin'
        - type: object
          properties:
            extra:
              type: boolean
          required: [extra]
    Left:
      allOf:
        - $ref: '#/components/schemas/Base'
    Right:
      allOf:
        - $ref: '#/components/schemas/Base'
    Diamond:
      allOf:
        - $ref: '#/components/schemas/Left'
        - $ref: '#/components/schemas/Right'
    Loop:
      allOf:
        - $ref: '#/components/schemas/Loop'
        - type: object
          properties:
            name:
              type: string
    Dangling:
      allOf:
        - $ref: '#/components/schemas/Missing'
        - type: object
          properties:
            kept:
              type: string
    Hollow:
      allOf:
        - type: object
`

// composeFixture resolves one named schema through a fresh composition pass.
func composeFixture(t *testing.T, name string) (*Schema, *generationContext) {
	t.Helper()

	ctx := testContext(t, testDocument(t, composeYAML))
	schema, ok := ctx.doc.Lookup(name)
	if !ok {
		t.Fatalf("schema %q not found", name)
	}

	return newComposer(ctx).effectiveSchema(name, schema), ctx
}

func TestEffectiveSchemaMergesAllOf(t *testing.T) {
	t.Parallel()

	effective, ctx := composeFixture(t, "Combined")
	if effective.Type != "object" {
		t.Fatalf("effective type = %q, want object", effective.Type)
	}

	want := []string{"id", "note", "extra"}
	if len(effective.PropertyOrder) != len(want) {
		t.Fatalf("property order = %v, want %v", effective.PropertyOrder, want)
	}

	for index, name := range want {
		if effective.PropertyOrder[index] != name {
			t.Fatalf("property order = %v, want %v", effective.PropertyOrder, want)
		}
	}

	// Later fragments override earlier property declarations in place.
	if effective.Properties["id"].Type != "integer" {
		t.Fatalf("id type = %q, want integer", effective.Properties["id"].Type)
	}

	if len(effective.Required) != 2 || effective.Required[0] != "id" || effective.Required[1] != "extra" {
		t.Fatalf("required = %v, want [id extra]", effective.Required)
	}

	if effective.Description != "Base thing." {
		t.Fatalf("description = %q, want the first fragment description", effective.Description)
	}

	if len(ctx.diagnostics) != 0 {
		t.Fatalf("diagnostics = %v, want none", ctx.diagnostics)
	}
}

func TestEffectiveSchemaDiamondIsNotACycle(t *testing.T) {
	t.Parallel()

	effective, ctx := composeFixture(t, "Diamond")
	if len(effective.PropertyOrder) != 1 || effective.PropertyOrder[0] != "id" {
		t.Fatalf("property order = %v, want [id]", effective.PropertyOrder)
	}

	if len(ctx.diagnostics) != 0 {
		t.Fatalf("diagnostics = %v, want none", ctx.diagnostics)
	}
}

func TestEffectiveSchemaCycleWarnsOnce(t *testing.T) {
	t.Parallel()

	effective, ctx := composeFixture(t, "Loop")
	if len(effective.PropertyOrder) != 1 || effective.PropertyOrder[0] != "name" {
		t.Fatalf("property order = %v, want [name]", effective.PropertyOrder)
	}

	if len(ctx.diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want one cycle warning", ctx.diagnostics)
	}

	diag := ctx.diagnostics[0]
	if diag.Rule != warnCompositionCycle || diag.Severity != SeverityWarning {
		t.Fatalf("diagnostic = %+v", diag)
	}

	assertContains(t, diag.Detail, "composition cycle")
}

func TestEffectiveSchemaUnresolvedFragment(t *testing.T) {
	t.Parallel()

	effective, ctx := composeFixture(t, "Dangling")
	if len(effective.PropertyOrder) != 1 || effective.PropertyOrder[0] != "kept" {
		t.Fatalf("property order = %v, want [kept]", effective.PropertyOrder)
	}

	if len(ctx.diagnostics) != 1 || ctx.diagnostics[0].Rule != LintMissingRefTarget {
		t.Fatalf("diagnostics = %v, want one missing_ref_target finding", ctx.diagnostics)
	}

	assertContains(t, ctx.diagnostics[0].Detail, "#/components/schemas/Missing")
}

func TestEffectiveSchemaEmptyComposite(t *testing.T) {
	t.Parallel()

	effective, ctx := composeFixture(t, "Hollow")
	if len(effective.PropertyOrder) != 0 {
		t.Fatalf("property order = %v, want empty", effective.PropertyOrder)
	}

	if len(ctx.diagnostics) != 1 || ctx.diagnostics[0].Rule != LintEmptyComposite {
		t.Fatalf("diagnostics = %v, want one empty_composite finding", ctx.diagnostics)
	}
}

func TestEffectiveSchemaPassthrough(t *testing.T) {
	t.Parallel()

	ctx := testContext(t, testDocument(t, composeYAML))
	base, _ := ctx.doc.Lookup("Base")
	if got := newComposer(ctx).effectiveSchema("Base", base); got != base {
		t.Fatal("non-composite schema did not pass through unchanged")
	}
}

func TestMergeRequiredKeys(t *testing.T) {
	t.Parallel()

	got := mergeRequiredKeys([]string{"id", "name"}, []string{"name", " ", "tag"})
	if len(got) != 3 || got[0] != "id" || got[1] != "name" || got[2] != "tag" {
		t.Fatalf("merged keys = %v, want [id name tag]", got)
	}

	if mergeRequiredKeys(nil, nil) != nil {
		t.Fatal("empty merge should stay nil")
	}
}
