// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import "strings"

// composer flattens allOf composition chains into effective object fragments.
type composer struct {
	ctx        *generationContext
	activeRefs map[string]int
}

// objectShape accumulates merged object structure across composition fragments.
type objectShape struct {
	properties  map[string]*Schema
	order       []string
	required    []string
	description string
	deprecated  bool
}

// newComposer builds one composition resolver bound to pipeline state.
func newComposer(ctx *generationContext) *composer {
	return &composer{
		ctx:        ctx,
		activeRefs: make(map[string]int),
	}
}

// effectiveSchema returns the fragment with its allOf chain flattened into
// plain object structure. Non-composite fragments pass through unchanged.
func (c *composer) effectiveSchema(name string, schema *Schema) *Schema {
	if schema == nil {
		return &Schema{}
	}

	if !schema.IsComposite() {
		return schema
	}

	release, entered := c.enterReference(c.ctx.doc.schemaRef(name))
	if entered && release != nil {
		defer release()
	}

	shape := &objectShape{properties: make(map[string]*Schema)}
	c.collectInto(name, schema, shape)

	if len(shape.order) == 0 {
		c.ctx.lint(LintEmptyComposite, name, "allOf composition merges into an empty object")
	}

	return &Schema{
		Type:          "object",
		Description:   firstNonEmpty(schema.Description, shape.description),
		Deprecated:    schema.Deprecated || shape.deprecated,
		Properties:    shape.properties,
		PropertyOrder: shape.order,
		Required:      shape.required,
		node:          schema.node,
	}
}

// collectInto merges composition fragments first and local structure last.
func (c *composer) collectInto(name string, schema *Schema, shape *objectShape) {
	for _, fragment := range schema.AllOf {
		c.mergeFragment(name, fragment, shape)
	}

	c.mergeLocalShape(schema, shape)
}

// mergeFragment resolves one composition fragment and merges its structure.
func (c *composer) mergeFragment(name string, fragment *Schema, shape *objectShape) {
	if fragment == nil {
		return
	}

	if fragment.Ref == "" {
		c.collectInto(name, fragment, shape)
		return
	}

	resolved, ok := c.ctx.doc.Resolve(fragment.Ref)
	if !ok {
		c.ctx.lint(LintMissingRefTarget, name, "unresolved reference "+fragment.Ref)
		return
	}

	release, entered := c.enterReference(fragment.Ref)
	if !entered {
		c.ctx.warn(warnCompositionCycle, name, "composition cycle through "+fragment.Ref)
		return
	}

	if release != nil {
		defer release()
	}

	c.collectInto(name, resolved, shape)
}

// mergeLocalShape merges directly declared structure with last-write-wins properties.
func (c *composer) mergeLocalShape(schema *Schema, shape *objectShape) {
	for _, propName := range schema.PropertyOrder {
		property, ok := schema.Properties[propName]
		if !ok {
			continue
		}

		if _, exists := shape.properties[propName]; !exists {
			shape.order = append(shape.order, propName)
		}

		shape.properties[propName] = property
	}

	shape.required = mergeRequiredKeys(shape.required, schema.Required)
	if shape.description == "" {
		shape.description = schema.Description
	}

	if schema.Deprecated {
		shape.deprecated = true
	}
}

// enterReference registers an active reference and returns its release callback.
func (c *composer) enterReference(ref string) (func(), bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, true
	}

	if c.activeRefs[ref] > 0 {
		return nil, false
	}

	c.activeRefs[ref]++
	return func() {
		c.activeRefs[ref]--
		if c.activeRefs[ref] <= 0 {
			delete(c.activeRefs, ref)
		}
	}, true
}

// mergeRequiredKeys appends unique required keys while preserving first-seen order.
func mergeRequiredKeys(left, right []string) []string {
	if len(left) == 0 && len(right) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(left)+len(right))
	out := make([]string, 0, len(left)+len(right))

	for _, key := range append(left, right...) {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		if _, exists := seen[key]; exists {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out
}

// firstNonEmpty returns the first non-blank value from the argument list.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}
