// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// maxAliasDepth bounds YAML alias chains while unwrapping nodes.
const maxAliasDepth = 16

// Schema is a read-only typed view over one schema fragment node.
type Schema struct {
	// Ref holds a raw local reference such as #/components/schemas/User.
	Ref string
	// Type is the declared schema type keyword value.
	Type string
	// Format refines the declared type, for example date-time.
	Format string
	// Title is the optional human-readable fragment title.
	Title string
	// Description is the optional fragment description text.
	Description string
	// Nullable reports nullable or x-nullable set to true.
	Nullable bool
	// Deprecated reports the deprecated keyword set to true.
	Deprecated bool
	// Enum lists declared literal values in source order.
	Enum []any
	// Properties maps property names to child fragments.
	Properties map[string]*Schema
	// PropertyOrder preserves property declaration order from the source document.
	PropertyOrder []string
	// Required lists property names declared in the required keyword.
	Required []string
	// Items is the array element fragment.
	Items *Schema
	// AdditionalProps is the additionalProperties value fragment when it is a schema.
	AdditionalProps *Schema
	// AdditionalAny reports additionalProperties declared as bare true.
	AdditionalAny bool
	// AllOf lists composition fragments in source order.
	AllOf []*Schema
	// OneOf lists exclusive union variants in source order.
	OneOf []*Schema
	// AnyOf lists inclusive union variants in source order.
	AnyOf []*Schema
	// Discriminator describes union variant selection when declared.
	Discriminator *Discriminator

	node *yaml.Node
}

// Discriminator describes how union payloads select their concrete variant.
type Discriminator struct {
	// PropertyName is the payload property carrying the variant token.
	PropertyName string
	// Mapping maps variant tokens to schema references.
	Mapping map[string]string
	// MappingOrder preserves mapping declaration order from the source document.
	MappingOrder []string
}

// SourceNode returns the raw fragment node behind this schema view.
func (schema *Schema) SourceNode() *yaml.Node {
	return schema.node
}

// IsEnum reports whether the fragment declares enum literals.
func (schema *Schema) IsEnum() bool {
	return len(schema.Enum) > 0
}

// IsUnion reports whether the fragment declares oneOf or anyOf variants.
func (schema *Schema) IsUnion() bool {
	return len(schema.OneOf) > 0 || len(schema.AnyOf) > 0
}

// IsComposite reports whether the fragment declares allOf composition.
func (schema *Schema) IsComposite() bool {
	return len(schema.AllOf) > 0
}

// yieldsRecord reports whether the fragment declares an object shape of its
// own. Fragments without one are aliases and never become declarations.
func (schema *Schema) yieldsRecord() bool {
	if schema.IsComposite() || len(schema.PropertyOrder) > 0 {
		return true
	}

	return schema.Type == "object" && schema.AdditionalProps == nil && !schema.AdditionalAny
}

// UnionVariants returns oneOf variants and falls back to anyOf variants.
func (schema *Schema) UnionVariants() []*Schema {
	if len(schema.OneOf) > 0 {
		return schema.OneOf
	}

	return schema.AnyOf
}

// schemaFromNode builds one typed schema view from a fragment mapping node.
func schemaFromNode(node *yaml.Node) *Schema {
	node = unwrapNode(node)
	schema := &Schema{node: node}
	if node == nil || node.Kind != yaml.MappingNode {
		return schema
	}

	for index := 0; index+1 < len(node.Content); index += 2 {
		key := strings.TrimSpace(node.Content[index].Value)
		value := unwrapNode(node.Content[index+1])
		if value == nil {
			continue
		}

		switch key {
		case "$ref":
			schema.Ref = strings.TrimSpace(scalarString(value))
		case "type":
			schema.Type = strings.ToLower(strings.TrimSpace(scalarString(value)))
		case "format":
			schema.Format = strings.ToLower(strings.TrimSpace(scalarString(value)))
		case "title":
			schema.Title = scalarString(value)
		case "description":
			schema.Description = scalarString(value)
		case "nullable", "x-nullable":
			if scalarBool(value) {
				schema.Nullable = true
			}
		case "deprecated":
			if scalarBool(value) {
				schema.Deprecated = true
			}
		case "enum":
			schema.Enum = decodeLiteralSequence(value)
		case "properties":
			schema.Properties, schema.PropertyOrder = decodePropertyMap(value)
		case "required":
			schema.Required = decodeStringSequence(value)
		case "items":
			schema.Items = schemaFromNode(value)
		case "additionalProperties":
			schema.AdditionalProps, schema.AdditionalAny = decodeAdditionalProperties(value)
		case "allOf":
			schema.AllOf = decodeSchemaSequence(value)
		case "oneOf":
			schema.OneOf = decodeSchemaSequence(value)
		case "anyOf":
			schema.AnyOf = decodeSchemaSequence(value)
		case "discriminator":
			schema.Discriminator = decodeDiscriminator(value)
		}
	}

	return schema
}

// decodePropertyMap builds child fragments preserving declaration order.
func decodePropertyMap(node *yaml.Node) (map[string]*Schema, []string) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, nil
	}

	properties := make(map[string]*Schema, len(node.Content)/2)
	order := make([]string, 0, len(node.Content)/2)
	for index := 0; index+1 < len(node.Content); index += 2 {
		name := node.Content[index].Value
		if name == "" {
			continue
		}

		if _, exists := properties[name]; !exists {
			order = append(order, name)
		}

		properties[name] = schemaFromNode(node.Content[index+1])
	}

	return properties, order
}

// decodeSchemaSequence builds fragment views for each sequence element.
func decodeSchemaSequence(node *yaml.Node) []*Schema {
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}

	out := make([]*Schema, 0, len(node.Content))
	for _, item := range node.Content {
		out = append(out, schemaFromNode(item))
	}

	return out
}

// decodeAdditionalProperties handles schema-valued and boolean-valued forms.
func decodeAdditionalProperties(node *yaml.Node) (*Schema, bool) {
	if node == nil {
		return nil, false
	}

	if node.Kind == yaml.MappingNode {
		return schemaFromNode(node), false
	}

	if node.Kind == yaml.ScalarNode && scalarBool(node) {
		return nil, true
	}

	return nil, false
}

// decodeDiscriminator supports both mapping form and bare property-name form.
func decodeDiscriminator(node *yaml.Node) *Discriminator {
	if node == nil {
		return nil
	}

	if node.Kind == yaml.ScalarNode {
		name := strings.TrimSpace(node.Value)
		if name == "" {
			return nil
		}

		return &Discriminator{PropertyName: name}
	}

	if node.Kind != yaml.MappingNode {
		return nil
	}

	out := &Discriminator{}
	for index := 0; index+1 < len(node.Content); index += 2 {
		key := strings.TrimSpace(node.Content[index].Value)
		value := unwrapNode(node.Content[index+1])
		if value == nil {
			continue
		}

		switch key {
		case "propertyName":
			out.PropertyName = strings.TrimSpace(scalarString(value))
		case "mapping":
			out.Mapping, out.MappingOrder = decodeStringMap(value)
		}
	}

	if out.PropertyName == "" && len(out.Mapping) == 0 {
		return nil
	}

	return out
}

// decodeStringMap decodes a mapping of scalar strings preserving key order.
func decodeStringMap(node *yaml.Node) (map[string]string, []string) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, nil
	}

	values := make(map[string]string, len(node.Content)/2)
	order := make([]string, 0, len(node.Content)/2)
	for index := 0; index+1 < len(node.Content); index += 2 {
		key := node.Content[index].Value
		value := unwrapNode(node.Content[index+1])
		if key == "" || value == nil || value.Kind != yaml.ScalarNode {
			continue
		}

		if _, exists := values[key]; !exists {
			order = append(order, key)
		}

		values[key] = strings.TrimSpace(value.Value)
	}

	return values, order
}

// decodeStringSequence decodes scalar sequence items into trimmed strings.
func decodeStringSequence(node *yaml.Node) []string {
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}

	out := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		item = unwrapNode(item)
		if item == nil || item.Kind != yaml.ScalarNode {
			continue
		}

		value := strings.TrimSpace(item.Value)
		if value == "" {
			continue
		}

		out = append(out, value)
	}

	return out
}

// decodeLiteralSequence decodes sequence items into native literal values.
func decodeLiteralSequence(node *yaml.Node) []any {
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}

	out := make([]any, 0, len(node.Content))
	for _, item := range node.Content {
		item = unwrapNode(item)
		if item == nil {
			continue
		}

		var value any
		if err := item.Decode(&value); err != nil {
			continue
		}

		out = append(out, value)
	}

	return out
}

// scalarString returns the raw text of a scalar node.
func scalarString(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}

	return node.Value
}

// scalarBool decodes a scalar node as boolean and defaults to false.
func scalarBool(node *yaml.Node) bool {
	if node == nil || node.Kind != yaml.ScalarNode {
		return false
	}

	var value bool
	if err := node.Decode(&value); err != nil {
		return false
	}

	return value
}

// unwrapNode resolves document wrappers and bounded alias chains.
func unwrapNode(node *yaml.Node) *yaml.Node {
	for depth := 0; node != nil && depth < maxAliasDepth; depth++ {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}

	return node
}
