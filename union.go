// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import "strings"

// synthesizeUnion converts one oneOf/anyOf fragment into either a discriminated
// union or an opaque wrapper class. Exactly one of the results is non-nil.
func synthesizeUnion(ctx *generationContext, comp *composer, name string, schema *Schema) (*UnionDescriptor, *ClassDescriptor) {
	disc := schema.Discriminator

	if disc != nil && len(disc.Mapping) > 0 {
		if union := mappedUnion(ctx, name, schema, disc); union != nil {
			return union, nil
		}
	}

	if disc != nil && disc.PropertyName != "" {
		if union := inferredUnion(ctx, comp, name, schema, disc); union != nil {
			return union, nil
		}
	}

	return nil, opaqueFallback(ctx, name, schema)
}

// mappedUnion builds variants from an explicit discriminator mapping.
func mappedUnion(ctx *generationContext, name string, schema *Schema, disc *Discriminator) *UnionDescriptor {
	if disc.PropertyName == "" || len(disc.MappingOrder) == 0 {
		return nil
	}

	union := &UnionDescriptor{
		Name:        ctx.typeNameFor(name),
		SchemaName:  name,
		Description: schema.Description,
		Property:    disc.PropertyName,
		Variants:    make([]UnionVariant, 0, len(disc.MappingOrder)),
	}

	for _, token := range disc.MappingOrder {
		ref := disc.Mapping[token]
		if _, ok := ctx.doc.Resolve(ref); !ok {
			ctx.lint(LintMissingRefTarget, name, "unresolved mapping reference "+ref)
		}

		typeName := ctx.typeNameFor(RefName(ref))
		union.Variants = append(union.Variants, UnionVariant{
			Token:     token,
			TypeName:  typeName,
			FieldName: lowerCamelCase(typeName),
		})
	}

	return union
}

// inferredUnion derives variant tokens from single-literal discriminator enums.
func inferredUnion(ctx *generationContext, comp *composer, name string, schema *Schema, disc *Discriminator) *UnionDescriptor {
	variants := schema.UnionVariants()
	if len(variants) == 0 {
		return nil
	}

	union := &UnionDescriptor{
		Name:        ctx.typeNameFor(name),
		SchemaName:  name,
		Description: schema.Description,
		Property:    disc.PropertyName,
		Variants:    make([]UnionVariant, 0, len(variants)),
	}

	seenTokens := make(map[string]struct{}, len(variants))
	for _, variant := range variants {
		if variant == nil || variant.Ref == "" {
			return nil
		}

		resolved, ok := ctx.doc.Resolve(variant.Ref)
		if !ok {
			return nil
		}

		targetName := RefName(variant.Ref)
		token, ok := variantToken(comp.effectiveSchema(targetName, resolved), disc.PropertyName)
		if !ok {
			return nil
		}

		if _, duplicate := seenTokens[token]; duplicate {
			return nil
		}

		seenTokens[token] = struct{}{}
		typeName := ctx.typeNameFor(targetName)
		union.Variants = append(union.Variants, UnionVariant{
			Token:     token,
			TypeName:  typeName,
			FieldName: lowerCamelCase(typeName),
		})
	}

	return union
}

// variantToken extracts the single string literal of a discriminator property.
func variantToken(effective *Schema, property string) (string, bool) {
	if effective == nil || len(effective.Properties) == 0 {
		return "", false
	}

	fragment, ok := effective.Properties[property]
	if !ok || fragment == nil || len(fragment.Enum) != 1 {
		return "", false
	}

	token, ok := fragment.Enum[0].(string)
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}

	return token, true
}

// opaqueFallback wraps undecidable unions in a raw passthrough value class.
func opaqueFallback(ctx *generationContext, name string, schema *Schema) *ClassDescriptor {
	candidates := make([]string, 0, len(schema.UnionVariants()))
	for _, variant := range schema.UnionVariants() {
		if variant == nil {
			continue
		}

		if variant.Ref != "" {
			candidates = append(candidates, ctx.typeNameFor(RefName(variant.Ref)))
			continue
		}

		if variant.Type != "" {
			candidates = append(candidates, variant.Type)
		}
	}

	description := strings.TrimSpace(schema.Description)
	if len(candidates) > 0 {
		note := "Opaque payload holder; expected shapes: " + strings.Join(candidates, ", ") + "."
		if description == "" {
			description = note
		} else {
			description += "\n\n" + note
		}
	}

	return &ClassDescriptor{
		Name:        ctx.typeNameFor(name),
		SchemaName:  name,
		Description: description,
		Deprecated:  schema.Deprecated,
		Passthrough: true,
		Fields: []FieldDescriptor{{
			Name:     "value",
			JSONKey:  "",
			Type:     dynamicType(),
			Required: true,
		}},
	}
}
