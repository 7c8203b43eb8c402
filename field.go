// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import "strings"

// dartPrimitiveNames maps schema scalar types to default Dart type names.
var dartPrimitiveNames = map[string]string{
	"string":  "String",
	"integer": "int",
	"number":  "double",
	"boolean": "bool",
}

// dateFormats lists format values that resolve to Dart DateTime.
var dateFormats = map[string]struct{}{
	"date":      {},
	"date-time": {},
}

// maxTypeDepth bounds recursive type resolution through nested fragments.
const maxTypeDepth = 32

// buildClass converts one effective object fragment into a record descriptor.
func buildClass(ctx *generationContext, schemaName string, effective *Schema, ownerFile string) *ClassDescriptor {
	class := &ClassDescriptor{
		Name:        ctx.typeNameFor(schemaName),
		SchemaName:  schemaName,
		Description: effective.Description,
		Deprecated:  effective.Deprecated,
	}

	class.Fields = buildFields(ctx, schemaName, effective, ownerFile)
	return class
}

// buildFields converts object properties into field descriptors in source order.
func buildFields(ctx *generationContext, schemaName string, effective *Schema, ownerFile string) []FieldDescriptor {
	if len(effective.PropertyOrder) == 0 {
		return nil
	}

	fields := make([]FieldDescriptor, 0, len(effective.PropertyOrder))
	for _, propName := range effective.PropertyOrder {
		fragment, ok := effective.Properties[propName]
		if !ok {
			continue
		}

		fields = append(fields, fieldFor(ctx, schemaName, propName, fragment, ownerFile))
	}

	return fields
}

// fieldFor builds one field descriptor from a property fragment.
func fieldFor(ctx *generationContext, schemaName, propName string, fragment *Schema, ownerFile string) FieldDescriptor {
	name := ctx.config.fieldNameOverride(schemaName, propName)
	if name == "" {
		name = lowerCamelCase(propName)
	}

	field := FieldDescriptor{
		Name:         name,
		JSONKey:      propName,
		Type:         typeFor(ctx, schemaName, propName, fragment, ownerFile),
		Required:     !fragment.Nullable,
		Deprecated:   fragment.Deprecated,
		Description:  fragment.Description,
		ForceJSONKey: ctx.config.explicitJSONKeys(schemaName),
	}

	if isIdentifierName(propName) && (field.Type.Kind == TypeDouble || field.Type.Kind == TypeBool) {
		ctx.lint(LintSuspiciousIDField, schemaName, "identifier field "+propName+" resolves to "+field.Type.Name)
	}

	return field
}

// typeFor resolves one property fragment into a Dart type.
//
// Resolution priority: references, enum literals, arrays, objects and maps,
// formatted strings, scalars, then the untyped fallback.
func typeFor(ctx *generationContext, schemaName, propName string, fragment *Schema, ownerFile string) ResolvedType {
	if fragment == nil {
		ctx.lint(LintMissingType, schemaName, "property "+propName+" has no schema")
		return dynamicType()
	}

	if ctx.typeDepth >= maxTypeDepth {
		ctx.lint(LintMissingRefTarget, schemaName, "property "+propName+" exceeds the type resolution depth limit")
		return dynamicType()
	}

	ctx.typeDepth++
	defer func() { ctx.typeDepth-- }()

	if fragment.Ref != "" {
		return referenceType(ctx, schemaName, propName, fragment.Ref, ownerFile)
	}

	if fragment.Enum != nil {
		return inlineEnumType(ctx, schemaName, propName, fragment, ownerFile)
	}

	checkFormatMismatch(ctx, schemaName, propName, fragment)

	switch fragment.Type {
	case "array":
		return arrayType(ctx, schemaName, propName, fragment, ownerFile)
	case "object":
		return objectType(ctx, schemaName, propName, fragment, ownerFile)
	case "string":
		if _, dated := dateFormats[fragment.Format]; dated {
			return ResolvedType{Kind: TypeDateTime, Name: "DateTime"}
		}

		return primitiveType(ctx, schemaName, TypeText, "string")
	case "integer":
		return primitiveType(ctx, schemaName, TypeInt, "integer")
	case "number":
		return primitiveType(ctx, schemaName, TypeDouble, "number")
	case "boolean":
		return primitiveType(ctx, schemaName, TypeBool, "boolean")
	}

	ctx.lint(LintMissingType, schemaName, "property "+propName+" has no resolvable type")
	return dynamicType()
}

// referenceType resolves named references with best-effort fallback naming.
// References to alias schemas without a shape of their own are inlined as the
// aliased type since they never become generated declarations.
func referenceType(ctx *generationContext, schemaName, propName, ref, ownerFile string) ResolvedType {
	seen := make(map[string]struct{}, 2)
	for {
		if _, cyclic := seen[ref]; cyclic {
			ctx.lint(LintMissingRefTarget, schemaName, "reference cycle through "+ref)
			return dynamicType()
		}

		seen[ref] = struct{}{}
		targetName := RefName(ref)
		target, ok := ctx.doc.Resolve(ref)
		if !ok {
			ctx.lint(LintMissingRefTarget, schemaName, "unresolved reference "+ref)
			return ResolvedType{Kind: TypeClass, Name: ctx.typeNameFor(targetName)}
		}

		switch {
		case target.IsEnum():
			_, integer := enumValuesFromLiterals(target.Enum)
			return enumType(ctx.typeNameFor(targetName), integer)
		case target.IsUnion() || target.yieldsRecord():
			return ResolvedType{Kind: TypeClass, Name: ctx.typeNameFor(targetName)}
		case target.Ref != "":
			ref = target.Ref
		default:
			return typeFor(ctx, schemaName, propName, target, ownerFile)
		}
	}
}

// inlineEnumType synthesizes or reuses an enumeration for inline literals.
func inlineEnumType(ctx *generationContext, schemaName, propName string, fragment *Schema, ownerFile string) ResolvedType {
	if len(fragment.Enum) == 0 {
		ctx.lint(LintEmptyEnum, schemaName, "property "+propName+" declares an empty enum")
		return primitiveType(ctx, schemaName, TypeText, "string")
	}

	enum := ctx.internInlineEnum(pascalCase(propName), fragment.Enum, fragment.Description, ownerFile)
	if enum == nil {
		ctx.lint(LintEmptyEnum, schemaName, "property "+propName+" declares no usable enum literals")
		return primitiveType(ctx, schemaName, TypeText, "string")
	}

	return enumType(enum.Name, enum.Integer)
}

// enumType builds an enumeration reference carrying its raw wire scalar type.
func enumType(name string, integer bool) ResolvedType {
	raw := ResolvedType{Kind: TypeText, Name: "String"}
	if integer {
		raw = ResolvedType{Kind: TypeInt, Name: "int"}
	}

	return ResolvedType{Kind: TypeEnum, Name: name, Elem: &raw}
}

// arrayType resolves list element types and flags missing items schemas.
func arrayType(ctx *generationContext, schemaName, propName string, fragment *Schema, ownerFile string) ResolvedType {
	if fragment.Items == nil {
		ctx.lint(LintArrayNoItems, schemaName, "array property "+propName+" has no items schema")
		elem := dynamicType()
		return ResolvedType{Kind: TypeList, Name: "List<dynamic>", Elem: &elem}
	}

	elem := typeFor(ctx, schemaName, propName, fragment.Items, ownerFile)
	return ResolvedType{Kind: TypeList, Name: "List<" + elem.Name + ">", Elem: &elem}
}

// objectType resolves inline objects, typed maps and the untyped map fallback.
func objectType(ctx *generationContext, schemaName, propName string, fragment *Schema, ownerFile string) ResolvedType {
	if len(fragment.PropertyOrder) > 0 {
		return inlineClassType(ctx, schemaName, propName, fragment, ownerFile)
	}

	if fragment.AdditionalProps != nil {
		value := typeFor(ctx, schemaName, propName, fragment.AdditionalProps, ownerFile)
		return ResolvedType{Kind: TypeMap, Name: "Map<String, " + value.Name + ">", Elem: &value}
	}

	elem := dynamicType()
	return ResolvedType{Kind: TypeMap, Name: "Map<String, dynamic>", Elem: &elem}
}

// inlineClassType synthesizes a nested record for one inline object fragment.
func inlineClassType(ctx *generationContext, schemaName, propName string, fragment *Schema, ownerFile string) ResolvedType {
	class := &ClassDescriptor{
		Name:        ctx.uniqueLocalTypeName(pascalCase(propName)),
		Description: fragment.Description,
		Deprecated:  fragment.Deprecated,
	}

	ctx.addPendingClass(class, ownerFile)
	class.Fields = buildFields(ctx, schemaName, fragment, ownerFile)
	return ResolvedType{Kind: TypeClass, Name: class.Name}
}

// primitiveType applies configured display overrides over default scalar names.
func primitiveType(ctx *generationContext, schemaName string, kind TypeKind, schemaType string) ResolvedType {
	name := ctx.config.primitiveOverride(schemaName, schemaType)
	if name == "" {
		name = dartPrimitiveNames[schemaType]
	}

	return ResolvedType{Kind: kind, Name: name}
}

// checkFormatMismatch flags date formats declared on non-string types.
func checkFormatMismatch(ctx *generationContext, schemaName, propName string, fragment *Schema) {
	if fragment.Type == "" || fragment.Type == "string" {
		return
	}

	if _, dated := dateFormats[fragment.Format]; dated {
		ctx.lint(LintTypeFormatMismatch, schemaName, "property "+propName+" declares format "+fragment.Format+" on type "+fragment.Type)
	}
}

// isIdentifierName reports whether a property name looks like an entity identifier.
func isIdentifierName(propName string) bool {
	normalized := snakeCase(propName)
	return normalized == "id" || strings.HasSuffix(normalized, "_id")
}

// dynamicType returns the untyped fallback type.
func dynamicType() ResolvedType {
	return ResolvedType{Kind: TypeDynamic, Name: "dynamic"}
}
