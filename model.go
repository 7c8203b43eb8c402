// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

const (
	// TypeText is the Dart String scalar kind.
	TypeText TypeKind = "text"
	// TypeInt is the Dart int scalar kind.
	TypeInt TypeKind = "integer"
	// TypeDouble is the Dart double scalar kind.
	TypeDouble TypeKind = "double"
	// TypeBool is the Dart bool scalar kind.
	TypeBool TypeKind = "boolean"
	// TypeDateTime is the Dart DateTime kind used for date and date-time formats.
	TypeDateTime TypeKind = "timestamp"
	// TypeList is the Dart List kind with a typed element.
	TypeList TypeKind = "list"
	// TypeMap is the Dart Map kind with String keys and a typed value.
	TypeMap TypeKind = "map"
	// TypeDynamic is the untyped fallback kind.
	TypeDynamic TypeKind = "dynamic"
	// TypeClass references another generated record or union type.
	TypeClass TypeKind = "class"
	// TypeEnum references a generated enumeration type.
	TypeEnum TypeKind = "enum"
)

// TypeKind classifies one resolved Dart type shape.
type TypeKind string

// ResolvedType is one Dart type with its element type for containers.
type ResolvedType struct {
	// Kind classifies the type shape.
	Kind TypeKind
	// Name is the rendered Dart type name, for example List<User>.
	Name string
	// Elem is the list element or map value type for container kinds.
	Elem *ResolvedType
}

// Dart returns the non-nullable Dart type name.
func (resolved ResolvedType) Dart() string {
	return resolved.Name
}

// DartNullable returns the nullable Dart type name for optional fields.
func (resolved ResolvedType) DartNullable() string {
	if resolved.Kind == TypeDynamic {
		return resolved.Name
	}

	return resolved.Name + "?"
}

// FieldDescriptor is one generated record field.
type FieldDescriptor struct {
	// Name is the Dart member identifier.
	Name string
	// JSONKey is the original property name in the payload.
	JSONKey string
	// Type is the resolved Dart type.
	Type ResolvedType
	// Required reports that the payload must carry a non-null value.
	Required bool
	// Deprecated marks the generated member as deprecated.
	Deprecated bool
	// Description becomes the member doc comment.
	Description string
	// ForceJSONKey emits a serialization key annotation even when redundant.
	ForceJSONKey bool
}

// ClassDescriptor is one generated record type.
type ClassDescriptor struct {
	// Name is the Dart class identifier.
	Name string
	// SchemaName is the source schema container key.
	SchemaName string
	// Description becomes the class doc comment.
	Description string
	// Deprecated marks the generated class as deprecated.
	Deprecated bool
	// Fields lists generated members in declaration order.
	Fields []FieldDescriptor
	// Passthrough marks opaque wrappers that carry the raw payload value.
	Passthrough bool
}

// EnumDescriptor is one generated enumeration type.
type EnumDescriptor struct {
	// Name is the Dart enum identifier.
	Name string
	// SchemaName is the source schema key; inline enumerations leave it empty.
	SchemaName string
	// Description becomes the enum doc comment.
	Description string
	// Deprecated marks the generated enum as deprecated.
	Deprecated bool
	// Integer reports integer literal backing instead of string backing.
	Integer bool
	// Values lists members in literal declaration order.
	Values []EnumValue
}

// EnumValue is one enumeration member with its payload literal.
type EnumValue struct {
	// Name is the Dart member identifier.
	Name string
	// Literal is the raw payload value.
	Literal any
}

// ValueDart returns the Dart scalar type backing the enumeration payload.
func (enum *EnumDescriptor) ValueDart() string {
	if enum.Integer {
		return "int"
	}

	return "String"
}

// UnionDescriptor is one generated discriminated union type.
type UnionDescriptor struct {
	// Name is the Dart class identifier.
	Name string
	// SchemaName is the source schema container key.
	SchemaName string
	// Description becomes the class doc comment.
	Description string
	// Property is the payload property carrying the variant token.
	Property string
	// Variants lists token to variant bindings in declaration order.
	Variants []UnionVariant
}

// UnionVariant binds one discriminator token to a variant class.
type UnionVariant struct {
	// Token is the discriminator literal selecting this variant.
	Token string
	// TypeName is the Dart class of the variant payload.
	TypeName string
	// FieldName is the Dart member holding the decoded variant.
	FieldName string
}
