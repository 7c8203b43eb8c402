// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"strings"
	"testing"
)

// testRecordClass builds one descriptor covering required, optional and
// deprecated members.
func testRecordClass() *ClassDescriptor {
	return &ClassDescriptor{
		Name:        "Pet",
		SchemaName:  "Pet",
		Description: "A pet.",
		Fields: []FieldDescriptor{
			{
				Name:     "id",
				JSONKey:  "id",
				Type:     ResolvedType{Kind: TypeInt, Name: "int"},
				Required: true,
			},
			{
				Name:    "nickName",
				JSONKey: "nick_name",
				Type:    ResolvedType{Kind: TypeText, Name: "String"},
			},
			{
				Name:       "createdAt",
				JSONKey:    "created_at",
				Type:       ResolvedType{Kind: TypeDateTime, Name: "DateTime"},
				Required:   true,
				Deprecated: true,
			},
		},
	}
}

func TestPlainRenderClass(t *testing.T) {
	t.Parallel()

	rendered := strings.Join(newPlainBackend().RenderClass(testRecordClass()), "\n")

	assertContains(t, rendered, "/// A pet.")
	assertContains(t, rendered, "class Pet {")
	assertContains(t, rendered, "    required this.id,")
	assertContains(t, rendered, "    this.nickName,")
	assertContains(t, rendered, "  factory Pet.fromJson(Map<String, dynamic> json) {")
	assertContains(t, rendered, "      id: (json['id'] as num).toInt(),")
	assertContains(t, rendered, "      nickName: json['nick_name'] as String?,")
	assertContains(t, rendered, "      createdAt: DateTime.parse(json['created_at'] as String),")
	assertContains(t, rendered, "  final int id;")
	assertContains(t, rendered, "  final String? nickName;")
	assertContains(t, rendered, "  @deprecated\n  final DateTime createdAt;")
	assertContains(t, rendered, "  Map<String, dynamic> toJson() {")
	assertContains(t, rendered, "      'nick_name': nickName,")
	assertContains(t, rendered, "      'created_at': createdAt.toIso8601String(),")
	assertNotContains(t, rendered, "@JsonSerializable")
}

func TestPlainRenderEmptyClass(t *testing.T) {
	t.Parallel()

	rendered := strings.Join(newPlainBackend().RenderClass(&ClassDescriptor{Name: "Nothing"}), "\n")

	assertContains(t, rendered, "  Nothing();")
	assertContains(t, rendered, "    return Nothing();")
	assertContains(t, rendered, "    return <String, dynamic>{")
}

func TestPlainRenderPassthrough(t *testing.T) {
	t.Parallel()

	class := &ClassDescriptor{
		Name:        "Payload",
		Description: "Opaque payload holder.",
		Passthrough: true,
		Fields:      []FieldDescriptor{{Name: "value", Type: dynamicType(), Required: true}},
	}

	rendered := strings.Join(newPlainBackend().RenderClass(class), "\n")

	assertContains(t, rendered, "/// Opaque payload holder.")
	assertContains(t, rendered, "  Payload({required this.value});")
	assertContains(t, rendered, "  factory Payload.fromJson(dynamic json) {")
	assertContains(t, rendered, "    return Payload(value: json);")
	assertContains(t, rendered, "  final dynamic value;")
	assertContains(t, rendered, "  dynamic toJson() {")
	assertNotContains(t, rendered, "Map<String, dynamic> toJson")
}

func TestPlainRenderEnum(t *testing.T) {
	t.Parallel()

	enum := &EnumDescriptor{
		Name:        "Status",
		Description: "Pet availability.",
		Values: []EnumValue{
			{Name: "available", Literal: "available"},
			{Name: "sold", Literal: "sold"},
		},
	}

	rendered := strings.Join(newPlainBackend().RenderEnum(enum), "\n")

	assertContains(t, rendered, "/// Pet availability.")
	assertContains(t, rendered, "enum Status {")
	assertContains(t, rendered, "  available('available'),")
	assertContains(t, rendered, "  sold('sold');")
	assertContains(t, rendered, "  const Status(this.value);")
	assertContains(t, rendered, "  final String value;")
	assertContains(t, rendered, "  static Status fromJson(String value) {")
	assertContains(t, rendered, "    return values.firstWhere((item) => item.value == value);")
	assertContains(t, rendered, "  String toJson() {")
}

func TestPlainRenderIntegerEnum(t *testing.T) {
	t.Parallel()

	enum := &EnumDescriptor{
		Name:    "Code",
		Integer: true,
		Values: []EnumValue{
			{Name: "v1", Literal: 1},
			{Name: "v2", Literal: 2},
		},
	}

	rendered := strings.Join(newPlainBackend().RenderEnum(enum), "\n")

	assertContains(t, rendered, "  v1(1),")
	assertContains(t, rendered, "  v2(2);")
	assertContains(t, rendered, "  final int value;")
	assertContains(t, rendered, "  static Code fromJson(int value) {")
}

func TestPlainRenderUnion(t *testing.T) {
	t.Parallel()

	union := &UnionDescriptor{
		Name:     "Pet",
		Property: "petType",
		Variants: []UnionVariant{
			{Token: "dog", TypeName: "Dog", FieldName: "dog"},
			{Token: "cat", TypeName: "Cat", FieldName: "cat"},
		},
	}

	rendered := strings.Join(newPlainBackend().RenderUnion(union), "\n")

	assertContains(t, rendered, "  Pet({this.dog, this.cat});")
	assertContains(t, rendered, "    switch (json['petType'] as String?) {")
	assertContains(t, rendered, "      case 'dog':")
	assertContains(t, rendered, "        return Pet(dog: Dog.fromJson(json));")
	assertContains(t, rendered, "      case 'cat':")
	assertContains(t, rendered, "      default:")
	assertContains(t, rendered, `        throw FormatException("unsupported Pet discriminator: ${json['petType']}");`)
	assertContains(t, rendered, "  final Dog? dog;")
	assertContains(t, rendered, "  final Cat? cat;")
	assertContains(t, rendered, "    return dog?.toJson() ?? cat?.toJson() ?? <String, dynamic>{};")
}

func TestPlainRenderUnionMatchers(t *testing.T) {
	t.Parallel()

	union := &UnionDescriptor{
		Name:     "Pet",
		Property: "petType",
		Variants: []UnionVariant{
			{Token: "dog", TypeName: "Dog", FieldName: "dog"},
			{Token: "cat", TypeName: "Cat", FieldName: "cat"},
		},
	}

	rendered := strings.Join(newPlainBackend().RenderUnion(union), "\n")

	assertContains(t, rendered, "  T when<T>({")
	assertContains(t, rendered, "    required T Function(Dog value) dog,")
	assertContains(t, rendered, "    required T Function(Cat value) cat,")
	assertContains(t, rendered, "    if (this.dog != null) {")
	assertContains(t, rendered, "      return dog(this.dog!);")
	assertContains(t, rendered, "    throw StateError('no Pet variant is set');")

	assertContains(t, rendered, "  T maybeWhen<T>({")
	assertContains(t, rendered, "    T Function(Dog value)? dog,")
	assertContains(t, rendered, "    required T Function() orElse,")
	assertContains(t, rendered, "    if (this.cat != null && cat != null) {")
	assertContains(t, rendered, "    return orElse();")
}

func TestPlainPreamble(t *testing.T) {
	t.Parallel()

	backend := newPlainBackend()
	lines := backend.Preamble(ArtifactRecord, "pet", []string{"tag", "status"})
	if len(lines) != 2 || lines[0] != "import 'status.dart';" {
		t.Fatalf("preamble = %q", lines)
	}

	if backend.Preamble(ArtifactRecord, "pet", nil) != nil {
		t.Fatal("preamble without refs should be empty")
	}
}
