// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import "strings"

// plainBackend renders dependency-free Dart records with hand-rolled codecs.
type plainBackend struct{}

// newPlainBackend builds the plain rendering style.
func newPlainBackend() *plainBackend {
	return &plainBackend{}
}

// Name identifies the plain style.
func (b *plainBackend) Name() string {
	return StylePlain
}

// FileExtension returns the Dart artifact extension.
func (b *plainBackend) FileExtension() string {
	return ".dart"
}

// Preamble renders import directives for referenced generated files.
func (b *plainBackend) Preamble(_ ArtifactKind, _ string, refs []string) []string {
	return dartImportLines(refs, b.FileExtension())
}

// RenderClass renders one record with constructor, decoder and encoder.
func (b *plainBackend) RenderClass(class *ClassDescriptor) []string {
	if class.Passthrough {
		return b.renderPassthrough(class)
	}

	lines := make([]string, 0, len(class.Fields)*6+16)
	lines = append(lines, dartDocComment(class.Description, "")...)
	lines = appendDeprecated(lines, class.Deprecated, "")
	lines = append(lines, "class "+class.Name+" {")
	lines = append(lines, b.renderConstructor(class)...)
	lines = append(lines, "")
	lines = append(lines, b.renderFromJSON(class)...)
	lines = append(lines, b.renderFieldDecls(class)...)
	lines = append(lines, "")
	lines = append(lines, b.renderToJSON(class)...)
	lines = append(lines, "}")
	return lines
}

// renderConstructor emits the named-parameter default constructor.
func (b *plainBackend) renderConstructor(class *ClassDescriptor) []string {
	if len(class.Fields) == 0 {
		return []string{"  " + class.Name + "();"}
	}

	lines := make([]string, 0, len(class.Fields)+2)
	lines = append(lines, "  "+class.Name+"({")
	for _, field := range class.Fields {
		if field.Required {
			lines = append(lines, "    required this."+field.Name+",")
		} else {
			lines = append(lines, "    this."+field.Name+",")
		}
	}

	lines = append(lines, "  });")
	return lines
}

// renderFromJSON emits the map-decoding factory.
func (b *plainBackend) renderFromJSON(class *ClassDescriptor) []string {
	lines := make([]string, 0, len(class.Fields)+4)
	lines = append(lines, "  factory "+class.Name+".fromJson(Map<String, dynamic> json) {")
	if len(class.Fields) == 0 {
		lines = append(lines, "    return "+class.Name+"();", "  }")
		return lines
	}

	lines = append(lines, "    return "+class.Name+"(")
	for _, field := range class.Fields {
		src := "json[" + dartStringLiteral(field.JSONKey) + "]"
		lines = append(lines, "      "+field.Name+": "+fieldFromJSONExpr(field, src)+",")
	}

	lines = append(lines, "    );", "  }")
	return lines
}

// renderFieldDecls emits one final field declaration per descriptor.
func (b *plainBackend) renderFieldDecls(class *ClassDescriptor) []string {
	lines := make([]string, 0, len(class.Fields)*3)
	for _, field := range class.Fields {
		lines = append(lines, "")
		lines = append(lines, dartDocComment(field.Description, "  ")...)
		lines = appendDeprecated(lines, field.Deprecated, "  ")
		declared := field.Type.Dart()
		if !field.Required {
			declared = field.Type.DartNullable()
		}

		lines = append(lines, "  final "+declared+" "+field.Name+";")
	}

	return lines
}

// renderToJSON emits the map-encoding method.
func (b *plainBackend) renderToJSON(class *ClassDescriptor) []string {
	lines := make([]string, 0, len(class.Fields)+4)
	lines = append(lines, "  Map<String, dynamic> toJson() {", "    return <String, dynamic>{")
	for _, field := range class.Fields {
		lines = append(lines, "      "+dartStringLiteral(field.JSONKey)+": "+fieldToJSONExpr(field, field.Name)+",")
	}

	lines = append(lines, "    };", "  }")
	return lines
}

// renderPassthrough emits an opaque holder that round-trips raw payloads.
func (b *plainBackend) renderPassthrough(class *ClassDescriptor) []string {
	lines := make([]string, 0, 16)
	lines = append(lines, dartDocComment(class.Description, "")...)
	lines = appendDeprecated(lines, class.Deprecated, "")
	lines = append(lines,
		"class "+class.Name+" {",
		"  "+class.Name+"({required this.value});",
		"",
		"  factory "+class.Name+".fromJson(dynamic json) {",
		"    return "+class.Name+"(value: json);",
		"  }",
		"",
		"  final dynamic value;",
		"",
		"  dynamic toJson() {",
		"    return value;",
		"  }",
		"}",
	)
	return lines
}

// RenderEnum renders one enumeration with raw-value codecs.
func (b *plainBackend) RenderEnum(enum *EnumDescriptor) []string {
	lines := make([]string, 0, len(enum.Values)+16)
	lines = append(lines, dartDocComment(enum.Description, "")...)
	lines = appendDeprecated(lines, enum.Deprecated, "")
	lines = append(lines, "enum "+enum.Name+" {")
	lines = append(lines, renderEnumMembers(enum)...)

	raw := enum.ValueDart()
	lines = append(lines,
		"",
		"  const "+enum.Name+"(this.value);",
		"",
		"  final "+raw+" value;",
		"",
		"  static "+enum.Name+" fromJson("+raw+" value) {",
		"    return values.firstWhere((item) => item.value == value);",
		"  }",
		"",
		"  "+raw+" toJson() {",
		"    return value;",
		"  }",
		"}",
	)
	return lines
}

// RenderUnion renders one discriminated wrapper routed by token.
func (b *plainBackend) RenderUnion(union *UnionDescriptor) []string {
	lines := make([]string, 0, len(union.Variants)*5+16)
	lines = append(lines, dartDocComment(union.Description, "")...)
	lines = append(lines, "class "+union.Name+" {")

	params := make([]string, 0, len(union.Variants))
	for _, variant := range union.Variants {
		params = append(params, "this."+variant.FieldName)
	}

	lines = append(lines, "  "+union.Name+"({"+strings.Join(params, ", ")+"});")

	key := dartStringLiteral(union.Property)
	lines = append(lines,
		"",
		"  factory "+union.Name+".fromJson(Map<String, dynamic> json) {",
		"    switch (json["+key+"] as String?) {",
	)
	for _, variant := range union.Variants {
		lines = append(lines,
			"      case "+dartStringLiteral(variant.Token)+":",
			"        return "+union.Name+"("+variant.FieldName+": "+variant.TypeName+".fromJson(json));",
		)
	}

	lines = append(lines,
		"      default:",
		"        throw FormatException(\"unsupported "+union.Name+" discriminator: ${json["+key+"]}\");",
		"    }",
		"  }",
	)

	for _, variant := range union.Variants {
		lines = append(lines, "", "  final "+variant.TypeName+"? "+variant.FieldName+";")
	}

	lines = append(lines, b.renderWhen(union)...)
	lines = append(lines, b.renderMaybeWhen(union)...)

	encoders := make([]string, 0, len(union.Variants)+1)
	for _, variant := range union.Variants {
		encoders = append(encoders, variant.FieldName+"?.toJson()")
	}

	encoders = append(encoders, "<String, dynamic>{}")
	lines = append(lines,
		"",
		"  Map<String, dynamic> toJson() {",
		"    return "+strings.Join(encoders, " ?? ")+";",
		"  }",
		"}",
	)
	return lines
}

// renderWhen emits the exhaustive matcher taking one handler per variant.
func (b *plainBackend) renderWhen(union *UnionDescriptor) []string {
	lines := make([]string, 0, len(union.Variants)*4+8)
	lines = append(lines, "", "  T when<T>({")
	for _, variant := range union.Variants {
		lines = append(lines, "    required T Function("+variant.TypeName+" value) "+variant.FieldName+",")
	}

	lines = append(lines, "  }) {")
	for _, variant := range union.Variants {
		lines = append(lines,
			"    if (this."+variant.FieldName+" != null) {",
			"      return "+variant.FieldName+"(this."+variant.FieldName+"!);",
			"    }",
		)
	}

	lines = append(lines,
		"    throw StateError('no "+union.Name+" variant is set');",
		"  }",
	)
	return lines
}

// renderMaybeWhen emits the partial matcher falling back to orElse.
func (b *plainBackend) renderMaybeWhen(union *UnionDescriptor) []string {
	lines := make([]string, 0, len(union.Variants)*4+8)
	lines = append(lines, "", "  T maybeWhen<T>({")
	for _, variant := range union.Variants {
		lines = append(lines, "    T Function("+variant.TypeName+" value)? "+variant.FieldName+",")
	}

	lines = append(lines, "    required T Function() orElse,", "  }) {")
	for _, variant := range union.Variants {
		lines = append(lines,
			"    if (this."+variant.FieldName+" != null && "+variant.FieldName+" != null) {",
			"      return "+variant.FieldName+"(this."+variant.FieldName+"!);",
			"    }",
		)
	}

	lines = append(lines,
		"    return orElse();",
		"  }",
	)
	return lines
}

// renderEnumMembers emits the value list shared by both rendering styles.
func renderEnumMembers(enum *EnumDescriptor) []string {
	lines := make([]string, 0, len(enum.Values))
	for index, value := range enum.Values {
		terminator := ","
		if index == len(enum.Values)-1 {
			terminator = ";"
		}

		lines = append(lines, "  "+value.Name+"("+dartEnumLiteral(enum, value.Literal)+")"+terminator)
	}

	return lines
}

// appendDeprecated emits the deprecation annotation when flagged.
func appendDeprecated(lines []string, deprecated bool, indent string) []string {
	if !deprecated {
		return lines
	}

	return append(lines, indent+"@deprecated")
}
