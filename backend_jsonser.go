// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

// jsonSerializableBackend renders Dart records annotated for the
// json_serializable code generator. Opaque holders and union wrappers keep
// hand-rolled codecs since build_runner has nothing to derive for them.
type jsonSerializableBackend struct {
	plainBackend
}

// newJSONSerializableBackend builds the json_serializable rendering style.
func newJSONSerializableBackend() *jsonSerializableBackend {
	return &jsonSerializableBackend{}
}

// Name identifies the json_serializable style.
func (b *jsonSerializableBackend) Name() string {
	return StyleJSONSerializable
}

// Preamble renders package imports and the part directive for derived codecs.
func (b *jsonSerializableBackend) Preamble(kind ArtifactKind, fileBase string, refs []string) []string {
	lines := make([]string, 0, len(refs)+4)
	lines = append(lines, "import 'package:json_annotation/json_annotation.dart';")

	imports := dartImportLines(refs, b.FileExtension())
	if len(imports) > 0 {
		lines = append(lines, "")
		lines = append(lines, imports...)
	}

	if kind == ArtifactRecord {
		lines = append(lines, "", "part '"+fileBase+".g.dart';")
	}

	return lines
}

// RenderClass renders one annotated record delegating codecs to build_runner.
func (b *jsonSerializableBackend) RenderClass(class *ClassDescriptor) []string {
	if class.Passthrough {
		return b.renderPassthrough(class)
	}

	lines := make([]string, 0, len(class.Fields)*5+12)
	lines = append(lines, dartDocComment(class.Description, "")...)
	lines = appendDeprecated(lines, class.Deprecated, "")
	lines = append(lines, "@JsonSerializable()")
	lines = append(lines, "class "+class.Name+" {")
	lines = append(lines, b.renderConstructor(class)...)
	lines = append(lines,
		"",
		"  factory "+class.Name+".fromJson(Map<String, dynamic> json) => _$"+class.Name+"FromJson(json);",
	)
	lines = append(lines, b.renderAnnotatedFields(class)...)
	lines = append(lines,
		"",
		"  Map<String, dynamic> toJson() => _$"+class.Name+"ToJson(this);",
		"}",
	)
	return lines
}

// renderAnnotatedFields emits field declarations with serialization keys.
func (b *jsonSerializableBackend) renderAnnotatedFields(class *ClassDescriptor) []string {
	lines := make([]string, 0, len(class.Fields)*4)
	for _, field := range class.Fields {
		lines = append(lines, "")
		lines = append(lines, dartDocComment(field.Description, "  ")...)
		lines = appendDeprecated(lines, field.Deprecated, "  ")
		if field.ForceJSONKey || field.JSONKey != field.Name {
			lines = append(lines, "  @JsonKey(name: "+dartStringLiteral(field.JSONKey)+")")
		}

		declared := field.Type.Dart()
		if !field.Required {
			declared = field.Type.DartNullable()
		}

		lines = append(lines, "  final "+declared+" "+field.Name+";")
	}

	return lines
}

// RenderEnum renders one value-backed enumeration with the derive annotation.
func (b *jsonSerializableBackend) RenderEnum(enum *EnumDescriptor) []string {
	lines := make([]string, 0, len(enum.Values)+18)
	lines = append(lines, dartDocComment(enum.Description, "")...)
	lines = appendDeprecated(lines, enum.Deprecated, "")
	lines = append(lines, "@JsonEnum(valueField: 'value')")
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
