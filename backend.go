// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"fmt"
	"sort"
	"strings"
)

// ArtifactKind classifies the primary declaration of a generated file.
type ArtifactKind string

// Artifact kinds produced by generation.
const (
	ArtifactRecord ArtifactKind = "record"
	ArtifactEnum   ArtifactKind = "enum"
	ArtifactUnion  ArtifactKind = "union"
	ArtifactOpaque ArtifactKind = "opaque"
)

// Built-in rendering style names.
const (
	StylePlain            = "plain"
	StyleJSONSerializable = "json_serializable"
)

// Backend renders resolved descriptors into Dart source lines.
type Backend interface {
	// Name identifies the backend for style selection.
	Name() string
	// FileExtension returns the artifact file extension including the dot.
	FileExtension() string
	// Preamble renders the editable header emitted once when a file is created.
	Preamble(kind ArtifactKind, fileBase string, refs []string) []string
	// RenderClass renders one record declaration.
	RenderClass(class *ClassDescriptor) []string
	// RenderEnum renders one enumeration declaration.
	RenderEnum(enum *EnumDescriptor) []string
	// RenderUnion renders one discriminated union declaration.
	RenderUnion(union *UnionDescriptor) []string
}

// BackendRegistry maps style names to backend constructors.
type BackendRegistry map[string]func() Backend

// DefaultBackends returns the registry of built-in rendering styles.
func DefaultBackends() BackendRegistry {
	return BackendRegistry{
		StylePlain:            func() Backend { return newPlainBackend() },
		StyleJSONSerializable: func() Backend { return newJSONSerializableBackend() },
	}
}

// Backend resolves one registered style by name.
func (r BackendRegistry) Backend(name string) (Backend, error) {
	factory, ok := r[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownStyle, name)
	}

	return factory(), nil
}

// StyleNames lists registered style names sorted alphabetically.
func (r BackendRegistry) StyleNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// dartImportLines renders import directives for referenced generated files.
func dartImportLines(refs []string, extension string) []string {
	if len(refs) == 0 {
		return nil
	}

	sorted := append([]string(nil), refs...)
	sort.Strings(sorted)

	lines := make([]string, 0, len(sorted))
	for _, ref := range sorted {
		lines = append(lines, "import '"+ref+extension+"';")
	}

	return lines
}

// dartStringLiteral quotes a value as a single-quoted Dart string literal.
func dartStringLiteral(value string) string {
	var builder strings.Builder
	builder.Grow(len(value) + 2)
	builder.WriteByte('\'')

	for _, r := range value {
		switch r {
		case '\\', '\'', '$':
			builder.WriteByte('\\')
			builder.WriteRune(r)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			builder.WriteRune(r)
		}
	}

	builder.WriteByte('\'')
	return builder.String()
}

// dartEnumLiteral renders one enumeration literal for the declared raw type.
func dartEnumLiteral(enum *EnumDescriptor, literal any) string {
	if enum.Integer {
		return stringifyLiteral(literal)
	}

	return dartStringLiteral(stringifyLiteral(literal))
}
