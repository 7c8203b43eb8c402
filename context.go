// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"strconv"
	"strings"
)

// generationContext carries all per-run state through the generation pipeline.
//
// Names split into two scopes. The global scope holds identifiers reserved up
// front for every named schema, so it never depends on which schemas actually
// render. The local scope holds inline types synthesized for the artifact in
// progress and resets between artifacts, which keeps each generated file
// byte-identical no matter what subset of schemas a run touches.
type generationContext struct {
	doc         *Document
	config      *Config
	severities  map[string]Severity
	diagnostics []Diagnostic
	classNames  map[string]string
	typeFiles   map[string]string

	globalTypeNames map[string]struct{}
	globalEnums     map[string]*EnumDescriptor

	localTypeNames map[string]struct{}
	localEnums     map[string]*EnumDescriptor
	pendingEnums   []*EnumDescriptor
	pendingClasses []*ClassDescriptor
	typeDepth      int
}

// newGenerationContext builds fresh pipeline state for one generation run.
func newGenerationContext(doc *Document, config *Config, severities map[string]Severity) *generationContext {
	return &generationContext{
		doc:             doc,
		config:          config,
		severities:      severities,
		classNames:      make(map[string]string),
		typeFiles:       make(map[string]string),
		globalTypeNames: make(map[string]struct{}),
		globalEnums:     make(map[string]*EnumDescriptor),
		localTypeNames:  make(map[string]struct{}),
		localEnums:      make(map[string]*EnumDescriptor),
	}
}

// beginArtifact resets artifact-scoped naming state.
func (ctx *generationContext) beginArtifact() {
	ctx.localTypeNames = make(map[string]struct{})
	ctx.localEnums = make(map[string]*EnumDescriptor)
	ctx.pendingEnums = nil
	ctx.pendingClasses = nil
}

// lint records one finding for a configurable rule honoring severity overrides.
func (ctx *generationContext) lint(rule, schemaName, detail string) {
	severity, ok := ctx.severities[rule]
	if !ok {
		severity = SeverityWarning
	}

	if severity == SeverityOff {
		return
	}

	ctx.diagnostics = append(ctx.diagnostics, Diagnostic{
		Rule:     rule,
		Severity: severity,
		Schema:   schemaName,
		Detail:   detail,
	})
}

// warn records one fixed-severity engine warning.
func (ctx *generationContext) warn(rule, schemaName, detail string) {
	ctx.diagnostics = append(ctx.diagnostics, Diagnostic{
		Rule:     rule,
		Severity: SeverityWarning,
		Schema:   schemaName,
		Detail:   detail,
	})
}

// hasErrors reports whether any accumulated finding carries error severity.
func (ctx *generationContext) hasErrors() bool {
	for _, diag := range ctx.diagnostics {
		if diag.Severity == SeverityError {
			return true
		}
	}

	return false
}

// registerTypeName binds one schema name to its generated type and artifact file.
func (ctx *generationContext) registerTypeName(schemaName, typeName, fileBase string) {
	ctx.classNames[schemaName] = typeName
	ctx.globalTypeNames[typeName] = struct{}{}
	ctx.typeFiles[typeName] = fileBase
}

// typeNameFor returns the registered type name with a best-effort naming fallback.
func (ctx *generationContext) typeNameFor(schemaName string) string {
	if name, ok := ctx.classNames[schemaName]; ok {
		return name
	}

	return pascalCase(schemaName)
}

// fileFor returns the artifact file base that declares one generated type.
func (ctx *generationContext) fileFor(typeName string) (string, bool) {
	fileBase, ok := ctx.typeFiles[typeName]
	return fileBase, ok
}

// uniqueTypeName reserves a globally scoped type identifier for a named schema.
func (ctx *generationContext) uniqueTypeName(base string) string {
	return ctx.claimTypeName(base, ctx.globalTypeNames)
}

// uniqueLocalTypeName reserves an artifact-scoped identifier for an inline type.
func (ctx *generationContext) uniqueLocalTypeName(base string) string {
	return ctx.claimTypeName(base, ctx.localTypeNames)
}

// claimTypeName finds a free identifier derived from base and records it in
// the given scope. Both scopes are consulted for collisions.
func (ctx *generationContext) claimTypeName(base string, scope map[string]struct{}) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "Value"
	}

	if !ctx.typeNameTaken(base) {
		scope[base] = struct{}{}
		return base
	}

	for suffix := 1; ; suffix++ {
		candidate := base + strconv.Itoa(suffix)
		if ctx.typeNameTaken(candidate) {
			continue
		}

		scope[candidate] = struct{}{}
		return candidate
	}
}

// typeNameTaken reports whether an identifier is reserved in either scope.
func (ctx *generationContext) typeNameTaken(name string) bool {
	if _, taken := ctx.globalTypeNames[name]; taken {
		return true
	}

	_, taken := ctx.localTypeNames[name]
	return taken
}

// internInlineEnum reuses or synthesizes one inline enumeration descriptor.
// Named enumerations with identical literals win over a fresh declaration;
// otherwise reuse is scoped to the current artifact.
func (ctx *generationContext) internInlineEnum(base string, literals []any, description, ownerFile string) *EnumDescriptor {
	key := base + "\x00" + literalsKey(literals)
	if existing, ok := ctx.globalEnums[key]; ok {
		return existing
	}

	if existing, ok := ctx.localEnums[key]; ok {
		return existing
	}

	values, integer := enumValuesFromLiterals(literals)
	if len(values) == 0 {
		return nil
	}

	enum := &EnumDescriptor{
		Name:        ctx.uniqueLocalTypeName(base),
		Description: description,
		Integer:     integer,
		Values:      values,
	}

	ctx.localEnums[key] = enum
	ctx.typeFiles[enum.Name] = ownerFile
	ctx.pendingEnums = append(ctx.pendingEnums, enum)
	return enum
}

// registerNamedEnum makes a named enumeration reusable by identical inline
// literal sequences.
func (ctx *generationContext) registerNamedEnum(enum *EnumDescriptor, literals []any) {
	ctx.globalEnums[enum.Name+"\x00"+literalsKey(literals)] = enum
}

// takePendingEnums drains inline enumerations synthesized for the current artifact.
func (ctx *generationContext) takePendingEnums() []*EnumDescriptor {
	pending := ctx.pendingEnums
	ctx.pendingEnums = nil
	return pending
}

// addPendingClass queues one inline class for emission into the current artifact.
func (ctx *generationContext) addPendingClass(class *ClassDescriptor, ownerFile string) {
	ctx.typeFiles[class.Name] = ownerFile
	ctx.pendingClasses = append(ctx.pendingClasses, class)
}

// takePendingClasses drains inline classes synthesized for the current artifact.
func (ctx *generationContext) takePendingClasses() []*ClassDescriptor {
	pending := ctx.pendingClasses
	ctx.pendingClasses = nil
	return pending
}

// literalsKey builds a stable dedupe key from an enum literal sequence.
func literalsKey(literals []any) string {
	parts := make([]string, 0, len(literals))
	for _, literal := range literals {
		parts = append(parts, stringifyLiteral(literal))
	}

	return strings.Join(parts, "\x1f")
}

// enumValuesFromLiterals builds unique member names for one literal sequence.
func enumValuesFromLiterals(literals []any) ([]EnumValue, bool) {
	integer := len(literals) > 0
	values := make([]EnumValue, 0, len(literals))
	taken := make(map[string]int, len(literals))

	for _, literal := range literals {
		if literal == nil {
			continue
		}

		switch literal.(type) {
		case int, int64:
		default:
			integer = false
		}

		name := enumValueIdentifier(literal)
		if count := taken[name]; count > 0 {
			taken[name] = count + 1
			name = name + strconv.Itoa(count+1)
		} else {
			taken[name] = 1
		}

		values = append(values, EnumValue{Name: name, Literal: literal})
	}

	if len(values) == 0 {
		return nil, false
	}

	return values, integer
}
