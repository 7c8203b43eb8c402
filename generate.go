// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Options configures one generation run. Unset fields fall back to project
// configuration values and then to built-in defaults.
type Options struct {
	// OutputDir receives generated artifacts.
	OutputDir string
	// Style selects the rendering backend by name.
	Style string
	// Backends overrides the default style registry.
	Backends BackendRegistry
	// Config carries project configuration; nil means defaults.
	Config *Config
	// Cache overrides the incremental cache; nil loads it from CacheFile.
	Cache *Cache
	// CacheFile overrides the incremental cache location.
	CacheFile string
	// ChangedOnly skips schemas whose content hash is unchanged.
	ChangedOnly bool
	// KeepGoing renders every schema even after one of them fails.
	KeepGoing bool
	// DryRun resolves and renders without touching the filesystem.
	DryRun bool
	// Prune removes artifacts of schemas no longer present in the document.
	Prune bool
}

// Action classifies the outcome of one schema in a run.
type Action string

// Per-schema run outcomes.
const (
	ActionWritten   Action = "written"
	ActionUnchanged Action = "unchanged"
	ActionSkipped   Action = "skipped"
	ActionPruned    Action = "pruned"
	ActionFailed    Action = "failed"
)

// Result captures the outcome for one named schema.
type Result struct {
	// Schema is the source definition name.
	Schema string
	// Artifact is the output path relative to the output directory.
	Artifact string
	// Kind classifies the primary generated declaration.
	Kind ArtifactKind
	// Action is what happened to the artifact.
	Action Action
	// Err holds the failure when Action is ActionFailed.
	Err error
}

// Report aggregates per-schema results and diagnostics for one run.
type Report struct {
	// Source is the document location when it was loaded from a file.
	Source string
	// Style names the rendering backend used.
	Style string
	// OutputDir received the artifacts.
	OutputDir string
	// Results holds one entry per processed schema, enumerations first.
	Results []Result
	// Diagnostics collects lint findings and engine warnings.
	Diagnostics []Diagnostic
	// Deleted lists cached schema names missing from the current document.
	Deleted []string
}

// Failed reports whether any schema failed or any finding is error severity.
func (report *Report) Failed() bool {
	for _, result := range report.Results {
		if result.Action == ActionFailed {
			return true
		}
	}

	for _, diagnostic := range report.Diagnostics {
		if diagnostic.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Summary renders a one-line overview of the run.
func (report *Report) Summary() string {
	counts := make(map[Action]int, 5)
	for _, result := range report.Results {
		counts[result.Action]++
	}

	parts := make([]string, 0, 5)
	for _, action := range []Action{ActionWritten, ActionUnchanged, ActionSkipped, ActionPruned, ActionFailed} {
		if counts[action] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[action], action))
		}
	}

	if len(parts) == 0 {
		parts = append(parts, "no schemas processed")
	}

	summary := strings.Join(parts, ", ")
	warnings, errorCount := report.diagnosticCounts()
	if warnings+errorCount > 0 {
		summary += fmt.Sprintf(" (%d %s, %d %s)",
			warnings, pluralize("warning", warnings),
			errorCount, pluralize("error", errorCount))
	}

	return summary
}

// diagnosticCounts tallies findings by severity.
func (report *Report) diagnosticCounts() (int, int) {
	warnings, errorCount := 0, 0
	for _, diagnostic := range report.Diagnostics {
		switch diagnostic.Severity {
		case SeverityWarning:
			warnings++
		case SeverityError:
			errorCount++
		}
	}

	return warnings, errorCount
}

// Generate resolves every named schema in the document and renders artifacts
// into the output directory. Setup problems surface as the returned error;
// per-schema failures land in the report results.
func Generate(doc *Document, options Options) (*Report, error) {
	config := options.Config
	if config == nil {
		config = &Config{}
	}

	style := firstNonEmpty(strings.TrimSpace(options.Style), strings.TrimSpace(config.Style))
	if style == "" {
		style = StylePlain
	}

	registry := options.Backends
	if registry == nil {
		registry = DefaultBackends()
	}

	backend, err := registry.Backend(style)
	if err != nil {
		return nil, err
	}

	severities, err := lintSeverities(config.Lint)
	if err != nil {
		return nil, err
	}

	outputDir := firstNonEmpty(strings.TrimSpace(options.OutputDir), strings.TrimSpace(config.Output))
	if outputDir == "" {
		outputDir = "."
	}

	cache := options.Cache
	if cache == nil {
		cachePath := firstNonEmpty(strings.TrimSpace(options.CacheFile), strings.TrimSpace(config.CacheFile))
		if cachePath == "" {
			cachePath = filepath.Join(outputDir, DefaultCacheFile)
		}

		cache = LoadCache(cachePath)
	}

	if !options.DryRun {
		if err := os.MkdirAll(outputDir, 0o750); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteArtifact, err)
		}
	}

	ctx := newGenerationContext(doc, config, severities)
	registerSchemaNames(ctx, doc, config)

	runner := &generator{
		ctx:         ctx,
		comp:        newComposer(ctx),
		backend:     backend,
		cache:       cache,
		outputDir:   outputDir,
		changedOnly: options.ChangedOnly || config.ChangedOnly,
		dryRun:      options.DryRun,
	}

	report := &Report{Source: doc.Source(), Style: backend.Name(), OutputDir: outputDir}
	runSchemas(report, runner, doc, options.KeepGoing)
	pruneDeleted(report, runner, doc, config, options)

	report.Diagnostics = ctx.diagnostics
	if !options.DryRun && !report.Failed() {
		if err := cache.Save(); err != nil {
			return report, err
		}
	}

	return report, nil
}

// Lint resolves every schema and collects diagnostics without writing files.
func Lint(doc *Document, config *Config) (*Report, error) {
	return Generate(doc, Options{Config: config, DryRun: true, KeepGoing: true})
}

// registerSchemaNames reserves type and file names for every named schema up
// front so forward references resolve to their final identifiers. Named
// enumerations register for inline reuse here as well, keeping dedupe stable
// across partial runs.
func registerSchemaNames(ctx *generationContext, doc *Document, config *Config) {
	for _, named := range doc.Schemas() {
		base := config.classNameOverride(named.Name)
		if base == "" {
			base = pascalCase(named.Name)
		}

		typeName := ctx.uniqueTypeName(base)
		ctx.registerTypeName(named.Name, typeName, snakeCase(typeName))

		if named.Schema.Enum != nil {
			if enum := namedEnumDescriptor(typeName, named.Name, named.Schema); enum != nil {
				ctx.registerNamedEnum(enum, named.Schema.Enum)
			}
		}
	}
}

// namedEnumDescriptor builds the descriptor for one named enumeration schema,
// or nil when it has no usable literals.
func namedEnumDescriptor(typeName, schemaName string, schema *Schema) *EnumDescriptor {
	values, integer := enumValuesFromLiterals(schema.Enum)
	if len(values) == 0 {
		return nil
	}

	return &EnumDescriptor{
		Name:        typeName,
		SchemaName:  schemaName,
		Description: schema.Description,
		Deprecated:  schema.Deprecated,
		Integer:     integer,
		Values:      values,
	}
}

// runSchemas renders enumeration schemas before shape schemas so record
// imports always point at finished files.
func runSchemas(report *Report, runner *generator, doc *Document, keepGoing bool) {
	passes := []func(*Schema) bool{
		func(schema *Schema) bool { return schema.Enum != nil },
		func(schema *Schema) bool { return schema.Enum == nil },
	}

	for _, include := range passes {
		for _, named := range doc.Schemas() {
			if !include(named.Schema) {
				continue
			}

			result := runner.generateOne(named.Name, named.Schema)
			report.Results = append(report.Results, result)
			if result.Action == ActionFailed && !keepGoing {
				return
			}
		}
	}
}

// pruneDeleted reports cached schemas missing from the document and, when
// requested, removes their artifacts and cache records.
func pruneDeleted(report *Report, runner *generator, doc *Document, config *Config, options Options) {
	current := make(map[string]struct{})
	for _, named := range doc.Schemas() {
		current[named.Name] = struct{}{}
	}

	report.Deleted = runner.cache.DeletedSince(current)
	if !options.Prune {
		return
	}

	live := make(map[string]struct{}, len(report.Results))
	for _, result := range report.Results {
		live[result.Artifact] = struct{}{}
	}

	for _, name := range report.Deleted {
		base := config.classNameOverride(name)
		if base == "" {
			base = pascalCase(name)
		}

		relative := snakeCase(base) + runner.backend.FileExtension()
		result := Result{Schema: name, Artifact: relative, Action: ActionPruned}

		if _, taken := live[relative]; !taken && !options.DryRun {
			path := filepath.Join(runner.outputDir, relative)
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				result.Action = ActionFailed
				result.Err = fmt.Errorf("%w: %w", ErrWriteArtifact, err)
				report.Results = append(report.Results, result)
				continue
			}
		}

		runner.cache.Forget(name)
		report.Results = append(report.Results, result)
	}
}

// generator drives per-schema rendering for one run.
type generator struct {
	ctx         *generationContext
	comp        *composer
	backend     Backend
	cache       *Cache
	outputDir   string
	changedOnly bool
	dryRun      bool
}

// rendered is one artifact ready for merge and write.
type rendered struct {
	body     string
	refs     []string
	fileBase string
	kind     ArtifactKind
}

// generateOne resolves and renders one named schema into its artifact.
func (g *generator) generateOne(name string, schema *Schema) Result {
	typeName := g.ctx.typeNameFor(name)
	fileBase, _ := g.ctx.fileFor(typeName)
	result := Result{Schema: name, Artifact: fileBase + g.backend.FileExtension()}

	hash, err := HashSchema(schema)
	if err != nil {
		result.Action = ActionFailed
		result.Err = err
		return result
	}

	if g.changedOnly && !g.cache.HasChanged(name, hash) {
		result.Action = ActionSkipped
		return result
	}

	g.ctx.beginArtifact()
	artifact, ok := g.renderSchema(name, typeName, fileBase, schema)
	result.Kind = artifact.kind
	if !ok {
		result.Action = ActionSkipped
		g.cache.RecordHash(name, hash)
		return result
	}

	action, err := g.writeArtifact(name, artifact)
	if err != nil {
		result.Action = ActionFailed
		result.Err = err
		return result
	}

	result.Action = action
	g.cache.RecordHash(name, hash)
	return result
}

// renderSchema classifies one schema and renders its artifact body. The flag
// is false for alias schemas that produce no declaration of their own.
func (g *generator) renderSchema(name, typeName, fileBase string, schema *Schema) (rendered, bool) {
	switch {
	case schema.Enum != nil:
		return g.renderEnumSchema(name, typeName, fileBase, schema)
	case schema.IsUnion():
		return g.renderUnionSchema(name, fileBase, schema)
	case schema.yieldsRecord():
		return g.renderRecordSchema(name, fileBase, schema)
	default:
		detail := "schema is an alias without object shape; no artifact generated"
		if schema.Type != "" {
			detail = "schema resolves to primitive " + schema.Type + "; no artifact generated"
		}

		g.ctx.lint(LintMissingType, name, detail)
		return rendered{fileBase: fileBase, kind: ArtifactRecord}, false
	}
}

// renderEnumSchema renders one named enumeration artifact.
func (g *generator) renderEnumSchema(name, typeName, fileBase string, schema *Schema) (rendered, bool) {
	enum := namedEnumDescriptor(typeName, name, schema)
	if enum == nil {
		g.ctx.lint(LintEmptyEnum, name, "schema declares no usable enum literals")
		return rendered{fileBase: fileBase, kind: ArtifactEnum}, false
	}

	return g.composeArtifact(fileBase, ArtifactEnum, g.backend.RenderEnum(enum), nil), true
}

// renderRecordSchema renders one named object schema artifact.
func (g *generator) renderRecordSchema(name, fileBase string, schema *Schema) (rendered, bool) {
	effective := g.comp.effectiveSchema(name, schema)
	class := buildClass(g.ctx, name, effective, fileBase)
	return g.composeArtifact(fileBase, ArtifactRecord, g.backend.RenderClass(class), class), true
}

// renderUnionSchema renders one discriminated union or its opaque fallback.
func (g *generator) renderUnionSchema(name, fileBase string, schema *Schema) (rendered, bool) {
	union, class := synthesizeUnion(g.ctx, g.comp, name, schema)
	if union != nil {
		artifact := g.composeArtifact(fileBase, ArtifactUnion, g.backend.RenderUnion(union), nil)
		artifact.refs = g.unionRefs(fileBase, union)
		return artifact, true
	}

	return g.composeArtifact(fileBase, ArtifactOpaque, g.backend.RenderClass(class), class), true
}

// composeArtifact joins the primary declaration with inline types synthesized
// while building it, and collects imports for referenced generated files.
func (g *generator) composeArtifact(fileBase string, kind ArtifactKind, primary []string, class *ClassDescriptor) rendered {
	classes := make([]*ClassDescriptor, 0, 2)
	if class != nil {
		classes = append(classes, class)
	}

	sections := [][]string{primary}
	for _, pending := range g.ctx.takePendingClasses() {
		classes = append(classes, pending)
		sections = append(sections, g.backend.RenderClass(pending))
	}

	for _, pending := range g.ctx.takePendingEnums() {
		sections = append(sections, g.backend.RenderEnum(pending))
	}

	lines := make([]string, 0, 32)
	for index, section := range sections {
		if index > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, section...)
	}

	return rendered{
		body:     strings.Join(lines, "\n"),
		refs:     g.classRefs(fileBase, classes),
		fileBase: fileBase,
		kind:     kind,
	}
}

// classRefs collects generated files referenced by record fields.
func (g *generator) classRefs(fileBase string, classes []*ClassDescriptor) []string {
	typeNames := make(map[string]struct{})
	for _, class := range classes {
		for _, field := range class.Fields {
			collectTypeRefs(typeNames, field.Type)
		}
	}

	return g.filesForTypes(fileBase, typeNames)
}

// unionRefs collects generated files referenced by union variants.
func (g *generator) unionRefs(fileBase string, union *UnionDescriptor) []string {
	typeNames := make(map[string]struct{}, len(union.Variants))
	for _, variant := range union.Variants {
		typeNames[variant.TypeName] = struct{}{}
	}

	return g.filesForTypes(fileBase, typeNames)
}

// filesForTypes maps referenced type names to their artifact file bases.
func (g *generator) filesForTypes(fileBase string, typeNames map[string]struct{}) []string {
	refs := make(map[string]struct{}, len(typeNames))
	for typeName := range typeNames {
		ref, ok := g.ctx.fileFor(typeName)
		if !ok || ref == "" || ref == fileBase {
			continue
		}

		refs[ref] = struct{}{}
	}

	out := make([]string, 0, len(refs))
	for ref := range refs {
		out = append(out, ref)
	}

	sort.Strings(out)
	return out
}

// collectTypeRefs gathers generated type names reachable from one field type.
func collectTypeRefs(typeNames map[string]struct{}, valueType ResolvedType) {
	switch valueType.Kind {
	case TypeClass, TypeEnum:
		typeNames[valueType.Name] = struct{}{}
	case TypeList, TypeMap:
		if valueType.Elem != nil {
			collectTypeRefs(typeNames, *valueType.Elem)
		}
	}
}

// writeArtifact merges or creates the artifact file and classifies the action.
func (g *generator) writeArtifact(schemaName string, artifact rendered) (Action, error) {
	relative := artifact.fileBase + g.backend.FileExtension()
	path := filepath.Join(g.outputDir, relative)
	existing, readErr := os.ReadFile(path)

	var content string
	if readErr != nil {
		content = ComposeArtifact(g.backend.Preamble(artifact.kind, artifact.fileBase, artifact.refs), artifact.body)
	} else {
		merged, ok := MergeGenerated(existing, artifact.body)
		if !ok {
			g.ctx.warn(warnMalformedMarkers, schemaName, "artifact "+relative+" has malformed generated-region markers; rewriting it")
			merged = ComposeArtifact(g.backend.Preamble(artifact.kind, artifact.fileBase, artifact.refs), artifact.body)
		}

		content = merged
	}

	if readErr == nil && string(existing) == content {
		return ActionUnchanged, nil
	}

	if g.dryRun {
		return ActionWritten, nil
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return ActionFailed, fmt.Errorf("%w: %w", ErrWriteArtifact, err)
	}

	return ActionWritten, nil
}

// pluralize appends s for counts other than one.
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}

	return word + "s"
}
