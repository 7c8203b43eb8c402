// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// templateFS stores built-in markdown templates embedded into the package.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

// defaultIndexTemplateName is used when no custom template text is provided.
const defaultIndexTemplateName = "modelindex"

// builtInIndexFiles maps index template aliases to embedded file paths.
var builtInIndexFiles = map[string]string{
	defaultIndexTemplateName: "templates/modelindex.md.gotmpl",
}

// IndexView is the template payload describing one generation run.
type IndexView struct {
	// Source is the document location when it was loaded from a file.
	Source string
	// Style names the rendering backend used.
	Style string
	// OutputDir received the artifacts.
	OutputDir string
	// Summary is the one-line run overview.
	Summary string
	// Artifacts lists per-schema outcomes in run order.
	Artifacts []IndexArtifact
	// Diagnostics collects lint findings and engine warnings.
	Diagnostics []Diagnostic
	// Deleted lists cached schema names missing from the document.
	Deleted []string
}

// IndexArtifact is one schema outcome row in the index.
type IndexArtifact struct {
	Schema   string
	Artifact string
	Kind     string
	Action   string
}

// BuildIndexView flattens one report into the template payload.
func BuildIndexView(report *Report) IndexView {
	view := IndexView{
		Source:      report.Source,
		Style:       report.Style,
		OutputDir:   report.OutputDir,
		Summary:     report.Summary(),
		Diagnostics: report.Diagnostics,
		Deleted:     report.Deleted,
	}

	view.Artifacts = make([]IndexArtifact, 0, len(report.Results))
	for _, result := range report.Results {
		kind := string(result.Kind)
		if kind == "" {
			kind = "-"
		}

		view.Artifacts = append(view.Artifacts, IndexArtifact{
			Schema:   result.Schema,
			Artifact: result.Artifact,
			Kind:     kind,
			Action:   string(result.Action),
		})
	}

	return view
}

// RenderModelIndex renders the markdown index for one report. Custom template
// text replaces the built-in layout when provided.
func RenderModelIndex(report *Report, templateText string) (string, error) {
	parsed, err := resolveIndexTemplate(templateText)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := parsed.Execute(&out, BuildIndexView(report)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteIndexTemplate, err)
	}

	return ensureTrailingNewline(out.String()), nil
}

// resolveIndexTemplate resolves custom or built-in template text into a
// parsed template.
func resolveIndexTemplate(templateText string) (*template.Template, error) {
	templateText = strings.TrimSpace(templateText)
	if templateText != "" {
		parsed, err := template.New("custom").Funcs(indexTemplateFuncs()).Parse(templateText)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseIndexTemplate, err)
		}

		return parsed, nil
	}

	builtin, err := BuiltinIndexTemplate(defaultIndexTemplateName)
	if err != nil {
		return nil, err
	}

	parsed, err := template.New(defaultIndexTemplateName).Funcs(indexTemplateFuncs()).Parse(builtin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseIndexTemplate, err)
	}

	return parsed, nil
}

// BuiltinIndexTemplate returns one built-in index template by name.
func BuiltinIndexTemplate(name string) (string, error) {
	path, ok := builtInIndexFiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrReadIndexTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadIndexTemplate, err)
	}

	return string(data), nil
}

// indexTemplateFuncs provides utility functions available inside templates.
func indexTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"pluralize": pluralize,
		"codeSpan": func(value string) string {
			if strings.TrimSpace(value) == "" {
				return ""
			}

			return "`" + value + "`"
		},
	}
}
