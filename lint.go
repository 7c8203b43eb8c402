// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// SeverityOff suppresses findings for a rule.
	SeverityOff Severity = "off"
	// SeverityWarning reports findings without failing the run.
	SeverityWarning Severity = "warning"
	// SeverityError reports findings and marks the completed run as failed.
	SeverityError Severity = "error"
)

// Severity selects how one lint rule affects the generation run.
type Severity string

const (
	// LintMissingType flags fragments without a resolvable type.
	LintMissingType = "missing_type"
	// LintMissingRefTarget flags references that resolve to nothing.
	LintMissingRefTarget = "missing_ref_target"
	// LintEmptyComposite flags allOf compositions that merge into zero properties.
	LintEmptyComposite = "empty_composite"
	// LintArrayNoItems flags array fragments without an items schema.
	LintArrayNoItems = "array_no_items"
	// LintEmptyEnum flags enum fragments with an empty literal list.
	LintEmptyEnum = "empty_enum"
	// LintTypeFormatMismatch flags format values that contradict the declared type.
	LintTypeFormatMismatch = "type_format_mismatch"
	// LintSuspiciousIDField flags identifier-named fields with non-identifier types.
	LintSuspiciousIDField = "suspicious_id_field"
)

const (
	// warnCompositionCycle marks recursive allOf chains; it is not configurable.
	warnCompositionCycle = "composition_cycle"
	// warnMalformedMarkers marks artifacts whose merge markers were unusable.
	warnMalformedMarkers = "malformed_markers"
)

// defaultLintSeverities holds built-in severities for every configurable rule.
var defaultLintSeverities = map[string]Severity{
	LintMissingType:        SeverityWarning,
	LintMissingRefTarget:   SeverityWarning,
	LintEmptyComposite:     SeverityWarning,
	LintArrayNoItems:       SeverityWarning,
	LintEmptyEnum:          SeverityWarning,
	LintTypeFormatMismatch: SeverityWarning,
	LintSuspiciousIDField:  SeverityWarning,
}

// Diagnostic is one finding accumulated during a generation run.
type Diagnostic struct {
	// Rule names the lint rule or engine warning that produced the finding.
	Rule string
	// Severity is the effective severity after configuration overrides.
	Severity Severity
	// Schema names the schema the finding belongs to.
	Schema string
	// Detail is the human-readable finding text.
	Detail string
}

// String renders one finding as a single report line.
func (diag Diagnostic) String() string {
	var out strings.Builder
	out.WriteString(string(diag.Severity))
	out.WriteString(": ")
	if diag.Schema != "" {
		out.WriteString(diag.Schema)
		out.WriteString(": ")
	}

	out.WriteString(diag.Detail)
	if diag.Rule != "" {
		out.WriteString(" (")
		out.WriteString(diag.Rule)
		out.WriteString(")")
	}

	return out.String()
}

// ParseSeverity validates and normalizes one severity value.
func ParseSeverity(value string) (Severity, error) {
	normalized := Severity(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case SeverityOff, SeverityWarning, SeverityError:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSeverity, value)
	}
}

// LintRuleNames returns all configurable rule identifiers in sorted order.
func LintRuleNames() []string {
	names := make([]string, 0, len(defaultLintSeverities))
	for name := range defaultLintSeverities {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// lintSeverities merges severity overrides over rule defaults.
func lintSeverities(overrides map[string]string) (map[string]Severity, error) {
	out := make(map[string]Severity, len(defaultLintSeverities))
	for rule, severity := range defaultLintSeverities {
		out[rule] = severity
	}

	for rule, value := range overrides {
		rule = strings.ToLower(strings.TrimSpace(rule))
		if _, known := defaultLintSeverities[rule]; !known {
			return nil, fmt.Errorf("%w %q", ErrUnknownLintRule, rule)
		}

		severity, err := ParseSeverity(value)
		if err != nil {
			return nil, err
		}

		out[rule] = severity
	}

	return out, nil
}
