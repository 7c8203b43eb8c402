// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"errors"
	"testing"
)

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  Severity
	}{
		{"off", SeverityOff},
		{"warning", SeverityWarning},
		{"error", SeverityError},
		{" Error ", SeverityError},
		{"WARNING", SeverityWarning},
	}

	for _, test := range cases {
		got, err := ParseSeverity(test.input)
		if err != nil || got != test.want {
			t.Fatalf("ParseSeverity(%q) = %q, %v, want %q", test.input, got, err, test.want)
		}
	}

	if _, err := ParseSeverity("fatal"); !errors.Is(err, ErrUnknownSeverity) {
		t.Fatalf("ParseSeverity(fatal) error = %v, want %v", err, ErrUnknownSeverity)
	}
}

func TestLintSeverities(t *testing.T) {
	t.Parallel()

	defaults, err := lintSeverities(nil)
	if err != nil {
		t.Fatalf("lintSeverities(nil): %v", err)
	}

	if len(defaults) != len(defaultLintSeverities) {
		t.Fatalf("default rule count = %d, want %d", len(defaults), len(defaultLintSeverities))
	}

	for rule, severity := range defaults {
		if severity != SeverityWarning {
			t.Fatalf("default severity for %s = %q, want warning", rule, severity)
		}
	}

	overrides := map[string]string{}
	overrides["Empty_Enum "] = "error"
	overrides[LintMissingType] = "off"
	overrides[LintArrayNoItems] = "warning"

	merged, err := lintSeverities(overrides)
	if err != nil {
		t.Fatalf("lintSeverities with overrides: %v", err)
	}

	if merged[LintEmptyEnum] != SeverityError {
		t.Fatalf("empty_enum severity = %q, want error", merged[LintEmptyEnum])
	}

	if merged[LintMissingType] != SeverityOff {
		t.Fatalf("missing_type severity = %q, want off", merged[LintMissingType])
	}

	if merged[LintSuspiciousIDField] != SeverityWarning {
		t.Fatalf("untouched severity = %q, want warning", merged[LintSuspiciousIDField])
	}
}

func TestLintSeveritiesRejectsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := lintSeverities(map[string]string{"no_such_rule": "error"}); !errors.Is(err, ErrUnknownLintRule) {
		t.Fatalf("unknown rule error = %v, want %v", err, ErrUnknownLintRule)
	}

	if _, err := lintSeverities(map[string]string{LintEmptyEnum: "loud"}); !errors.Is(err, ErrUnknownSeverity) {
		t.Fatalf("unknown severity error = %v, want %v", err, ErrUnknownSeverity)
	}
}

func TestLintRuleNames(t *testing.T) {
	t.Parallel()

	names := LintRuleNames()
	if len(names) != len(defaultLintSeverities) {
		t.Fatalf("rule count = %d, want %d", len(names), len(defaultLintSeverities))
	}

	for index := 1; index < len(names); index++ {
		if names[index-1] >= names[index] {
			t.Fatalf("rule names not sorted: %v", names)
		}
	}
}

func TestDiagnosticString(t *testing.T) {
	t.Parallel()

	full := Diagnostic{
		Rule:     LintEmptyEnum,
		Severity: SeverityWarning,
		Schema:   "Status",
		Detail:   "schema declares no usable enum literals",
	}
	want := "warning: Status: schema declares no usable enum literals (empty_enum)"
	if got := full.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	bare := Diagnostic{Severity: SeverityError, Detail: "document is unreadable"}
	if got := bare.String(); got != "error: document is unreadable" {
		t.Fatalf("String() = %q", got)
	}
}
