// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"os"
	"path/filepath"
	"testing"
)

// BenchmarkParseDocument measures document decoding and schema indexing cost.
func BenchmarkParseDocument(b *testing.B) {
	documentPath := filepath.Join("testdata", "petstore.fixture.yaml")
	documentBytes := readBenchmarkFile(b, documentPath)

	b.ReportAllocs()
	b.SetBytes(int64(len(documentBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := ParseDocument(documentBytes); err != nil {
			b.Fatalf("ParseDocument: %v", err)
		}
	}
}

// BenchmarkGeneratePlain measures full in-memory generation flow for plain style.
func BenchmarkGeneratePlain(b *testing.B) {
	benchmarkGenerateStyle(b, "plain")
}

// BenchmarkGenerateJSONSerializable measures full in-memory generation flow for json_serializable style.
func BenchmarkGenerateJSONSerializable(b *testing.B) {
	benchmarkGenerateStyle(b, "json_serializable")
}

// BenchmarkRenderModelIndex measures markdown index rendering for a finished run.
func BenchmarkRenderModelIndex(b *testing.B) {
	documentPath := filepath.Join("testdata", "petstore.fixture.yaml")
	documentBytes := readBenchmarkFile(b, documentPath)

	doc, err := ParseDocument(documentBytes)
	if err != nil {
		b.Fatalf("ParseDocument: %v", err)
	}

	report, err := Generate(doc, Options{DryRun: true})
	if err != nil {
		b.Fatalf("Generate: %v", err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := RenderModelIndex(report, ""); err != nil {
			b.Fatalf("RenderModelIndex: %v", err)
		}
	}
}

// benchmarkGenerateStyle runs common parse plus dry-run generation benchmark for selected style.
func benchmarkGenerateStyle(b *testing.B, style string) {
	documentPath := filepath.Join("testdata", "petstore.fixture.yaml")
	documentBytes := readBenchmarkFile(b, documentPath)

	options := Options{
		Style:  style,
		DryRun: true,
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(documentBytes)))

	for i := 0; i < b.N; i++ {
		doc, err := ParseDocument(documentBytes)
		if err != nil {
			b.Fatalf("ParseDocument: %v", err)
		}

		report, err := Generate(doc, options)
		if err != nil {
			b.Fatalf("Generate: %v", err)
		}

		if report.Failed() {
			b.Fatalf("generation failed: %s", report.Summary())
		}
	}
}

// readBenchmarkFile loads benchmark fixture file and fails benchmark on read errors.
func readBenchmarkFile(b *testing.B, path string) []byte {
	b.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read benchmark file %q: %v", path, err)
	}

	if len(data) == 0 {
		b.Fatalf("empty benchmark file: %s", path)
	}

	return data
}
