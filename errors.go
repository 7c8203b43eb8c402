// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import "errors"

var (
	// ErrReadDocumentFile is returned when API document file loading fails.
	ErrReadDocumentFile = errors.New("read document file")
	// ErrParseDocument is returned when API document decoding fails.
	ErrParseDocument = errors.New("parse document")
	// ErrDocumentRoot is returned when document root is not a mapping.
	ErrDocumentRoot = errors.New("document root must be a mapping")
	// ErrNoSchemas is returned when document has neither components/schemas nor definitions.
	ErrNoSchemas = errors.New("document has no schema definitions")
	// ErrUnknownStyle is returned when requested generation style is not registered.
	ErrUnknownStyle = errors.New("unknown generation style")
	// ErrWriteArtifact is returned when artifact file writing fails.
	ErrWriteArtifact = errors.New("write artifact file")
	// ErrHashSchema is returned when schema fragment canonical hashing fails.
	ErrHashSchema = errors.New("hash schema fragment")
	// ErrSaveCache is returned when build cache file writing fails.
	ErrSaveCache = errors.New("save cache file")
	// ErrReadConfigFile is returned when project config file loading fails.
	ErrReadConfigFile = errors.New("read config file")
	// ErrParseConfig is returned when project config decoding fails.
	ErrParseConfig = errors.New("parse config file")
	// ErrUnknownSeverity is returned when lint severity value is not supported.
	ErrUnknownSeverity = errors.New("unknown lint severity")
	// ErrUnknownLintRule is returned when lint rule identifier is not registered.
	ErrUnknownLintRule = errors.New("unknown lint rule")
	// ErrParseIndexTemplate is returned when model index template parsing fails.
	ErrParseIndexTemplate = errors.New("parse model index template")
	// ErrExecuteIndexTemplate is returned when model index template execution fails.
	ErrExecuteIndexTemplate = errors.New("execute model index template")
	// ErrReadIndexTemplate is returned when built-in model index template loading fails.
	ErrReadIndexTemplate = errors.New("read model index template")
)
