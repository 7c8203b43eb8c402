// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the optional project configuration loaded from YAML.
type Config struct {
	// Output overrides the artifact output directory.
	Output string `yaml:"output"`
	// Style selects the generation style by backend name.
	Style string `yaml:"style"`
	// ChangedOnly enables incremental generation against the build cache.
	ChangedOnly bool `yaml:"changedOnly"`
	// CacheFile overrides the build cache file path.
	CacheFile string `yaml:"cacheFile"`
	// Lint maps rule identifiers to severity overrides.
	Lint map[string]string `yaml:"lint"`
	// Schemas maps schema names to per-schema generation overrides.
	Schemas map[string]SchemaConfig `yaml:"schemas"`
}

// SchemaConfig holds per-schema display and mapping overrides.
type SchemaConfig struct {
	// ClassName overrides the generated Dart type identifier.
	ClassName string `yaml:"className"`
	// Fields maps original property names to replacement member names.
	Fields map[string]string `yaml:"fields"`
	// Types maps primitive schema types to replacement Dart type names.
	Types map[string]string `yaml:"types"`
	// JSONKeys forces serialization key annotations on every member.
	JSONKeys *bool `yaml:"jsonKeys"`
}

// ParseConfig decodes project configuration from YAML bytes.
func ParseConfig(data []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}

	return config, nil
}

// LoadConfig reads project configuration from a YAML file path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadConfigFile, err)
	}

	return ParseConfig(data)
}

// schemaConfig returns overrides for one schema name and reports presence.
func (config *Config) schemaConfig(name string) (SchemaConfig, bool) {
	if config == nil || len(config.Schemas) == 0 {
		return SchemaConfig{}, false
	}

	override, ok := config.Schemas[name]
	return override, ok
}

// classNameOverride returns the configured type identifier for one schema.
func (config *Config) classNameOverride(name string) string {
	override, ok := config.schemaConfig(name)
	if !ok {
		return ""
	}

	return strings.TrimSpace(override.ClassName)
}

// fieldNameOverride returns the configured member name for one property.
func (config *Config) fieldNameOverride(schemaName, propertyName string) string {
	override, ok := config.schemaConfig(schemaName)
	if !ok || len(override.Fields) == 0 {
		return ""
	}

	return strings.TrimSpace(override.Fields[propertyName])
}

// primitiveOverride returns the configured Dart name for one primitive type.
func (config *Config) primitiveOverride(schemaName, schemaType string) string {
	override, ok := config.schemaConfig(schemaName)
	if !ok || len(override.Types) == 0 {
		return ""
	}

	return strings.TrimSpace(override.Types[schemaType])
}

// explicitJSONKeys reports whether every member gets a serialization key annotation.
func (config *Config) explicitJSONKeys(schemaName string) bool {
	override, ok := config.schemaConfig(schemaName)
	if !ok || override.JSONKeys == nil {
		return false
	}

	return *override.JSONKeys
}
