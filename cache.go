// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"
)

// DefaultCacheFile is the incremental cache location relative to the output
// directory.
const DefaultCacheFile = ".swagmodels.cache.json"

// Cache persists schema content hashes between generation runs.
type Cache struct {
	path   string
	hashes map[string]string
}

// cacheFile is the serialized shape of the cache file.
type cacheFile struct {
	SchemaHashes map[string]string `json:"schemaHashes"`
}

// LoadCache reads a cache file, starting empty when it is missing or invalid.
func LoadCache(path string) *Cache {
	cache := &Cache{path: path, hashes: map[string]string{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return cache
	}

	var file cacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		return cache
	}

	if file.SchemaHashes != nil {
		cache.hashes = file.SchemaHashes
	}

	return cache
}

// Path returns the backing file location.
func (cache *Cache) Path() string {
	return cache.path
}

// HasChanged reports whether the hash differs from the recorded one.
func (cache *Cache) HasChanged(name, hash string) bool {
	recorded, ok := cache.hashes[name]
	return !ok || recorded != hash
}

// RecordHash stores the content hash for one schema name.
func (cache *Cache) RecordHash(name, hash string) {
	cache.hashes[name] = hash
}

// Forget drops the record for one schema name.
func (cache *Cache) Forget(name string) {
	delete(cache.hashes, name)
}

// DeletedSince lists recorded schema names missing from the current document,
// sorted for stable reporting.
func (cache *Cache) DeletedSince(current map[string]struct{}) []string {
	deleted := make([]string, 0)
	for name := range cache.hashes {
		if _, ok := current[name]; !ok {
			deleted = append(deleted, name)
		}
	}

	sort.Strings(deleted)
	return deleted
}

// Save writes every recorded hash back to the cache file.
func (cache *Cache) Save() error {
	if cache.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(cacheFile{SchemaHashes: cache.hashes}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveCache, err)
	}

	if err := os.WriteFile(cache.path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveCache, err)
	}

	return nil
}

// HashSchema produces the canonical content hash for one schema definition.
// The hash is computed over a key-sorted JSON rendering of the source node, so
// reordering mapping keys in the document does not count as a change.
func HashSchema(schema *Schema) (string, error) {
	node := schema.SourceNode()
	if node == nil {
		return "", fmt.Errorf("%w: schema has no source node", ErrHashSchema)
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashSchema, err)
	}

	canonical, err := json.Marshal(normalizeJSONValue(value))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashSchema, err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// normalizeJSONValue rewrites YAML-decoded values into JSON-encodable form.
func normalizeJSONValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = normalizeJSONValue(item)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = normalizeJSONValue(item)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for index, item := range typed {
			out[index] = normalizeJSONValue(item)
		}

		return out
	default:
		return value
	}
}
