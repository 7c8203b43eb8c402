// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// schemaContainerPaths lists known schema container locations in priority order.
var schemaContainerPaths = [][]string{
	{"components", "schemas"},
	{"definitions"},
}

// Document is one parsed API description with its discovered named schemas.
type Document struct {
	root      *yaml.Node
	schemas   []NamedSchema
	byName    map[string]*Schema
	container string
	source    string
}

// NamedSchema is one named schema fragment in document declaration order.
type NamedSchema struct {
	// Name is the schema container key.
	Name string
	// Schema is the typed fragment view.
	Schema *Schema
}

// ParseDocument decodes one YAML or JSON API description from raw bytes.
func ParseDocument(data []byte) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParseDocument)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseDocument, err)
	}

	rootNode := unwrapNode(&root)
	if rootNode == nil || rootNode.Kind != yaml.MappingNode {
		return nil, ErrDocumentRoot
	}

	doc := &Document{root: rootNode}
	if err := doc.discoverSchemas(); err != nil {
		return nil, err
	}

	return doc, nil
}

// LoadDocument reads one API description document from a file path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocumentFile, err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	doc.source = path
	return doc, nil
}

// Schemas returns discovered named schemas in document declaration order.
func (doc *Document) Schemas() []NamedSchema {
	return doc.schemas
}

// SchemaNames returns names of discovered schemas in declaration order.
func (doc *Document) SchemaNames() []string {
	out := make([]string, 0, len(doc.schemas))
	for _, named := range doc.schemas {
		out = append(out, named.Name)
	}

	return out
}

// Lookup returns the named schema fragment from the discovered container.
func (doc *Document) Lookup(name string) (*Schema, bool) {
	schema, ok := doc.byName[name]
	return schema, ok
}

// Container reports which schema container location the document uses.
func (doc *Document) Container() string {
	return doc.container
}

// Source returns the document file path when it was loaded from disk.
func (doc *Document) Source() string {
	return doc.source
}

// schemaRef returns the canonical local reference for one named schema.
func (doc *Document) schemaRef(name string) string {
	return "#/" + doc.container + "/" + name
}

// Resolve walks one local reference and returns the target fragment.
func (doc *Document) Resolve(ref string) (*Schema, bool) {
	node, ok := doc.resolvePointer(ref)
	if !ok {
		return nil, false
	}

	return schemaFromNode(node), true
}

// resolvePointer resolves a local JSON pointer against the document root.
func (doc *Document) resolvePointer(ref string) (*yaml.Node, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "#" {
		return doc.root, true
	}

	if !strings.HasPrefix(ref, "#/") {
		return nil, false
	}

	current := doc.root
	for _, token := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		token = decodePointerToken(token)
		current = unwrapNode(current)
		if current == nil {
			return nil, false
		}

		switch current.Kind {
		case yaml.MappingNode:
			next := mappingValue(current, token)
			if next == nil {
				return nil, false
			}

			current = next
		case yaml.SequenceNode:
			index, err := strconv.Atoi(token)
			if err != nil || index < 0 || index >= len(current.Content) {
				return nil, false
			}

			current = current.Content[index]
		default:
			return nil, false
		}
	}

	return current, true
}

// discoverSchemas locates the schema container and builds typed fragment views.
func (doc *Document) discoverSchemas() error {
	for _, path := range schemaContainerPaths {
		container := doc.root
		for _, key := range path {
			container = unwrapNode(mappingValue(container, key))
			if container == nil {
				break
			}
		}

		if container == nil || container.Kind != yaml.MappingNode {
			continue
		}

		doc.container = strings.Join(path, "/")
		doc.byName = make(map[string]*Schema, len(container.Content)/2)
		for index := 0; index+1 < len(container.Content); index += 2 {
			name := strings.TrimSpace(container.Content[index].Value)
			if name == "" {
				continue
			}

			schema := schemaFromNode(container.Content[index+1])
			if _, exists := doc.byName[name]; !exists {
				doc.schemas = append(doc.schemas, NamedSchema{Name: name, Schema: schema})
			}

			doc.byName[name] = schema
		}

		return nil
	}

	return ErrNoSchemas
}

// RefName extracts the best-effort target name from a reference string.
func RefName(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	ref = strings.TrimSuffix(ref, "/")
	segments := strings.Split(ref, "/")
	return decodePointerToken(segments[len(segments)-1])
}

// mappingValue returns the value node for one mapping key.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	node = unwrapNode(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	for index := 0; index+1 < len(node.Content); index += 2 {
		if node.Content[index].Value == key {
			return node.Content[index+1]
		}
	}

	return nil
}

// decodePointerToken unescapes one JSON pointer token.
func decodePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}
