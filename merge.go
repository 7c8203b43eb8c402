// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"bytes"
	"strings"
)

// Marker lines delimiting the machine-owned region of generated artifacts.
// Both markers must occupy a full line on their own to be recognized.
const (
	GeneratedNotice = "// Code generated by swagmodels. Edits outside the generated region are preserved."
	MarkerBegin     = "// swagmodels:generated:begin"
	MarkerEnd       = "// swagmodels:generated:end"
)

// ComposeArtifact builds a brand-new artifact file around the generated body.
func ComposeArtifact(preamble []string, body string) string {
	var builder strings.Builder
	builder.Grow(len(body) + 256)
	builder.WriteString(GeneratedNotice)
	builder.WriteString("\n\n")

	for _, line := range preamble {
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	if len(preamble) > 0 {
		builder.WriteByte('\n')
	}

	builder.WriteString(MarkerBegin)
	builder.WriteByte('\n')
	builder.WriteString(ensureTrailingNewline(body))
	builder.WriteString(MarkerEnd)
	builder.WriteByte('\n')
	return builder.String()
}

// MergeGenerated replaces the marked region of existing content with body,
// preserving every byte outside the markers. The reported flag is false when
// the markers are missing or out of order.
func MergeGenerated(existing []byte, body string) (string, bool) {
	_, beginEnd := findMarkerLine(existing, MarkerBegin, 0)
	if beginEnd < 0 {
		return "", false
	}

	endStart, _ := findMarkerLine(existing, MarkerEnd, beginEnd)
	if endStart < 0 {
		return "", false
	}

	var builder strings.Builder
	builder.Grow(len(existing) + len(body))
	builder.Write(existing[:beginEnd])
	builder.WriteString(ensureTrailingNewline(body))
	builder.Write(existing[endStart:])
	return builder.String(), true
}

// findMarkerLine locates a marker occupying a full line on its own, returning
// the line start offset and the offset just past its newline.
func findMarkerLine(data []byte, marker string, from int) (int, int) {
	offset := from
	for offset <= len(data) {
		var line []byte
		next := len(data)
		if newline := bytes.IndexByte(data[offset:], '\n'); newline >= 0 {
			line = data[offset : offset+newline]
			next = offset + newline + 1
		} else {
			line = data[offset:]
		}

		if strings.TrimSuffix(string(line), "\r") == marker {
			return offset, next
		}

		if next >= len(data) {
			break
		}

		offset = next
	}

	return -1, -1
}
