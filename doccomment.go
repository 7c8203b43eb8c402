// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"strings"
	"unicode/utf8"
)

// docCommentWidth caps generated Dart doc comment line length.
const docCommentWidth = 80

// dartDocComment renders description text as indented /// doc comment lines.
func dartDocComment(text, indent string) []string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return nil
	}

	width := docCommentWidth - utf8.RuneCountInString(indent) - len("/// ")
	if width < 16 {
		width = 16
	}

	out := make([]string, 0, 4)
	for index, paragraph := range splitParagraphs(text) {
		if index > 0 {
			out = append(out, indent+"///")
		}

		for _, line := range wrapParagraph(paragraph, width) {
			out = append(out, indent+"/// "+line)
		}
	}

	return out
}

// splitParagraphs breaks text into paragraphs on blank-line boundaries.
func splitParagraphs(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, 2)
	current := make([]string, 0, 4)

	flush := func() {
		if len(current) == 0 {
			return
		}

		out = append(out, strings.Join(current, " "))
		current = current[:0]
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}

		current = append(current, trimmed)
	}

	flush()
	return out
}

// wrapParagraph wraps one plain paragraph to max rune width.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		out = append(out, current)
		current = word
		currentLen = wordLen
	}

	out = append(out, current)
	return out
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
