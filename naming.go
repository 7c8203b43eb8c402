// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// dartReservedWords lists Dart keywords that cannot be used as plain identifiers.
var dartReservedWords = map[string]struct{}{
	"assert": {}, "break": {}, "case": {}, "catch": {}, "class": {},
	"const": {}, "continue": {}, "default": {}, "do": {}, "else": {},
	"enum": {}, "extends": {}, "false": {}, "final": {}, "finally": {},
	"for": {}, "if": {}, "in": {}, "is": {}, "new": {}, "null": {},
	"rethrow": {}, "return": {}, "super": {}, "switch": {}, "this": {},
	"throw": {}, "true": {}, "try": {}, "var": {}, "void": {},
	"while": {}, "with": {},
}

// pascalCase converts schema and property names into Dart type identifiers.
func pascalCase(name string) string {
	words := splitIdentifierWords(name)
	if len(words) == 0 {
		return ""
	}

	var out strings.Builder
	for _, word := range words {
		out.WriteString(capitalizeWord(word))
	}

	return prefixDigitIdentifier(out.String(), "V")
}

// lowerCamelCase converts property names into Dart member identifiers.
func lowerCamelCase(name string) string {
	pascal := pascalCase(name)
	if pascal == "" {
		return ""
	}

	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])

	return escapeReservedWord(prefixDigitIdentifier(string(runes), "v"))
}

// snakeCase converts type identifiers into Dart source file base names.
func snakeCase(name string) string {
	words := splitIdentifierWords(name)
	if len(words) == 0 {
		return ""
	}

	return prefixDigitIdentifier(strings.Join(words, "_"), "v")
}

// enumValueIdentifier converts one enum literal into a Dart enum member name.
func enumValueIdentifier(literal any) string {
	switch typed := literal.(type) {
	case string:
		name := lowerCamelCase(typed)
		if name == "" {
			return "empty"
		}

		return name
	case int:
		return numericEnumIdentifier(strconv.Itoa(typed))
	case int64:
		return numericEnumIdentifier(strconv.FormatInt(typed, 10))
	case float64:
		return numericEnumIdentifier(strconv.FormatFloat(typed, 'g', -1, 64))
	case bool:
		return escapeReservedWord(strconv.FormatBool(typed))
	default:
		name := lowerCamelCase(strings.TrimSpace(stringifyLiteral(typed)))
		if name == "" {
			return "empty"
		}

		return name
	}
}

// stringifyLiteral renders one literal value as plain display text.
func stringifyLiteral(literal any) string {
	switch typed := literal.(type) {
	case string:
		return typed
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", typed)
	}
}

// numericEnumIdentifier renders numeric literals as value-prefixed identifiers.
func numericEnumIdentifier(text string) string {
	text = strings.ReplaceAll(text, "-", "Minus")
	text = strings.ReplaceAll(text, ".", "_")
	text = strings.ReplaceAll(text, "+", "")
	return "v" + text
}

// splitIdentifierWords breaks a raw name into lowercase word parts.
func splitIdentifierWords(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	var words []string
	var current []rune

	flush := func() {
		if len(current) == 0 {
			return
		}

		words = append(words, strings.ToLower(string(current)))
		current = current[:0]
	}

	runes := []rune(name)
	for index, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			previousLower := index > 0 && (unicode.IsLower(runes[index-1]) || unicode.IsDigit(runes[index-1]))
			nextLower := index+1 < len(runes) && unicode.IsLower(runes[index+1])
			if previousLower || (len(current) > 0 && nextLower) {
				flush()
			}

			current = append(current, r)
		default:
			current = append(current, r)
		}
	}

	flush()
	return words
}

// capitalizeWord uppercases the first rune and lowercases the rest of one word.
func capitalizeWord(word string) string {
	if word == "" {
		return ""
	}

	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	for index := 1; index < len(runes); index++ {
		runes[index] = unicode.ToLower(runes[index])
	}

	return string(runes)
}

// prefixDigitIdentifier keeps identifiers valid when a name starts with a digit.
func prefixDigitIdentifier(name, prefix string) string {
	if name == "" {
		return ""
	}

	if unicode.IsDigit([]rune(name)[0]) {
		return prefix + name
	}

	return name
}

// escapeReservedWord suffixes Dart reserved words so they stay valid identifiers.
func escapeReservedWord(name string) string {
	if _, reserved := dartReservedWords[name]; reserved {
		return name + "_"
	}

	return name
}
