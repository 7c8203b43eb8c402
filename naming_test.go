// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

package swagmodels

import "testing"

func TestPascalCase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"user", "User"},
		{"user_profile", "UserProfile"},
		{"pet-store", "PetStore"},
		{"APIKey", "ApiKey"},
		{"HTTPResponse", "HttpResponse"},
		{"order.line.item", "OrderLineItem"},
		{"  padded name ", "PaddedName"},
		{"2fa_config", "V2faConfig"},
		{"", ""},
		{"---", ""},
	}

	for _, test := range cases {
		if got := pascalCase(test.input); got != test.want {
			t.Fatalf("pascalCase(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestLowerCamelCase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"display_name", "displayName"},
		{"ID", "id"},
		{"user-id", "userId"},
		{"class", "class_"},
		{"enum", "enum_"},
		{"default", "default_"},
		{"2nd_place", "v2ndPlace"},
		{"", ""},
	}

	for _, test := range cases {
		if got := lowerCamelCase(test.input); got != test.want {
			t.Fatalf("lowerCamelCase(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSnakeCase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"UserProfile", "user_profile"},
		{"APIKey", "api_key"},
		{"Pet", "pet"},
		{"OrderLineItem", "order_line_item"},
		{"V2Config", "v2_config"},
		{"", ""},
	}

	for _, test := range cases {
		if got := snakeCase(test.input); got != test.want {
			t.Fatalf("snakeCase(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestEnumValueIdentifier(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"plain string", "available", "available"},
		{"screaming snake", "NOT_FOUND", "notFound"},
		{"kebab", "in-progress", "inProgress"},
		{"reserved word", "new", "new_"},
		{"empty string", "", "empty"},
		{"int", 42, "v42"},
		{"negative int", -1, "vMinus1"},
		{"float", 2.5, "v2_5"},
		{"bool", true, "true_"},
	}

	for _, test := range cases {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := enumValueIdentifier(test.input); got != test.want {
				t.Fatalf("enumValueIdentifier(%v) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestStringifyLiteral(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input any
		want  string
	}{
		{"sold", "sold"},
		{7, "7"},
		{int64(9), "9"},
		{1.25, "1.25"},
		{false, "false"},
		{nil, "null"},
	}

	for _, test := range cases {
		if got := stringifyLiteral(test.input); got != test.want {
			t.Fatalf("stringifyLiteral(%v) = %q, want %q", test.input, got, test.want)
		}
	}
}
