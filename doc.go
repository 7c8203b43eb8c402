// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Alex Galitsky
// Source: github.com/AlexGalitsky/swagmodels

/*
Package swagmodels generates Dart model sources from OpenAPI and Swagger
schema documents.

The package resolves named schemas (components/schemas or definitions),
composes allOf fragments, synthesizes discriminated unions, and renders typed
Dart records and enumerations through pluggable styles ("plain",
"json_serializable"). Generated files carry a marked region; bytes outside it
survive regeneration, and an incremental cache keyed by content hashes lets
runs skip unchanged schemas.

Generate artifacts from a document file:

	doc, err := swagmodels.LoadDocument("api.yaml")
	if err != nil {
		return err
	}

	report, err := swagmodels.Generate(doc, swagmodels.Options{
		OutputDir: "lib/models",
		Style:     swagmodels.StyleJSONSerializable,
	})
	if err != nil {
		return err
	}

	fmt.Println(report.Summary())

Generate from raw bytes with per-schema configuration:

	doc, err := swagmodels.ParseDocument(documentBytes)
	if err != nil {
		return err
	}

	config, err := swagmodels.LoadConfig("swagmodels.yaml")
	if err != nil {
		return err
	}

	report, err := swagmodels.Generate(doc, swagmodels.Options{
		OutputDir:   "lib/models",
		Config:      config,
		ChangedOnly: true,
	})
	if err != nil {
		return err
	}

	for _, result := range report.Results {
		fmt.Printf("%s %s\n", result.Action, result.Artifact)
	}

Check a document without writing files:

	report, err := swagmodels.Lint(doc, nil)
	if err != nil {
		return err
	}

	for _, diagnostic := range report.Diagnostics {
		fmt.Println(diagnostic)
	}

Render a markdown index of a run:

	index, err := swagmodels.RenderModelIndex(report, "")
	if err != nil {
		return err
	}

	fmt.Println(index)

List rendering styles:

	names := swagmodels.DefaultBackends().StyleNames()
	fmt.Println(strings.Join(names, ", "))
*/
package swagmodels
