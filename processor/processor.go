/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// keySchemaExtension mirrors the x-dynamodb-keyschema vendor extension.
type keySchemaExtension struct {
	Table              string `yaml:"table"`
	PartitionKey       string `yaml:"partitionKey"`
	SortKey            string `yaml:"sortKey"`
	ReferenceAttribute string `yaml:"referenceAttribute"`
	ReferenceIndex     string `yaml:"referenceIndex"`
}

type schemaNode struct {
	KeySchema *keySchemaExtension `yaml:"x-dynamodb-keyschema"`
}

type openAPIDocument struct {
	Components struct {
		Schemas map[string]schemaNode `yaml:"schemas"`
	} `yaml:"components"`
	// Swagger 2.0 keeps schemas under definitions.
	Definitions map[string]schemaNode `yaml:"definitions"`
}

// Flags are registered at package load so that a host binary parsing the
// default flag set sees them alongside its own.
var (
	inputFlag  = flag.String("input", "openapi.yaml", "OpenAPI specification to read")
	outputFlag = flag.String("output", "keyschemas_gen.go", "Go file to write")
	pkgFlag    = flag.String("package", "main", "Package name for the generated file")
)

// Main is the entry point of the keyschema generator CLI.
func Main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	if err := Run(*inputFlag, *outputFlag, *pkgFlag); err != nil {
		fmt.Fprintf(os.Stderr, "keyschema: %v\n", err)
		os.Exit(1)
	}
}

// Run reads the OpenAPI spec at inputPath and writes key-schema
// registration code to outputPath.
func Run(inputPath, outputPath, packageName string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read spec: %w", err)
	}

	code, err := Generate(raw, packageName)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, code, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Generate parses an OpenAPI document and renders the registration file.
// Schemas without the vendor extension are skipped; a document with no
// annotated schema at all is an error, since that points at a misspelled
// extension key.
func Generate(spec []byte, packageName string) ([]byte, error) {
	var doc openAPIDocument
	if err := yaml.Unmarshal(spec, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse spec: %w", err)
	}

	schemas := doc.Components.Schemas
	if len(schemas) == 0 {
		schemas = doc.Definitions
	}

	names := make([]string, 0, len(schemas))
	for name, node := range schemas {
		if node.KeySchema != nil {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no schema carries the x-dynamodb-keyschema extension")
	}
	sort.Strings(names)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by keyschema; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)
	fmt.Fprintf(&buf, "import (\n\t\"github.com/suparena/rekeystore/registry\"\n)\n\n")
	fmt.Fprintf(&buf, "func init() {\n")
	for i, name := range names {
		if i > 0 {
			fmt.Fprintf(&buf, "\n")
		}
		ext := schemas[name].KeySchema
		fmt.Fprintf(&buf, "\tregistry.RegisterKeySchema[%s](registry.KeySchema{\n", name)
		fmt.Fprintf(&buf, "\t\tTableName:             %q,\n", ext.Table)
		fmt.Fprintf(&buf, "\t\tPartitionKeyAttribute: %q,\n", ext.PartitionKey)
		if ext.SortKey != "" {
			fmt.Fprintf(&buf, "\t\tSortKeyAttribute:      %q,\n", ext.SortKey)
		}
		if ext.ReferenceAttribute != "" {
			fmt.Fprintf(&buf, "\t\tReferenceAttribute:    %q,\n", ext.ReferenceAttribute)
		}
		if ext.ReferenceIndex != "" {
			fmt.Fprintf(&buf, "\t\tReferenceIndexName:    %q,\n", ext.ReferenceIndex)
		}
		fmt.Fprintf(&buf, "\t})\n")
	}
	fmt.Fprintf(&buf, "}\n")

	return buf.Bytes(), nil
}
