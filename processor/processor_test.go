/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"strings"
	"testing"
)

const sampleSpec = `
openapi: 3.0.0
components:
  schemas:
    Book:
      type: object
      x-dynamodb-keyschema:
        table: library
        partitionKey: PK
        sortKey: SK
        referenceAttribute: ParentId
        referenceIndex: ParentIdIndex
      properties:
        id:
          type: string
    Review:
      type: object
      x-dynamodb-keyschema:
        table: reviews
        partitionKey: PK
      properties:
        id:
          type: string
    Unannotated:
      type: object
      properties:
        id:
          type: string
`

func TestGenerate(t *testing.T) {
	code, err := Generate([]byte(sampleSpec), "testmodels")
	if err != nil {
		t.Fatal(err)
	}
	out := string(code)

	if !strings.Contains(out, "package testmodels") {
		t.Error("Generated code should carry the requested package name")
	}
	if !strings.Contains(out, "registry.RegisterKeySchema[Book]") {
		t.Error("Book registration missing")
	}
	if !strings.Contains(out, `TableName:             "library"`) {
		t.Error("Book table name missing")
	}
	if !strings.Contains(out, `ReferenceIndexName:    "ParentIdIndex"`) {
		t.Error("Book reference index missing")
	}
	if !strings.Contains(out, "registry.RegisterKeySchema[Review]") {
		t.Error("Review registration missing")
	}
	if strings.Contains(out, "Unannotated") {
		t.Error("Schemas without the extension must be skipped")
	}

	// Review has no sort key; the field must be omitted rather than empty.
	reviewBlock := out[strings.Index(out, "Review"):]
	if strings.Contains(reviewBlock, `SortKeyAttribute:      ""`) {
		t.Error("Empty sort key should be omitted from generated code")
	}
}

func TestGenerateDeterministicOrder(t *testing.T) {
	first, err := Generate([]byte(sampleSpec), "m")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate([]byte(sampleSpec), "m")
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("Generation must be deterministic")
	}

	if strings.Index(string(first), "[Book]") > strings.Index(string(first), "[Review]") {
		t.Error("Registrations should be emitted in sorted schema order")
	}
}

func TestGenerateSwaggerDefinitions(t *testing.T) {
	spec := `
swagger: "2.0"
definitions:
  Order:
    type: object
    x-dynamodb-keyschema:
      table: orders
      partitionKey: PK
`
	code, err := Generate([]byte(spec), "m")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(code), "registry.RegisterKeySchema[Order]") {
		t.Error("Swagger 2.0 definitions should be supported")
	}
}

func TestGenerateNoAnnotatedSchemas(t *testing.T) {
	spec := `
openapi: 3.0.0
components:
  schemas:
    Book:
      type: object
`
	if _, err := Generate([]byte(spec), "m"); err == nil {
		t.Error("Expected error when no schema is annotated")
	}
}

func TestGenerateInvalidYAML(t *testing.T) {
	if _, err := Generate([]byte("{not yaml"), "m"); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
