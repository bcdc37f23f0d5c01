package testmodels

import "github.com/go-openapi/strfmt"

// Book is a parent entity whose partition key other items reference.
type Book struct {

	// Timestamp when the book record was created.
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`

	// Unique identifier for the book.
	// Required: true
	ID *string `json:"Id"`

	// Title of the book.
	// Required: true
	Title *string `json:"Title"`

	// Author of the book.
	Author string `json:"Author,omitempty"`

	// Timestamp when the book record was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt,omitempty"`
}
