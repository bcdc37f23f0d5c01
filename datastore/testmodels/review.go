package testmodels

import "github.com/go-openapi/strfmt"

// Review is a dependent entity; ParentId holds the partition key of the
// book it belongs to.
type Review struct {

	// Unique identifier for the review.
	// Required: true
	ID *string `json:"Id"`

	// Partition key of the reviewed book.
	// Required: true
	ParentID *string `json:"ParentId"`

	// Star rating, 1 to 5.
	Rating int `json:"Rating,omitempty"`

	// Free-form review text.
	Body string `json:"Body,omitempty"`

	// Timestamp when the review was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt,omitempty"`
}
