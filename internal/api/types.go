package api

import "github.com/joestump/listing-writer/internal/listing"

// GenerateRequest is the request body for POST /generate. It documents the
// wire shape; decoding goes through listing.Decode.
type GenerateRequest struct {
	PropertyDetails string `json:"property_details" example:"3 bed 2 bath, 1800 sqft, updated kitchen"`
	Tone            string `json:"tone,omitempty" example:"friendly"`
	Audience        string `json:"audience,omitempty" example:"first-time buyers"`
	OutputType      string `json:"output_type,omitempty" example:"MLS short"`
	WordCount       *int   `json:"word_count,omitempty" example:"150"`
}

// GenerateResponse is the body of a successful generation.
type GenerateResponse = listing.Result

// ErrorResponse carries a human-readable failure description.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse lists every invalid part of a request body.
type ValidationErrorResponse struct {
	Detail []listing.FieldError `json:"detail"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}
