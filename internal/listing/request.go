// Package listing defines the property-description payload accepted by
// POST /generate and the rules it must satisfy before any generator runs.
package listing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultOutputType is used when the caller omits output_type.
const DefaultOutputType = "MLS short"

// Request is a validated property description. Treat it as read-only once
// Decode has returned it.
type Request struct {
	PropertyDetails string `json:"property_details" validate:"required"`
	Tone            string `json:"tone,omitempty"`
	Audience        string `json:"audience,omitempty"`
	OutputType      string `json:"output_type,omitempty"`
	WordCount       *int   `json:"word_count,omitempty" validate:"omitempty,gt=0"`
}

// Result is the body of a successful generation.
type Result struct {
	Content string `json:"content"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode reads a JSON request body, normalizes it and validates it. Every
// failure is returned as a *ValidationError.
func Decode(r io.Reader) (*Request, error) {
	var req Request
	dec := json.NewDecoder(r)
	if err := dec.Decode(&req); err != nil {
		return nil, decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, trailingDataError()
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// Normalize trims surrounding whitespace from every text field and applies the
// output_type default. Blank optional fields become absent.
func (r *Request) Normalize() {
	r.PropertyDetails = strings.TrimSpace(r.PropertyDetails)
	r.Tone = strings.TrimSpace(r.Tone)
	r.Audience = strings.TrimSpace(r.Audience)
	r.OutputType = strings.TrimSpace(r.OutputType)
	if r.OutputType == "" {
		r.OutputType = DefaultOutputType
	}
}

// Validate checks the struct rules. Call Normalize first so that
// whitespace-only property details are rejected.
func (r *Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, fieldErrorFor(fe))
	}
	return ve
}

// HasWordCount reports whether a target length was requested.
func (r *Request) HasWordCount() bool {
	return r.WordCount != nil
}

func fieldErrorFor(fe validator.FieldError) FieldError {
	switch fe.Tag() {
	case "required":
		return FieldError{
			Loc:  []string{"body", fe.Field()},
			Msg:  "field required and must not be blank",
			Type: "value_error.missing",
		}
	case "gt":
		return FieldError{
			Loc:  []string{"body", fe.Field()},
			Msg:  "ensure this value is greater than " + fe.Param(),
			Type: "value_error.number.not_gt",
		}
	default:
		return FieldError{
			Loc:  []string{"body", fe.Field()},
			Msg:  fmt.Sprintf("failed %q validation", fe.Tag()),
			Type: "value_error",
		}
	}
}

func trailingDataError() *ValidationError {
	return &ValidationError{Fields: []FieldError{{
		Loc:  []string{"body"},
		Msg:  "request body is not valid JSON: unexpected data after the top-level object",
		Type: "value_error.jsondecode",
	}}}
}

func decodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fe := FieldError{
			Loc:  []string{"body", typeErr.Field},
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type.Kind()),
			Type: "type_error." + typeErr.Type.Kind().String(),
		}
		if typeErr.Field == "word_count" {
			fe.Msg = "value is not a valid integer"
			fe.Type = "type_error.integer"
		}
		return &ValidationError{Fields: []FieldError{fe}}
	}
	return &ValidationError{Fields: []FieldError{{
		Loc:  []string{"body"},
		Msg:  "request body is not valid JSON: " + err.Error(),
		Type: "value_error.jsondecode",
	}}}
}
